package empclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
)

// Employee is one record as the API returns it.
type Employee = employee.EmployeeResponse

// Values carries the six business fields sent on create and update.
type Values = employee.CreateEmployeeRequest

// Client talks to the employee REST resource at BaseURL (e.g. http://localhost:7654/emp).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is returned for any non-2xx response. Message holds the server's
// "message" field and is empty when the body carried none.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("employee API error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("employee API error [%d]: %s", e.StatusCode, e.Message)
}

// ServerMessage extracts the server-provided message from err, if there is one.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// errUnreadableBody marks a 2xx response whose body is not the JSON envelope.
// Writes treat it as success; List cannot.
var errUnreadableBody = errors.New("unreadable response body")

type envelope struct {
	Success bool              `json:"success"`
	Message json.RawMessage   `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Details map[string]string `json:"details"`
}

// List fetches every record: GET {base} -> { message: Employee[] }.
func (c *Client) List(ctx context.Context) ([]Employee, error) {
	env, err := c.do(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	employees := []Employee{}
	if len(env.Message) > 0 && string(env.Message) != "null" {
		if err := json.Unmarshal(env.Message, &employees); err != nil {
			return nil, fmt.Errorf("decode employee list: %w", err)
		}
	}
	return employees, nil
}

// Create posts a new record.
func (c *Client) Create(ctx context.Context, values Values) (Employee, error) {
	env, err := c.do(ctx, http.MethodPost, c.baseURL, values)
	if err != nil && !errors.Is(err, errUnreadableBody) {
		return Employee{}, err
	}
	return decodeRecord(env), nil
}

// Update replaces the record at recordID.
func (c *Client) Update(ctx context.Context, recordID string, values Values) (Employee, error) {
	env, err := c.do(ctx, http.MethodPut, c.recordURL(recordID), values)
	if err != nil && !errors.Is(err, errUnreadableBody) {
		return Employee{}, err
	}
	return decodeRecord(env), nil
}

// Delete removes the record at recordID.
func (c *Client) Delete(ctx context.Context, recordID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.recordURL(recordID), nil)
	if errors.Is(err, errUnreadableBody) {
		return nil
	}
	return err
}

func (c *Client) recordURL(recordID string) string {
	return c.baseURL + "/" + url.PathEscape(recordID)
}

func (c *Client) do(ctx context.Context, method, target string, body interface{}) (envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return envelope{}, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return envelope{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return envelope{}, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Details = env.Details
			// Only a string message is shown to the user.
			var msg string
			if json.Unmarshal(env.Message, &msg) == nil {
				apiErr.Message = msg
			}
		}
		return envelope{}, apiErr
	}

	if decodeErr != nil && len(bytes.TrimSpace(raw)) > 0 {
		return envelope{}, fmt.Errorf("%w: %v", errUnreadableBody, decodeErr)
	}
	return env, nil
}

// decodeRecord reads the written record from "data", falling back to "message"
// for servers that return the record there. The write already succeeded, so a
// body of another shape yields a zero Employee instead of an error.
func decodeRecord(env envelope) Employee {
	for _, raw := range []json.RawMessage{env.Data, env.Message} {
		if len(raw) == 0 || raw[0] != '{' {
			continue
		}
		var e Employee
		if err := json.Unmarshal(raw, &e); err == nil {
			return e
		}
	}
	return Employee{}
}
