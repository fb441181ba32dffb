package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Message is the user-facing summary: each field message once, in order.
func (v ValidationErrors) Message() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}
	return strings.Join(msgs, "; ")
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ExceedsLength reports whether s is longer than max runes.
func ExceedsLength(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Employee ids: letters, digits, dash, underscore, slash and dot, 1-32 chars.
var employeeIDRegex = regexp.MustCompile(`^[A-Za-z0-9._/-]{1,32}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}
