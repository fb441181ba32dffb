package form

import (
	"context"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/empclient"
	"golang.org/x/sync/errgroup"
)

const bulkCreateLimit = 4

// CreateMany creates one record per row with at most four requests in flight,
// then reloads the list. The returned slice has one entry per row; nil means
// the row was created. Rows with an empty field are never sent.
func (f *Form) CreateMany(ctx context.Context, rows []empclient.Values) []error {
	errs := make([]error, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkCreateLimit)
	for i, row := range rows {
		if missing(row) {
			errs[i] = employee.ErrMandatoryFieldsMissing
			continue
		}
		g.Go(func() error {
			// A failed row must not cancel the others, so errors stay per row.
			_, errs[i] = f.api.Create(gctx, row)
			return nil
		})
	}
	_ = g.Wait()

	_ = f.Load(ctx)
	return errs
}
