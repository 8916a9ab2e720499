package salarygrid

import "context"

// SalaryRepository persists submitted grids. Each entry is processed
// independently so that one bad row never aborts the whole batch.
type SalaryRepository interface {
	ProcessBulkSubmission(ctx context.Context, companyID string, submission BulkSubmission) (SubmissionResult, error)
}
