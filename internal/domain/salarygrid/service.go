package salarygrid

import (
	"context"
	"io"
)

// GridService holds the salary grid operations: derivation over rows,
// autofill from the employee directory, spreadsheet import/export, the
// submission gate and the bulk submission itself.
type GridService interface {
	// Recalculate re-derives per-day, total payable and balance for every
	// row against the requested period and returns grid totals
	Recalculate(ctx context.Context, req RecalculateGridRequest) (GridResponse, error)

	// Autofill builds one row per active employee seeded from master data
	Autofill(ctx context.Context, req AutofillGridRequest) (GridResponse, error)

	// ImportSheet parses a spreadsheet into normalized rows, matches them
	// against the employee directory and derives their fields
	ImportSheet(ctx context.Context, file io.Reader, filename string, month, year int) (GridResponse, error)

	// ExportSheet renders the grid as a spreadsheet; returns content plus
	// the suggested filename
	ExportSheet(ctx context.Context, req RecalculateGridRequest) ([]byte, string, error)

	// ValidateGrid runs the submission gate without submitting
	ValidateGrid(ctx context.Context, req SubmitGridRequest) (ValidateGridResponse, error)

	// Submit runs the gate and processes the filled rows into salary
	// records, expenses and auto-created employees
	Submit(ctx context.Context, req SubmitGridRequest) (SubmissionResult, error)
}
