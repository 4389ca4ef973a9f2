package repository

import (
	"context"

	"shuddhify/internal/domain/entity"
)

// ReportFilter narrows List results. City and FoodItem are case-insensitive
// substring matches; Severity and Status are exact. An empty Status excludes
// rejected reports.
type ReportFilter struct {
	City     string
	FoodItem string
	Severity string
	Status   string
}

type ReportRepository interface {
	// Create persists the report and increments the owner's reportsSubmitted
	// counter in the same transaction.
	Create(ctx context.Context, report *entity.Report) error

	GetByID(ctx context.Context, id string) (*entity.Report, error)

	// List returns matching reports ordered by reportDate descending, capped
	// at 500 results.
	List(ctx context.Context, filter ReportFilter) ([]*entity.Report, error)

	ListByReporter(ctx context.Context, reporterID string) ([]*entity.Report, error)

	// ListActive returns reports with status pending or verified.
	ListActive(ctx context.Context) ([]*entity.Report, error)

	// Verify atomically records a verification by verifierID, promoting the
	// report to verified once quorum is reached, and increments the
	// verifier's counters. Returns the updated report.
	Verify(ctx context.Context, reportID, verifierID string) (*entity.Report, error)

	// Delete removes the report if requesterID is its original submitter and
	// decrements the owner's reportsSubmitted counter in the same transaction.
	Delete(ctx context.Context, id, requesterID string) error
}
