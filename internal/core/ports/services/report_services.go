package services

import (
	"context"

	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// ReportSvcFacade builds transient reports over a user's records.
type ReportSvcFacade interface {
	// BuildReport resolves the builder for the given type string
	// (case-insensitive, with aliases) and runs it over the inclusive
	// [start, end] calendar-day range. Unknown types fail with
	// apperrors.ErrUnknownReportType before any repository access.
	BuildReport(ctx context.Context, reportType, userID, start, end string) (*domain.Report, error)
}
