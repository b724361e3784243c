package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
)

// reportService resolves report type strings to builders and runs them.
type reportService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

func NewReportService(repos portsrepo.RepositoryProvider) portssvc.ReportSvcFacade {
	return &reportService{repos: repos}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// BuildReport selects the builder by type string (case-insensitive, with the
// historical aliases) and builds it. The type is resolved before parameter
// validation or any repository access.
func (s *reportService) BuildReport(ctx context.Context, reportType, userID, start, end string) (*domain.Report, error) {
	builder, err := s.newBuilder(reportType, userID, start, end)
	if err != nil {
		return nil, err
	}
	report, err := builder.build(ctx)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Report built",
		"type", report.Type,
		"user_id", userID,
		"start", report.Range.Start,
		"end", report.Range.End)
	return report, nil
}

func (s *reportService) newBuilder(reportType, userID, start, end string) (reportBuilder, error) {
	var construct func(baseReport) reportBuilder
	switch strings.ToLower(reportType) {
	case "cashflow", "cash-flow", "cash_flow":
		construct = func(b baseReport) reportBuilder { return cashFlowReport{b} }
	case "bank", "bankreport":
		construct = func(b baseReport) reportBuilder { return bankReport{b} }
	case "overall", "summary":
		construct = func(b baseReport) reportBuilder { return overallReport{b} }
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownReportType, reportType)
	}

	base, err := newBaseReport(userID, start, end, s.repos)
	if err != nil {
		return nil, err
	}
	return construct(base), nil
}
