package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/adapters/database/jsondb"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/core/services"
)

type ReportServiceTestSuite struct {
	suite.Suite
	repos   portsrepo.RepositoryProvider
	service portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	store, err := jsondb.Open(filepath.Join(suite.T().TempDir(), "db.json"))
	suite.Require().NoError(err)

	suite.repos = jsondb.NewRepoContainer(store)
	suite.service = services.NewReportService(suite.repos)

	ctx := context.Background()
	seed := []error{
		suite.repos.Income.Add(ctx, domain.Income{IncomeID: "inc_1", UserID: "usr_1", Amount: decimal.NewFromInt(1000), Date: "2026-08-01", Category: "salary"}),
		suite.repos.Income.Add(ctx, domain.Income{IncomeID: "inc_2", UserID: "usr_1", Amount: decimal.NewFromInt(200), Date: "2026-08-31"}),
		suite.repos.Income.Add(ctx, domain.Income{IncomeID: "inc_3", UserID: "usr_1", Amount: decimal.NewFromInt(999), Date: "2026-09-01", Category: "salary"}),
		suite.repos.Expense.Add(ctx, domain.Expense{ExpenseID: "exp_1", UserID: "usr_1", Amount: decimal.NewFromInt(300), Date: "2026-08-10", Category: "food"}),
		suite.repos.Savings.Add(ctx, domain.Savings{SavingsID: "sav_1", UserID: "usr_1", Amount: decimal.NewFromInt(150), Date: "2026-08-05", BankName: "First Bank"}),
		suite.repos.Loan.Add(ctx, domain.Loan{LoanID: "loan_1", UserID: "usr_1", Amount: decimal.NewFromInt(5000), Date: "2026-08-20"}),
		suite.repos.Income.Add(ctx, domain.Income{IncomeID: "inc_other", UserID: "usr_2", Amount: decimal.NewFromInt(77), Date: "2026-08-15"}),
	}
	for _, err := range seed {
		suite.Require().NoError(err)
	}
}

func (suite *ReportServiceTestSuite) TestBuildReport_CashFlow() {
	report, err := suite.service.BuildReport(context.Background(), "cashflow", "usr_1", "2026-08-01", "2026-08-31")
	suite.Require().NoError(err)

	suite.Equal(domain.ReportTypeCashFlow, report.Type)
	suite.Equal("usr_1", report.UserID)
	suite.Equal("2026-08-01", report.Range.Start)
	suite.Equal("2026-08-31", report.Range.End)

	// inc_3 is outside the range; the boundary days are inclusive.
	suite.True(report.Totals["income"].Equal(decimal.NewFromInt(1200)))
	suite.True(report.Totals["expense"].Equal(decimal.NewFromInt(300)))
	suite.True(report.Totals["net"].Equal(decimal.NewFromInt(900)))

	suite.True(report.Breakdown["incomeByCategory"]["salary"].Equal(decimal.NewFromInt(1000)))
	suite.True(report.Breakdown["incomeByCategory"]["uncategorized"].Equal(decimal.NewFromInt(200)))
	suite.Len(report.Lists.Income, 2)
	suite.Len(report.Lists.Expenses, 1)
}

func (suite *ReportServiceTestSuite) TestBuildReport_Bank() {
	report, err := suite.service.BuildReport(context.Background(), "bank", "usr_1", "2026-08-01", "2026-08-31")
	suite.Require().NoError(err)

	suite.Equal(domain.ReportTypeBank, report.Type)
	suite.True(report.Totals["savings"].Equal(decimal.NewFromInt(150)))
	suite.True(report.Totals["loans"].Equal(decimal.NewFromInt(5000)))
	suite.True(report.ByBank["savings"]["First Bank"].Equal(decimal.NewFromInt(150)))
	suite.True(report.ByBank["loans"]["unknown"].Equal(decimal.NewFromInt(5000)))
}

func (suite *ReportServiceTestSuite) TestBuildReport_Overall() {
	report, err := suite.service.BuildReport(context.Background(), "overall", "usr_1", "2026-08-01", "2026-08-31")
	suite.Require().NoError(err)

	suite.Equal(domain.ReportTypeOverall, report.Type)
	suite.True(report.Totals["income"].Equal(decimal.NewFromInt(1200)))
	suite.True(report.Totals["expense"].Equal(decimal.NewFromInt(300)))
	suite.True(report.Totals["savings"].Equal(decimal.NewFromInt(150)))
	suite.True(report.Totals["loan"].Equal(decimal.NewFromInt(5000)))
	suite.Equal(2, report.Counts["income"])
	suite.Equal(1, report.Counts["loans"])
}

func (suite *ReportServiceTestSuite) TestBuildReport_TypeAliases() {
	for _, alias := range []string{"cash-flow", "cash_flow", "CashFlow"} {
		report, err := suite.service.BuildReport(context.Background(), alias, "usr_1", "2026-08-01", "2026-08-31")
		suite.Require().NoError(err)
		suite.Equal(domain.ReportTypeCashFlow, report.Type)
	}

	report, err := suite.service.BuildReport(context.Background(), "summary", "usr_1", "2026-08-01", "2026-08-31")
	suite.Require().NoError(err)
	suite.Equal(domain.ReportTypeOverall, report.Type)

	report, err = suite.service.BuildReport(context.Background(), "bankreport", "usr_1", "2026-08-01", "2026-08-31")
	suite.Require().NoError(err)
	suite.Equal(domain.ReportTypeBank, report.Type)
}

func (suite *ReportServiceTestSuite) TestBuildReport_UnknownTypeBeforeParamChecks() {
	// The type check wins even when every other parameter is also invalid.
	_, err := suite.service.BuildReport(context.Background(), "pie-chart", "", "", "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownReportType)
}

func (suite *ReportServiceTestSuite) TestBuildReport_InvalidParams() {
	_, err := suite.service.BuildReport(context.Background(), "overall", "", "2026-08-01", "2026-08-31")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.BuildReport(context.Background(), "overall", "usr_1", "nope", "2026-08-31")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.BuildReport(context.Background(), "overall", "usr_1", "2026-08-01", "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportServiceTestSuite) TestBuildReport_AcceptsTimestampBounds() {
	report, err := suite.service.BuildReport(context.Background(), "cashflow", "usr_1",
		"2026-08-01T00:00:00Z", "2026-08-31T23:59:59Z")
	suite.Require().NoError(err)
	suite.Equal("2026-08-01", report.Range.Start)
	suite.Equal("2026-08-31", report.Range.End)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
