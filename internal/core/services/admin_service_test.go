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

type AdminServiceTestSuite struct {
	suite.Suite
	repos   portsrepo.RepositoryProvider
	service portssvc.AdminSvc
}

func (suite *AdminServiceTestSuite) SetupTest() {
	store, err := jsondb.Open(filepath.Join(suite.T().TempDir(), "db.json"))
	suite.Require().NoError(err)

	suite.repos = jsondb.NewRepoContainer(store)
	suite.service = services.NewAdminService(suite.repos)

	ctx := context.Background()
	suite.Require().NoError(suite.repos.User.Save(ctx, domain.User{UserID: "usr_1", Name: "Alpha", Role: domain.RoleIndividual}))
	suite.Require().NoError(suite.repos.User.Save(ctx, domain.User{UserID: "usr_2", Name: "Beta", Role: domain.RoleBusiness}))
	suite.Require().NoError(suite.repos.Income.Add(ctx, domain.Income{IncomeID: "inc_1", UserID: "usr_1", Amount: decimal.NewFromInt(100)}))
	suite.Require().NoError(suite.repos.Expense.Add(ctx, domain.Expense{ExpenseID: "exp_1", UserID: "usr_1", Amount: decimal.NewFromInt(40)}))
	suite.Require().NoError(suite.repos.Savings.Add(ctx, domain.Savings{SavingsID: "sav_1", UserID: "usr_1", Amount: decimal.NewFromInt(10)}))
	suite.Require().NoError(suite.repos.Loan.Add(ctx, domain.Loan{LoanID: "loan_1", UserID: "usr_1", Amount: decimal.NewFromInt(500)}))
	suite.Require().NoError(suite.repos.Notification.Add(ctx, domain.Notification{NotificationID: "ntf_1", UserID: "usr_1"}))
	suite.Require().NoError(suite.repos.Income.Add(ctx, domain.Income{IncomeID: "inc_keep", UserID: "usr_2", Amount: decimal.NewFromInt(9)}))
}

func (suite *AdminServiceTestSuite) TestDeleteUser_CascadesAllCollections() {
	ctx := context.Background()
	suite.Require().NoError(suite.service.DeleteUser(ctx, "usr_1"))

	users, err := suite.repos.User.List(ctx)
	suite.Require().NoError(err)
	suite.Len(users, 1)
	suite.Equal("usr_2", users[0].UserID)

	income, err := suite.repos.Income.ListByUser(ctx, "usr_1")
	suite.Require().NoError(err)
	suite.Empty(income)
	expenses, err := suite.repos.Expense.ListByUser(ctx, "usr_1")
	suite.Require().NoError(err)
	suite.Empty(expenses)
	savings, err := suite.repos.Savings.ListByUser(ctx, "usr_1")
	suite.Require().NoError(err)
	suite.Empty(savings)
	loans, err := suite.repos.Loan.ListByUser(ctx, "usr_1")
	suite.Require().NoError(err)
	suite.Empty(loans)
	notifications, err := suite.repos.Notification.ListByUser(ctx, "usr_1")
	suite.Require().NoError(err)
	suite.Empty(notifications)

	// Other users' records are untouched.
	kept, err := suite.repos.Income.ListByUser(ctx, "usr_2")
	suite.Require().NoError(err)
	suite.Len(kept, 1)
}

func (suite *AdminServiceTestSuite) TestDeleteUser_NotFound() {
	err := suite.service.DeleteUser(context.Background(), "usr_missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AdminServiceTestSuite) TestBroadcast_PersistsPerUser() {
	ctx := context.Background()
	delivered, err := suite.service.Broadcast(ctx, "maintenance tonight")
	suite.Require().NoError(err)
	suite.Equal(2, delivered)

	for _, userID := range []string{"usr_1", "usr_2"} {
		notifications, err := suite.repos.Notification.ListByUser(ctx, userID)
		suite.Require().NoError(err)
		var found bool
		for _, n := range notifications {
			if n.Event == domain.EventAdminBroadcast {
				suite.Equal("maintenance tonight", n.Message)
				found = true
			}
		}
		suite.True(found, "expected a broadcast notification for %s", userID)
	}
}

func (suite *AdminServiceTestSuite) TestBroadcast_RequiresMessage() {
	_, err := suite.service.Broadcast(context.Background(), "")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AdminServiceTestSuite) TestProxy_DeniesNonAdmin() {
	for _, role := range []string{"", "user", "individual", "business"} {
		proxy := services.NewAdminProxy(suite.service, role)

		_, err := proxy.ListUsers(context.Background())
		suite.ErrorIs(err, apperrors.ErrAccessDenied)

		err = proxy.DeleteUser(context.Background(), "usr_1")
		suite.ErrorIs(err, apperrors.ErrAccessDenied)

		_, err = proxy.Broadcast(context.Background(), "hello")
		suite.ErrorIs(err, apperrors.ErrAccessDenied)
	}

	// Denied operations must leave the store untouched.
	users, err := suite.repos.User.List(context.Background())
	suite.Require().NoError(err)
	suite.Len(users, 2)
}

func (suite *AdminServiceTestSuite) TestProxy_AllowsAdmin() {
	proxy := services.NewAdminProxy(suite.service, string(domain.RoleAdmin))

	users, err := proxy.ListUsers(context.Background())
	suite.Require().NoError(err)
	suite.Len(users, 2)

	suite.Require().NoError(proxy.DeleteUser(context.Background(), "usr_1"))
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
