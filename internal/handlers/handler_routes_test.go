package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/mdrafsun/Advance-tracker/internal/adapters/database/jsondb"
	"github.com/mdrafsun/Advance-tracker/internal/core/services"
	"github.com/mdrafsun/Advance-tracker/internal/handlers"
	"github.com/mdrafsun/Advance-tracker/internal/platform/config"
)

// RoutesTestSuite drives the full HTTP surface against a store on a temp dir.
type RoutesTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "advance-tracker",
	}

	store, err := jsondb.Open(filepath.Join(suite.T().TempDir(), "db.json"))
	suite.Require().NoError(err)

	repos := jsondb.NewRepoContainer(store)
	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, serviceContainer)
}

func (suite *RoutesTestSuite) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RoutesTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (suite *RoutesTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *RoutesTestSuite) TestRecordIncomeAndSummary() {
	w := suite.do(http.MethodPost, "/api/v1/income", map[string]any{
		"userId":      "usr_1",
		"amount":      1200,
		"date":        "2026-08-15",
		"description": "salary",
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	created := suite.decode(w)
	suite.Equal("income", created["transactionKind"])
	suite.Contains(created["id"], "inc_")

	w = suite.do(http.MethodGet, "/api/v1/summary?userId=usr_1", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	summary := suite.decode(w)
	suite.Equal("1200", fmt.Sprint(summary["incomeTotal"]))
}

func (suite *RoutesTestSuite) TestRecordTransaction_ValidationFailure() {
	w := suite.do(http.MethodPost, "/api/v1/expense", map[string]any{
		"userId": "usr_1",
		"amount": -5,
	}, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RoutesTestSuite) TestTransactionLifecycle() {
	w := suite.do(http.MethodPost, "/api/v1/savings", map[string]any{
		"userId":   "usr_1",
		"amount":   300,
		"bankName": "First Bank",
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)
	id := suite.decode(w)["id"].(string)

	w = suite.do(http.MethodGet, "/api/v1/transactions/savings/"+id, nil, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPut, "/api/v1/transactions/savings/"+id, map[string]any{
		"description": "emergency fund",
	}, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("emergency fund", suite.decode(w)["description"])

	w = suite.do(http.MethodDelete, "/api/v1/transactions/savings/"+id, nil, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/transactions/savings/"+id, nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RoutesTestSuite) TestTransaction_UnknownKindPathIsBadRequest() {
	w := suite.do(http.MethodGet, "/api/v1/transactions/stocks/some_id", nil, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RoutesTestSuite) TestReportEndpoint() {
	w := suite.do(http.MethodPost, "/api/v1/income", map[string]any{
		"userId": "usr_1", "amount": 100, "date": "2026-08-10",
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/report?type=cashflow&userId=usr_1&start=2026-08-01&end=2026-08-31", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	report := suite.decode(w)
	suite.Equal("cashflow", report["type"])

	w = suite.do(http.MethodGet, "/api/v1/report?type=nope&userId=usr_1&start=2026-08-01&end=2026-08-31", nil, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RoutesTestSuite) TestNotificationsFlow() {
	// Recording a transaction persists a notification via the global sink.
	w := suite.do(http.MethodPost, "/api/v1/loan", map[string]any{
		"userId": "usr_1", "amount": 9000, "bankName": "First Bank",
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/notifications?userId=usr_1", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var listed struct {
		Notifications []struct {
			NotificationID string `json:"notificationId"`
			Event          string `json:"event"`
		} `json:"notifications"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	suite.Require().Len(listed.Notifications, 1)
	suite.Equal("loan:added", listed.Notifications[0].Event)

	id := listed.Notifications[0].NotificationID
	w = suite.do(http.MethodPost, "/api/v1/notifications/"+id+"/read", nil, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/notifications/"+id, nil, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *RoutesTestSuite) TestAuthSignupAndLogin() {
	w := suite.do(http.MethodPost, "/api/v1/auth/signup", map[string]any{
		"name":     "Alpha",
		"email":    "alpha@example.com",
		"password": "password123",
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.NotContains(w.Body.String(), "passwordHash")

	w = suite.do(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "alpha@example.com",
		"password": "password123",
	}, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	login := suite.decode(w)
	suite.NotEmpty(login["token"])

	w = suite.do(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "alpha@example.com",
		"password": "wrong-pass",
	}, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RoutesTestSuite) TestAdminRoutesAreRoleGated() {
	// Without the admin role, every admin route is forbidden.
	w := suite.do(http.MethodGet, "/api/v1/admin/users", nil, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/admin/broadcast", map[string]any{"message": "hi"}, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	admin := map[string]string{"X-Role": "admin"}
	w = suite.do(http.MethodGet, "/api/v1/admin/users", nil, admin)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/admin/broadcast", map[string]any{"message": "hi"}, admin)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/admin/users/usr_missing", nil, admin)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RoutesTestSuite) TestAdminRoleViaBearerToken() {
	w := suite.do(http.MethodPost, "/api/v1/auth/signup", map[string]any{
		"name":     "Root",
		"email":    "root@example.com",
		"password": "password123",
		"role":     "admin",
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    "root@example.com",
		"password": "password123",
	}, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	token := suite.decode(w)["token"].(string)

	w = suite.do(http.MethodGet, "/api/v1/admin/users", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RoutesTestSuite) TestUserProfileRoutes() {
	w := suite.do(http.MethodPost, "/api/v1/auth/signup", map[string]any{
		"name": "Beta", "email": "beta@example.com", "password": "password123",
	}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)
	id := suite.decode(w)["userId"].(string)

	w = suite.do(http.MethodGet, "/api/v1/users/"+id, nil, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPut, "/api/v1/users/"+id, map[string]any{"name": "Beta Prime"}, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("Beta Prime", suite.decode(w)["name"])
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
