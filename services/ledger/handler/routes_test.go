package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/ledger/internal/pkg/jwt"
	"github.com/piresc/ledger/internal/pkg/models"
	ledgerhttp "github.com/piresc/ledger/services/ledger/handler/http"
	"github.com/piresc/ledger/services/ledger/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "route-test-secret", Expiration: 5, Issuer: "ledger-test"}

func setupRoutes(t *testing.T) (*echo.Echo, *mocks.MockLedgerUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockLedgerUC(ctrl)

	e := echo.New()
	h := NewHandler(
		ledgerhttp.NewTransactionHandler(mockUC),
		ledgerhttp.NewAccountHandler(mockUC),
		&models.Config{JWT: testJWT},
	)
	h.RegisterRoutes(e)
	return e, mockUC
}

func bearer(t *testing.T, role models.Role) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	token, _, err := jwtpkg.GenerateToken(id, "holder@example.com", role, testJWT)
	require.NoError(t, err)
	return id, "Bearer " + token
}

func serve(e *echo.Echo, method, target, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_RequireToken(t *testing.T) {
	e, _ := setupRoutes(t)

	rec := serve(e, http.MethodGet, "/user/deposits", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodGet, "/user/deposits", "Bearer not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_AdminOnly(t *testing.T) {
	e, mockUC := setupRoutes(t)
	_, regularAuth := bearer(t, models.RoleRegular)
	_, adminAuth := bearer(t, models.RoleAdmin)
	txID := uuid.New()

	rec := serve(e, http.MethodGet, "/transactions", regularAuth, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = serve(e, http.MethodPatch, "/transactions/"+txID.String()+"/approve", regularAuth, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	mockUC.EXPECT().ListTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.TransactionPage{Page: 1, Count: 10, Data: []*models.TransactionView{}}, nil)
	rec = serve(e, http.MethodGet, "/transactions", adminAuth, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	mockUC.EXPECT().ApproveTransfer(gomock.Any(), txID).
		Return(&models.TransactionView{ID: txID, Status: models.StatusSuccess}, nil)
	rec = serve(e, http.MethodPatch, "/transactions/"+txID.String()+"/approve", adminAuth, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_CallerIdentityReachesEngine(t *testing.T) {
	e, mockUC := setupRoutes(t)
	callerID, auth := bearer(t, models.RoleRegular)

	mockUC.EXPECT().Deposit(gomock.Any(), callerID, gomock.Any()).
		Return(&models.TransactionView{ID: uuid.New(), Kind: models.KindDeposit, Status: models.StatusSuccess}, nil)

	rec := serve(e, http.MethodPost, "/transactions/deposit", auth, `{"amount": 12.5}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	mockUC.EXPECT().CancelTransfer(gomock.Any(), gomock.Any(), models.Principal{ID: callerID, Role: models.RoleRegular}).
		Return(&models.TransactionView{Status: models.StatusCancelled}, nil)

	rec = serve(e, http.MethodPatch, "/transactions/"+uuid.NewString()+"/cancel", auth, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
