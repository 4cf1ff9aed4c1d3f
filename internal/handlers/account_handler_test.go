package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/taniteam/catatan/internal/errors"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/services"
)

// --- mock account service ---

type mockAccountService struct {
	listFn   func() []models.Account
	createFn func(actor models.Staff, id, name string, accountType models.AccountType) (*models.Account, error)
	updateFn func(actor models.Staff, id string, fields services.AccountUpdateFields) (*models.Account, error)
	deleteFn func(actor models.Staff, id string) (*models.Account, error)
}

func (m *mockAccountService) List() []models.Account {
	if m.listFn != nil {
		return m.listFn()
	}
	return []models.Account{}
}

func (m *mockAccountService) Create(actor models.Staff, id, name string, accountType models.AccountType) (*models.Account, error) {
	if m.createFn != nil {
		return m.createFn(actor, id, name, accountType)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) Update(actor models.Staff, id string, fields services.AccountUpdateFields) (*models.Account, error) {
	if m.updateFn != nil {
		return m.updateFn(actor, id, fields)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) Delete(actor models.Staff, id string) (*models.Account, error) {
	if m.deleteFn != nil {
		return m.deleteFn(actor, id)
	}
	return &models.Account{}, nil
}

var _ services.AccountServicer = (*mockAccountService)(nil)

func setupAccountRouter(handler *AccountHandler, actor models.Staff) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectActor(actor))
	auth.GET("/accounts", handler.List)
	auth.POST("/accounts", handler.Create)
	auth.PUT("/accounts/:id", handler.Update)
	auth.DELETE("/accounts/:id", handler.Delete)
	return r
}

func TestAccountHandler_List(t *testing.T) {
	t.Run("returns 200 with derived balances", func(t *testing.T) {
		acctSvc := &mockAccountService{
			listFn: func() []models.Account {
				return []models.Account{
					{ID: "ACC-1", Name: "Rekening Operasional 1", Balance: decimal.NewFromInt(7869655), Type: models.AccountTypeCredit},
				}
			},
		}
		handler := NewAccountHandler(acctSvc, &mockAuditService{})
		r := setupAccountRouter(handler, regularStaff())

		rec := doRequest(r, "GET", "/accounts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		accounts := result["accounts"].([]interface{})
		if len(accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(accounts))
		}
		account := accounts[0].(map[string]interface{})
		if account["balance"] != "7869655" {
			t.Errorf("expected balance 7869655, got %v", account["balance"])
		}
	})
}

func TestAccountHandler_Create(t *testing.T) {
	t.Run("returns 201 and audits the addition", func(t *testing.T) {
		acctSvc := &mockAccountService{
			createFn: func(_ models.Staff, id, name string, accountType models.AccountType) (*models.Account, error) {
				return &models.Account{ID: id, Name: name, Type: accountType}, nil
			},
		}
		audit := &mockAuditService{}
		handler := NewAccountHandler(acctSvc, audit)
		r := setupAccountRouter(handler, adminStaff())

		rec := doRequest(r, "POST", "/accounts", `{"id":"ACC-16","name":"Rekening Cadangan","type":"CREDIT"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(audit.recorded) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(audit.recorded))
		}
		if !strings.Contains(audit.recorded[0].details, "Menambahkan rekening baru: Rekening Cadangan (ACC-16)") {
			t.Errorf("unexpected audit details: %s", audit.recorded[0].details)
		}
	})

	t.Run("returns 400 for an unknown account type", func(t *testing.T) {
		handler := NewAccountHandler(&mockAccountService{}, &mockAuditService{})
		r := setupAccountRouter(handler, adminStaff())

		rec := doRequest(r, "POST", "/accounts", `{"id":"ACC-16","name":"Rekening","type":"SAVINGS"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 when the id is missing", func(t *testing.T) {
		handler := NewAccountHandler(&mockAccountService{}, &mockAuditService{})
		r := setupAccountRouter(handler, adminStaff())

		rec := doRequest(r, "POST", "/accounts", `{"name":"Rekening","type":"DEBIT"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 403 for a non-administrator", func(t *testing.T) {
		acctSvc := &mockAccountService{
			createFn: func(_ models.Staff, _, _ string, _ models.AccountType) (*models.Account, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		handler := NewAccountHandler(acctSvc, &mockAuditService{})
		r := setupAccountRouter(handler, regularStaff())

		rec := doRequest(r, "POST", "/accounts", `{"id":"ACC-16","name":"Rekening","type":"DEBIT"}`)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_Update(t *testing.T) {
	t.Run("returns 200 and audits the change", func(t *testing.T) {
		var captured services.AccountUpdateFields
		acctSvc := &mockAccountService{
			updateFn: func(_ models.Staff, id string, fields services.AccountUpdateFields) (*models.Account, error) {
				captured = fields
				return &models.Account{ID: id, Name: *fields.Name}, nil
			},
		}
		audit := &mockAuditService{}
		handler := NewAccountHandler(acctSvc, audit)
		r := setupAccountRouter(handler, adminStaff())

		rec := doRequest(r, "PUT", "/accounts/ACC-2", `{"name":"Rekening Utama"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Name == nil || *captured.Name != "Rekening Utama" {
			t.Error("expected the name to be passed")
		}
		if captured.Type != nil {
			t.Error("absent type must stay nil")
		}
		if len(audit.recorded) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(audit.recorded))
		}
		if !strings.Contains(audit.recorded[0].details, "Memperbarui detail rekening ACC-2") {
			t.Errorf("unexpected audit details: %s", audit.recorded[0].details)
		}
	})

	t.Run("returns 404 for an unknown account", func(t *testing.T) {
		acctSvc := &mockAccountService{
			updateFn: func(_ models.Staff, _ string, _ services.AccountUpdateFields) (*models.Account, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		handler := NewAccountHandler(acctSvc, &mockAuditService{})
		r := setupAccountRouter(handler, adminStaff())

		rec := doRequest(r, "PUT", "/accounts/ACC-99", `{"name":"Rekening"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
	})
}

func TestAccountHandler_Delete(t *testing.T) {
	t.Run("deletes directly and audits", func(t *testing.T) {
		acctSvc := &mockAccountService{
			deleteFn: func(_ models.Staff, id string) (*models.Account, error) {
				return &models.Account{ID: id, Name: "Rekening Operasional 1"}, nil
			},
		}
		audit := &mockAuditService{}
		handler := NewAccountHandler(acctSvc, audit)
		r := setupAccountRouter(handler, adminStaff())

		rec := doRequest(r, "DELETE", "/accounts/ACC-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(audit.recorded) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(audit.recorded))
		}
		if !strings.Contains(audit.recorded[0].details, "Menghapus rekening ACC-1") {
			t.Errorf("unexpected audit details: %s", audit.recorded[0].details)
		}
	})

	t.Run("returns 403 for a non-administrator", func(t *testing.T) {
		acctSvc := &mockAccountService{
			deleteFn: func(_ models.Staff, _ string) (*models.Account, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		handler := NewAccountHandler(acctSvc, &mockAuditService{})
		r := setupAccountRouter(handler, regularStaff())

		rec := doRequest(r, "DELETE", "/accounts/ACC-1", "")

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}
