package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/wms/internal/auth"
	"github.com/mamadbah2/wms/internal/domain/models"
	"github.com/mamadbah2/wms/internal/server/middleware"
	"github.com/mamadbah2/wms/internal/service/account"
	"github.com/mamadbah2/wms/internal/service/customers"
	"github.com/mamadbah2/wms/internal/service/stock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body["error"]
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: product must be selected", stock.ErrValidation), http.StatusBadRequest},
		{stock.ErrWarehouseMismatch, http.StatusBadRequest},
		{customers.ErrInvalidPhone, http.StatusBadRequest},
		{account.ErrPasswordMismatch, http.StatusBadRequest},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("customer c1: %w", models.ErrNotFound), http.StatusNotFound},
		{stock.ErrSubmitInProgress, http.StatusConflict},
		{fmt.Errorf("%w: quota", account.ErrIdentityProvider), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

type fakeStockService struct {
	err  error
	got  models.StockMutationRequest
	hits int
}

func (f *fakeStockService) ListSuppliers(context.Context) ([]models.Supplier, error) {
	return []models.Supplier{{ID: "s1", CompanyName: "PT Honda"}}, nil
}

func (f *fakeStockService) ListProducts(_ context.Context, supplierID, warehouse string) ([]models.Product, error) {
	return []models.Product{{ID: "p1", Supplier: supplierID, WarehousePosition: warehouse}}, nil
}

func (f *fakeStockService) ApplyMutation(_ context.Context, req models.StockMutationRequest) (models.StockMutationResult, error) {
	f.hits++
	f.got = req
	if f.err != nil {
		return models.StockMutationResult{}, f.err
	}
	return models.StockMutationResult{StockHistory: models.StockHistory{Product: req.ProductID, Difference: 5}}, nil
}

func stockEngine(svc StockService) *gin.Engine {
	h := NewStockHandler(svc, nil)
	r := gin.New()
	r.GET("/suppliers", h.ListSuppliers)
	r.GET("/products", h.ListProducts)
	r.POST("/stock/mutations", h.ApplyMutation)
	return r
}

func TestApplyMutation(t *testing.T) {
	svc := &fakeStockService{}
	r := stockEngine(svc)

	w := doJSON(r, http.MethodPost, "/stock/mutations", map[string]string{
		"mode": "purchase", "warehouse": models.WarehouseFinished, "product_id": "p1", "count": "15",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if svc.got.Count != "15" || svc.got.Mode != models.ModePurchase {
		t.Fatalf("unexpected request %+v", svc.got)
	}
}

func TestApplyMutationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: product must be selected", stock.ErrValidation), http.StatusBadRequest},
		{"in progress", stock.ErrSubmitInProgress, http.StatusConflict},
		{"backend", errors.New("mongo: connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := stockEngine(&fakeStockService{err: tt.err})
			w := doJSON(r, http.MethodPost, "/stock/mutations", map[string]string{"mode": "purchase"})
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if msg := errorMessage(t, w); strings.Contains(msg, "mongo:") || msg == "" {
				t.Fatalf("unexpected message %q", msg)
			}
		})
	}
}

func TestListProductsPassesQuery(t *testing.T) {
	r := stockEngine(&fakeStockService{})
	w := doJSON(r, http.MethodGet, "/products?supplier=s1&warehouse=Gudang+Jadi", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var products []models.Product
	_ = json.Unmarshal(w.Body.Bytes(), &products)
	if len(products) != 1 || products[0].Supplier != "s1" || products[0].WarehousePosition != models.WarehouseFinished {
		t.Fatalf("unexpected products %+v", products)
	}
}

type fakeCustomerService struct {
	updates int
}

func (f *fakeCustomerService) ListCustomers(context.Context) ([]models.Customer, error) {
	return []models.Customer{{ID: "c1"}}, nil
}

func (f *fakeCustomerService) GetCustomer(_ context.Context, id string) (models.Customer, error) {
	if id != "c1" {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, models.ErrNotFound)
	}
	return models.Customer{ID: "c1", Name: "Bengkel Jaya"}, nil
}

func (f *fakeCustomerService) UpdateCustomer(_ context.Context, id string, req models.UpdateCustomerRequest) (models.Customer, error) {
	if err := customers.Validate(req); err != nil {
		return models.Customer{}, err
	}
	f.updates++
	return models.Customer{ID: id, Name: req.Name}, nil
}

func (f *fakeCustomerService) ToggleSpecialPrice(_ context.Context, customerID, productID string) (models.Customer, error) {
	return models.Customer{ID: customerID, SpecialPrices: []models.SpecialPrice{{ProductID: productID}}}, nil
}

func (f *fakeCustomerService) SearchProducts(_ context.Context, brand string) ([]models.SpecialPrice, error) {
	return []models.SpecialPrice{{ProductID: "p1", Brand: brand}}, nil
}

func customerEngine(svc CustomerService) *gin.Engine {
	h := NewCustomerHandler(svc, nil)
	r := gin.New()
	r.GET("/customers/:id", h.Get)
	r.PUT("/customers/:id", h.Update)
	r.POST("/customers/:id/special-prices/:productId/toggle", h.ToggleSpecialPrice)
	r.GET("/products/search", h.SearchProducts)
	return r
}

func TestUpdateCustomerRejectsInvalidPhone(t *testing.T) {
	svc := &fakeCustomerService{}
	r := customerEngine(svc)

	w := doJSON(r, http.MethodPut, "/customers/c1", map[string]any{
		"name": "Bengkel Jaya", "address": "Jl. Merdeka 1", "phone_number": "abc",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.updates != 0 {
		t.Fatal("update must not reach the service write")
	}
}

func TestGetCustomerNotFound(t *testing.T) {
	w := doJSON(customerEngine(&fakeCustomerService{}), http.MethodGet, "/customers/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestToggleSpecialPrice(t *testing.T) {
	w := doJSON(customerEngine(&fakeCustomerService{}), http.MethodPost, "/customers/c1/special-prices/p9/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var customer models.Customer
	_ = json.Unmarshal(w.Body.Bytes(), &customer)
	if len(customer.SpecialPrices) != 1 || customer.SpecialPrices[0].ProductID != "p9" {
		t.Fatalf("unexpected customer %+v", customer)
	}
}

type fakeVoidListService struct{}

func (fakeVoidListService) List(_ context.Context, search string) ([]models.Invoice, error) {
	return []models.Invoice{{ID: "INV-1", CustomerName: search}}, nil
}

func (fakeVoidListService) Get(_ context.Context, id string) (models.Invoice, error) {
	return models.Invoice{}, fmt.Errorf("void invoice %s: %w", id, models.ErrNotFound)
}

func (fakeVoidListService) Export(context.Context, string) ([]byte, error) {
	return []byte("xlsx-bytes"), nil
}

func TestVoidListExport(t *testing.T) {
	h := NewVoidListHandler(fakeVoidListService{}, nil)
	h.now = func() time.Time { return time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.GET("/void-list/export", h.Export)
	r.GET("/void-list/:id", h.Get)

	w := doJSON(r, http.MethodGet, "/void-list/export?search=inv", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("Content-Type") != xlsxContentType {
		t.Fatalf("content type = %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "void-list-20240308.xlsx") {
		t.Fatalf("content disposition = %q", w.Header().Get("Content-Disposition"))
	}

	if w := doJSON(r, http.MethodGet, "/void-list/INV-0", nil); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

type fakeAccountService struct {
	email string
	err   error
}

func (f *fakeAccountService) Login(_ context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if f.err != nil {
		return models.LoginResponse{}, f.err
	}
	return models.LoginResponse{Token: "tok", Email: req.Email}, nil
}

func (f *fakeAccountService) ChangePassword(_ context.Context, email string, _ models.ChangePasswordRequest) error {
	f.email = email
	return f.err
}

func TestChangePasswordUsesCallerEmail(t *testing.T) {
	svc := &fakeAccountService{}
	h := NewAccountHandler(svc, nil)

	r := gin.New()
	r.POST("/auth/password", func(c *gin.Context) {
		c.Set(middleware.EmailKey, "admin@wms.test")
		c.Next()
	}, h.ChangePassword)

	w := doJSON(r, http.MethodPost, "/auth/password", map[string]string{
		"current_password": "a", "new_password": "b", "confirm_new_password": "b",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.email != "admin@wms.test" {
		t.Fatalf("email = %q", svc.email)
	}
}

func TestLogin(t *testing.T) {
	svc := &fakeAccountService{}
	h := NewAccountHandler(svc, nil)
	r := gin.New()
	r.POST("/auth/login", h.Login)

	if w := doJSON(r, http.MethodPost, "/auth/login", map[string]string{"email": "admin@wms.test"}); w.Code != http.StatusBadRequest {
		t.Fatalf("missing password: status = %d", w.Code)
	}

	w := doJSON(r, http.MethodPost, "/auth/login", map[string]string{"email": "admin@wms.test", "password": "pw"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	svc.err = auth.ErrInvalidCredentials
	if w := doJSON(r, http.MethodPost, "/auth/login", map[string]string{"email": "admin@wms.test", "password": "bad"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("invalid credentials: status = %d", w.Code)
	}
}
