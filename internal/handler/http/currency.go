package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ansj1105/coin-csms-sub001/internal/service"
	"github.com/ansj1105/coin-csms-sub001/pkg/httputil"
)

// CurrencyHandler handles HTTP requests for supported-currency endpoints.
type CurrencyHandler struct {
	service *service.CurrencyService
	logger  *slog.Logger
}

// NewCurrencyHandler creates a new currency HTTP handler.
func NewCurrencyHandler(svc *service.CurrencyService, logger *slog.Logger) *CurrencyHandler {
	return &CurrencyHandler{service: svc, logger: logger}
}

// CreateCurrencyRequest is the JSON request body for adding a currency.
type CreateCurrencyRequest struct {
	Code     string `json:"code" validate:"required,min=2,max=10"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Decimals int    `json:"decimals" validate:"min=0,max=18"`
}

// UpdateCurrencyRequest is the JSON request body for updating a currency.
type UpdateCurrencyRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Decimals *int    `json:"decimals,omitempty" validate:"omitempty,min=0,max=18"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// List handles GET /api/v1/currencies
func (h *CurrencyHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	currencies, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: currencies})
}

// Get handles GET /api/v1/currencies/{code}
func (h *CurrencyHandler) Get(w http.ResponseWriter, r *http.Request) {
	currency, err := h.service.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: currency})
}

// Create handles POST /api/v1/admin/currencies
func (h *CurrencyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCurrencyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	currency, err := h.service.Create(r.Context(), service.CreateCurrencyInput{
		Code:     req.Code,
		Name:     req.Name,
		Decimals: req.Decimals,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: currency})
}

// Update handles PUT /api/v1/admin/currencies/{code}
func (h *CurrencyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCurrencyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	currency, err := h.service.Update(r.Context(), chi.URLParam(r, "code"), service.UpdateCurrencyInput{
		Name:     req.Name,
		Decimals: req.Decimals,
		IsActive: req.IsActive,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: currency})
}
