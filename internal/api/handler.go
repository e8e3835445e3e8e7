package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rohinee/banksuite/internal/autopay"
	"github.com/rohinee/banksuite/internal/features"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Selector resolves the auto-payment capability of the running build.
type Selector interface {
	Available() bool
	Resolve() (autopay.Manager, bool)
	Description() string
	SupportedFrequencies() []autopay.Frequency
}

// Tracker receives analytics for served requests.
type Tracker interface {
	TrackScreen(name string)
	TrackEvent(name string, params map[string]any)
}

// Handler exposes the feature resolver and the auto-payment capability over HTTP.
type Handler struct {
	resolver features.Resolver
	selector Selector
	tracker  Tracker

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithTracker attaches an analytics tracker.
func WithTracker(tracker Tracker) HandlerOption {
	return func(h *Handler) {
		h.tracker = tracker
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(resolver features.Resolver, selector Selector, opts ...HandlerOption) *Handler {
	h := &Handler{
		resolver: resolver,
		selector: selector,
		tracker:  noopTracker{},
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleAppInfo(w http.ResponseWriter, r *http.Request) {
	_ = r
	h.tracker.TrackScreen("app_info")

	resp := appInfoResponse{
		BankCode:         h.resolver.BankCode().String(),
		BankName:         h.resolver.BankName(),
		Environment:      h.resolver.EnvironmentName(),
		BaseURL:          h.resolver.BaseURL(),
		Version:          h.resolver.Version(),
		LoggingEnabled:   h.resolver.LoggingEnabled(),
		AnalyticsEnabled: h.resolver.AnalyticsEnabled(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleFeatures(w http.ResponseWriter, r *http.Request) {
	_ = r
	h.tracker.TrackScreen("features")

	writeJSON(w, http.StatusOK, featuresResponse{
		Bank:     h.resolver.BankName(),
		Features: h.resolver.EnabledFeatures(),
	})
}

func (h *Handler) handleAutoPay(w http.ResponseWriter, r *http.Request) {
	_ = r
	h.tracker.TrackScreen("auto_payment")

	resp := autoPayResponse{
		Available:   h.selector.Available(),
		Description: h.selector.Description(),
		Frequencies: h.selector.SupportedFrequencies(),
	}
	if resp.Available {
		if manager, ok := h.selector.Resolve(); ok {
			fee := manager.Fee()
			maxAmount := manager.MaxAmount()
			resp.ServiceName = manager.ServiceName()
			resp.Fee = &fee
			resp.MaxAmount = &maxAmount
		} else {
			resp.Available = false
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleEnable(w http.ResponseWriter, r *http.Request) {
	h.runOperation(w, r, "auto_payment_enabled", func(ctx context.Context, m autopay.Manager, accountID string) (autopay.Result, error) {
		return m.Enable(ctx, accountID)
	})
}

func (h *Handler) handleDisable(w http.ResponseWriter, r *http.Request) {
	h.runOperation(w, r, "auto_payment_disabled", func(ctx context.Context, m autopay.Manager, accountID string) (autopay.Result, error) {
		return m.Disable(ctx, accountID)
	})
}

func (h *Handler) handleUpdateAmount(w http.ResponseWriter, r *http.Request) {
	var req updateAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}
	if req.Amount == nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "amount is required")
		return
	}

	h.runOperation(w, r, "auto_payment_amount_updated", func(ctx context.Context, m autopay.Manager, accountID string) (autopay.Result, error) {
		return m.UpdateAmount(ctx, accountID, *req.Amount)
	})
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	manager, accountID, ok := h.prepare(w, r)
	if !ok {
		return
	}

	schedules := make([]scheduleResponse, 0, 1)
	for s, err := range manager.Schedule(r.Context(), accountID) {
		if err != nil {
			writeOperationError(w, err)
			return
		}
		schedules = append(schedules, scheduleResponse{
			ScheduleID:      s.ScheduleID,
			Amount:          s.Amount,
			Frequency:       s.Frequency,
			NextPaymentDate: s.NextPaymentDay(),
			AccountID:       s.AccountID,
			BeneficiaryName: s.BeneficiaryName,
		})
	}

	writeJSON(w, http.StatusOK, schedulesResponse{Schedules: schedules})
}

type operation func(ctx context.Context, m autopay.Manager, accountID string) (autopay.Result, error)

func (h *Handler) runOperation(w http.ResponseWriter, r *http.Request, event string, op operation) {
	manager, accountID, ok := h.prepare(w, r)
	if !ok {
		return
	}

	result, err := op(r.Context(), manager, accountID)
	if err != nil {
		writeOperationError(w, err)
		return
	}

	resp := resultResponse{
		Success:       result.Success,
		Message:       result.Message,
		TransactionID: result.TransactionID,
	}
	if !result.Success {
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	h.tracker.TrackEvent(event, map[string]any{"transaction_id": result.TransactionID})
	writeJSON(w, http.StatusOK, resp)
}

// prepare resolves the manager and account for an auto-payment request,
// writing the error response itself when either is missing.
func (h *Handler) prepare(w http.ResponseWriter, r *http.Request) (autopay.Manager, string, bool) {
	accountID := strings.TrimSpace(r.PathValue("accountID"))
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "Invalid request", "account id is required")
		return nil, "", false
	}

	if !h.selector.Available() {
		writeError(w, http.StatusNotFound, "Auto payment unavailable", h.selector.Description())
		return nil, "", false
	}
	manager, ok := h.selector.Resolve()
	if !ok {
		writeError(w, http.StatusNotFound, "Auto payment unavailable", "auto payment could not be loaded for this build")
		return nil, "", false
	}
	return manager, accountID, true
}

func writeOperationError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		writeError(w, http.StatusServiceUnavailable, "Request cancelled", err.Error())
		return
	}
	writeInternalError(w, err)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type noopTracker struct{}

func (noopTracker) TrackScreen(string)                {}
func (noopTracker) TrackEvent(string, map[string]any) {}

type updateAmountRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type appInfoResponse struct {
	BankCode         string `json:"bankCode"`
	BankName         string `json:"bankName"`
	Environment      string `json:"environment"`
	BaseURL          string `json:"baseUrl"`
	Version          string `json:"version"`
	LoggingEnabled   bool   `json:"loggingEnabled"`
	AnalyticsEnabled bool   `json:"analyticsEnabled"`
}

type featuresResponse struct {
	Bank     string   `json:"bank"`
	Features []string `json:"features"`
}

type autoPayResponse struct {
	Available   bool                `json:"available"`
	Description string              `json:"description"`
	Frequencies []autopay.Frequency `json:"frequencies"`
	ServiceName string              `json:"serviceName,omitempty"`
	Fee         *decimal.Decimal    `json:"fee,omitempty"`
	MaxAmount   *decimal.Decimal    `json:"maxAmount,omitempty"`
}

type resultResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId,omitempty"`
}

type scheduleResponse struct {
	ScheduleID      string            `json:"scheduleId"`
	Amount          decimal.Decimal   `json:"amount"`
	Frequency       autopay.Frequency `json:"frequency"`
	NextPaymentDate string            `json:"nextPaymentDate"`
	AccountID       string            `json:"accountId"`
	BeneficiaryName string            `json:"beneficiaryName"`
}

type schedulesResponse struct {
	Schedules []scheduleResponse `json:"schedules"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
