package httpapi

import (
	"fmt"
	"net/http"

	"github.com/Guilherme-dev15/finance-app/internal/middleware"
	"github.com/Guilherme-dev15/finance-app/internal/models"
	"github.com/Guilherme-dev15/finance-app/internal/service"
)

// DebtHandler serves the debt lifecycle endpoints.
type DebtHandler struct {
	debts *service.DebtService
}

// NewDebtHandler creates a DebtHandler.
func NewDebtHandler(debts *service.DebtService) *DebtHandler {
	return &DebtHandler{debts: debts}
}

// debtRequest is the transport shape of a create/edit payload. Due dates
// arrive as ISO-8601 strings and are parsed here, before the service sees
// them.
type debtRequest struct {
	Description           string            `json:"description"`
	OriginalAmount        float64           `json:"originalAmount"`
	CurrentAmount         float64           `json:"currentAmount"`
	InterestRate          float64           `json:"interestRate"`
	RemainingInstallments int               `json:"remainingInstallments"`
	DueDate               string            `json:"dueDate"`
	Status                models.DebtStatus `json:"status"`
	DebtType              models.DebtType   `json:"debtType"`
}

func (req debtRequest) toInput() (service.DebtInput, error) {
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return service.DebtInput{}, err
	}
	return service.DebtInput{
		Description:           req.Description,
		OriginalAmount:        req.OriginalAmount,
		CurrentAmount:         req.CurrentAmount,
		InterestRate:          req.InterestRate,
		RemainingInstallments: req.RemainingInstallments,
		DueDate:               dueDate,
		Status:                req.Status,
		DebtType:              req.DebtType,
	}, nil
}

// Create handles POST /debts.
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req debtRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, err)
		return
	}

	debt, err := h.debts.CreateDebt(r.Context(), userID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, debt)
}

// List handles GET /debts with an optional exact-match status filter.
func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	status := models.DebtStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, fmt.Errorf("%w: unknown status %q", service.ErrInvalidDebt, status))
		return
	}

	debts, err := h.debts.ListDebts(r.Context(), userID, status)
	if err != nil {
		writeError(w, err)
		return
	}
	if debts == nil {
		debts = []*models.Debt{}
	}
	writeJSON(w, http.StatusOK, debts)
}

// Get handles GET /debts/{id}.
func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	debt, err := h.debts.GetDebtByID(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, debt)
}

// Edit handles PUT /debts/{id}.
func (h *DebtHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req debtRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, err)
		return
	}

	debt, err := h.debts.EditDebt(r.Context(), userID, r.PathValue("id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, debt)
}

// Delete handles DELETE /debts/{id}.
func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if err := h.debts.DeleteDebt(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "debt deleted successfully"})
}

type payRequest struct {
	PaymentAmount float64 `json:"paymentAmount"`
}

// Pay handles PATCH /debts/{id}/pay.
func (h *DebtHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req payRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	debt, err := h.debts.PayDebt(r.Context(), userID, r.PathValue("id"), req.PaymentAmount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "payment applied successfully",
		"data":    debt,
	})
}

// SimulatePayment handles POST /debts/{id}/simulate-payment.
func (h *DebtHandler) SimulatePayment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req payRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.debts.SimulatePayment(r.Context(), userID, r.PathValue("id"), req.PaymentAmount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "simulation completed successfully",
		"data":    result,
	})
}

type interestRequest struct {
	InterestRate float64           `json:"interestRate"`
	DebtType     models.DebtType   `json:"debtType"`
	Status       models.DebtStatus `json:"status"`
}

// UpdateInterest handles PATCH /debts/{id}/interest.
func (h *DebtHandler) UpdateInterest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req interestRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	debt, err := h.debts.UpdateDebtInterest(r.Context(), userID, r.PathValue("id"), service.InterestUpdateInput{
		InterestRate: req.InterestRate,
		DebtType:     req.DebtType,
		Status:       req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, debt)
}

// Evolution handles GET /debts/{id}/evolution.
func (h *DebtHandler) Evolution(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	points, err := h.debts.GetDebtEvolution(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

type projectionRequest struct {
	NewPaymentAmount float64 `json:"newPaymentAmount"`
	NewInterestRate  float64 `json:"newInterestRate"`
}

// ProjectPayment handles PATCH /debts/{id}/project-payment.
func (h *DebtHandler) ProjectPayment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req projectionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.debts.SimulatePaymentProjection(r.Context(), userID, r.PathValue("id"),
		req.NewPaymentAmount, req.NewInterestRate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Report handles GET /debts/report?startDate=&endDate=.
func (h *DebtHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	start, err := parseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		writeError(w, err)
		return
	}

	report, err := h.debts.GenerateDebtReport(r.Context(), userID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
