package httpapi

import (
	"net/http"

	"github.com/Guilherme-dev15/finance-app/internal/middleware"
	"github.com/Guilherme-dev15/finance-app/internal/service"
)

// AssistantHandler serves the debt prioritization endpoints.
type AssistantHandler struct {
	assistant *service.AssistantService
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

type analyzeRequest struct {
	AvailableMonthlyAmount float64 `json:"availableMonthlyAmount"`
}

// Analyze handles POST /assistant/analyze: ranks the caller's open debts.
func (h *AssistantHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	analysis, err := h.assistant.AnalyzeDebts(r.Context(), userID, req.AvailableMonthlyAmount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

type feasibilityRequest struct {
	TotalDebt          float64 `json:"totalDebt"`
	MonthlyInstallment float64 `json:"monthlyInstallment"`
	UserIncome         float64 `json:"userIncome"`
}

// Feasibility handles POST /assistant/feasibility: classifies how much of
// the caller's income an installment would commit.
func (h *AssistantHandler) Feasibility(w http.ResponseWriter, r *http.Request) {
	var req feasibilityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result := service.AnalyzeDebtFeasibility(req.TotalDebt, req.MonthlyInstallment, req.UserIncome)
	writeJSON(w, http.StatusOK, result)
}
