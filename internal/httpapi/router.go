package httpapi

import (
	"net/http"

	"github.com/Guilherme-dev15/finance-app/internal/auth"
	"github.com/Guilherme-dev15/finance-app/internal/metrics"
	"github.com/Guilherme-dev15/finance-app/internal/middleware"
)

// NewRouter registers all API routes on a ServeMux. Debt and assistant
// routes require a valid bearer token; auth and operational routes do not.
func NewRouter(authH *AuthHandler, debtH *DebtHandler, assistantH *AssistantHandler, jwtManager *auth.JWTManager) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", authH.Register)
	mux.HandleFunc("POST /auth/login", authH.Login)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(jwtManager, h)
	}

	mux.Handle("POST /debts", protected(debtH.Create))
	mux.Handle("GET /debts", protected(debtH.List))
	mux.Handle("GET /debts/report", protected(debtH.Report))
	mux.Handle("GET /debts/{id}", protected(debtH.Get))
	mux.Handle("PUT /debts/{id}", protected(debtH.Edit))
	mux.Handle("DELETE /debts/{id}", protected(debtH.Delete))
	mux.Handle("PATCH /debts/{id}/pay", protected(debtH.Pay))
	mux.Handle("POST /debts/{id}/simulate-payment", protected(debtH.SimulatePayment))
	mux.Handle("GET /debts/{id}/evolution", protected(debtH.Evolution))
	mux.Handle("PATCH /debts/{id}/interest", protected(debtH.UpdateInterest))
	mux.Handle("PATCH /debts/{id}/project-payment", protected(debtH.ProjectPayment))

	mux.Handle("POST /assistant/analyze", protected(assistantH.Analyze))
	mux.Handle("POST /assistant/feasibility", protected(assistantH.Feasibility))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", metrics.Handler())

	return mux
}
