package handler

import (
	"context"
	"net/http"

	"github.com/iho/buckpal/internal/adapter/http/dto"
	"github.com/iho/buckpal/internal/domain"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	GetAccountBalance(ctx context.Context, accountID domain.AccountID) (domain.Money, error)
}

// BalanceHandler handles balance queries.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// GetBalance handles GET /accounts/{accountId}/balance.
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseAccountID(r, "accountId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	balance, err := h.balanceUC.GetAccountBalance(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(accountID, balance))
}
