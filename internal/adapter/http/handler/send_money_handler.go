package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/buckpal/internal/domain"
	"github.com/iho/buckpal/internal/usecase"
)

// SendMoneyService defines the behavior needed by SendMoneyHandler.
type SendMoneyService interface {
	SendMoney(ctx context.Context, cmd usecase.SendMoneyCommand) (bool, error)
}

// SendMoneyHandler handles money transfer requests.
type SendMoneyHandler struct {
	sendMoneyUC SendMoneyService
}

// NewSendMoneyHandler creates a new SendMoneyHandler.
func NewSendMoneyHandler(sendMoneyUC SendMoneyService) *SendMoneyHandler {
	return &SendMoneyHandler{sendMoneyUC: sendMoneyUC}
}

// SendMoney handles POST /accounts/send/{sourceAccountId}/{targetAccountId}/{amount}.
// A successful transfer answers 200 with an empty body; a transfer the source
// account cannot cover answers 409.
func (h *SendMoneyHandler) SendMoney(w http.ResponseWriter, r *http.Request) {
	sourceAccountID, err := parseAccountID(r, "sourceAccountId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid source account id", err.Error())
		return
	}

	targetAccountID, err := parseAccountID(r, "targetAccountId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid target account id", err.Error())
		return
	}

	amount, err := domain.ParseMoney(chi.URLParam(r, "amount"))
	if err != nil {
		writeError(w, mapDomainError(err), "invalid amount", err.Error())
		return
	}

	cmd, err := usecase.NewSendMoneyCommand(sourceAccountID, targetAccountID, amount)
	if err != nil {
		writeError(w, mapDomainError(err), "invalid transfer", err.Error())
		return
	}

	ok, err := h.sendMoneyUC.SendMoney(r.Context(), cmd)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to send money", err.Error())
		return
	}

	if !ok {
		writeError(w, http.StatusConflict, "transfer rejected", "insufficient balance")
		return
	}

	w.WriteHeader(http.StatusOK)
}
