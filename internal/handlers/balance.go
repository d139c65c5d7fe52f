package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/middleware"
	"go.uber.org/zap"
)

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.balanceService.GetUserBalance(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get user balance", zap.Error(err))
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

func (h *Handler) GetAuditTrail(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.balanceService.GetAuditTrail(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get audit trail", zap.Error(err))
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Withdraw starts an LNURL-withdraw for the user's entire balance and returns
// everything the UI needs to render the QR code.
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resp, err := h.withdrawalService.WithdrawAll(r.Context(), userID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "balance below withdrawal minimum", http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		http.Error(w, "insufficient balance", http.StatusPaymentRequired)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("withdraw error", zap.Error(err))
	}
}

func (h *Handler) GetWithdrawalStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.withdrawalService.GetWithdrawal(r.Context(), userID, id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, withdrawal)
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		http.Error(w, "withdrawal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get withdrawal", zap.Error(err))
	}
}

type creditRequest struct {
	AmountSats int64  `json:"amountSats"`
	Reason     string `json:"reason"`
}

// CreditReward is how tournament winnings and puzzle rewards reach a balance.
// Admin only.
func (h *Handler) CreditReward(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req creditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	newBalance, err := h.balanceService.CreditReward(r.Context(), userID, req.AmountSats, req.Reason)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]int64{"balanceSats": newBalance})
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid credit amount", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("credit error", zap.Error(err))
	}
}

func (h *Handler) NodeStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.node.GetNodeStatus(r.Context())
	if err != nil {
		http.Error(w, "lightning node unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
