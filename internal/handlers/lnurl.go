package handlers

import (
	"errors"
	"net/http"

	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/models"
	"go.uber.org/zap"
)

// Per LUD-03 both endpoints answer HTTP 200 even on protocol-level errors;
// only a malformed request (missing k1) is an HTTP-level error.

func (h *Handler) LNURLWithdraw(w http.ResponseWriter, r *http.Request) {
	k1 := r.URL.Query().Get("k1")
	if k1 == "" {
		http.Error(w, "missing k1", http.StatusBadRequest)
		return
	}

	resp, err := h.withdrawalService.HandleWithdrawRequest(r.Context(), k1)
	if err != nil {
		writeJSON(w, http.StatusOK, models.LNURLError(lnurlReason(err)))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) LNURLWithdrawCallback(w http.ResponseWriter, r *http.Request) {
	k1 := r.URL.Query().Get("k1")
	if k1 == "" {
		http.Error(w, "missing k1", http.StatusBadRequest)
		return
	}
	pr := r.URL.Query().Get("pr")

	err := h.withdrawalService.HandleWithdrawCallback(r.Context(), k1, pr)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidOrExpiredChallenge) {
			logger.Log.Warn("withdraw callback failed", zap.Error(err))
		}
		writeJSON(w, http.StatusOK, models.LNURLError(lnurlReason(err)))
		return
	}

	writeJSON(w, http.StatusOK, models.LNURLOK())
}

func lnurlReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidOrExpiredChallenge):
		return "withdrawal not found, already claimed or expired"
	case errors.Is(err, apperrors.ErrInvalidRequest):
		return "missing payment request"
	case errors.Is(err, apperrors.ErrPaymentFailed):
		return "payment failed, funds returned to balance"
	case errors.Is(err, apperrors.ErrAmbiguousPaymentOutcome):
		return "payment outcome unknown, it will be settled shortly"
	case errors.Is(err, apperrors.ErrNodeUnavailable):
		return "service temporarily unavailable, try again later"
	default:
		return "internal error"
	}
}
