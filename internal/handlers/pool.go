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
	"github.com/pokerleague/lnpayments/internal/models"
	"go.uber.org/zap"
)

func eventIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
}

type poolResponse struct {
	Pool    models.LastLongerPool `json:"pool"`
	Entries []models.PoolEntry    `json:"entries"`
}

func (h *Handler) GetPool(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventIDParam(r)
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	pool, entries, err := h.poolService.GetPool(r.Context(), eventID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, poolResponse{Pool: pool, Entries: entries})
	case errors.Is(err, apperrors.ErrPoolNotFound):
		http.Error(w, "pool not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get pool", zap.Error(err))
	}
}

type poolConfigRequest struct {
	Enabled   bool  `json:"enabled"`
	SeedSats  int64 `json:"seedSats"`
	EntrySats int64 `json:"entrySats"`
}

func (h *Handler) ConfigurePool(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	eventID, err := eventIDParam(r)
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	var req poolConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err = h.poolService.ConfigurePool(r.Context(), models.LastLongerPool{
		EventID:   eventID,
		Enabled:   req.Enabled,
		SeedSats:  req.SeedSats,
		EntrySats: req.EntrySats,
	})
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid pool amounts", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrPoolResolved):
		http.Error(w, "pool already resolved", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to configure pool", zap.Error(err))
	}
}

func (h *Handler) EnterPool(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	eventID, err := eventIDParam(r)
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	resp, err := h.poolService.Enter(r.Context(), eventID, userID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, apperrors.ErrPoolNotFound):
		http.Error(w, "pool not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrPoolDisabled):
		http.Error(w, "pool disabled", http.StatusConflict)
	case errors.Is(err, apperrors.ErrPoolResolved):
		http.Error(w, "pool already resolved", http.StatusConflict)
	case errors.Is(err, apperrors.ErrAlreadyEntered):
		http.Error(w, "already entered", http.StatusConflict)
	case errors.Is(err, apperrors.ErrNodeUnavailable):
		http.Error(w, "lightning node unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to enter pool", zap.Error(err))
	}
}

func (h *Handler) CheckEntryPayment(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	eventID, err := eventIDParam(r)
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}
	entryID, err := strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	entry, err := h.poolService.CheckPayment(r.Context(), eventID, entryID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, entry)
	case errors.Is(err, apperrors.ErrEntryNotFound):
		http.Error(w, "entry not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrNodeUnavailable):
		http.Error(w, "lightning node unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to check entry payment", zap.Error(err))
	}
}

type selectWinnerRequest struct {
	WinnerUserID int64 `json:"winnerUserId"`
}

func (h *Handler) SelectWinner(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	eventID, err := eventIDParam(r)
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	var req selectWinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	pool, err := h.poolService.SelectWinner(r.Context(), eventID, req.WinnerUserID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, pool)
	case errors.Is(err, apperrors.ErrPoolNotFound):
		http.Error(w, "pool not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrPoolResolved):
		http.Error(w, "winner already selected", http.StatusConflict)
	case errors.Is(err, apperrors.ErrNoPaidEntry):
		http.Error(w, "user has no paid entry", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to select winner", zap.Error(err))
	}
}
