package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/lnode"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/models"
	"github.com/pokerleague/lnpayments/internal/repository"
	"go.uber.org/zap"
)

type PoolService interface {
	GetPool(ctx context.Context, eventID int64) (models.LastLongerPool, []models.PoolEntry, error)
	ConfigurePool(ctx context.Context, pool models.LastLongerPool) error
	Enter(ctx context.Context, eventID, userID int64) (models.PoolEntryResponse, error)
	CheckPayment(ctx context.Context, eventID, entryID int64) (models.PoolEntry, error)
	SelectWinner(ctx context.Context, eventID, winnerUserID int64) (models.LastLongerPool, error)
}

type poolService struct {
	repo       repository.PoolRepository
	node       lnode.ClientInterface
	invoiceTTL time.Duration
}

func NewPoolService(repo repository.PoolRepository, node lnode.ClientInterface, invoiceTTL time.Duration) PoolService {
	return &poolService{repo: repo, node: node, invoiceTTL: invoiceTTL}
}

func (s *poolService) GetPool(ctx context.Context, eventID int64) (models.LastLongerPool, []models.PoolEntry, error) {
	pool, err := s.repo.GetPool(ctx, eventID)
	if err != nil {
		return models.LastLongerPool{}, nil, err
	}
	entries, err := s.repo.GetEntries(ctx, eventID)
	if err != nil {
		return models.LastLongerPool{}, nil, err
	}
	return pool, entries, nil
}

func (s *poolService) ConfigurePool(ctx context.Context, pool models.LastLongerPool) error {
	if pool.EntrySats <= 0 || pool.SeedSats < 0 {
		return apperrors.ErrInvalidAmount
	}
	return s.repo.UpsertPool(ctx, pool)
}

// Enter opts a user into the event's side pool and hands back the invoice the
// wallet has to settle. The entry contributes to the pot only once it is PAID.
func (s *poolService) Enter(ctx context.Context, eventID, userID int64) (models.PoolEntryResponse, error) {
	pool, err := s.repo.GetPool(ctx, eventID)
	if err != nil {
		return models.PoolEntryResponse{}, err
	}
	if !pool.Enabled {
		return models.PoolEntryResponse{}, apperrors.ErrPoolDisabled
	}
	if pool.Resolved() {
		return models.PoolEntryResponse{}, apperrors.ErrPoolResolved
	}

	existing, err := s.repo.GetActiveEntry(ctx, eventID, userID)
	if err != nil {
		return models.PoolEntryResponse{}, err
	}
	if existing != nil {
		return models.PoolEntryResponse{}, apperrors.ErrAlreadyEntered
	}

	memo := fmt.Sprintf("Last Longer entry, event %d", eventID)
	invoice, err := s.node.CreateInvoice(ctx, pool.EntrySats, memo)
	if err != nil {
		return models.PoolEntryResponse{}, err
	}

	now := time.Now()
	expiresAt := invoice.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(s.invoiceTTL)
	}

	entry, err := s.repo.CreateEntry(ctx, models.PoolEntry{
		EventID:        eventID,
		UserID:         userID,
		AmountSats:     pool.EntrySats,
		PaymentHash:    invoice.PaymentHash,
		PaymentRequest: invoice.PaymentRequest,
		CreatedAt:      now,
		ExpiresAt:      expiresAt,
	})
	if err != nil {
		return models.PoolEntryResponse{}, err
	}

	return models.PoolEntryResponse{Entry: entry, Invoice: invoice.PaymentRequest}, nil
}

// CheckPayment is the idempotent status poll the client loops on. Settlement
// flips the entry to PAID at most once; the pot needs no separate update
// because it is derived from the PAID count.
func (s *poolService) CheckPayment(ctx context.Context, eventID, entryID int64) (models.PoolEntry, error) {
	entry, err := s.repo.GetEntry(ctx, entryID)
	if err != nil {
		return models.PoolEntry{}, err
	}
	if entry.EventID != eventID {
		return models.PoolEntry{}, apperrors.ErrEntryNotFound
	}
	if entry.Status != models.EntryStatusAwaitingPayment {
		return entry, nil
	}

	status, err := s.node.CheckInvoice(ctx, entry.PaymentHash)
	if err != nil {
		return models.PoolEntry{}, err
	}

	now := time.Now()
	switch status {
	case lnode.InvoiceSettled:
		if err := s.repo.MarkEntryPaid(ctx, entry.ID, now); err != nil {
			if errors.Is(err, apperrors.ErrDoubleTransition) {
				return s.repo.GetEntry(ctx, entry.ID)
			}
			return models.PoolEntry{}, err
		}
		entry.Status = models.EntryStatusPaid
		entry.PaidAt = &now
		logger.Log.Info("pool entry settled",
			zap.Int64("entry", entry.ID),
			zap.Int64("event", entry.EventID),
			zap.Int64("amount_sats", entry.AmountSats))
		return entry, nil

	case lnode.InvoiceExpired:
		if _, err := s.repo.ExpireEntries(ctx, now); err != nil {
			logger.Log.Error("failed to expire entries", zap.Error(err))
		}
		return s.repo.GetEntry(ctx, entry.ID)

	default:
		return entry, nil
	}
}

func (s *poolService) SelectWinner(ctx context.Context, eventID, winnerUserID int64) (models.LastLongerPool, error) {
	pool, err := s.repo.SelectWinner(ctx, eventID, winnerUserID)
	if err != nil {
		return models.LastLongerPool{}, err
	}
	logger.Log.Info("pool winner selected",
		zap.Int64("event", eventID),
		zap.Int64("winner", winnerUserID),
		zap.Int64("pot_sats", pool.TotalPot))
	return pool, nil
}
