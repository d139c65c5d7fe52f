package service

import (
	"context"

	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/models"
	"github.com/pokerleague/lnpayments/internal/repository"
)

type BalanceService interface {
	GetUserBalance(ctx context.Context, userID int64) (models.Balance, error)
	GetAuditTrail(ctx context.Context, userID int64) ([]models.AuditEntry, error)
	CreditReward(ctx context.Context, userID, amountSats int64, reason string) (int64, error)
}

type balanceService struct {
	repo repository.BalanceRepository
}

func NewBalanceService(repo repository.BalanceRepository) BalanceService {
	return &balanceService{repo: repo}
}

func (s *balanceService) GetUserBalance(ctx context.Context, userID int64) (models.Balance, error) {
	return s.repo.GetBalance(ctx, userID)
}

func (s *balanceService) GetAuditTrail(ctx context.Context, userID int64) ([]models.AuditEntry, error) {
	return s.repo.GetAuditTrail(ctx, userID)
}

// CreditReward feeds balances from tournament winnings and puzzle rewards.
func (s *balanceService) CreditReward(ctx context.Context, userID, amountSats int64, reason string) (int64, error) {
	if amountSats <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}
	if reason == "" {
		reason = "reward"
	}
	return s.repo.Credit(ctx, userID, amountSats, reason)
}
