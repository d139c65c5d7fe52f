package service

import (
	"context"
	"errors"
	"time"

	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/lnode"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/models"
	"github.com/pokerleague/lnpayments/internal/repository"
	"go.uber.org/zap"
)

// Sweeper is the only holder of expiry timing: expiry is a pure function of
// expires_at versus now, checked here and on reads, never by in-process
// timers that vanish on restart.
type Sweeper struct {
	withdrawalRepo repository.WithdrawalRepository
	poolRepo       repository.PoolRepository
	node           lnode.ClientInterface
	sweepInterval  time.Duration
}

func NewSweeper(
	withdrawalRepo repository.WithdrawalRepository,
	poolRepo repository.PoolRepository,
	node lnode.ClientInterface,
	interval time.Duration,
) *Sweeper {
	return &Sweeper{
		withdrawalRepo: withdrawalRepo,
		poolRepo:       poolRepo,
		node:           node,
		sweepInterval:  interval,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context) {
	s.sweepWithdrawals(ctx)
	s.sweepEntries(ctx)
}

func (s *Sweeper) sweepWithdrawals(ctx context.Context) {
	now := time.Now()
	due, err := s.withdrawalRepo.GetDue(ctx, now)
	if err != nil {
		logger.Log.Error("failed to get due withdrawals", zap.Error(err))
		return
	}

	for _, withdrawal := range due {
		switch withdrawal.Status {
		case models.WithdrawalStatusPending:
			// Never claimed, nothing could have been paid.
			s.expire(ctx, withdrawal, now)
		case models.WithdrawalStatusClaimed:
			s.reconcileClaimed(ctx, withdrawal, now)
		}
	}
}

// reconcileClaimed settles the fate of a CLAIMED withdrawal whose pay call
// never resolved. The node is asked first; refunding without confirming
// non-payment could pay the user twice.
func (s *Sweeper) reconcileClaimed(ctx context.Context, withdrawal models.Withdrawal, now time.Time) {
	if withdrawal.PaymentRequest == "" {
		s.expire(ctx, withdrawal, now)
		return
	}

	status, err := s.node.CheckPayment(ctx, withdrawal.PaymentRequest)
	if err != nil {
		logger.Log.Warn("payment status check failed, keeping withdrawal claimed",
			zap.Int64("withdrawal", withdrawal.ID), zap.Error(err))
		return
	}

	switch status {
	case lnode.PaymentSucceeded:
		if err := s.withdrawalRepo.MarkPaid(ctx, withdrawal.ID, now); err != nil && !errors.Is(err, apperrors.ErrDoubleTransition) {
			logger.Log.Error("failed to mark reconciled withdrawal paid",
				zap.Int64("withdrawal", withdrawal.ID), zap.Error(err))
		}
	case lnode.PaymentFailed, lnode.PaymentNotFound:
		s.expire(ctx, withdrawal, now)
	case lnode.PaymentInFlight:
		// Still routing; leave it for the next pass.
	}
}

func (s *Sweeper) expire(ctx context.Context, withdrawal models.Withdrawal, now time.Time) {
	err := s.withdrawalRepo.ExpireAndRefund(ctx, withdrawal.ID, now)
	if err != nil {
		// Lost the conditional update to a concurrent callback; the
		// withdrawal moved on without us.
		if errors.Is(err, apperrors.ErrDoubleTransition) {
			return
		}
		logger.Log.Error("failed to expire withdrawal", zap.Int64("withdrawal", withdrawal.ID), zap.Error(err))
		return
	}
	logger.Log.Info("expired withdrawal refunded",
		zap.Int64("withdrawal", withdrawal.ID),
		zap.Int64("amount_sats", withdrawal.AmountSats))
}

func (s *Sweeper) sweepEntries(ctx context.Context) {
	expired, err := s.poolRepo.ExpireEntries(ctx, time.Now())
	if err != nil {
		logger.Log.Error("failed to expire pool entries", zap.Error(err))
		return
	}
	if expired > 0 {
		logger.Log.Info("expired pool entries", zap.Int64("count", expired))
	}
}
