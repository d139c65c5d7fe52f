package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fiatjaf/go-lnurl"
	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/lnode"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/models"
	"github.com/pokerleague/lnpayments/internal/repository"
	"go.uber.org/zap"
)

type WithdrawalService interface {
	WithdrawAll(ctx context.Context, userID int64) (models.WithdrawalResponse, error)
	Create(ctx context.Context, userID, amountSats int64) (models.WithdrawalResponse, error)
	GetWithdrawal(ctx context.Context, userID, id int64) (models.Withdrawal, error)
	HandleWithdrawRequest(ctx context.Context, k1 string) (models.LNURLWithdrawResponse, error)
	HandleWithdrawCallback(ctx context.Context, k1, pr string) error
}

type withdrawalService struct {
	repo        repository.WithdrawalRepository
	balanceRepo repository.BalanceRepository
	node        lnode.ClientInterface

	baseURL         string
	minWithdrawSats int64
	withdrawalTTL   time.Duration
	payTimeout      time.Duration
}

func NewWithdrawalService(
	repo repository.WithdrawalRepository,
	balanceRepo repository.BalanceRepository,
	node lnode.ClientInterface,
	baseURL string,
	minWithdrawSats int64,
	withdrawalTTL time.Duration,
	payTimeout time.Duration,
) WithdrawalService {
	return &withdrawalService{
		repo:            repo,
		balanceRepo:     balanceRepo,
		node:            node,
		baseURL:         strings.TrimRight(baseURL, "/"),
		minWithdrawSats: minWithdrawSats,
		withdrawalTTL:   withdrawalTTL,
		payTimeout:      payTimeout,
	}
}

// WithdrawAll reserves the user's full balance, per the "Withdraw All" flow.
// The reservation itself is conditional, so a balance change between the read
// and the reserve surfaces as ErrInsufficientBalance rather than overdraft.
func (s *withdrawalService) WithdrawAll(ctx context.Context, userID int64) (models.WithdrawalResponse, error) {
	balance, err := s.balanceRepo.GetBalance(ctx, userID)
	if err != nil {
		return models.WithdrawalResponse{}, err
	}
	return s.Create(ctx, userID, balance.BalanceSats)
}

func (s *withdrawalService) Create(ctx context.Context, userID, amountSats int64) (models.WithdrawalResponse, error) {
	if amountSats < s.minWithdrawSats {
		return models.WithdrawalResponse{}, apperrors.ErrInvalidAmount
	}

	now := time.Now()
	withdrawal := models.Withdrawal{
		UserID:     userID,
		K1:         lnurl.RandomK1(),
		AmountSats: amountSats,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.withdrawalTTL),
	}

	created, err := s.repo.CreateWithReserve(ctx, withdrawal)
	if err != nil {
		return models.WithdrawalResponse{}, err
	}

	requestURL := fmt.Sprintf("%s/api/lnurl/withdraw?k1=%s", s.baseURL, created.K1)
	encoded, err := lnurl.LNURLEncode(requestURL)
	if err != nil {
		return models.WithdrawalResponse{}, err
	}

	uri := "lightning:" + encoded
	return models.WithdrawalResponse{
		Withdrawal:   created,
		LNURL:        encoded,
		QRData:       strings.ToUpper(uri),
		LightningURI: uri,
	}, nil
}

func (s *withdrawalService) GetWithdrawal(ctx context.Context, userID, id int64) (models.Withdrawal, error) {
	withdrawal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Withdrawal{}, err
	}
	if withdrawal.UserID != userID {
		return models.Withdrawal{}, apperrors.ErrWithdrawalNotFound
	}

	// Expiry is checked on every read, not only on the sweep.
	if w, expired := s.expireIfDue(ctx, withdrawal); expired {
		return w, nil
	}
	return withdrawal, nil
}

func (s *withdrawalService) HandleWithdrawRequest(ctx context.Context, k1 string) (models.LNURLWithdrawResponse, error) {
	withdrawal, err := s.repo.GetByK1(ctx, k1)
	if err != nil {
		if errors.Is(err, apperrors.ErrWithdrawalNotFound) {
			return models.LNURLWithdrawResponse{}, apperrors.ErrInvalidOrExpiredChallenge
		}
		return models.LNURLWithdrawResponse{}, err
	}

	if _, expired := s.expireIfDue(ctx, withdrawal); expired {
		return models.LNURLWithdrawResponse{}, apperrors.ErrInvalidOrExpiredChallenge
	}
	if withdrawal.Status != models.WithdrawalStatusPending {
		return models.LNURLWithdrawResponse{}, apperrors.ErrInvalidOrExpiredChallenge
	}

	// LUD-03 wants millisats.
	amountMsat := withdrawal.AmountSats * 1000
	return models.LNURLWithdrawResponse{
		Tag:                "withdrawRequest",
		Callback:           s.baseURL + "/api/lnurl/withdraw/callback",
		K1:                 withdrawal.K1,
		MinWithdrawable:    amountMsat,
		MaxWithdrawable:    amountMsat,
		DefaultDescription: fmt.Sprintf("League winnings withdrawal, %d sats", withdrawal.AmountSats),
	}, nil
}

// HandleWithdrawCallback claims the challenge and pays the wallet's invoice.
// The claim is a conditional update, so a wallet retry or a second wallet
// scanning the same QR gets ErrInvalidOrExpiredChallenge and no second
// payment is ever attempted.
func (s *withdrawalService) HandleWithdrawCallback(ctx context.Context, k1, pr string) error {
	if pr == "" {
		return apperrors.ErrInvalidRequest
	}

	withdrawal, err := s.repo.Claim(ctx, k1, pr, time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidOrExpiredChallenge) {
			s.expireStaleOnFailedClaim(ctx, k1)
		}
		return err
	}

	payCtx, cancel := context.WithTimeout(ctx, s.payTimeout)
	defer cancel()

	_, payErr := s.node.PayInvoice(payCtx, pr)
	switch {
	case payErr == nil:
		if err := s.repo.MarkPaid(ctx, withdrawal.ID, time.Now()); err != nil {
			logger.Log.Error("failed to mark withdrawal paid", zap.Int64("withdrawal", withdrawal.ID), zap.Error(err))
			return err
		}
		logger.Log.Info("withdrawal paid",
			zap.Int64("withdrawal", withdrawal.ID),
			zap.Int64("amount_sats", withdrawal.AmountSats))
		return nil

	case errors.Is(payErr, apperrors.ErrPaymentFailed):
		if err := s.repo.FailAndRefund(ctx, withdrawal.ID); err != nil {
			logger.Log.Error("failed to refund rejected withdrawal", zap.Int64("withdrawal", withdrawal.ID), zap.Error(err))
			return err
		}
		return payErr

	case errors.Is(payErr, apperrors.ErrAmbiguousPaymentOutcome):
		return s.reconcileAfterTimeout(ctx, withdrawal, pr)

	default:
		// Node unreachable: the payment was never submitted, but the
		// ledger stays untouched here. The sweeper reconciles the
		// CLAIMED row against the node before refunding.
		logger.Log.Warn("pay invoice error, leaving withdrawal claimed",
			zap.Int64("withdrawal", withdrawal.ID), zap.Error(payErr))
		return payErr
	}
}

// reconcileAfterTimeout resolves an ambiguous pay outcome through the node's
// payment status instead of guessing. A refund is only issued once the node
// confirms the payment did not go through.
func (s *withdrawalService) reconcileAfterTimeout(ctx context.Context, withdrawal models.Withdrawal, pr string) error {
	status, err := s.node.CheckPayment(ctx, pr)
	if err != nil {
		logger.Log.Warn("payment status check failed, deferring to sweeper",
			zap.Int64("withdrawal", withdrawal.ID), zap.Error(err))
		return apperrors.ErrAmbiguousPaymentOutcome
	}

	switch status {
	case lnode.PaymentSucceeded:
		if err := s.repo.MarkPaid(ctx, withdrawal.ID, time.Now()); err != nil {
			return err
		}
		return nil
	case lnode.PaymentFailed, lnode.PaymentNotFound:
		if err := s.repo.FailAndRefund(ctx, withdrawal.ID); err != nil {
			return err
		}
		return apperrors.ErrPaymentFailed
	default:
		return apperrors.ErrAmbiguousPaymentOutcome
	}
}

// expireIfDue transitions an overdue non-terminal withdrawal and refunds the
// reservation. Losing the conditional update to a concurrent sweep or
// callback is not an error.
func (s *withdrawalService) expireIfDue(ctx context.Context, withdrawal models.Withdrawal) (models.Withdrawal, bool) {
	now := time.Now()
	if withdrawal.Terminal() || !withdrawal.Expired(now) {
		return withdrawal, false
	}
	// A CLAIMED withdrawal may have a payment in flight; only the sweeper
	// expires those, after checking the node.
	if withdrawal.Status != models.WithdrawalStatusPending {
		return withdrawal, false
	}

	if err := s.repo.ExpireAndRefund(ctx, withdrawal.ID, now); err != nil {
		if !errors.Is(err, apperrors.ErrDoubleTransition) {
			logger.Log.Error("failed to expire withdrawal", zap.Int64("withdrawal", withdrawal.ID), zap.Error(err))
		}
		return withdrawal, false
	}

	withdrawal.Status = models.WithdrawalStatusExpired
	withdrawal.Refunded = true
	return withdrawal, true
}

func (s *withdrawalService) expireStaleOnFailedClaim(ctx context.Context, k1 string) {
	withdrawal, err := s.repo.GetByK1(ctx, k1)
	if err != nil {
		return
	}
	if withdrawal.Status == models.WithdrawalStatusPending {
		s.expireIfDue(ctx, withdrawal)
	}
}
