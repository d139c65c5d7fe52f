package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/lnode"
	"github.com/pokerleague/lnpayments/internal/mocks/lnode_mocks"
	"github.com/pokerleague/lnpayments/internal/mocks/repository_mocks"
	"github.com/pokerleague/lnpayments/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBaseURL = "http://league.test"
	testMinSats = int64(100)
	testTTL     = 24 * time.Hour
	testPayTO   = time.Second
)

func newWithdrawalServiceForTest(t *testing.T) (*gomock.Controller, *repository_mocks.MockWithdrawalRepository, *repository_mocks.MockBalanceRepository, *lnode_mocks.MockClientInterface, WithdrawalService) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	balanceRepo := repository_mocks.NewMockBalanceRepository(ctrl)
	node := lnode_mocks.NewMockClientInterface(ctrl)
	svc := NewWithdrawalService(repo, balanceRepo, node, testBaseURL, testMinSats, testTTL, testPayTO)
	return ctrl, repo, balanceRepo, node, svc
}

func pendingWithdrawal(id int64, amountSats int64, expiresIn time.Duration) models.Withdrawal {
	now := time.Now()
	return models.Withdrawal{
		ID:         id,
		UserID:     1,
		K1:         "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		AmountSats: amountSats,
		Status:     models.WithdrawalStatusPending,
		CreatedAt:  now.Add(-time.Minute),
		ExpiresAt:  now.Add(expiresIn),
	}
}

func TestWithdrawalService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("amount below minimum", func(t *testing.T) {
		ctrl, _, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		_, err := svc.Create(ctx, 1, testMinSats-1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().CreateWithReserve(ctx, gomock.AssignableToTypeOf(models.Withdrawal{})).
			Return(models.Withdrawal{}, apperrors.ErrInsufficientBalance).Times(1)

		_, err := svc.Create(ctx, 1, 5000)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	})

	t.Run("success reserves at creation", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().CreateWithReserve(ctx, gomock.AssignableToTypeOf(models.Withdrawal{})).DoAndReturn(
			func(_ context.Context, w models.Withdrawal) (models.Withdrawal, error) {
				assert.Equal(t, int64(1), w.UserID)
				assert.Equal(t, int64(5000), w.AmountSats)
				assert.Len(t, w.K1, 64)
				assert.WithinDuration(t, time.Now().Add(testTTL), w.ExpiresAt, time.Minute)
				w.ID = 42
				w.Status = models.WithdrawalStatusPending
				return w, nil
			}).Times(1)

		resp, err := svc.Create(ctx, 1, 5000)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.Withdrawal.ID)
		assert.True(t, strings.HasPrefix(strings.ToLower(resp.LNURL), "lnurl"))
		assert.True(t, strings.HasPrefix(resp.LightningURI, "lightning:"))
		assert.Equal(t, strings.ToUpper(resp.LightningURI), resp.QRData)
	})
}

func TestWithdrawalService_WithdrawAll(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves the full balance", func(t *testing.T) {
		ctrl, repo, balanceRepo, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		balanceRepo.EXPECT().GetBalance(ctx, int64(7)).Return(models.Balance{UserID: 7, BalanceSats: 6000}, nil).Times(1)
		repo.EXPECT().CreateWithReserve(ctx, gomock.AssignableToTypeOf(models.Withdrawal{})).DoAndReturn(
			func(_ context.Context, w models.Withdrawal) (models.Withdrawal, error) {
				assert.Equal(t, int64(6000), w.AmountSats)
				return w, nil
			}).Times(1)

		_, err := svc.WithdrawAll(ctx, 7)
		require.NoError(t, err)
	})

	t.Run("empty balance fails validation", func(t *testing.T) {
		ctrl, _, balanceRepo, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		balanceRepo.EXPECT().GetBalance(ctx, int64(7)).Return(models.Balance{UserID: 7}, nil).Times(1)

		_, err := svc.WithdrawAll(ctx, 7)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})
}

func TestWithdrawalService_HandleWithdrawRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("pending challenge returns millisat bounds", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(1, 5000, time.Hour)
		repo.EXPECT().GetByK1(ctx, w.K1).Return(w, nil).Times(1)

		resp, err := svc.HandleWithdrawRequest(ctx, w.K1)
		require.NoError(t, err)
		assert.Equal(t, "withdrawRequest", resp.Tag)
		assert.Equal(t, w.K1, resp.K1)
		assert.Equal(t, int64(5000000), resp.MinWithdrawable)
		assert.Equal(t, int64(5000000), resp.MaxWithdrawable)
		assert.Equal(t, testBaseURL+"/api/lnurl/withdraw/callback", resp.Callback)
	})

	t.Run("unknown k1", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().GetByK1(ctx, "missing").Return(models.Withdrawal{}, apperrors.ErrWithdrawalNotFound).Times(1)

		_, err := svc.HandleWithdrawRequest(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredChallenge)
	})

	t.Run("already claimed", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(1, 5000, time.Hour)
		w.Status = models.WithdrawalStatusClaimed
		repo.EXPECT().GetByK1(ctx, w.K1).Return(w, nil).Times(1)

		_, err := svc.HandleWithdrawRequest(ctx, w.K1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredChallenge)
	})

	t.Run("expired pending is refunded on read", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(1, 5000, -time.Minute)
		repo.EXPECT().GetByK1(ctx, w.K1).Return(w, nil).Times(1)
		repo.EXPECT().ExpireAndRefund(ctx, w.ID, gomock.AssignableToTypeOf(time.Time{})).Return(nil).Times(1)

		_, err := svc.HandleWithdrawRequest(ctx, w.K1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredChallenge)
	})
}

func TestWithdrawalService_HandleWithdrawCallback(t *testing.T) {
	ctx := context.Background()
	const pr = "lnbc50u1pexampleinvoice"

	t.Run("missing payment request", func(t *testing.T) {
		ctrl, _, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		err := svc.HandleWithdrawCallback(ctx, "k1", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("successful pay marks paid without refund", func(t *testing.T) {
		ctrl, repo, _, node, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(3, 5000, time.Hour)
		w.Status = models.WithdrawalStatusClaimed
		repo.EXPECT().Claim(ctx, w.K1, pr, gomock.AssignableToTypeOf(time.Time{})).Return(w, nil).Times(1)
		node.EXPECT().PayInvoice(gomock.Any(), pr).Return(&lnode.PaymentResult{Preimage: "deadbeef"}, nil).Times(1)
		repo.EXPECT().MarkPaid(ctx, w.ID, gomock.AssignableToTypeOf(time.Time{})).Return(nil).Times(1)

		err := svc.HandleWithdrawCallback(ctx, w.K1, pr)
		require.NoError(t, err)
	})

	t.Run("second callback on same k1 attempts no payment", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(3, 5000, time.Hour)
		w.Status = models.WithdrawalStatusClaimed
		repo.EXPECT().Claim(ctx, w.K1, pr, gomock.AssignableToTypeOf(time.Time{})).
			Return(models.Withdrawal{}, apperrors.ErrInvalidOrExpiredChallenge).Times(1)
		repo.EXPECT().GetByK1(ctx, w.K1).Return(w, nil).Times(1)

		err := svc.HandleWithdrawCallback(ctx, w.K1, pr)
		assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredChallenge)
	})

	t.Run("node rejection refunds", func(t *testing.T) {
		ctrl, repo, _, node, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(3, 5000, time.Hour)
		w.Status = models.WithdrawalStatusClaimed
		repo.EXPECT().Claim(ctx, w.K1, pr, gomock.AssignableToTypeOf(time.Time{})).Return(w, nil).Times(1)
		node.EXPECT().PayInvoice(gomock.Any(), pr).Return(nil, apperrors.ErrPaymentFailed).Times(1)
		repo.EXPECT().FailAndRefund(ctx, w.ID).Return(nil).Times(1)

		err := svc.HandleWithdrawCallback(ctx, w.K1, pr)
		assert.ErrorIs(t, err, apperrors.ErrPaymentFailed)
	})

	t.Run("timeout reconciled as succeeded", func(t *testing.T) {
		ctrl, repo, _, node, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(3, 5000, time.Hour)
		w.Status = models.WithdrawalStatusClaimed
		repo.EXPECT().Claim(ctx, w.K1, pr, gomock.AssignableToTypeOf(time.Time{})).Return(w, nil).Times(1)
		node.EXPECT().PayInvoice(gomock.Any(), pr).Return(nil, apperrors.ErrAmbiguousPaymentOutcome).Times(1)
		node.EXPECT().CheckPayment(ctx, pr).Return(lnode.PaymentSucceeded, nil).Times(1)
		repo.EXPECT().MarkPaid(ctx, w.ID, gomock.AssignableToTypeOf(time.Time{})).Return(nil).Times(1)

		err := svc.HandleWithdrawCallback(ctx, w.K1, pr)
		require.NoError(t, err)
	})

	t.Run("timeout reconciled as failed refunds", func(t *testing.T) {
		ctrl, repo, _, node, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(3, 5000, time.Hour)
		w.Status = models.WithdrawalStatusClaimed
		repo.EXPECT().Claim(ctx, w.K1, pr, gomock.AssignableToTypeOf(time.Time{})).Return(w, nil).Times(1)
		node.EXPECT().PayInvoice(gomock.Any(), pr).Return(nil, apperrors.ErrAmbiguousPaymentOutcome).Times(1)
		node.EXPECT().CheckPayment(ctx, pr).Return(lnode.PaymentFailed, nil).Times(1)
		repo.EXPECT().FailAndRefund(ctx, w.ID).Return(nil).Times(1)

		err := svc.HandleWithdrawCallback(ctx, w.K1, pr)
		assert.ErrorIs(t, err, apperrors.ErrPaymentFailed)
	})

	t.Run("timeout still in flight is never refunded", func(t *testing.T) {
		ctrl, repo, _, node, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(3, 5000, time.Hour)
		w.Status = models.WithdrawalStatusClaimed
		repo.EXPECT().Claim(ctx, w.K1, pr, gomock.AssignableToTypeOf(time.Time{})).Return(w, nil).Times(1)
		node.EXPECT().PayInvoice(gomock.Any(), pr).Return(nil, apperrors.ErrAmbiguousPaymentOutcome).Times(1)
		node.EXPECT().CheckPayment(ctx, pr).Return(lnode.PaymentInFlight, nil).Times(1)

		err := svc.HandleWithdrawCallback(ctx, w.K1, pr)
		assert.ErrorIs(t, err, apperrors.ErrAmbiguousPaymentOutcome)
	})

	t.Run("node unreachable leaves ledger untouched", func(t *testing.T) {
		ctrl, repo, _, node, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(3, 5000, time.Hour)
		w.Status = models.WithdrawalStatusClaimed
		repo.EXPECT().Claim(ctx, w.K1, pr, gomock.AssignableToTypeOf(time.Time{})).Return(w, nil).Times(1)
		node.EXPECT().PayInvoice(gomock.Any(), pr).Return(nil, errors.New("dial tcp: connection refused")).Times(1)

		err := svc.HandleWithdrawCallback(ctx, w.K1, pr)
		assert.Error(t, err)
	})
}

func TestWithdrawalService_GetWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign withdrawal is hidden", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(5, 5000, time.Hour)
		repo.EXPECT().GetByID(ctx, w.ID).Return(w, nil).Times(1)

		_, err := svc.GetWithdrawal(ctx, 99, w.ID)
		assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
	})

	t.Run("expired pending flips on read", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(5, 5000, -time.Minute)
		repo.EXPECT().GetByID(ctx, w.ID).Return(w, nil).Times(1)
		repo.EXPECT().ExpireAndRefund(ctx, w.ID, gomock.AssignableToTypeOf(time.Time{})).Return(nil).Times(1)

		got, err := svc.GetWithdrawal(ctx, w.UserID, w.ID)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusExpired, got.Status)
		assert.True(t, got.Refunded)
	})

	t.Run("paid stays paid", func(t *testing.T) {
		ctrl, repo, _, _, svc := newWithdrawalServiceForTest(t)
		defer ctrl.Finish()

		w := pendingWithdrawal(5, 5000, -time.Minute)
		w.Status = models.WithdrawalStatusPaid
		repo.EXPECT().GetByID(ctx, w.ID).Return(w, nil).Times(1)

		got, err := svc.GetWithdrawal(ctx, w.UserID, w.ID)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusPaid, got.Status)
	})
}
