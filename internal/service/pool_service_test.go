package service

import (
	"context"
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

func newPoolServiceForTest(t *testing.T) (*gomock.Controller, *repository_mocks.MockPoolRepository, *lnode_mocks.MockClientInterface, PoolService) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockPoolRepository(ctrl)
	node := lnode_mocks.NewMockClientInterface(ctrl)
	svc := NewPoolService(repo, node, time.Hour)
	return ctrl, repo, node, svc
}

func enabledPool(eventID int64) models.LastLongerPool {
	return models.LastLongerPool{
		EventID:   eventID,
		Enabled:   true,
		SeedSats:  1000,
		EntrySats: 200,
	}
}

func TestPoolService_Enter(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled pool", func(t *testing.T) {
		ctrl, repo, _, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		pool := enabledPool(10)
		pool.Enabled = false
		repo.EXPECT().GetPool(ctx, int64(10)).Return(pool, nil).Times(1)

		_, err := svc.Enter(ctx, 10, 1)
		assert.ErrorIs(t, err, apperrors.ErrPoolDisabled)
	})

	t.Run("resolved pool accepts no entries", func(t *testing.T) {
		ctrl, repo, _, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		pool := enabledPool(10)
		winner := int64(2)
		pool.WinnerID = &winner
		repo.EXPECT().GetPool(ctx, int64(10)).Return(pool, nil).Times(1)

		_, err := svc.Enter(ctx, 10, 1)
		assert.ErrorIs(t, err, apperrors.ErrPoolResolved)
	})

	t.Run("duplicate entry", func(t *testing.T) {
		ctrl, repo, _, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().GetPool(ctx, int64(10)).Return(enabledPool(10), nil).Times(1)
		existing := &models.PoolEntry{ID: 4, EventID: 10, UserID: 1, Status: models.EntryStatusAwaitingPayment}
		repo.EXPECT().GetActiveEntry(ctx, int64(10), int64(1)).Return(existing, nil).Times(1)

		_, err := svc.Enter(ctx, 10, 1)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEntered)
	})

	t.Run("success returns invoice keyed by payment hash", func(t *testing.T) {
		ctrl, repo, node, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().GetPool(ctx, int64(10)).Return(enabledPool(10), nil).Times(1)
		repo.EXPECT().GetActiveEntry(ctx, int64(10), int64(1)).Return(nil, nil).Times(1)
		invoice := &lnode.Invoice{
			PaymentHash:    "abc123",
			PaymentRequest: "lnbc2u1pexample",
			AmountSats:     200,
			ExpiresAt:      time.Now().Add(time.Hour),
		}
		node.EXPECT().CreateInvoice(ctx, int64(200), gomock.Any()).Return(invoice, nil).Times(1)
		repo.EXPECT().CreateEntry(ctx, gomock.AssignableToTypeOf(models.PoolEntry{})).DoAndReturn(
			func(_ context.Context, e models.PoolEntry) (models.PoolEntry, error) {
				assert.Equal(t, "abc123", e.PaymentHash)
				assert.Equal(t, int64(200), e.AmountSats)
				assert.Equal(t, invoice.ExpiresAt, e.ExpiresAt)
				e.ID = 7
				e.Status = models.EntryStatusAwaitingPayment
				return e, nil
			}).Times(1)

		resp, err := svc.Enter(ctx, 10, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.Entry.ID)
		assert.Equal(t, "lnbc2u1pexample", resp.Invoice)
	})

	t.Run("node down", func(t *testing.T) {
		ctrl, repo, node, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().GetPool(ctx, int64(10)).Return(enabledPool(10), nil).Times(1)
		repo.EXPECT().GetActiveEntry(ctx, int64(10), int64(1)).Return(nil, nil).Times(1)
		node.EXPECT().CreateInvoice(ctx, int64(200), gomock.Any()).Return(nil, apperrors.ErrNodeUnavailable).Times(1)

		_, err := svc.Enter(ctx, 10, 1)
		assert.ErrorIs(t, err, apperrors.ErrNodeUnavailable)
	})
}

func TestPoolService_CheckPayment(t *testing.T) {
	ctx := context.Background()

	awaiting := models.PoolEntry{
		ID:          7,
		EventID:     10,
		UserID:      1,
		AmountSats:  200,
		PaymentHash: "abc123",
		Status:      models.EntryStatusAwaitingPayment,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	t.Run("settled flips to paid once", func(t *testing.T) {
		ctrl, repo, node, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().GetEntry(ctx, int64(7)).Return(awaiting, nil).Times(1)
		node.EXPECT().CheckInvoice(ctx, "abc123").Return(lnode.InvoiceSettled, nil).Times(1)
		repo.EXPECT().MarkEntryPaid(ctx, int64(7), gomock.AssignableToTypeOf(time.Time{})).Return(nil).Times(1)

		entry, err := svc.CheckPayment(ctx, 10, 7)
		require.NoError(t, err)
		assert.Equal(t, models.EntryStatusPaid, entry.Status)
		assert.NotNil(t, entry.PaidAt)
	})

	t.Run("lost the paid transition race", func(t *testing.T) {
		ctrl, repo, node, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		paid := awaiting
		paid.Status = models.EntryStatusPaid

		repo.EXPECT().GetEntry(ctx, int64(7)).Return(awaiting, nil).Times(1)
		node.EXPECT().CheckInvoice(ctx, "abc123").Return(lnode.InvoiceSettled, nil).Times(1)
		repo.EXPECT().MarkEntryPaid(ctx, int64(7), gomock.AssignableToTypeOf(time.Time{})).
			Return(apperrors.ErrDoubleTransition).Times(1)
		repo.EXPECT().GetEntry(ctx, int64(7)).Return(paid, nil).Times(1)

		entry, err := svc.CheckPayment(ctx, 10, 7)
		require.NoError(t, err)
		assert.Equal(t, models.EntryStatusPaid, entry.Status)
	})

	t.Run("already paid entry skips the node", func(t *testing.T) {
		ctrl, repo, _, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		paid := awaiting
		paid.Status = models.EntryStatusPaid
		repo.EXPECT().GetEntry(ctx, int64(7)).Return(paid, nil).Times(1)

		entry, err := svc.CheckPayment(ctx, 10, 7)
		require.NoError(t, err)
		assert.Equal(t, models.EntryStatusPaid, entry.Status)
	})

	t.Run("entry from another event is not found", func(t *testing.T) {
		ctrl, repo, _, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().GetEntry(ctx, int64(7)).Return(awaiting, nil).Times(1)

		_, err := svc.CheckPayment(ctx, 99, 7)
		assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
	})

	t.Run("still pending", func(t *testing.T) {
		ctrl, repo, node, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().GetEntry(ctx, int64(7)).Return(awaiting, nil).Times(1)
		node.EXPECT().CheckInvoice(ctx, "abc123").Return(lnode.InvoicePending, nil).Times(1)

		entry, err := svc.CheckPayment(ctx, 10, 7)
		require.NoError(t, err)
		assert.Equal(t, models.EntryStatusAwaitingPayment, entry.Status)
	})
}

func TestPoolService_SelectWinner(t *testing.T) {
	ctx := context.Background()

	t.Run("pays out the derived pot", func(t *testing.T) {
		ctrl, repo, _, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		winner := int64(2)
		resolved := models.LastLongerPool{
			EventID:     10,
			Enabled:     true,
			SeedSats:    1000,
			EntrySats:   200,
			WinnerID:    &winner,
			PaidEntries: 3,
			TotalPot:    1600,
		}
		repo.EXPECT().SelectWinner(ctx, int64(10), int64(2)).Return(resolved, nil).Times(1)

		pool, err := svc.SelectWinner(ctx, 10, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1600), pool.TotalPot)
		require.NotNil(t, pool.WinnerID)
		assert.Equal(t, int64(2), *pool.WinnerID)
	})

	t.Run("second call is rejected", func(t *testing.T) {
		ctrl, repo, _, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		repo.EXPECT().SelectWinner(ctx, int64(10), int64(2)).Return(models.LastLongerPool{}, apperrors.ErrPoolResolved).Times(1)

		_, err := svc.SelectWinner(ctx, 10, 2)
		assert.ErrorIs(t, err, apperrors.ErrPoolResolved)
	})
}

func TestPoolService_ConfigurePool(t *testing.T) {
	ctx := context.Background()

	t.Run("entry fee must be positive", func(t *testing.T) {
		ctrl, _, _, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		err := svc.ConfigurePool(ctx, models.LastLongerPool{EventID: 10, EntrySats: 0})
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("upserts valid config", func(t *testing.T) {
		ctrl, repo, _, svc := newPoolServiceForTest(t)
		defer ctrl.Finish()

		pool := enabledPool(10)
		repo.EXPECT().UpsertPool(ctx, pool).Return(nil).Times(1)

		err := svc.ConfigurePool(ctx, pool)
		require.NoError(t, err)
	})
}
