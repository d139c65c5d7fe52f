package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"
)

func setupPoolTestData(t *testing.T, db *sql.DB) {
	_, err := db.Exec(`TRUNCATE pool_entries, last_longer_pools, withdrawals, balance_audit, user_balances RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO last_longer_pools (event_id, enabled, seed_sats, entry_sats) VALUES
		(42, true, 1000, 200)
	`)
	require.NoError(t, err)
}

func newTestEntry(eventID, userID int64) models.PoolEntry {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return models.PoolEntry{
		EventID:        eventID,
		UserID:         userID,
		AmountSats:     200,
		PaymentHash:    fmt.Sprintf("hash-%d-%d-%d", eventID, userID, now.UnixNano()),
		PaymentRequest: "lnbc200n1invoice",
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Hour),
	}
}

func TestPoolRepo_UpsertPool(t *testing.T) {
	r := NewPoolRepository(testDB)
	ctx := context.Background()

	setupPoolTestData(t, testDB)

	t.Run("insert new pool", func(t *testing.T) {
		err := r.UpsertPool(ctx, models.LastLongerPool{EventID: 43, Enabled: true, SeedSats: 500, EntrySats: 100})
		require.NoError(t, err)

		pool, err := r.GetPool(ctx, 43)
		require.NoError(t, err)
		assert.Equal(t, int64(500), pool.SeedSats)
	})

	t.Run("update existing pool", func(t *testing.T) {
		err := r.UpsertPool(ctx, models.LastLongerPool{EventID: 42, Enabled: false, SeedSats: 2000, EntrySats: 300})
		require.NoError(t, err)

		pool, err := r.GetPool(ctx, 42)
		require.NoError(t, err)
		assert.False(t, pool.Enabled)
		assert.Equal(t, int64(2000), pool.SeedSats)
	})

	t.Run("resolved pool is frozen", func(t *testing.T) {
		_, err := testDB.Exec(`UPDATE last_longer_pools SET winner_id = 5 WHERE event_id = 42`)
		require.NoError(t, err)

		err = r.UpsertPool(ctx, models.LastLongerPool{EventID: 42, Enabled: true, SeedSats: 1, EntrySats: 1})
		assert.ErrorIs(t, err, apperrors.ErrPoolResolved)
	})
}

func TestPoolRepo_GetPool(t *testing.T) {
	r := NewPoolRepository(testDB)
	ctx := context.Background()
	now := time.Now().UTC()

	setupPoolTestData(t, testDB)

	t.Run("unknown event", func(t *testing.T) {
		_, err := r.GetPool(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrPoolNotFound)
	})

	t.Run("pot is seed plus paid entries only", func(t *testing.T) {
		for userID := int64(1); userID <= 3; userID++ {
			created, err := r.CreateEntry(ctx, newTestEntry(42, userID))
			require.NoError(t, err)
			if userID != 3 {
				require.NoError(t, r.MarkEntryPaid(ctx, created.ID, now))
			}
		}

		pool, err := r.GetPool(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(2), pool.PaidEntries)
		assert.Equal(t, int64(1000+200*2), pool.TotalPot)
	})
}

func TestPoolRepo_CreateEntry(t *testing.T) {
	r := NewPoolRepository(testDB)
	ctx := context.Background()

	setupPoolTestData(t, testDB)

	t.Run("entry starts awaiting payment", func(t *testing.T) {
		created, err := r.CreateEntry(ctx, newTestEntry(42, 1))
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, models.EntryStatusAwaitingPayment, created.Status)
		assert.Nil(t, created.PaidAt)
	})

	t.Run("second active entry for the same user rejected", func(t *testing.T) {
		_, err := r.CreateEntry(ctx, newTestEntry(42, 1))
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEntered)
	})

	t.Run("expired entry does not block re-entry", func(t *testing.T) {
		created, err := r.CreateEntry(ctx, newTestEntry(42, 2))
		require.NoError(t, err)
		_, err = testDB.Exec(`UPDATE pool_entries SET status = $1 WHERE id = $2`, models.EntryStatusExpired, created.ID)
		require.NoError(t, err)

		_, err = r.CreateEntry(ctx, newTestEntry(42, 2))
		require.NoError(t, err)
	})

	t.Run("resolved pool admits no entries", func(t *testing.T) {
		_, err := testDB.Exec(`UPDATE last_longer_pools SET winner_id = 1 WHERE event_id = 42`)
		require.NoError(t, err)

		_, err = r.CreateEntry(ctx, newTestEntry(42, 3))
		assert.ErrorIs(t, err, apperrors.ErrPoolResolved)
	})
}

func TestPoolRepo_GetActiveEntry(t *testing.T) {
	r := NewPoolRepository(testDB)
	ctx := context.Background()

	setupPoolTestData(t, testDB)

	t.Run("nil when user never entered", func(t *testing.T) {
		entry, err := r.GetActiveEntry(ctx, 42, 1)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("finds the awaiting entry", func(t *testing.T) {
		created, err := r.CreateEntry(ctx, newTestEntry(42, 1))
		require.NoError(t, err)

		entry, err := r.GetActiveEntry(ctx, 42, 1)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, created.ID, entry.ID)
	})
}

func TestPoolRepo_MarkEntryPaid(t *testing.T) {
	r := NewPoolRepository(testDB)
	ctx := context.Background()
	now := time.Now().UTC()

	setupPoolTestData(t, testDB)

	created, err := r.CreateEntry(ctx, newTestEntry(42, 1))
	require.NoError(t, err)

	t.Run("settles once", func(t *testing.T) {
		require.NoError(t, r.MarkEntryPaid(ctx, created.ID, now))

		entry, err := r.GetEntry(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.EntryStatusPaid, entry.Status)
		require.NotNil(t, entry.PaidAt)
	})

	t.Run("second settlement is a double transition", func(t *testing.T) {
		err := r.MarkEntryPaid(ctx, created.ID, now)
		assert.ErrorIs(t, err, apperrors.ErrDoubleTransition)
	})

	t.Run("no settlement into a resolved pool", func(t *testing.T) {
		late, err := r.CreateEntry(ctx, newTestEntry(42, 2))
		require.NoError(t, err)

		_, err = testDB.Exec(`UPDATE last_longer_pools SET winner_id = 1 WHERE event_id = 42`)
		require.NoError(t, err)

		err = r.MarkEntryPaid(ctx, late.ID, now)
		assert.ErrorIs(t, err, apperrors.ErrDoubleTransition)

		entry, err := r.GetEntry(ctx, late.ID)
		require.NoError(t, err)
		assert.Equal(t, models.EntryStatusAwaitingPayment, entry.Status)
	})
}

func TestPoolRepo_SelectWinner(t *testing.T) {
	r := NewPoolRepository(testDB)
	b := NewBalanceRepository(testDB)
	ctx := context.Background()
	now := time.Now().UTC()

	setupPoolTestData(t, testDB)

	for userID := int64(1); userID <= 3; userID++ {
		created, err := r.CreateEntry(ctx, newTestEntry(42, userID))
		require.NoError(t, err)
		require.NoError(t, r.MarkEntryPaid(ctx, created.ID, now))
	}

	t.Run("winner without a paid entry rejected", func(t *testing.T) {
		_, err := r.SelectWinner(ctx, 42, 99)
		assert.ErrorIs(t, err, apperrors.ErrNoPaidEntry)
	})

	t.Run("pot credited exactly once", func(t *testing.T) {
		pool, err := r.SelectWinner(ctx, 42, 2)
		require.NoError(t, err)
		require.NotNil(t, pool.WinnerID)
		assert.Equal(t, int64(2), *pool.WinnerID)
		assert.Equal(t, int64(1000+200*3), pool.TotalPot)

		balance, err := b.GetBalance(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1600), balance.BalanceSats)
	})

	t.Run("second selection rejected", func(t *testing.T) {
		_, err := r.SelectWinner(ctx, 42, 3)
		assert.ErrorIs(t, err, apperrors.ErrPoolResolved)

		balance, err := b.GetBalance(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance.BalanceSats)
	})

	t.Run("unknown pool", func(t *testing.T) {
		_, err := r.SelectWinner(ctx, 999, 1)
		assert.ErrorIs(t, err, apperrors.ErrPoolNotFound)
	})
}

func TestPoolRepo_ExpireEntries(t *testing.T) {
	r := NewPoolRepository(testDB)
	ctx := context.Background()
	now := time.Now().UTC()

	setupPoolTestData(t, testDB)

	stale := newTestEntry(42, 1)
	stale.ExpiresAt = now.Add(-time.Minute)
	createdStale, err := r.CreateEntry(ctx, stale)
	require.NoError(t, err)

	fresh, err := r.CreateEntry(ctx, newTestEntry(42, 2))
	require.NoError(t, err)

	paid := newTestEntry(42, 3)
	paid.ExpiresAt = now.Add(-time.Minute)
	createdPaid, err := r.CreateEntry(ctx, paid)
	require.NoError(t, err)
	require.NoError(t, r.MarkEntryPaid(ctx, createdPaid.ID, now))

	expired, err := r.ExpireEntries(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	entry, err := r.GetEntry(ctx, createdStale.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EntryStatusExpired, entry.Status)

	entry, err = r.GetEntry(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EntryStatusAwaitingPayment, entry.Status)

	entry, err = r.GetEntry(ctx, createdPaid.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EntryStatusPaid, entry.Status)
}
