package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/models"
	"go.uber.org/zap"
)

type PoolRepository interface {
	UpsertPool(ctx context.Context, pool models.LastLongerPool) error
	GetPool(ctx context.Context, eventID int64) (models.LastLongerPool, error)
	CreateEntry(ctx context.Context, entry models.PoolEntry) (models.PoolEntry, error)
	GetEntry(ctx context.Context, id int64) (models.PoolEntry, error)
	GetActiveEntry(ctx context.Context, eventID, userID int64) (*models.PoolEntry, error)
	GetEntries(ctx context.Context, eventID int64) ([]models.PoolEntry, error)
	MarkEntryPaid(ctx context.Context, id int64, paidAt time.Time) error
	SelectWinner(ctx context.Context, eventID, winnerID int64) (models.LastLongerPool, error)
	ExpireEntries(ctx context.Context, now time.Time) (int64, error)
}

type poolRepo struct {
	db *sql.DB
}

func NewPoolRepository(db *sql.DB) PoolRepository {
	return &poolRepo{db: db}
}

const entryColumns = `id, event_id, user_id, amount_sats, payment_hash, payment_request, status, created_at, expires_at, paid_at`

func scanEntry(row interface {
	Scan(dest ...interface{}) error
}) (models.PoolEntry, error) {
	var e models.PoolEntry
	err := row.Scan(&e.ID, &e.EventID, &e.UserID, &e.AmountSats, &e.PaymentHash,
		&e.PaymentRequest, &e.Status, &e.CreatedAt, &e.ExpiresAt, &e.PaidAt)
	return e, err
}

func (r *poolRepo) UpsertPool(ctx context.Context, pool models.LastLongerPool) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO last_longer_pools (event_id, enabled, seed_sats, entry_sats)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO UPDATE
		SET enabled = EXCLUDED.enabled,
		    seed_sats = EXCLUDED.seed_sats,
		    entry_sats = EXCLUDED.entry_sats
		WHERE last_longer_pools.winner_id IS NULL
	`, pool.EventID, pool.Enabled, pool.SeedSats, pool.EntrySats)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrPoolResolved
	}
	return nil
}

// GetPool derives the pot from the count of PAID entries instead of keeping a
// stored total in sync.
func (r *poolRepo) GetPool(ctx context.Context, eventID int64) (models.LastLongerPool, error) {
	var pool models.LastLongerPool
	err := r.db.QueryRowContext(ctx, `
		SELECT p.event_id, p.enabled, p.seed_sats, p.entry_sats, p.winner_id,
		       COUNT(e.id) FILTER (WHERE e.status = $2)
		FROM last_longer_pools p
		LEFT JOIN pool_entries e ON e.event_id = p.event_id
		WHERE p.event_id = $1
		GROUP BY p.event_id, p.enabled, p.seed_sats, p.entry_sats, p.winner_id
	`, eventID, models.EntryStatusPaid).Scan(&pool.EventID, &pool.Enabled,
		&pool.SeedSats, &pool.EntrySats, &pool.WinnerID, &pool.PaidEntries)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LastLongerPool{}, apperrors.ErrPoolNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get pool", zap.Error(err))
		return models.LastLongerPool{}, err
	}
	pool.TotalPot = pool.SeedSats + pool.EntrySats*pool.PaidEntries
	return pool, nil
}

// CreateEntry re-checks the terminal invariant inside the insert itself: the
// row only materializes while winner_id is still NULL, so a winner selection
// committing after the service-level read cannot admit a late entrant.
func (r *poolRepo) CreateEntry(ctx context.Context, entry models.PoolEntry) (models.PoolEntry, error) {
	created, err := scanEntry(r.db.QueryRowContext(ctx, `
		INSERT INTO pool_entries (event_id, user_id, amount_sats, payment_hash, payment_request, status, created_at, expires_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		FROM last_longer_pools
		WHERE event_id = $1 AND winner_id IS NULL
		RETURNING `+entryColumns+`
	`, entry.EventID, entry.UserID, entry.AmountSats, entry.PaymentHash,
		entry.PaymentRequest, models.EntryStatusAwaitingPayment, entry.CreatedAt, entry.ExpiresAt))
	if err != nil {
		if isUniqueViolation(err) {
			return models.PoolEntry{}, apperrors.ErrAlreadyEntered
		}
		if errors.Is(err, sql.ErrNoRows) {
			return models.PoolEntry{}, apperrors.ErrPoolResolved
		}
		return models.PoolEntry{}, err
	}
	return created, nil
}

func (r *poolRepo) GetEntry(ctx context.Context, id int64) (models.PoolEntry, error) {
	e, err := scanEntry(r.db.QueryRowContext(ctx, `
		SELECT `+entryColumns+` FROM pool_entries WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PoolEntry{}, apperrors.ErrEntryNotFound
	}
	return e, err
}

func (r *poolRepo) GetActiveEntry(ctx context.Context, eventID, userID int64) (*models.PoolEntry, error) {
	e, err := scanEntry(r.db.QueryRowContext(ctx, `
		SELECT `+entryColumns+` FROM pool_entries
		WHERE event_id = $1 AND user_id = $2 AND status <> $3
	`, eventID, userID, models.EntryStatusExpired))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *poolRepo) GetEntries(ctx context.Context, eventID int64) ([]models.PoolEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+entryColumns+` FROM pool_entries WHERE event_id = $1 ORDER BY created_at
	`, eventID)
	if err != nil {
		logger.Log.Error("failed to query pool entries", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var entries []models.PoolEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			logger.Log.Error("failed to scan pool entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MarkEntryPaid is the exactly-once AWAITING_PAYMENT->PAID transition; a
// repeated settlement check finds zero rows and contributes nothing twice.
// The join keeps settled-but-late invoices out of a resolved pool's pot.
func (r *poolRepo) MarkEntryPaid(ctx context.Context, id int64, paidAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pool_entries e
		SET status = $1, paid_at = $2
		FROM last_longer_pools p
		WHERE e.id = $3 AND e.status = $4
		  AND p.event_id = e.event_id AND p.winner_id IS NULL
	`, models.EntryStatusPaid, paidAt, id, models.EntryStatusAwaitingPayment)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: entry %d to %s", apperrors.ErrDoubleTransition, id, models.EntryStatusPaid)
	}
	return nil
}

// SelectWinner credits the pot and marks the pool resolved in one
// transaction: a crash between the two writes must not leave the pool payable
// twice nor unpayable.
func (r *poolRepo) SelectWinner(ctx context.Context, eventID, winnerID int64) (models.LastLongerPool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.LastLongerPool{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error")
			}
		}
	}()

	var pool models.LastLongerPool
	err = tx.QueryRowContext(ctx, `
		SELECT event_id, enabled, seed_sats, entry_sats, winner_id
		FROM last_longer_pools WHERE event_id = $1 FOR UPDATE
	`, eventID).Scan(&pool.EventID, &pool.Enabled, &pool.SeedSats, &pool.EntrySats, &pool.WinnerID)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrPoolNotFound
		return models.LastLongerPool{}, err
	}
	if err != nil {
		return models.LastLongerPool{}, err
	}
	if pool.WinnerID != nil {
		err = apperrors.ErrPoolResolved
		return models.LastLongerPool{}, err
	}

	var hasPaidEntry bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pool_entries
			WHERE event_id = $1 AND user_id = $2 AND status = $3
		)
	`, eventID, winnerID, models.EntryStatusPaid).Scan(&hasPaidEntry)
	if err != nil {
		return models.LastLongerPool{}, err
	}
	if !hasPaidEntry {
		err = apperrors.ErrNoPaidEntry
		return models.LastLongerPool{}, err
	}

	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM pool_entries WHERE event_id = $1 AND status = $2
	`, eventID, models.EntryStatusPaid).Scan(&pool.PaidEntries)
	if err != nil {
		return models.LastLongerPool{}, err
	}
	pool.TotalPot = pool.SeedSats + pool.EntrySats*pool.PaidEntries

	var res sql.Result
	res, err = tx.ExecContext(ctx, `
		UPDATE last_longer_pools SET winner_id = $1
		WHERE event_id = $2 AND winner_id IS NULL
	`, winnerID, eventID)
	if err != nil {
		return models.LastLongerPool{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.LastLongerPool{}, err
	}
	if affected == 0 {
		err = apperrors.ErrPoolResolved
		return models.LastLongerPool{}, err
	}

	_, err = creditTx(ctx, tx, winnerID, pool.TotalPot, fmt.Sprintf("last-longer-pool:%d", eventID))
	if err != nil {
		return models.LastLongerPool{}, err
	}

	err = tx.Commit()
	if err != nil {
		return models.LastLongerPool{}, err
	}

	pool.WinnerID = &winnerID
	return pool, nil
}

// ExpireEntries has no ledger side: entries reserve nothing until settled.
func (r *poolRepo) ExpireEntries(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pool_entries SET status = $1
		WHERE status = $2 AND expires_at <= $3
	`, models.EntryStatusExpired, models.EntryStatusAwaitingPayment, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
