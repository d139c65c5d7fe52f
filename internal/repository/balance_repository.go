package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pokerleague/lnpayments/internal/apperrors"
	"github.com/pokerleague/lnpayments/internal/logger"
	"github.com/pokerleague/lnpayments/internal/models"
	"go.uber.org/zap"
)

type BalanceRepository interface {
	GetBalance(ctx context.Context, userID int64) (models.Balance, error)
	Credit(ctx context.Context, userID int64, amountSats int64, reason string) (int64, error)
	Reserve(ctx context.Context, userID int64, amountSats int64, reason string) (int64, error)
	GetAuditTrail(ctx context.Context, userID int64) ([]models.AuditEntry, error)
}

type balanceRepo struct {
	db *sql.DB
}

func NewBalanceRepository(db *sql.DB) BalanceRepository {
	return &balanceRepo{db: db}
}

func (r *balanceRepo) GetBalance(ctx context.Context, userID int64) (models.Balance, error) {
	var balance models.Balance
	balance.UserID = userID
	query := `
		SELECT balance_sats FROM user_balances WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&balance.BalanceSats)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Balance{UserID: userID, BalanceSats: 0}, nil
	}
	if err != nil {
		logger.Log.Error("failed to get balance", zap.Error(err))
		return models.Balance{}, err
	}
	return balance, nil
}

func (r *balanceRepo) Credit(ctx context.Context, userID int64, amountSats int64, reason string) (int64, error) {
	if amountSats <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error")
			}
		}
	}()

	var newBalance int64
	newBalance, err = creditTx(ctx, tx, userID, amountSats, reason)
	if err != nil {
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

func (r *balanceRepo) Reserve(ctx context.Context, userID int64, amountSats int64, reason string) (int64, error) {
	if amountSats <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error")
			}
		}
	}()

	var newBalance int64
	newBalance, err = reserveTx(ctx, tx, userID, amountSats, reason)
	if err != nil {
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

func (r *balanceRepo) GetAuditTrail(ctx context.Context, userID int64) ([]models.AuditEntry, error) {
	query := `
		SELECT id, user_id, delta_sats, balance_after, reason, created_at
		FROM balance_audit WHERE user_id = $1 ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query audit trail", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.DeltaSats, &e.BalanceAfter, &e.Reason, &e.CreatedAt); err != nil {
			logger.Log.Error("failed to scan audit entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// creditTx increases the balance and appends the paired audit row inside the
// caller's transaction. Every balance mutation in the package goes through
// creditTx or reserveTx, so the audit trail is complete by construction.
func creditTx(ctx context.Context, tx *sql.Tx, userID int64, amountSats int64, reason string) (int64, error) {
	var newBalance int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO user_balances (user_id, balance_sats)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET balance_sats = user_balances.balance_sats + EXCLUDED.balance_sats
		RETURNING balance_sats
	`, userID, amountSats).Scan(&newBalance)
	if err != nil {
		return 0, err
	}

	if err := appendAuditTx(ctx, tx, userID, amountSats, newBalance, reason); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// reserveTx is the single enforcement point for the non-negativity invariant:
// the conditional update checks and decrements in one statement, so two
// concurrent reservations can never both succeed past the balance.
func reserveTx(ctx context.Context, tx *sql.Tx, userID int64, amountSats int64, reason string) (int64, error) {
	var newBalance int64
	err := tx.QueryRowContext(ctx, `
		UPDATE user_balances
		SET balance_sats = balance_sats - $1
		WHERE user_id = $2 AND balance_sats >= $1
		RETURNING balance_sats
	`, amountSats, userID).Scan(&newBalance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.ErrInsufficientBalance
	}
	if err != nil {
		return 0, err
	}

	if err := appendAuditTx(ctx, tx, userID, -amountSats, newBalance, reason); err != nil {
		return 0, err
	}
	return newBalance, nil
}

func appendAuditTx(ctx context.Context, tx *sql.Tx, userID, deltaSats, balanceAfter int64, reason string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO balance_audit (user_id, delta_sats, balance_after, reason)
		VALUES ($1, $2, $3, $4)
	`, userID, deltaSats, balanceAfter, reason)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}
