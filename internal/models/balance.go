package models

import "time"

type Balance struct {
	UserID      int64 `json:"-" db:"user_id"`
	BalanceSats int64 `json:"balanceSats" db:"balance_sats"`
}

type AuditEntry struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"-" db:"user_id"`
	DeltaSats    int64     `json:"deltaSats" db:"delta_sats"`
	BalanceAfter int64     `json:"balanceAfter" db:"balance_after"`
	Reason       string    `json:"reason" db:"reason"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
