package models

import (
	"time"
)

// AccountStatus represents the lifecycle state of an account
type AccountStatus string

const (
	AccountStatusInUse        AccountStatus = "IN_USE"
	AccountStatusUnregistered AccountStatus = "UNREGISTERED"
)

// AccountUser is the owner of one or more accounts. Users are provisioned outside
// the ledger and only ever read here.
type AccountUser struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Name      string    `db:"name"`
	ID        int64     `db:"id"`
}

// Account represents a customer account and its balance in minor currency units
type Account struct {
	RegisteredAt   time.Time     `db:"registered_at"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
	UnregisteredAt *time.Time    `db:"unregistered_at"`
	AccountNumber  string        `db:"account_number"`
	Status         AccountStatus `db:"status"`
	Balance        int64         `db:"balance"`
	ID             int64         `db:"id"`
	UserID         int64         `db:"account_user_id"`
}

// IsClosed reports whether the account has been unregistered
func (a *Account) IsClosed() bool {
	return a.Status == AccountStatusUnregistered
}
