package models

import (
	"time"
)

// TransactionEntry : Transaction Entries Model
//
// Double-entry bookkeeping: every fund movement is one entry debiting one
// account and crediting another. Listing fees move buyer current -> admin
// fees, sale proceeds move buyer current -> seller current, top-ups move
// user incoming -> user current.
type TransactionEntry struct {
	ID              int64     `bun:",pk,autoincrement"`
	UserID          int64     `bun:",notnull"`
	User            *User     `bun:"rel:belongs-to,join:user_id=id"`
	ListingID       int64     `bun:",nullzero"`
	Listing         *Listing  `bun:"rel:belongs-to,join:listing_id=id"`
	CreditAccountID int64     `bun:",notnull"`
	CreditAccount   *Account  `bun:"rel:belongs-to,join:credit_account_id=id"`
	DebitAccountID  int64     `bun:",notnull"`
	DebitAccount    *Account  `bun:"rel:belongs-to,join:debit_account_id=id"`
	Amount          int64     `bun:",notnull"`
	EntryType       string    `bun:",notnull"`
	CreatedAt       time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
