package models

// Account : Account Model
//
// Every user gets one account per type (incoming, current, outgoing, fees).
// Balances are never stored, they are the sum of the transaction entries
// that credit and debit the account.
type Account struct {
	ID     int64  `bun:",pk,autoincrement"`
	UserID int64  `bun:",notnull"`
	User   *User  `bun:"rel:belongs-to,join:user_id=id"`
	Type   string `bun:",notnull"`
}
