package service

import (
	"context"
	"database/sql"

	"github.com/markethub/markethub.go/common"
	"github.com/markethub/markethub.go/db/models"
	"github.com/markethub/markethub.go/lib/security"
	"github.com/uptrace/bun"
)

func (svc *MarketService) CreateUser(ctx context.Context, login string, password string, nickname string) (user *models.User, err error) {

	user = &models.User{}

	// generate user login/password if not provided
	user.Login = login
	if login == "" {
		randLoginBytes, err := randBytesFromStr(20, alphaNumBytes)
		if err != nil {
			return nil, err
		}
		user.Login = string(randLoginBytes)
	}

	if password == "" {
		randPasswordBytes, err := randBytesFromStr(20, alphaNumBytes)
		if err != nil {
			return nil, err
		}
		password = string(randPasswordBytes)
	}
	user.Nickname = nickname

	// we only store the hashed password but return the initial plain text password in the HTTP response
	user.Password = security.HashPassword(password)

	// Create the user and the user's accounts
	// We use double-entry bookkeeping so we use 4 accounts: incoming, current, outgoing and fees
	// Wrapping this in a transaction in case something fails
	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
			return err
		}
		accountTypes := []string{
			common.AccountTypeIncoming,
			common.AccountTypeCurrent,
			common.AccountTypeOutgoing,
			common.AccountTypeFees,
		}
		for _, accountType := range accountTypes {
			account := models.Account{UserID: user.ID, Type: accountType}
			if _, err := tx.NewInsert().Model(&account).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	//return the actual password in the response, not the hashed one
	user.Password = password
	return user, err
}

func (svc *MarketService) UpdateUser(ctx context.Context, userId int64, login *string, password *string, deactivated *bool) (user *models.User, err error) {
	user, err = svc.FindUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if login != nil {
		user.Login = *login
	}
	if password != nil {
		user.Password = security.HashPassword(*password)
	}
	if deactivated != nil {
		user.Deactivated = *deactivated
	}
	_, err = svc.DB.NewUpdate().Model(user).WherePK().Exec(ctx)
	return user, err
}

// InitAdminUser resolves the administrator identity at startup. The admin
// user is created on first boot, all subsequent boots find it by login.
func (svc *MarketService) InitAdminUser(ctx context.Context) (*models.User, error) {
	admin, err := svc.FindUserByLogin(ctx, svc.Config.AdminLogin)
	if err == nil {
		svc.AdminID = admin.ID
		return admin, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}
	admin, err = svc.CreateUser(ctx, svc.Config.AdminLogin, "", "")
	if err != nil {
		return nil, err
	}
	svc.Logger.Infof("Created administrator %s with password %s, please store it", admin.Login, admin.Password)
	svc.AdminID = admin.ID
	return admin, nil
}

func (svc *MarketService) FindUser(ctx context.Context, userId int64) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("id = ?", userId).Limit(1).Scan(ctx)
	if err != nil {
		return &user, err
	}
	return &user, nil
}

func (svc *MarketService) FindUserByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("login = ?", login).Limit(1).Scan(ctx)
	if err != nil {
		return &user, err
	}
	return &user, nil
}

func (svc *MarketService) CurrentUserBalance(ctx context.Context, userId int64) (int64, error) {
	account, err := svc.AccountFor(ctx, common.AccountTypeCurrent, userId)
	if err != nil {
		return 0, err
	}
	return svc.accountBalance(ctx, svc.DB, account.ID)
}

func (svc *MarketService) AccountFor(ctx context.Context, accountType string, userId int64) (models.Account, error) {
	return svc.accountFor(ctx, svc.DB, accountType, userId)
}

func (svc *MarketService) accountFor(ctx context.Context, idb bun.IDB, accountType string, userId int64) (models.Account, error) {
	account := models.Account{}
	err := idb.NewSelect().Model(&account).Where("user_id = ? AND type = ?", userId, accountType).Limit(1).Scan(ctx)
	return account, err
}

// accountBalance sums the entries touching the account: credits add,
// debits subtract. Runs on the given IDB so callers inside a transaction
// see their own uncommitted entries.
func (svc *MarketService) accountBalance(ctx context.Context, idb bun.IDB, accountId int64) (int64, error) {
	var balance int64
	err := idb.NewSelect().
		Model((*models.TransactionEntry)(nil)).
		ColumnExpr("coalesce(sum(case when credit_account_id = ? then amount else -amount end), 0)", accountId).
		Where("credit_account_id = ? OR debit_account_id = ?", accountId, accountId).
		Scan(ctx, &balance)
	return balance, err
}

// TransactionEntriesFor lists both sides of a user's history: entries the
// user paid for and entries crediting one of the user's accounts (sale
// proceeds, collected fees).
func (svc *MarketService) TransactionEntriesFor(ctx context.Context, userId int64) ([]models.TransactionEntry, error) {
	transactionEntries := []models.TransactionEntry{}
	err := svc.DB.NewSelect().
		Model(&transactionEntries).
		Join("JOIN accounts AS credit_account ON credit_account.id = transaction_entry.credit_account_id").
		Where("transaction_entry.user_id = ? OR credit_account.user_id = ?", userId, userId).
		OrderExpr("transaction_entry.id ASC").
		Scan(ctx)
	return transactionEntries, err
}

// TopUp credits a user's current account from its incoming account. This is
// the operator-facing way of funding an account, there is no deposit rail
// in scope.
func (svc *MarketService) TopUp(ctx context.Context, userId int64, amount int64) (entry models.TransactionEntry, err error) {
	svc.writerMu.Lock()
	defer svc.writerMu.Unlock()

	debitAccount, err := svc.AccountFor(ctx, common.AccountTypeIncoming, userId)
	if err != nil {
		return entry, err
	}
	creditAccount, err := svc.AccountFor(ctx, common.AccountTypeCurrent, userId)
	if err != nil {
		return entry, err
	}
	entry = models.TransactionEntry{
		UserID:          userId,
		CreditAccountID: creditAccount.ID,
		DebitAccountID:  debitAccount.ID,
		Amount:          amount,
		EntryType:       common.EntryTypeTopUp,
	}
	_, err = svc.DB.NewInsert().Model(&entry).Exec(ctx)
	return entry, err
}
