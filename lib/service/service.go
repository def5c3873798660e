package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/labstack/gommon/random"
	"github.com/markethub/markethub.go/db/models"
	"github.com/markethub/markethub.go/lib/tokens"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
	"golang.org/x/crypto/bcrypt"
)

const alphaNumBytes = random.Alphanumeric

// MarketService is the single state-transition authority of the marketplace.
// Every mutating operation holds writerMu for the duration of its DB
// transaction, so operations are strictly serialized and no partial effect
// is ever observable. Listing events are published only after the lock is
// released again.
type MarketService struct {
	Config        *Config
	DB            *bun.DB
	Logger        *lecho.Logger
	ListingPubSub *Pubsub

	// AdminID is the administrator user id, resolved once at startup by
	// InitAdminUser and never changed afterwards.
	AdminID int64

	writerMu sync.Mutex
}

// runInTxLocked serializes a marketplace write: the writer lock is held for
// exactly the duration of the transaction. Event publishing happens outside,
// a slow event consumer must never stall the ledger.
func (svc *MarketService) runInTxLocked(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	svc.writerMu.Lock()
	defer svc.writerMu.Unlock()
	return svc.DB.RunInTx(ctx, &sql.TxOptions{}, fn)
}

func (svc *MarketService) GenerateToken(ctx context.Context, login, password, inRefreshToken string) (accessToken, refreshToken string, err error) {
	var user models.User

	switch {
	case login != "" || password != "":
		{
			if err := svc.DB.NewSelect().Model(&user).Where("login = ?", login).Limit(1).Scan(ctx); err != nil {
				return "", "", fmt.Errorf("bad auth")
			}
			if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
				return "", "", fmt.Errorf("bad auth")
			}
		}
	case inRefreshToken != "":
		{
			userId, err := tokens.GetUserIdFromRefreshToken(svc.Config.JWTSecret, inRefreshToken)
			if err != nil {
				return "", "", fmt.Errorf("bad auth")
			}

			if err := svc.DB.NewSelect().Model(&user).Where("id = ?", userId).Limit(1).Scan(ctx); err != nil {
				return "", "", fmt.Errorf("bad auth")
			}
		}
	default:
		{
			return "", "", fmt.Errorf("login and password or refresh token is required")
		}
	}

	if user.Deactivated {
		return "", "", fmt.Errorf("account deactivated")
	}

	accessToken, err = tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, &user)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = tokens.GenerateRefreshToken(svc.Config.JWTSecret, svc.Config.JWTRefreshTokenExpiry, &user)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
