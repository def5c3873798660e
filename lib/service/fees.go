package service

import (
	"context"

	"github.com/markethub/markethub.go/common"
	"github.com/markethub/markethub.go/db/models"
	"github.com/uptrace/bun"
)

// InitListingFee seeds the persisted listing fee on the very first startup.
// An existing value is left alone, fee updates survive restarts.
func (svc *MarketService) InitListingFee(ctx context.Context) error {
	setting := models.Setting{
		Key:   common.SettingListingFee,
		Value: svc.Config.DefaultListingFee,
	}
	_, err := svc.DB.NewInsert().Model(&setting).On("CONFLICT (key) DO NOTHING").Exec(ctx)
	return err
}

// GetListingFee returns the flat fee charged on every create and resell.
func (svc *MarketService) GetListingFee(ctx context.Context) (int64, error) {
	return svc.listingFee(ctx, svc.DB)
}

func (svc *MarketService) listingFee(ctx context.Context, idb bun.IDB) (int64, error) {
	var setting models.Setting
	err := idb.NewSelect().Model(&setting).Where("key = ?", common.SettingListingFee).Limit(1).Scan(ctx)
	if err != nil {
		return 0, err
	}
	return setting.Value, nil
}

// UpdateListingFee sets a new listing fee. Only the administrator may do
// this, every other caller gets ErrNotAuthorized.
func (svc *MarketService) UpdateListingFee(ctx context.Context, callerId int64, newFee int64) (int64, error) {
	svc.writerMu.Lock()
	defer svc.writerMu.Unlock()

	if callerId != svc.AdminID {
		return 0, ErrNotAuthorized
	}
	if newFee < 0 {
		return 0, ErrNegativeFee
	}

	setting := models.Setting{
		Key:   common.SettingListingFee,
		Value: newFee,
	}
	_, err := svc.DB.NewUpdate().Model(&setting).WherePK().Exec(ctx)
	if err != nil {
		return 0, err
	}
	return newFee, nil
}
