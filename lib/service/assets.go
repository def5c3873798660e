package service

import (
	"context"
	"database/sql"

	"github.com/markethub/markethub.go/common"
	"github.com/markethub/markethub.go/db/models"
	"github.com/uptrace/bun"
)

// The asset registry owns the id -> holder mapping. Minting and transfers
// only ever happen from inside a listing transaction, which is why the
// mutating primitives take the transaction they must run on.

// mintAsset allocates the next asset id and places the asset in market
// custody. The metadata ref is stored as-is, the ledger never interprets it.
func (svc *MarketService) mintAsset(ctx context.Context, tx bun.Tx, metadataRef string) (*models.Asset, error) {
	asset := &models.Asset{
		MetadataRef: metadataRef,
		HolderID:    common.MarketCustodyID,
	}
	if _, err := tx.NewInsert().Model(asset).Exec(ctx); err != nil {
		return nil, err
	}
	return asset, nil
}

// transferAsset reassigns the holder. It moves no funds.
func (svc *MarketService) transferAsset(ctx context.Context, tx bun.Tx, assetId int64, to int64) error {
	res, err := tx.NewUpdate().
		Model((*models.Asset)(nil)).
		Set("holder_id = ?", to).
		Where("id = ?", assetId).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUnknownAsset
	}
	return nil
}

func (svc *MarketService) findAsset(ctx context.Context, idb bun.IDB, assetId int64) (*models.Asset, error) {
	var asset models.Asset
	err := idb.NewSelect().Model(&asset).Where("id = ?", assetId).Limit(1).Scan(ctx)
	if err == sql.ErrNoRows {
		return nil, ErrUnknownAsset
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// HolderOf returns the current holder of the asset,
// common.MarketCustodyID while the asset is listed.
func (svc *MarketService) HolderOf(ctx context.Context, assetId int64) (int64, error) {
	asset, err := svc.findAsset(ctx, svc.DB, assetId)
	if err != nil {
		return 0, err
	}
	return asset.HolderID, nil
}

// MetadataRef returns the opaque metadata pointer stored at mint time.
func (svc *MarketService) MetadataRef(ctx context.Context, assetId int64) (string, error) {
	asset, err := svc.findAsset(ctx, svc.DB, assetId)
	if err != nil {
		return "", err
	}
	return asset.MetadataRef, nil
}
