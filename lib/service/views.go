package service

import (
	"context"

	"github.com/markethub/markethub.go/common"
	"github.com/markethub/markethub.go/db/models"
)

// Read-only views over the listing ledger. All of them are plain SELECTs
// against committed state, ordered by ascending asset id (creation order)
// so repeated queries are stable.

// FetchListed returns all unsold listings.
func (svc *MarketService) FetchListed(ctx context.Context) ([]models.Listing, error) {
	listings := []models.Listing{}
	err := svc.DB.NewSelect().
		Model(&listings).
		Relation("Asset").
		Where("listing.state = ?", common.ListingStateListed).
		OrderExpr("listing.asset_id ASC").
		Scan(ctx)
	return listings, err
}

// FetchHeldBy returns the listings whose asset is currently held by the
// given user. While an asset sits in market custody it shows up for nobody.
func (svc *MarketService) FetchHeldBy(ctx context.Context, userId int64) ([]models.Listing, error) {
	listings := []models.Listing{}
	err := svc.DB.NewSelect().
		Model(&listings).
		Relation("Asset").
		Where("asset.holder_id = ?", userId).
		OrderExpr("listing.asset_id ASC").
		Scan(ctx)
	return listings, err
}

// FetchListedBy returns the user's own active listings.
func (svc *MarketService) FetchListedBy(ctx context.Context, userId int64) ([]models.Listing, error) {
	listings := []models.Listing{}
	err := svc.DB.NewSelect().
		Model(&listings).
		Relation("Asset").
		Where("listing.seller_id = ? AND listing.state = ?", userId, common.ListingStateListed).
		OrderExpr("listing.asset_id ASC").
		Scan(ctx)
	return listings, err
}

// FindListing returns the listing for one asset, sold or not.
func (svc *MarketService) FindListing(ctx context.Context, assetId int64) (*models.Listing, error) {
	listing, err := svc.findListingForAsset(ctx, svc.DB, assetId)
	if err != nil {
		return nil, err
	}
	asset, err := svc.findAsset(ctx, svc.DB, assetId)
	if err != nil {
		return nil, err
	}
	listing.Asset = asset
	return listing, nil
}
