package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/markethub/markethub.go/common"
	"github.com/markethub/markethub.go/db/models"
	"github.com/uptrace/bun"
)

// CreateListing mints a new asset and puts it up for sale in one atomic
// step. The caller pays the current listing fee, which is retained by the
// administrator; the freshly minted asset goes straight into market custody.
func (svc *MarketService) CreateListing(ctx context.Context, callerId int64, metadataRef string, price int64, payment int64) (listing *models.Listing, err error) {
	if price <= 0 {
		return nil, ErrPriceIsNull
	}

	err = svc.runInTxLocked(ctx, func(ctx context.Context, tx bun.Tx) error {
		fee, err := svc.listingFee(ctx, tx)
		if err != nil {
			return err
		}
		// exact-equality on purpose: overpaying the fee is rejected just
		// like underpaying, the ledger never keeps unaccounted change
		if payment != fee {
			return ErrListingPriceNotMet
		}

		asset, err := svc.mintAsset(ctx, tx, metadataRef)
		if err != nil {
			return err
		}

		listing = &models.Listing{
			AssetID:  asset.ID,
			SellerID: callerId,
			Price:    price,
			State:    common.ListingStateListed,
		}
		if _, err := tx.NewInsert().Model(listing).Exec(ctx); err != nil {
			return err
		}
		listing.Asset = asset

		return svc.payListingFee(ctx, tx, callerId, listing.ID, fee)
	})
	if err != nil {
		return nil, err
	}

	svc.ListingPubSub.Publish(common.ListingEventCreated, ListingEvent{
		Type:     common.ListingEventCreated,
		AssetID:  listing.AssetID,
		SellerID: listing.SellerID,
		Price:    listing.Price,
	})
	return listing, nil
}

// BuyListing purchases a listed asset. The full payment goes to the seller
// and custody moves from the market to the buyer, both inside the same
// transaction. The listing row is kept (price history), only seller and
// state change.
func (svc *MarketService) BuyListing(ctx context.Context, callerId int64, assetId int64, payment int64) (listing *models.Listing, err error) {
	err = svc.runInTxLocked(ctx, func(ctx context.Context, tx bun.Tx) error {
		listing, err = svc.findListingForAsset(ctx, tx, assetId)
		if err != nil {
			return err
		}
		if listing.State == common.ListingStateSold {
			return ErrAlreadySold
		}
		if payment != listing.Price {
			return ErrSalePriceNotMet
		}

		if err := svc.moveFunds(ctx, tx, callerId, listing.SellerID, listing.ID, payment, common.EntryTypeSale); err != nil {
			return err
		}
		if err := svc.transferAsset(ctx, tx, assetId, callerId); err != nil {
			return err
		}

		listing.SellerID = 0
		listing.State = common.ListingStateSold
		listing.SoldAt = bun.NullTime{Time: time.Now()}
		_, err = tx.NewUpdate().Model(listing).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if listing.Asset, err = svc.findAsset(ctx, svc.DB, assetId); err != nil {
		return nil, err
	}

	svc.ListingPubSub.Publish(common.ListingEventSold, ListingEvent{
		Type:    common.ListingEventSold,
		AssetID: assetId,
		BuyerID: callerId,
		Price:   listing.Price,
	})
	return listing, nil
}

// ResellListing reopens a sold listing under the current holder as seller.
// Custody moves back to the market and the flat listing fee is charged
// again, exactly as on create.
func (svc *MarketService) ResellListing(ctx context.Context, callerId int64, assetId int64, newPrice int64, payment int64) (listing *models.Listing, err error) {
	err = svc.runInTxLocked(ctx, func(ctx context.Context, tx bun.Tx) error {
		asset, err := svc.findAsset(ctx, tx, assetId)
		if err != nil {
			return err
		}
		if asset.HolderID != callerId {
			return ErrNotAssetHolder
		}
		if newPrice <= 0 {
			return ErrPriceIsNull
		}
		fee, err := svc.listingFee(ctx, tx)
		if err != nil {
			return err
		}
		if payment != fee {
			return ErrListingPriceNotMet
		}

		listing, err = svc.findListingForAsset(ctx, tx, assetId)
		if err != nil {
			return err
		}
		if err := svc.payListingFee(ctx, tx, callerId, listing.ID, fee); err != nil {
			return err
		}
		if err := svc.transferAsset(ctx, tx, assetId, common.MarketCustodyID); err != nil {
			return err
		}

		listing.SellerID = callerId
		listing.Price = newPrice
		listing.State = common.ListingStateListed
		listing.SoldAt = bun.NullTime{}
		_, err = tx.NewUpdate().Model(listing).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if listing.Asset, err = svc.findAsset(ctx, svc.DB, assetId); err != nil {
		return nil, err
	}

	svc.ListingPubSub.Publish(common.ListingEventRelisted, ListingEvent{
		Type:     common.ListingEventRelisted,
		AssetID:  assetId,
		SellerID: callerId,
		Price:    newPrice,
	})
	return listing, nil
}

func (svc *MarketService) findListingForAsset(ctx context.Context, idb bun.IDB, assetId int64) (*models.Listing, error) {
	var listing models.Listing
	err := idb.NewSelect().Model(&listing).Where("asset_id = ?", assetId).Limit(1).Scan(ctx)
	if err == sql.ErrNoRows {
		return nil, ErrUnknownAsset
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// payListingFee debits the caller's current account and credits the
// administrator's fees account. The fee is not refundable.
func (svc *MarketService) payListingFee(ctx context.Context, tx bun.Tx, callerId int64, listingId int64, fee int64) error {
	if fee == 0 {
		return nil
	}
	return svc.moveFunds(ctx, tx, callerId, svc.AdminID, listingId, fee, common.EntryTypeListingFee)
}

// moveFunds inserts the double-entry record for a payment after checking
// that the payer can actually cover it. Fees credit the recipient's fees
// account, sale proceeds its current account.
func (svc *MarketService) moveFunds(ctx context.Context, tx bun.Tx, fromUserId int64, toUserId int64, listingId int64, amount int64, entryType string) error {
	debitAccount, err := svc.accountFor(ctx, tx, common.AccountTypeCurrent, fromUserId)
	if err != nil {
		return err
	}
	creditAccountType := common.AccountTypeCurrent
	if entryType == common.EntryTypeListingFee {
		creditAccountType = common.AccountTypeFees
	}
	creditAccount, err := svc.accountFor(ctx, tx, creditAccountType, toUserId)
	if err != nil {
		return err
	}

	balance, err := svc.accountBalance(ctx, tx, debitAccount.ID)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientBalance
	}

	entry := models.TransactionEntry{
		UserID:          fromUserId,
		ListingID:       listingId,
		CreditAccountID: creditAccount.ID,
		DebitAccountID:  debitAccount.ID,
		Amount:          amount,
		EntryType:       entryType,
	}
	_, err = tx.NewInsert().Model(&entry).Exec(ctx)
	return err
}
