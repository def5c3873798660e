package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Listing : Listing Model
//
// One listing exists per asset from the moment the asset is minted, it is
// never deleted. State is the explicit sale state: "listed" while the asset
// sits in market custody waiting for a buyer, "sold" after the purchase.
// SellerID is cleared to 0 on a sale and set again on a relisting.
// Price is kept after a sale for history queries.
type Listing struct {
	ID        int64        `json:"id" bun:",pk,autoincrement"`
	AssetID   int64        `json:"asset_id" bun:",unique,notnull"`
	Asset     *Asset       `json:"asset,omitempty" bun:"rel:belongs-to,join:asset_id=id"`
	SellerID  int64        `json:"seller_id"`
	Price     int64        `json:"price" bun:",notnull"`
	State     string       `json:"state" bun:",notnull,default:'listed'"`
	CreatedAt time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt bun.NullTime `json:"updated_at"`
	SoldAt    bun.NullTime `json:"sold_at"`
}

func (l *Listing) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		l.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Listing)(nil)
