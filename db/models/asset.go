package models

import (
	"time"
)

// Asset : Asset Model
//
// Asset ids are allocated by the database sequence and are never reused.
// MetadataRef is an opaque pointer to off-chain content (e.g. an ipfs:// URI),
// it is written once at mint time and never updated.
// HolderID is the user currently entitled to the asset, or
// common.MarketCustodyID (0) while the asset is held in market custody.
type Asset struct {
	ID          int64     `json:"id" bun:",pk,autoincrement"`
	MetadataRef string    `json:"metadata_ref" bun:",notnull"`
	HolderID    int64     `json:"holder_id"`
	CreatedAt   time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
