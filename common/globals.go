package common

const (
	ListingStateListed = "listed"
	ListingStateSold   = "sold"

	EntryTypeTopUp      = "topup"
	EntryTypeListingFee = "listing_fee"
	EntryTypeSale       = "sale"

	AccountTypeIncoming = "incoming"
	AccountTypeCurrent  = "current"
	AccountTypeOutgoing = "outgoing"
	AccountTypeFees     = "fees"

	// MarketCustodyID is the holder id of an asset while it is listed for sale.
	// The marketplace is not a user, id 0 is reserved for its custody.
	MarketCustodyID = int64(0)

	SettingListingFee = "listing_fee"

	ListingEventCreated  = "listing_created"
	ListingEventSold     = "listing_sold"
	ListingEventRelisted = "listing_relisted"
)
