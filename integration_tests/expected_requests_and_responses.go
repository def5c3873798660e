package integration_tests

import "time"

type ExpectedCreateUserRequestBody struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type ExpectedCreateUserResponseBody struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type ExpectedAuthRequestBody struct {
	Login        string `json:"login"`
	Password     string `json:"password"`
	RefreshToken string `json:"refresh_token"`
}

type ExpectedAuthResponseBody struct {
	RefreshToken string `json:"refresh_token"`
	AccessToken  string `json:"access_token"`
}

type ExpectedCreateListingRequestBody struct {
	MetadataRef string `json:"metadata_ref"`
	Price       int64  `json:"price"`
	Payment     int64  `json:"payment"`
}

type ExpectedBuyListingRequestBody struct {
	Payment int64 `json:"payment"`
}

type ExpectedResellListingRequestBody struct {
	Price   int64 `json:"price"`
	Payment int64 `json:"payment"`
}

type ExpectedListingResponseBody struct {
	AssetID     int64      `json:"asset_id"`
	MetadataRef string     `json:"metadata_ref"`
	SellerID    int64      `json:"seller_id"`
	HolderID    int64      `json:"holder_id"`
	Price       int64      `json:"price"`
	Sold        bool       `json:"sold"`
	CreatedAt   time.Time  `json:"created_at"`
	SoldAt      *time.Time `json:"sold_at"`
}

type ExpectedListingsResponseBody struct {
	Listings []ExpectedListingResponseBody `json:"listings"`
}

type ExpectedFeeResponseBody struct {
	ListingFee int64 `json:"listing_fee"`
}

type ExpectedUpdateFeeRequestBody struct {
	ListingFee int64 `json:"listing_fee"`
}

type ExpectedTopUpRequestBody struct {
	UserID int64 `json:"user_id"`
	Amount int64 `json:"amount"`
}

type ExpectedTopUpResponseBody struct {
	UserID  int64 `json:"user_id"`
	Amount  int64 `json:"amount"`
	Balance int64 `json:"balance"`
}

type ExpectedBalanceResponseBody struct {
	Balance int64  `json:"balance"`
	Unit    string `json:"unit"`
}

type ExpectedMetadataResponseBody struct {
	AssetID     int64  `json:"asset_id"`
	MetadataRef string `json:"metadata_ref"`
}

type ExpectedTransactionEntry struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id"`
	Amount    int64     `json:"amount"`
	EntryType string    `json:"entry_type"`
	CreatedAt time.Time `json:"created_at"`
}

type ExpectedTransactionsResponseBody struct {
	Transactions []ExpectedTransactionEntry `json:"transactions"`
}
