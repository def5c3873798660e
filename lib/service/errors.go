package service

import "errors"

// Error taxonomy of the listing ledger. Every error is terminal for the
// attempted operation: the transaction is rolled back and nothing happened.
var (
	// ErrPriceIsNull : a listing or resale price of zero or less was supplied.
	ErrPriceIsNull = errors.New("price must be above zero")
	// ErrListingPriceNotMet : the payment attached to a create or resell did
	// not exactly equal the current listing fee.
	ErrListingPriceNotMet = errors.New("payment does not equal the listing fee")
	// ErrSalePriceNotMet : the payment attached to a buy did not exactly
	// equal the listing price.
	ErrSalePriceNotMet = errors.New("payment does not equal the sale price")
	// ErrNotAuthorized : a fee update was attempted by a non-administrator.
	ErrNotAuthorized = errors.New("caller is not the administrator")
	// ErrNotAssetHolder : a resell was attempted by a caller who does not
	// currently hold the asset.
	ErrNotAssetHolder = errors.New("caller does not hold the asset")
	// ErrUnknownAsset : the referenced asset was never minted.
	ErrUnknownAsset = errors.New("unknown asset")
	// ErrAlreadySold : the listing was already purchased.
	ErrAlreadySold = errors.New("listing already sold")
	// ErrNegativeFee : a negative listing fee was supplied.
	ErrNegativeFee = errors.New("listing fee must not be negative")
	// ErrInsufficientBalance : the caller cannot cover the payment.
	ErrInsufficientBalance = errors.New("not enough balance")
)
