package v2controllers

import (
	"errors"

	"github.com/markethub/markethub.go/lib/responses"
	"github.com/markethub/markethub.go/lib/service"
)

// svcErrorResponse maps the ledger error taxonomy onto the canned JSON
// error responses. Anything outside the taxonomy is a server fault.
func svcErrorResponse(err error) responses.ErrorResponse {
	switch {
	case errors.Is(err, service.ErrPriceIsNull):
		return responses.PriceIsNullError
	case errors.Is(err, service.ErrListingPriceNotMet):
		return responses.ListingPriceNotMetError
	case errors.Is(err, service.ErrSalePriceNotMet):
		return responses.SalePriceNotMetError
	case errors.Is(err, service.ErrNotAuthorized):
		return responses.NotAuthorizedError
	case errors.Is(err, service.ErrNotAssetHolder):
		return responses.NotAssetHolderError
	case errors.Is(err, service.ErrUnknownAsset):
		return responses.UnknownAssetError
	case errors.Is(err, service.ErrAlreadySold):
		return responses.AlreadySoldError
	case errors.Is(err, service.ErrNegativeFee):
		return responses.NegativeFeeError
	case errors.Is(err, service.ErrInsufficientBalance):
		return responses.NotEnoughBalanceError
	default:
		return responses.GeneralServerError
	}
}
