package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "bad auth",
	HttpStatusCode: 401,
}

var LoginTakenError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "login already taken",
	HttpStatusCode: 400,
}

var PriceIsNullError = ErrorResponse{
	Error:          true,
	Code:           20,
	Message:        "listing price must be above zero",
	HttpStatusCode: 400,
}

var ListingPriceNotMetError = ErrorResponse{
	Error:          true,
	Code:           21,
	Message:        "payment must exactly equal the listing fee",
	HttpStatusCode: 400,
}

var SalePriceNotMetError = ErrorResponse{
	Error:          true,
	Code:           22,
	Message:        "payment must exactly equal the sale price",
	HttpStatusCode: 400,
}

var NotAuthorizedError = ErrorResponse{
	Error:          true,
	Code:           23,
	Message:        "only the administrator can do this",
	HttpStatusCode: 403,
}

var NotAssetHolderError = ErrorResponse{
	Error:          true,
	Code:           24,
	Message:        "caller does not hold this asset",
	HttpStatusCode: 403,
}

var UnknownAssetError = ErrorResponse{
	Error:          true,
	Code:           25,
	Message:        "unknown asset",
	HttpStatusCode: 404,
}

var AlreadySoldError = ErrorResponse{
	Error:          true,
	Code:           26,
	Message:        "listing already sold",
	HttpStatusCode: 400,
}

var NegativeFeeError = ErrorResponse{
	Error:          true,
	Code:           27,
	Message:        "listing fee must not be negative",
	HttpStatusCode: 400,
}

var NotEnoughBalanceError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "not enough balance to cover the payment",
	HttpStatusCode: 400,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("UserID", c.Get("UserID"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}

// auth failures are routine, they should not show up as exceptions
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	m, ok := he.Message.(echo.Map)
	if !ok {
		return true
	}
	code, ok := m["code"].(int)
	if !ok {
		return true
	}
	return code != BadAuthError.Code
}
