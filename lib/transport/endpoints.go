package transport

import (
	"github.com/labstack/echo/v4"
	v2controllers "github.com/markethub/markethub.go/controllers_v2"
	"github.com/markethub/markethub.go/lib/service"
)

func RegisterEndpoints(svc *service.MarketService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, adminMw echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	if svc.Config.AllowAccountCreation {
		e.POST("/v2/users", v2controllers.NewCreateUserController(svc).CreateUser, strictRateLimitMiddleware, adminMw, logMw)
	}
	e.POST("/auth", v2controllers.NewAuthController(svc).Auth, strictRateLimitMiddleware, logMw)
	//require admin token for user administration and top-ups
	e.PUT("/v2/admin/users", v2controllers.NewUpdateUserController(svc).UpdateUser, strictRateLimitMiddleware, adminMw)
	e.POST("/v2/admin/topup", v2controllers.NewTopUpController(svc).TopUp, strictRateLimitMiddleware, adminMw)

	listingCtrl := v2controllers.NewListingController(svc)
	marketCtrl := v2controllers.NewMarketController(svc)
	feeCtrl := v2controllers.NewFeeController(svc)
	metadataCtrl := v2controllers.NewMetadataController(svc)

	// the metadata ref never changes after mint, cache it
	cacheClient := CreateCacheClient()

	e.GET("/v2/nfts", marketCtrl.GetListed, logMw)
	e.GET("/v2/nfts/:id", marketCtrl.GetListing, logMw)
	e.GET("/v2/nfts/:id/metadata", metadataCtrl.GetMetadata, cacheClient.Middleware(), logMw)
	e.GET("/v2/nfts/:id/qr", metadataCtrl.GetMetadataQR, cacheClient.Middleware(), logMw)
	e.GET("/v2/fee", feeCtrl.GetFee, logMw)

	secured.GET("/v2/nfts/owned", marketCtrl.GetOwned)
	secured.GET("/v2/nfts/listed", marketCtrl.GetListedBy)
	secured.GET("/v2/balance", v2controllers.NewBalanceController(svc).Balance)
	secured.GET("/v2/transactions", v2controllers.NewTransactionsController(svc).GetTransactions)
	secured.PUT("/v2/fee", feeCtrl.UpdateFee)

	securedWithStrictRateLimit.POST("/v2/nfts", listingCtrl.CreateListing)
	securedWithStrictRateLimit.POST("/v2/nfts/:id/buy", listingCtrl.BuyListing)
	securedWithStrictRateLimit.POST("/v2/nfts/:id/resell", listingCtrl.ResellListing)
}
