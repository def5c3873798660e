package v2controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markethub/markethub.go/db/models"
	"github.com/markethub/markethub.go/lib/service"
)

// MarketController : read-only marketplace views
type MarketController struct {
	svc *service.MarketService
}

func NewMarketController(svc *service.MarketService) *MarketController {
	return &MarketController{svc: svc}
}

type GetListingsResponseBody struct {
	Listings []Listing `json:"listings"`
}

func newListingsResponse(listings []models.Listing) *GetListingsResponseBody {
	response := make([]Listing, len(listings))
	for i := range listings {
		response[i] = newListingResponse(&listings[i])
	}
	return &GetListingsResponseBody{Listings: response}
}

// GetListed godoc
// @Summary      Retrieve unsold listings
// @Description  All listings currently for sale, in creation order
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Success      200  {object}  GetListingsResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/nfts [get]
func (controller *MarketController) GetListed(c echo.Context) error {
	listings, err := controller.svc.FetchListed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListingsResponse(listings))
}

// GetOwned godoc
// @Summary      Retrieve held assets
// @Description  Listings whose asset the caller currently holds
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Success      200  {object}  GetListingsResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/nfts/owned [get]
// @Security     OAuth2Password
func (controller *MarketController) GetOwned(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	listings, err := controller.svc.FetchHeldBy(c.Request().Context(), userId)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListingsResponse(listings))
}

// GetListedBy godoc
// @Summary      Retrieve own active listings
// @Description  The caller's listings that are still for sale
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Success      200  {object}  GetListingsResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/nfts/listed [get]
// @Security     OAuth2Password
func (controller *MarketController) GetListedBy(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	listings, err := controller.svc.FetchListedBy(c.Request().Context(), userId)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListingsResponse(listings))
}

// GetListing godoc
// @Summary      Retrieve one listing
// @Description  The listing for an asset, sold or not
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Param        id   path      int  true  "Asset id"
// @Success      200  {object}  Listing
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/nfts/{id} [get]
func (controller *MarketController) GetListing(c echo.Context) error {
	assetId, ok := assetIdParam(c)
	if !ok {
		resp := svcErrorResponse(service.ErrUnknownAsset)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	listing, err := controller.svc.FindListing(c.Request().Context(), assetId)
	if err != nil {
		resp := svcErrorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	response := newListingResponse(listing)
	return c.JSON(http.StatusOK, &response)
}
