package v2controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/markethub/markethub.go/common"
	"github.com/markethub/markethub.go/db/models"
	"github.com/markethub/markethub.go/lib/responses"
	"github.com/markethub/markethub.go/lib/service"
)

// ListingController : Listing controller struct, hosts the three mutating
// marketplace operations.
type ListingController struct {
	svc *service.MarketService
}

func NewListingController(svc *service.MarketService) *ListingController {
	return &ListingController{svc: svc}
}

// Listing is the wire representation of a listing and its asset.
type Listing struct {
	AssetID     int64      `json:"asset_id"`
	MetadataRef string     `json:"metadata_ref,omitempty"`
	SellerID    int64      `json:"seller_id"`
	HolderID    int64      `json:"holder_id"`
	Price       int64      `json:"price"`
	Sold        bool       `json:"sold"`
	CreatedAt   time.Time  `json:"created_at"`
	SoldAt      *time.Time `json:"sold_at,omitempty"`
}

func newListingResponse(l *models.Listing) Listing {
	response := Listing{
		AssetID:   l.AssetID,
		SellerID:  l.SellerID,
		Price:     l.Price,
		Sold:      l.State == common.ListingStateSold,
		CreatedAt: l.CreatedAt,
	}
	if l.Asset != nil {
		response.MetadataRef = l.Asset.MetadataRef
		response.HolderID = l.Asset.HolderID
	}
	if !l.SoldAt.IsZero() {
		soldAt := l.SoldAt.Time
		response.SoldAt = &soldAt
	}
	return response
}

func assetIdParam(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type CreateListingRequestBody struct {
	MetadataRef string `json:"metadata_ref" validate:"required"`
	Price       int64  `json:"price"`
	Payment     int64  `json:"payment"`
}

// CreateListing godoc
// @Summary      Mint and list an asset
// @Description  Mints a new asset and lists it for sale. The payment must equal the current listing fee.
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Param        listing  body      CreateListingRequestBody  true  "Create listing"
// @Success      200      {object}  Listing
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /v2/nfts [post]
// @Security     OAuth2Password
func (controller *ListingController) CreateListing(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	var body CreateListingRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create listing request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	listing, err := controller.svc.CreateListing(c.Request().Context(), userId, body.MetadataRef, body.Price, body.Payment)
	if err != nil {
		c.Logger().Errorf("Failed to create listing for user_id:%v : %v", userId, err)
		resp := svcErrorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	response := newListingResponse(listing)
	return c.JSON(http.StatusOK, &response)
}

type BuyListingRequestBody struct {
	Payment int64 `json:"payment"`
}

// BuyListing godoc
// @Summary      Buy a listed asset
// @Description  Pays the seller the full sale price and takes custody of the asset.
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Param        id       path      int                    true  "Asset id"
// @Param        payment  body      BuyListingRequestBody  true  "Payment"
// @Success      200      {object}  Listing
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /v2/nfts/{id}/buy [post]
// @Security     OAuth2Password
func (controller *ListingController) BuyListing(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	assetId, ok := assetIdParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body BuyListingRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load buy request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	listing, err := controller.svc.BuyListing(c.Request().Context(), userId, assetId, body.Payment)
	if err != nil {
		c.Logger().Errorf("Failed to buy asset_id:%v for user_id:%v : %v", assetId, userId, err)
		resp := svcErrorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	response := newListingResponse(listing)
	return c.JSON(http.StatusOK, &response)
}

type ResellListingRequestBody struct {
	Price   int64 `json:"price"`
	Payment int64 `json:"payment"`
}

// ResellListing godoc
// @Summary      Relist a held asset
// @Description  Puts an asset the caller holds back on sale at a new price. The payment must equal the current listing fee.
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Param        id       path      int                       true  "Asset id"
// @Param        resell   body      ResellListingRequestBody  true  "Resell"
// @Success      200      {object}  Listing
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      403      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /v2/nfts/{id}/resell [post]
// @Security     OAuth2Password
func (controller *ListingController) ResellListing(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	assetId, ok := assetIdParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body ResellListingRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load resell request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	listing, err := controller.svc.ResellListing(c.Request().Context(), userId, assetId, body.Price, body.Payment)
	if err != nil {
		c.Logger().Errorf("Failed to resell asset_id:%v for user_id:%v : %v", assetId, userId, err)
		resp := svcErrorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	response := newListingResponse(listing)
	return c.JSON(http.StatusOK, &response)
}
