package v2controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markethub/markethub.go/lib/responses"
	"github.com/markethub/markethub.go/lib/service"
)

// FeeController : listing fee governance
type FeeController struct {
	svc *service.MarketService
}

func NewFeeController(svc *service.MarketService) *FeeController {
	return &FeeController{svc: svc}
}

type FeeResponseBody struct {
	ListingFee int64 `json:"listing_fee"`
}

type UpdateFeeRequestBody struct {
	ListingFee int64 `json:"listing_fee"`
}

// GetFee godoc
// @Summary      Retrieve the listing fee
// @Description  The flat fee charged on every create and resell
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Success      200  {object}  FeeResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/fee [get]
func (controller *FeeController) GetFee(c echo.Context) error {
	fee, err := controller.svc.GetListingFee(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &FeeResponseBody{ListingFee: fee})
}

// UpdateFee godoc
// @Summary      Update the listing fee
// @Description  Administrator-only, rejected for every other caller
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Param        fee  body      UpdateFeeRequestBody  true  "New fee"
// @Success      200  {object}  FeeResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      403  {object}  responses.ErrorResponse
// @Router       /v2/fee [put]
// @Security     OAuth2Password
func (controller *FeeController) UpdateFee(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	var body UpdateFeeRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update fee request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	fee, err := controller.svc.UpdateListingFee(c.Request().Context(), userId, body.ListingFee)
	if err != nil {
		c.Logger().Errorf("Failed to update listing fee for user_id:%v : %v", userId, err)
		resp := svcErrorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	return c.JSON(http.StatusOK, &FeeResponseBody{ListingFee: fee})
}
