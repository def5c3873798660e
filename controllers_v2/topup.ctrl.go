package v2controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markethub/markethub.go/lib/responses"
	"github.com/markethub/markethub.go/lib/service"
)

// TopUpController : Top up controller struct
type TopUpController struct {
	svc *service.MarketService
}

func NewTopUpController(svc *service.MarketService) *TopUpController {
	return &TopUpController{svc: svc}
}

type TopUpRequestBody struct {
	UserID int64 `json:"user_id" validate:"required"`
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type TopUpResponseBody struct {
	UserID  int64 `json:"user_id"`
	Amount  int64 `json:"amount"`
	Balance int64 `json:"balance"`
}

// TopUp godoc
// @Summary      Credit an account
// @Description  Operator endpoint to fund a user's current account
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        topup  body      TopUpRequestBody  true  "Top up"
// @Success      200    {object}  TopUpResponseBody
// @Failure      400    {object}  responses.ErrorResponse
// @Failure      500    {object}  responses.ErrorResponse
// @Router       /v2/admin/topup [post]
func (controller *TopUpController) TopUp(c echo.Context) error {

	var body TopUpRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load topup request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	_, err := controller.svc.TopUp(c.Request().Context(), body.UserID, body.Amount)
	if err != nil {
		c.Logger().Errorf("Failed to top up user_id:%v : %v", body.UserID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	balance, err := controller.svc.CurrentUserBalance(c.Request().Context(), body.UserID)
	if err != nil {
		c.Logger().Errorf("Error fetching balance for user_id:%v : %v", body.UserID, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &TopUpResponseBody{
		UserID:  body.UserID,
		Amount:  body.Amount,
		Balance: balance,
	})
}
