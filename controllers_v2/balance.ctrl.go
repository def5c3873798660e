package v2controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markethub/markethub.go/lib/responses"
	"github.com/markethub/markethub.go/lib/service"
)

// BalanceController : BalanceController struct
type BalanceController struct {
	svc *service.MarketService
}

func NewBalanceController(svc *service.MarketService) *BalanceController {
	return &BalanceController{svc: svc}
}

type BalanceResponse struct {
	Balance int64  `json:"balance"`
	Unit    string `json:"unit"`
}

// Balance godoc
// @Summary      Retrieve balance
// @Description  Current user's balance in the smallest denomination
// @Accept       json
// @Produce      json
// @Tags         Account
// @Success      200  {object}  BalanceResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/balance [get]
// @Security     OAuth2Password
func (controller *BalanceController) Balance(c echo.Context) error {
	userId := c.Get("UserID").(int64)
	balance, err := controller.svc.CurrentUserBalance(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorf("Error fetching balance for user_id:%v error: %v", userId, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	return c.JSON(http.StatusOK, &BalanceResponse{
		Balance: balance,
		Unit:    "credit",
	})
}
