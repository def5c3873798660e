package v2controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markethub/markethub.go/lib/responses"
	"github.com/markethub/markethub.go/lib/service"
)

// UpdateUserController : Update user controller struct
type UpdateUserController struct {
	svc *service.MarketService
}

func NewUpdateUserController(svc *service.MarketService) *UpdateUserController {
	return &UpdateUserController{svc: svc}
}

type UpdateUserResponseBody struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Deactivated bool   `json:"deactivated"`
}
type UpdateUserRequestBody struct {
	ID          int64   `json:"id" validate:"required"`
	Login       *string `json:"login,omitempty"`
	Password    *string `json:"password,omitempty"`
	Deactivated *bool   `json:"deactivated,omitempty"`
}

// UpdateUser godoc
// @Summary      Update an account
// @Description  Update an account with a new login, password or activation status
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        account  body      UpdateUserRequestBody  false  "Update User"
// @Success      200      {object}  UpdateUserResponseBody
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /v2/admin/users [put]
func (controller *UpdateUserController) UpdateUser(c echo.Context) error {

	var body UpdateUserRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid update user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	user, err := controller.svc.UpdateUser(c.Request().Context(), body.ID, body.Login, body.Password, body.Deactivated)
	if err != nil {
		c.Logger().Errorf("Failed to update user: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	return c.JSON(http.StatusOK, &UpdateUserResponseBody{
		ID:          user.ID,
		Login:       user.Login,
		Deactivated: user.Deactivated,
	})
}
