package v2controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/markethub/markethub.go/lib/service"
)

// TransactionsController : per-user transaction history
type TransactionsController struct {
	svc *service.MarketService
}

func NewTransactionsController(svc *service.MarketService) *TransactionsController {
	return &TransactionsController{svc: svc}
}

type TransactionEntry struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id,omitempty"`
	Amount    int64     `json:"amount"`
	EntryType string    `json:"entry_type"`
	CreatedAt time.Time `json:"created_at"`
}

type GetTransactionsResponseBody struct {
	Transactions []TransactionEntry `json:"transactions"`
}

// GetTransactions godoc
// @Summary      Retrieve transaction history
// @Description  Every fee, sale and top-up entry the caller paid or received
// @Accept       json
// @Produce      json
// @Tags         Account
// @Success      200  {object}  GetTransactionsResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/transactions [get]
// @Security     OAuth2Password
func (controller *TransactionsController) GetTransactions(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	entries, err := controller.svc.TransactionEntriesFor(c.Request().Context(), userId)
	if err != nil {
		return err
	}

	response := make([]TransactionEntry, len(entries))
	for i, entry := range entries {
		response[i] = TransactionEntry{
			ID:        entry.ID,
			ListingID: entry.ListingID,
			Amount:    entry.Amount,
			EntryType: entry.EntryType,
			CreatedAt: entry.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, &GetTransactionsResponseBody{Transactions: response})
}
