package v2controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markethub/markethub.go/lib/service"
	qrcode "github.com/skip2/go-qrcode"
)

// MetadataController : metadata lookup + QR rendering
type MetadataController struct {
	svc *service.MarketService
}

func NewMetadataController(svc *service.MarketService) *MetadataController {
	return &MetadataController{svc: svc}
}

type MetadataResponseBody struct {
	AssetID     int64  `json:"asset_id"`
	MetadataRef string `json:"metadata_ref"`
}

// GetMetadata godoc
// @Summary      Retrieve asset metadata ref
// @Description  The opaque metadata pointer stored at mint time, immutable afterwards
// @Accept       json
// @Produce      json
// @Tags         Marketplace
// @Param        id   path      int  true  "Asset id"
// @Success      200  {object}  MetadataResponseBody
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/nfts/{id}/metadata [get]
func (controller *MetadataController) GetMetadata(c echo.Context) error {
	assetId, ok := assetIdParam(c)
	if !ok {
		resp := svcErrorResponse(service.ErrUnknownAsset)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	metadataRef, err := controller.svc.MetadataRef(c.Request().Context(), assetId)
	if err != nil {
		resp := svcErrorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	return c.JSON(http.StatusOK, &MetadataResponseBody{
		AssetID:     assetId,
		MetadataRef: metadataRef,
	})
}

// GetMetadataQR godoc
// @Summary      Render the metadata ref as a QR code
// @Produce      png
// @Tags         Marketplace
// @Param        id   path  int  true  "Asset id"
// @Success      200
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/nfts/{id}/qr [get]
func (controller *MetadataController) GetMetadataQR(c echo.Context) error {
	assetId, ok := assetIdParam(c)
	if !ok {
		resp := svcErrorResponse(service.ErrUnknownAsset)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	metadataRef, err := controller.svc.MetadataRef(c.Request().Context(), assetId)
	if err != nil {
		resp := svcErrorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	png, err := qrcode.Encode(metadataRef, qrcode.Medium, 256)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
