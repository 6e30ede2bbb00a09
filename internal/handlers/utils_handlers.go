package handlers

import (
	"net/http"

	"carmart/internal/common"
	"carmart/internal/services"

	"github.com/labstack/echo/v4"
)

// UtilsHandlers exposes small helper endpoints
type UtilsHandlers struct {
	mediaService services.MediaService
}

func NewUtilsHandlers(mediaService services.MediaService) *UtilsHandlers {
	return &UtilsHandlers{mediaService: mediaService}
}

type convertDriveURLRequest struct {
	URL string `json:"url"`
}

// ConvertGoogleDriveURL handles POST /utils/convert-google-drive-url
func (h *UtilsHandlers) ConvertGoogleDriveURL(c echo.Context) error {
	var req convertDriveURLRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.URL == "" {
		return common.SendValidationError(c, "url", "url is required")
	}

	converted, err := h.mediaService.ConvertGoogleDriveURL(req.URL)
	if err != nil {
		return common.SendClientError(c, "Not a recognizable Google Drive link")
	}
	return c.JSON(http.StatusOK, map[string]string{"url": converted})
}
