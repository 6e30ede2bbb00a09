package handlers

import (
	"net/http"

	"carmart/internal/common"
	"carmart/internal/services"

	"github.com/labstack/echo/v4"
)

// FavoritesHandlers handles HTTP requests for saved vehicles
type FavoritesHandlers struct {
	favoritesService services.FavoritesService
}

func NewFavoritesHandlers(favoritesService services.FavoritesService) *FavoritesHandlers {
	return &FavoritesHandlers{favoritesService: favoritesService}
}

// ListFavorites handles GET /favorites
func (h *FavoritesHandlers) ListFavorites(c echo.Context) error {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	vehicles, err := h.favoritesService.ListVehicles(c.Request().Context(), userID)
	if err != nil {
		return common.SendServerError(c, "Failed to list favorites")
	}
	return c.JSON(http.StatusOK, vehicles)
}

// AddFavorite handles POST /favorites/:carId
func (h *FavoritesHandlers) AddFavorite(c echo.Context) error {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	vehicleID, err := common.ValidateUUID(c.Param("carId"), "carId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	favorite, err := h.favoritesService.Add(c.Request().Context(), userID, vehicleID)
	if err != nil {
		if err == services.ErrVehicleNotFound {
			return common.SendNotFoundError(c, "vehicle")
		}
		return common.SendServerError(c, "Failed to add favorite")
	}
	return c.JSON(http.StatusCreated, favorite)
}

// RemoveFavorite handles DELETE /favorites/:carId
func (h *FavoritesHandlers) RemoveFavorite(c echo.Context) error {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	vehicleID, err := common.ValidateUUID(c.Param("carId"), "carId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.favoritesService.Remove(c.Request().Context(), userID, vehicleID); err != nil {
		return common.SendServerError(c, "Failed to remove favorite")
	}
	return c.NoContent(http.StatusNoContent)
}
