package handlers

import (
	"net/http"
	"strings"

	"carmart/internal/common"
	"carmart/internal/models"
	"carmart/internal/services"

	"github.com/labstack/echo/v4"
)

// DealerHandlers handles HTTP requests for dealers
type DealerHandlers struct {
	dealerService  services.DealerService
	vehicleService services.VehicleService
}

func NewDealerHandlers(dealerService services.DealerService, vehicleService services.VehicleService) *DealerHandlers {
	return &DealerHandlers{dealerService: dealerService, vehicleService: vehicleService}
}

// ListDealers handles GET /dealers
func (h *DealerHandlers) ListDealers(c echo.Context) error {
	ctx := c.Request().Context()

	if location := c.QueryParam("location"); location != "" {
		dealers, err := h.dealerService.ListByLocation(ctx, location)
		if err != nil {
			return common.SendServerError(c, "Failed to list dealers")
		}
		return c.JSON(http.StatusOK, dealers)
	}

	limit, offset := parsePagination(c)
	dealers, err := h.dealerService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list dealers")
	}
	return c.JSON(http.StatusOK, dealers)
}

// GetDealer handles GET /dealers/:id
func (h *DealerHandlers) GetDealer(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	dealer, err := h.dealerService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendServerError(c, "Failed to load dealer")
	}
	if dealer == nil {
		return common.SendNotFoundError(c, "dealer")
	}
	return c.JSON(http.StatusOK, dealer)
}

// DealerVehicles handles GET /dealers/:id/cars
func (h *DealerHandlers) DealerVehicles(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	dealer, err := h.dealerService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendServerError(c, "Failed to load dealer")
	}
	if dealer == nil {
		return common.SendNotFoundError(c, "dealer")
	}

	vehicles, err := h.vehicleService.ListByDealer(c.Request().Context(), id)
	if err != nil {
		return common.SendServerError(c, "Failed to list dealer vehicles")
	}
	return c.JSON(http.StatusOK, vehicles)
}

// CreateDealer handles POST /dealers
func (h *DealerHandlers) CreateDealer(c echo.Context) error {
	var dealer models.Dealer
	if err := c.Bind(&dealer); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if strings.TrimSpace(dealer.Name) == "" {
		return common.SendValidationError(c, "name", "dealer name is required")
	}
	if strings.TrimSpace(dealer.Location) == "" {
		return common.SendValidationError(c, "location", "dealer location is required")
	}

	if userID, ok := common.GetUserIDFromContext(c.Request().Context()); ok {
		dealer.UserID = &userID
	}

	created, err := h.dealerService.Create(c.Request().Context(), &dealer)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}
