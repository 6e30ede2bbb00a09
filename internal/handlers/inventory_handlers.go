package handlers

import (
	"net/http"

	"carmart/internal/common"
	"carmart/internal/models"
	"carmart/internal/services"

	"github.com/labstack/echo/v4"
)

// InventoryHandlers handles HTTP requests for the inventory audit trail
type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

// GetLogs handles GET /inventory/logs/:dealerId with an optional carId
// query parameter narrowing to one vehicle.
func (h *InventoryHandlers) GetLogs(c echo.Context) error {
	dealerID, err := common.ValidateUUID(c.Param("dealerId"), "dealerId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	ctx := c.Request().Context()
	if carParam := c.QueryParam("carId"); carParam != "" {
		vehicleID, err := common.ValidateUUID(carParam, "carId")
		if err != nil {
			return common.SendClientError(c, err.Error())
		}
		logs, err := h.inventoryService.ListByVehicle(ctx, vehicleID)
		if err != nil {
			return common.SendServerError(c, "Failed to list inventory logs")
		}
		return c.JSON(http.StatusOK, logs)
	}

	logs, err := h.inventoryService.ListByDealer(ctx, dealerID)
	if err != nil {
		return common.SendServerError(c, "Failed to list inventory logs")
	}
	return c.JSON(http.StatusOK, logs)
}

// CreateLog handles POST /inventory/logs
func (h *InventoryHandlers) CreateLog(c echo.Context) error {
	var entry models.InventoryLog
	if err := c.Bind(&entry); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if userID, ok := common.GetUserIDFromContext(c.Request().Context()); ok {
		entry.PerformedBy = &userID
	}

	created, err := h.inventoryService.CreateEntry(c.Request().Context(), &entry)
	if err != nil {
		if err == services.ErrVehicleNotFound {
			return common.SendNotFoundError(c, "vehicle")
		}
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}
