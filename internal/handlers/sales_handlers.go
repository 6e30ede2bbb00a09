package handlers

import (
	"net/http"
	"strings"

	"carmart/internal/common"
	"carmart/internal/models"
	"carmart/internal/services"

	"github.com/labstack/echo/v4"
)

// SalesHandlers handles HTTP requests for sale records
type SalesHandlers struct {
	salesService services.SalesService
}

func NewSalesHandlers(salesService services.SalesService) *SalesHandlers {
	return &SalesHandlers{salesService: salesService}
}

// ListSales handles GET /sales/:dealerId
func (h *SalesHandlers) ListSales(c echo.Context) error {
	dealerID, err := common.ValidateUUID(c.Param("dealerId"), "dealerId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	sales, err := h.salesService.ListByDealer(c.Request().Context(), dealerID)
	if err != nil {
		return common.SendServerError(c, "Failed to list sales")
	}
	return c.JSON(http.StatusOK, sales)
}

// CreateSale handles POST /sales
func (h *SalesHandlers) CreateSale(c echo.Context) error {
	var sale models.Sale
	if err := c.Bind(&sale); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if strings.TrimSpace(sale.BuyerName) == "" {
		return common.SendValidationError(c, "buyer_name", "buyer name is required")
	}
	if sale.SalePrice <= 0 {
		return common.SendValidationError(c, "sale_price", "must be positive")
	}

	created, err := h.salesService.RecordSale(c.Request().Context(), &sale)
	if err != nil {
		if err == services.ErrVehicleNotFound {
			return common.SendNotFoundError(c, "vehicle")
		}
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSale handles PATCH /sales/:id
func (h *SalesHandlers) UpdateSale(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var patch models.SaleUpdate
	if err := c.Bind(&patch); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if patch.Status != nil {
		switch *patch.Status {
		case models.SaleStatusPending, models.SaleStatusCompleted, models.SaleStatusCancelled, models.SaleStatusRefunded:
		default:
			return common.SendValidationError(c, "status", "invalid sale status")
		}
	}

	sale, err := h.salesService.UpdateSale(c.Request().Context(), id, &patch)
	if err != nil {
		return common.SendServerError(c, "Failed to update sale")
	}
	if sale == nil {
		return common.SendNotFoundError(c, "sale")
	}
	return c.JSON(http.StatusOK, sale)
}
