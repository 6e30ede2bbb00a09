package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"carmart/internal/common"
	"carmart/internal/models"
	"carmart/internal/pricing"
	"carmart/internal/services"

	"github.com/labstack/echo/v4"
)

// VehicleHandlers handles HTTP requests for vehicle listings
type VehicleHandlers struct {
	vehicleService services.VehicleService
}

func NewVehicleHandlers(vehicleService services.VehicleService) *VehicleHandlers {
	return &VehicleHandlers{vehicleService: vehicleService}
}

// ListVehicles handles GET /cars
func (h *VehicleHandlers) ListVehicles(c echo.Context) error {
	ctx := c.Request().Context()

	if dealerParam := c.QueryParam("dealerId"); dealerParam != "" {
		dealerID, err := common.ValidateUUID(dealerParam, "dealerId")
		if err != nil {
			return common.SendClientError(c, err.Error())
		}
		vehicles, err := h.vehicleService.ListByDealer(ctx, dealerID)
		if err != nil {
			return common.SendServerError(c, "Failed to list vehicles")
		}
		return c.JSON(http.StatusOK, vehicles)
	}

	limit, offset := parsePagination(c)
	vehicles, err := h.vehicleService.List(ctx, limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to list vehicles")
	}
	return c.JSON(http.StatusOK, vehicles)
}

// FeaturedVehicles handles GET /cars/featured
func (h *VehicleHandlers) FeaturedVehicles(c echo.Context) error {
	vehicles, err := h.vehicleService.Featured(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to load featured vehicles")
	}
	return c.JSON(http.StatusOK, vehicles)
}

// SearchVehicles handles GET /cars/search
func (h *VehicleHandlers) SearchVehicles(c echo.Context) error {
	filter := &models.VehicleSearchFilter{
		Make:   c.QueryParam("make"),
		Model:  c.QueryParam("model"),
		SortBy: c.QueryParam("sortBy"),
	}

	var err error
	if filter.MinPrice, err = parseFloatParam(c, "minPrice"); err != nil {
		return common.SendValidationError(c, "minPrice", "must be a number")
	}
	if filter.MaxPrice, err = parseFloatParam(c, "maxPrice"); err != nil {
		return common.SendValidationError(c, "maxPrice", "must be a number")
	}
	if filter.MinYear, err = parseIntParam(c, "minYear"); err != nil {
		return common.SendValidationError(c, "minYear", "must be an integer")
	}
	if filter.MaxYear, err = parseIntParam(c, "maxYear"); err != nil {
		return common.SendValidationError(c, "maxYear", "must be an integer")
	}
	if filter.MaxMileage, err = parseIntParam(c, "maxMileage"); err != nil {
		return common.SendValidationError(c, "maxMileage", "must be an integer")
	}

	for param, dest := range map[string]**string{
		"fuelType":     &filter.FuelType,
		"transmission": &filter.Transmission,
		"bodyType":     &filter.BodyType,
		"condition":    &filter.Condition,
	} {
		if value := c.QueryParam(param); value != "" {
			v := value
			*dest = &v
		}
	}

	if dealerParam := c.QueryParam("dealerId"); dealerParam != "" {
		dealerID, err := common.ValidateUUID(dealerParam, "dealerId")
		if err != nil {
			return common.SendClientError(c, err.Error())
		}
		filter.DealerID = &dealerID
	}

	filter.Limit, filter.Offset = parsePagination(c)

	vehicles, total, err := h.vehicleService.Search(c.Request().Context(), filter)
	if err != nil {
		return common.SendServerError(c, "Search failed")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"vehicles": vehicles,
		"total":    total,
		"limit":    filter.Limit,
		"offset":   filter.Offset,
	})
}

// GetVehicle handles GET /cars/:id
func (h *VehicleHandlers) GetVehicle(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	vehicle, err := h.vehicleService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendServerError(c, "Failed to load vehicle")
	}
	if vehicle == nil {
		return common.SendNotFoundError(c, "vehicle")
	}
	return c.JSON(http.StatusOK, vehicle)
}

// CreateVehicle handles POST /cars
func (h *VehicleHandlers) CreateVehicle(c echo.Context) error {
	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if strings.TrimSpace(vehicle.Make) == "" || strings.TrimSpace(vehicle.Model) == "" {
		return common.SendValidationError(c, "make", "make and model are required")
	}
	if vehicle.Price <= 0 {
		return common.SendValidationError(c, "price", "must be positive")
	}

	created, err := h.vehicleService.Create(c.Request().Context(), &vehicle)
	if err != nil {
		if err == services.ErrDealerNotFound {
			return common.SendNotFoundError(c, "dealer")
		}
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateVehicle handles PATCH /cars/:id
func (h *VehicleHandlers) UpdateVehicle(c echo.Context) error {
	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var patch models.VehicleUpdate
	if err := c.Bind(&patch); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if patch.Price != nil && *patch.Price <= 0 {
		return common.SendValidationError(c, "price", "must be positive")
	}

	vehicle, err := h.vehicleService.Update(c.Request().Context(), id, &patch)
	if err != nil {
		return common.SendServerError(c, "Failed to update vehicle")
	}
	if vehicle == nil {
		return common.SendNotFoundError(c, "vehicle")
	}
	return c.JSON(http.StatusOK, vehicle)
}

// CalculatePrice handles POST /cars/calculate-price
func (h *VehicleHandlers) CalculatePrice(c echo.Context) error {
	var input pricing.Input
	if err := c.Bind(&input); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	result, err := h.vehicleService.CalculatePrice(c.Request().Context(), input)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

func parsePagination(c echo.Context) (int, int) {
	limit := 20
	offset := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			offset = parsed
		}
	}
	return limit, offset
}

func parseFloatParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func parseIntParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
