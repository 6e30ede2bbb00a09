package handlers

import (
	"net/http"

	"carmart/internal/common"
	"carmart/internal/models"
	"carmart/internal/services"

	"github.com/labstack/echo/v4"
)

// ReviewHandlers handles HTTP requests for reviews
type ReviewHandlers struct {
	reviewService services.ReviewService
}

func NewReviewHandlers(reviewService services.ReviewService) *ReviewHandlers {
	return &ReviewHandlers{reviewService: reviewService}
}

// GetReviews handles GET /reviews?dealerId=...|carId=...
// Exactly one of the two query parameters must be present.
func (h *ReviewHandlers) GetReviews(c echo.Context) error {
	dealerParam := c.QueryParam("dealerId")
	carParam := c.QueryParam("carId")

	if dealerParam == "" && carParam == "" {
		return common.SendClientError(c, "dealerId or carId query parameter is required")
	}

	ctx := c.Request().Context()
	if dealerParam != "" {
		dealerID, err := common.ValidateUUID(dealerParam, "dealerId")
		if err != nil {
			return common.SendClientError(c, err.Error())
		}
		reviews, err := h.reviewService.ListByDealer(ctx, dealerID)
		if err != nil {
			return common.SendServerError(c, "Failed to list reviews")
		}
		return c.JSON(http.StatusOK, reviews)
	}

	vehicleID, err := common.ValidateUUID(carParam, "carId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	reviews, err := h.reviewService.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return common.SendServerError(c, "Failed to list reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

// CreateReview handles POST /reviews
func (h *ReviewHandlers) CreateReview(c echo.Context) error {
	var review models.Review
	if err := c.Bind(&review); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return common.SendValidationError(c, "rating", "must be between 1 and 5")
	}

	if userID, ok := common.GetUserIDFromContext(c.Request().Context()); ok {
		review.UserID = &userID
	}

	created, err := h.reviewService.Create(c.Request().Context(), &review)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}
