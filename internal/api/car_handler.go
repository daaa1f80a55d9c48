package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentwheels-backend-go/internal/core"
	"rentwheels-backend-go/internal/models"
)

// CarHandler handles public car reads and admin car management endpoints.
type CarHandler struct {
	carService core.CarService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(cs core.CarService) *CarHandler {
	return &CarHandler{carService: cs}
}

// ListCars handles GET /api/v1/cars and GET /api/v1/admin/cars.
func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.carService.ListCars(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if cars == nil {
		cars = []*models.Car{}
	}
	c.JSON(http.StatusOK, cars)
}

// ListAvailableCars handles GET /api/v1/cars/available.
func (h *CarHandler) ListAvailableCars(c *gin.Context) {
	cars, err := h.carService.ListAvailableCars(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if cars == nil {
		cars = []*models.Car{}
	}
	c.JSON(http.StatusOK, cars)
}

// GetCar handles GET /api/v1/cars/:carId.
func (h *CarHandler) GetCar(c *gin.Context) {
	carID := c.Param("carId")
	if carID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Car ID is required"})
		return
	}

	car, err := h.carService.GetCar(c.Request.Context(), carID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

// CreateCar handles POST /api/v1/admin/cars.
func (h *CarHandler) CreateCar(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req models.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	car, err := h.carService.CreateCar(c.Request.Context(), caller, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

// UpdateCar handles PATCH /api/v1/admin/cars/:carId with a sparse payload.
func (h *CarHandler) UpdateCar(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	carID := c.Param("carId")
	if carID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Car ID is required"})
		return
	}

	var req models.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	car, err := h.carService.UpdateCar(c.Request.Context(), caller, carID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

// DeleteCar handles DELETE /api/v1/admin/cars/:carId.
func (h *CarHandler) DeleteCar(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	carID := c.Param("carId")
	if carID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Car ID is required"})
		return
	}

	result, err := h.carService.DeleteCar(c.Request.Context(), caller, carID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if result == core.DeleteResultNotFound {
		c.JSON(http.StatusNotFound, DeleteResponse{Status: result})
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Status: result})
}

// ListCarsByOwner handles GET /api/v1/admin/users/:externalId/cars.
func (h *CarHandler) ListCarsByOwner(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	ownerID := c.Param("externalId")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Owner external ID is required"})
		return
	}

	cars, err := h.carService.ListCarsByOwner(c.Request.Context(), caller, ownerID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if cars == nil {
		cars = []*models.Car{}
	}
	c.JSON(http.StatusOK, cars)
}
