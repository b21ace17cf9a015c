package handler

import (
	"net/http"

	"admin-backend/internal/model"
	"admin-backend/internal/response"
	"admin-backend/pkg/database"
	"admin-backend/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Geography lookups: static reference data filtered by parent id and
// active status, ordered by name.

// GetStates lists all active states
func GetStates(c echo.Context) error {
	var states []model.State
	result := database.GetDB().Where("status = ?", 1).Order("name ASC").Find(&states)
	if result.Error != nil {
		logger.FromContext(c).Error("Failed to list states", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}
	return c.JSON(http.StatusOK, response.OK(states))
}

// GetDistricts lists active districts for a state
func GetDistricts(c echo.Context) error {
	var districts []model.District
	result := database.GetDB().
		Where("state_id = ? AND status = ?", c.Param("state_id"), 1).
		Order("name ASC").
		Find(&districts)
	if result.Error != nil {
		logger.FromContext(c).Error("Failed to list districts", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}
	return c.JSON(http.StatusOK, response.OK(districts))
}

// GetTalukas lists active talukas for a district
func GetTalukas(c echo.Context) error {
	var talukas []model.Taluka
	result := database.GetDB().
		Where("district_id = ? AND status = ?", c.Param("district_id"), 1).
		Order("name ASC").
		Find(&talukas)
	if result.Error != nil {
		logger.FromContext(c).Error("Failed to list talukas", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}
	return c.JSON(http.StatusOK, response.OK(talukas))
}

// GetCities lists active cities for a taluka
func GetCities(c echo.Context) error {
	var cities []model.City
	result := database.GetDB().
		Where("taluka_id = ? AND status = ?", c.Param("taluka_id"), 1).
		Order("name ASC").
		Find(&cities)
	if result.Error != nil {
		logger.FromContext(c).Error("Failed to list cities", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}
	return c.JSON(http.StatusOK, response.OK(cities))
}
