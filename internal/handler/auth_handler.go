package handler

import (
	"errors"
	"net/http"
	"time"

	"admin-backend/internal/model"
	"admin-backend/internal/response"
	"admin-backend/pkg/database"
	"admin-backend/pkg/jwtutil"
	"admin-backend/pkg/logger"
	"admin-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignUp registers a new admin account
func SignUp(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		UserName        string `json:"userName"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse signup request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, response.Fail("Invalid request data"))
	}

	if req.UserName == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return c.JSON(http.StatusBadRequest, response.Fail("All fields are required."))
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusBadRequest, response.Fail("Passwords does not match."))
	}

	// Never store the plaintext
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, response.Fail("Server Error"))
	}

	admin := model.Admin{
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hashed),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&admin); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			log.Warn("Admin userName already taken", zap.String("userName", req.UserName))
			return c.JSON(http.StatusBadRequest, response.Fail("userName already exists."))
		}
		log.Error("Failed to create admin", zap.String("userName", req.UserName), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Server Error"))
	}

	log.Info("Admin registered", zap.String("userName", admin.UserName))
	return c.JSON(http.StatusCreated, response.Message("Admin registered successfully."))
}

// SignIn verifies admin credentials and issues a session token
func SignIn(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req struct {
		UserName string `json:"userName"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse signin request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, response.Fail("Invalid request data"))
	}

	if req.UserName == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, response.Fail("Please provide userName and password"))
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var admin model.Admin
	result := database.GetDB().Where("user_name = ?", req.UserName).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn("Admin not found", zap.String("userName", req.UserName))
			prometheus.RecordAuthError("user_not_found")
			return c.JSON(http.StatusNotFound, response.Fail("User Not Found."))
		}
		log.Error("Failed to look up admin", zap.String("userName", req.UserName), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Server Error"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("userName", req.UserName))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, response.Fail("Invalid Credentials"))
	}

	token, err := jwtutil.GenerateToken(admin.ID, admin.UserName, admin.Email)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, response.Fail("Server Error"))
	}

	log.Info("Admin signed in", zap.String("userName", admin.UserName))
	return c.JSON(http.StatusOK, response.OK(echo.Map{
		"user": echo.Map{
			"id":       admin.ID,
			"userName": admin.UserName,
			"email":    admin.Email,
		},
		"token": token,
	}))
}
