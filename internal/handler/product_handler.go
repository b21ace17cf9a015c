package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"admin-backend/internal/model"
	"admin-backend/internal/response"
	"admin-backend/pkg/database"
	"admin-backend/pkg/logger"
	"admin-backend/pkg/storage"
	"admin-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// productListRow is the listing projection with joined reference names
type productListRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	HSN       string    `json:"hsn"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Category  string    `json:"category"`
	UsageUnit string    `json:"usage_unit"`
}

// productDetail is the single-product projection with joined reference names
type productDetail struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CategoryID    uint      `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	Image         string    `json:"image"`
	HSN           string    `json:"hsn"`
	IGST          float64   `json:"igst"`
	CGST          float64   `json:"cgst"`
	SGST          float64   `json:"sgst"`
	UsageUnitID   uint      `json:"usage_unit_id"`
	UsageUnitName string    `json:"usage_unit_name"`
	Inventory     int       `json:"inventory"`
	Status        int       `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GetProducts lists products with category and usage-unit names, newest first
func GetProducts(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var rows []productListRow
	result := database.GetDB().Table("products p").
		Select("p.id, p.name, p.hsn, p.status, p.created_at, pc.name AS category, pu.name AS usage_unit").
		Joins("LEFT JOIN product_categories pc ON p.category_id = pc.id").
		Joins("LEFT JOIN product_usage_unit pu ON p.usage_unit_id = pu.id").
		Order("p.id DESC").
		Scan(&rows)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}

	return c.JSON(http.StatusOK, response.OK(rows))
}

// GetCategories lists active product categories
func GetCategories(c echo.Context) error {
	var categories []model.ProductCategory
	result := database.GetDB().Where("status = ?", 1).Order("name ASC").Find(&categories)
	if result.Error != nil {
		logger.FromContext(c).Error("Failed to list categories", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}
	return c.JSON(http.StatusOK, response.OK(categories))
}

// GetUsageUnits lists active usage units
func GetUsageUnits(c echo.Context) error {
	var units []model.UsageUnit
	result := database.GetDB().Where("status = ?", 1).Order("name ASC").Find(&units)
	if result.Error != nil {
		logger.FromContext(c).Error("Failed to list usage units", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}
	return c.JSON(http.StatusOK, response.OK(units))
}

// GetProductByID fetches one product with joined reference names
func GetProductByID(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var detail productDetail
	result := database.GetDB().Table("products p").
		Select(`p.id, p.name, p.description, p.category_id, pc.name AS category_name,
			p.image, p.hsn, p.igst, p.cgst, p.sgst, p.usage_unit_id, pu.name AS usage_unit_name,
			p.inventory, p.status, p.created_at, p.updated_at`).
		Joins("LEFT JOIN product_categories pc ON p.category_id = pc.id").
		Joins("LEFT JOIN product_usage_unit pu ON p.usage_unit_id = pu.id").
		Where("p.id = ?", id).
		Scan(&detail)
	if result.Error != nil {
		log.Error("Failed to fetch product", zap.String("product_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, response.Fail("Product not found"))
	}

	return c.JSON(http.StatusOK, response.OK(detail))
}

// AddProduct creates a product with an optional image upload
func AddProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("create")

	name := c.FormValue("name")
	categoryID := c.FormValue("category_id")
	hsn := c.FormValue("hsn")
	usageUnitID := c.FormValue("usage_unit_id")
	if name == "" || categoryID == "" || hsn == "" || usageUnitID == "" {
		return c.JSON(http.StatusBadRequest, response.Fail("Required fields missing"))
	}

	image, err := saveProductImage(c)
	if err != nil {
		return uploadErrorResponse(c, "image", err)
	}

	igst, _ := strconv.ParseFloat(c.FormValue("gst"), 64)
	cgst, sgst := model.SplitGST(igst)

	product := model.Product{
		Name:        name,
		Description: c.FormValue("description"),
		CategoryID:  uintValue(categoryID),
		Image:       image,
		HSN:         hsn,
		IGST:        igst,
		CGST:        cgst,
		SGST:        sgst,
		UsageUnitID: uintValue(usageUnitID),
		Inventory:   intValue(c.FormValue("inventory")),
		Status:      intValue(c.FormValue("status")),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&product); result.Error != nil {
		removeStoredFile(c, image)
		log.Error("Failed to create product", zap.String("name", name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}

	log.Info("Product created", zap.Uint("product_id", product.ID), zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, response.Envelope{
		Success: true,
		Message: "Product Added Successfully.",
		Data:    echo.Map{"productId": product.ID},
	})
}

// UpdateProduct updates a product. A newly uploaded image replaces the old
// file; without one the stored image reference is preserved.
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("update")
	id := c.Param("id")

	existing, err := findProduct(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, response.Fail("Product Not Found."))
		}
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}

	image, err := saveProductImage(c)
	if err != nil {
		return uploadErrorResponse(c, "image", err)
	}

	igst, _ := strconv.ParseFloat(c.FormValue("gst"), 64)
	cgst, sgst := model.SplitGST(igst)

	updates := map[string]interface{}{
		"name":          c.FormValue("name"),
		"description":   c.FormValue("description"),
		"category_id":   uintValue(c.FormValue("category_id")),
		"hsn":           c.FormValue("hsn"),
		"igst":          igst,
		"cgst":          cgst,
		"sgst":          sgst,
		"usage_unit_id": uintValue(c.FormValue("usage_unit_id")),
		"inventory":     intValue(c.FormValue("inventory")),
		"status":        intValue(c.FormValue("status")),
	}
	// Keep the current image when no new one was uploaded.
	if image != "" {
		updates["image"] = image
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Model(&model.Product{}).Where("id = ?", id).Updates(updates); result.Error != nil {
		removeStoredFile(c, image)
		log.Error("Failed to update product", zap.String("product_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}

	// The old file is removed only after the new reference is committed.
	if image != "" && existing.Image != "" {
		if err := store.Remove(existing.Image); err != nil {
			log.Warn("Failed to remove replaced image", zap.String("file", existing.Image), zap.Error(err))
		}
	}

	log.Info("Product updated", zap.String("product_id", id))
	return c.JSON(http.StatusOK, response.Message("Product updated successfully."))
}

// DeleteProduct removes a product row and its stored image file
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("delete")
	id := c.Param("id")

	existing, err := findProduct(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, response.Fail("Product Not Found."))
		}
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}

	if existing.Image != "" {
		if err := store.Remove(existing.Image); err != nil {
			log.Warn("Failed to remove product image", zap.String("file", existing.Image), zap.Error(err))
		}
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Product{}, id); result.Error != nil {
		log.Error("Failed to delete product", zap.String("product_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}

	log.Info("Product deleted", zap.String("product_id", id))
	return c.JSON(http.StatusOK, response.Message("Product deleted successfully."))
}

// findProduct loads a product row, logging data-layer failures that are not
// a plain missing row.
func findProduct(c echo.Context, id string) (model.Product, error) {
	var product model.Product
	result := database.GetDB().First(&product, id)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		logger.FromContext(c).Error("Failed to fetch product", zap.String("product_id", id), zap.Error(result.Error))
	}
	return product, result.Error
}

// removeStoredFile best-effort deletes a stored file, tolerating the empty name
func removeStoredFile(c echo.Context, name string) {
	if name == "" {
		return
	}
	if err := store.Remove(name); err != nil {
		logger.FromContext(c).Warn("Failed to remove stored file", zap.String("file", name), zap.Error(err))
	}
}

// saveProductImage stores the optional "image" upload and returns the stored
// filename. A request without an image yields an empty name and no error.
func saveProductImage(c echo.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// No file uploaded.
		return "", nil
	}
	return store.Save(fh, "image", MaxProductImageSize)
}

// uploadErrorResponse maps a storage failure to the right JSON response:
// client-visible rejections surface as validation errors, everything else
// stays a generic internal error.
func uploadErrorResponse(c echo.Context, field string, err error) error {
	if storage.IsRejection(err) {
		prometheus.RecordUploadRejection(field)
		return c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
	}
	logger.FromContext(c).Error("Failed to store uploaded file", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
}

func intValue(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func uintValue(s string) uint {
	v, _ := strconv.ParseUint(s, 10, 64)
	return uint(v)
}
