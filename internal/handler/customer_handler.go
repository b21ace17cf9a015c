package handler

import (
	"net/http"
	"strings"
	"time"

	"admin-backend/internal/model"
	"admin-backend/internal/onboarding"
	"admin-backend/internal/response"
	"admin-backend/pkg/database"
	"admin-backend/pkg/logger"
	"admin-backend/pkg/storage"
	"admin-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// customerRow is the listing projection for customers
type customerRow struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
	Status int    `json:"status"`
}

// GetAllCustomers lists customers, newest first
func GetAllCustomers(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var rows []customerRow
	result := database.GetDB().Model(&model.Customer{}).
		Select("id", "name", "mobile", "email", "status").
		Order("id DESC").
		Scan(&rows)
	if result.Error != nil {
		log.Error("Failed to list customers", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}

	return c.JSON(http.StatusOK, response.OK(rows))
}

// AddCustomer creates a customer together with its conditional billing and
// shipping addresses, optional contact persons, and uploaded GST images.
// The multi-row insert runs as one transaction; uploaded files are cleaned
// up when the transaction does not land.
func AddCustomer(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCustomerOperation("create")

	form := bindCustomerForm(c)
	// Fail fast: nothing is written, not even files, without a name.
	if strings.TrimSpace(form.Name) == "" {
		return c.JSON(http.StatusBadRequest, response.Fail(onboarding.ErrNameRequired.Error()))
	}

	mform, err := c.MultipartForm()
	if err != nil && err != http.ErrNotMultipart {
		log.Error("Failed to parse multipart form", zap.Error(err))
		return c.JSON(http.StatusBadRequest, response.Fail("Invalid request data"))
	}

	var gstImages []string
	if mform != nil {
		files := mform.File["gst_images"]
		if len(files) > MaxGSTImages {
			prometheus.RecordUploadRejection("too_many_files")
			return c.JSON(http.StatusBadRequest, response.Fail("A maximum of 5 GST images are allowed"))
		}
		for _, fh := range files {
			name, err := store.Save(fh, "gst_images", MaxGSTImageSize)
			if err != nil {
				removeFiles(c, gstImages)
				if storage.IsRejection(err) {
					prometheus.RecordUploadRejection("gst_images")
					return c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
				}
				log.Error("Failed to store GST image", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
			}
			gstImages = append(gstImages, name)
		}
	}

	plan, err := onboarding.BuildPlan(form, gstImages)
	if err != nil {
		removeFiles(c, gstImages)
		return c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	customerID, err := onboarding.Execute(database.GetDB(), plan)
	if err != nil {
		removeFiles(c, gstImages)
		log.Error("Customer creation failed", zap.String("name", form.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, response.Fail("Internal Server Error"))
	}

	log.Info("Customer created",
		zap.Uint("customer_id", customerID),
		zap.Int("addresses", len(plan.Addresses)),
		zap.Int("contacts", len(plan.Contacts)),
		zap.Int("gst_images", len(gstImages)))
	return c.JSON(http.StatusCreated, response.OK(echo.Map{"customerId": customerID}))
}

// bindCustomerForm collects the raw multipart fields; all coercion is left
// to the onboarding plan builder.
func bindCustomerForm(c echo.Context) onboarding.Form {
	return onboarding.Form{
		Name:            c.FormValue("name"),
		Email:           c.FormValue("email"),
		Mobile:          c.FormValue("mobile"),
		GSTIN:           c.FormValue("gstin"),
		PaymentTerm:     c.FormValue("payment_term"),
		Status:          c.FormValue("status"),
		IsGSTRegistered: c.FormValue("is_gst_registered"),
		Billing: onboarding.AddressForm{
			AddressLine:   c.FormValue("billing_address"),
			Latitude:      c.FormValue("billing_latitude"),
			Longitude:     c.FormValue("billing_longitude"),
			Pincode:       c.FormValue("billing_pincode"),
			GoogleAddress: c.FormValue("billing_google_address"),
			CityID:        c.FormValue("billing_city_id"),
		},
		Shipping: onboarding.AddressForm{
			AddressLine:   c.FormValue("shipping_address"),
			Latitude:      c.FormValue("shipping_latitude"),
			Longitude:     c.FormValue("shipping_longitude"),
			Pincode:       c.FormValue("shipping_pincode"),
			GoogleAddress: c.FormValue("shipping_google_address"),
			CityID:        c.FormValue("shipping_city_id"),
		},
		ShippingSameAsBilling: c.FormValue("shipping_same_as_billing"),
		Contacts: []onboarding.ContactForm{
			{
				Name:        c.FormValue("contact_person_name_1"),
				Email:       c.FormValue("contact_person_email_1"),
				Mobile:      c.FormValue("contact_person_mobile_1"),
				Designation: c.FormValue("contact_person_designation_1"),
			},
			{
				Name:        c.FormValue("contact_person_name_2"),
				Email:       c.FormValue("contact_person_email_2"),
				Mobile:      c.FormValue("contact_person_mobile_2"),
				Designation: c.FormValue("contact_person_designation_2"),
			},
		},
	}
}

// removeFiles best-effort deletes files stored for a request that failed
func removeFiles(c echo.Context, names []string) {
	for _, name := range names {
		if err := store.Remove(name); err != nil {
			logger.FromContext(c).Warn("Failed to remove stored file", zap.String("file", name), zap.Error(err))
		}
	}
}
