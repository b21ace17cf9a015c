// Package onboarding implements the customer-creation workflow: validation,
// conditional billing/shipping address rows, optional contact persons, and
// the transactional insert sequence that ties them to the new customer.
package onboarding

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"admin-backend/internal/model"

	"gorm.io/gorm"
)

// ErrNameRequired rejects forms without a customer name. No writes happen.
var ErrNameRequired = errors.New("name required")

// AddressForm carries the raw billing or shipping fields from the request
type AddressForm struct {
	AddressLine   string
	Latitude      string
	Longitude     string
	Pincode       string
	GoogleAddress string
	CityID        string
}

// ContactForm carries one contact-person slot from the request
type ContactForm struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
}

// Form is the raw customer-creation input as bound from the multipart form.
// All values are strings at this boundary; coercion happens in BuildPlan.
type Form struct {
	Name            string
	Email           string
	Mobile          string
	GSTIN           string
	PaymentTerm     string
	Status          string
	IsGSTRegistered string

	Billing               AddressForm
	Shipping              AddressForm
	ShippingSameAsBilling string

	// Contact slots in form order; empty names are skipped.
	Contacts []ContactForm
}

// Plan is the fully-coerced set of rows a customer creation will insert.
// Owner and parent ids are filled in during Execute once the customer id
// is known.
type Plan struct {
	Customer  model.Customer
	Addresses []model.Address
	Contacts  []model.ContactPerson
}

// ParseFlexibleBool coerces the loosely-typed flags the admin panel sends:
// "1", "true" and "TRUE" are truthy, everything else is false.
func ParseFlexibleBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true
	}
	return false
}

func parseIntOr(s string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return v
	}
	return fallback
}

func parseFloatPtr(s string) *float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return &v
	}
	return nil
}

func parseUintPtr(s string) *uint {
	if v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil {
		u := uint(v)
		return &u
	}
	return nil
}

// present reports whether an address block carries enough data to store:
// an address line or a city reference.
func (a AddressForm) present() bool {
	return strings.TrimSpace(a.AddressLine) != "" || strings.TrimSpace(a.CityID) != ""
}

func (a AddressForm) toAddress(addrType model.AddressType, status int) model.Address {
	return model.Address{
		OwnerType:     model.OwnerTypeCustomer,
		AddressType:   addrType,
		AddressLine:   a.AddressLine,
		Latitude:      parseFloatPtr(a.Latitude),
		Longitude:     parseFloatPtr(a.Longitude),
		Pincode:       a.Pincode,
		GoogleAddress: a.GoogleAddress,
		CityID:        parseUintPtr(a.CityID),
		Status:        status,
	}
}

// BuildPlan validates and coerces a customer form into the exact set of rows
// to insert. It is pure: no I/O, no side effects, so the conditional
// address/contact logic is testable in isolation.
//
// gstImages is the ordered list of filenames already persisted by the file
// store for this request; an empty list is stored as absent.
func BuildPlan(form Form, gstImages []string) (*Plan, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, ErrNameRequired
	}

	status := parseIntOr(form.Status, 1)

	customer := model.Customer{
		Name:        form.Name,
		Email:       form.Email,
		Mobile:      form.Mobile,
		GSTIN:       form.GSTIN,
		PaymentTerm: parseIntOr(form.PaymentTerm, 0),
		Status:      status,
		IsGSTReg:    ParseFlexibleBool(form.IsGSTRegistered),
	}
	if len(gstImages) > 0 {
		serialized, err := json.Marshal(gstImages)
		if err != nil {
			return nil, err
		}
		customer.GSTImages = string(serialized)
	}

	plan := &Plan{Customer: customer}

	billingPresent := form.Billing.present()
	if billingPresent {
		plan.Addresses = append(plan.Addresses, form.Billing.toAddress(model.AddressTypeBilling, status))
	}

	// Shipping resolution, in priority order:
	//   1. same-as-billing with billing data: duplicate the billing values.
	//   2. same-as-billing without billing data: fall back to shipping fields.
	//   3. otherwise: use shipping fields when present.
	// The duplicated row is tagged shipping so the two rows stay
	// distinguishable.
	sameAsBilling := ParseFlexibleBool(form.ShippingSameAsBilling)
	switch {
	case sameAsBilling && billingPresent:
		plan.Addresses = append(plan.Addresses, form.Billing.toAddress(model.AddressTypeShipping, status))
	case form.Shipping.present():
		plan.Addresses = append(plan.Addresses, form.Shipping.toAddress(model.AddressTypeShipping, status))
	}

	for _, contact := range form.Contacts {
		if strings.TrimSpace(contact.Name) == "" {
			continue
		}
		plan.Contacts = append(plan.Contacts, model.ContactPerson{
			ParentType:  model.ParentTypeCustomer,
			Name:        contact.Name,
			Email:       contact.Email,
			Mobile:      contact.Mobile,
			Designation: contact.Designation,
			Status:      status,
		})
	}

	return plan, nil
}

// Execute inserts the planned rows inside a single transaction: the customer
// first, then its addresses and contact persons carrying the generated id.
// Any failure rolls the whole unit back, so a partial customer never lands.
func Execute(db *gorm.DB, plan *Plan) (uint, error) {
	customer := plan.Customer
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		for i := range plan.Addresses {
			address := plan.Addresses[i]
			address.OwnerID = customer.ID
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
		}

		for i := range plan.Contacts {
			contact := plan.Contacts[i]
			contact.ParentID = customer.ID
			if err := tx.Create(&contact).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return customer.ID, nil
}
