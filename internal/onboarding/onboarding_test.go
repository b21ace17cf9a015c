package onboarding

import (
	"testing"

	"admin-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func billingForm() AddressForm {
	return AddressForm{
		AddressLine: "12 Main",
		Latitude:    "18.52",
		Longitude:   "73.85",
		Pincode:     "411001",
		CityID:      "7",
	}
}

func shippingForm() AddressForm {
	return AddressForm{
		AddressLine: "9 Side St",
		Pincode:     "411002",
		CityID:      "8",
	}
}

func TestBuildPlanRequiresName(t *testing.T) {
	_, err := BuildPlan(Form{Name: "   "}, nil)
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = BuildPlan(Form{}, []string{"gst_images-a.png"})
	require.ErrorIs(t, err, ErrNameRequired)
}

func TestBuildPlanDefaults(t *testing.T) {
	plan, err := BuildPlan(Form{Name: "Acme"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Acme", plan.Customer.Name)
	assert.Equal(t, 0, plan.Customer.PaymentTerm)
	assert.Equal(t, 1, plan.Customer.Status)
	assert.False(t, plan.Customer.IsGSTReg)
	assert.Empty(t, plan.Customer.GSTImages)
	assert.Empty(t, plan.Addresses)
	assert.Empty(t, plan.Contacts)
}

func TestBuildPlanCoercion(t *testing.T) {
	plan, err := BuildPlan(Form{
		Name:            "Acme",
		PaymentTerm:     "30",
		Status:          "0",
		IsGSTRegistered: "1",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 30, plan.Customer.PaymentTerm)
	assert.Equal(t, 0, plan.Customer.Status)
	assert.True(t, plan.Customer.IsGSTReg)
}

func TestBuildPlanGSTImageSerialization(t *testing.T) {
	plan, err := BuildPlan(Form{Name: "Acme"}, []string{"gst_images-a.png", "gst_images-b.jpg"})
	require.NoError(t, err)
	assert.JSONEq(t, `["gst_images-a.png","gst_images-b.jpg"]`, plan.Customer.GSTImages)

	plan, err = BuildPlan(Form{Name: "Acme"}, []string{})
	require.NoError(t, err)
	assert.Empty(t, plan.Customer.GSTImages, "empty list must be stored as absent")
}

// The address table: billing presence x shipping presence x same-as-billing
// flag, asserting exactly which rows come out.
func TestBuildPlanAddressCombinations(t *testing.T) {
	tests := []struct {
		name          string
		billing       AddressForm
		shipping      AddressForm
		sameAsBilling string
		wantTypes     []model.AddressType
		wantLines     []string
	}{
		{
			name:      "no addresses",
			wantTypes: nil,
		},
		{
			name:      "billing only",
			billing:   billingForm(),
			wantTypes: []model.AddressType{model.AddressTypeBilling},
			wantLines: []string{"12 Main"},
		},
		{
			name:      "shipping only, flag unset",
			shipping:  shippingForm(),
			wantTypes: []model.AddressType{model.AddressTypeShipping},
			wantLines: []string{"9 Side St"},
		},
		{
			name:          "billing duplicated into shipping",
			billing:       billingForm(),
			sameAsBilling: "1",
			wantTypes:     []model.AddressType{model.AddressTypeBilling, model.AddressTypeShipping},
			wantLines:     []string{"12 Main", "12 Main"},
		},
		{
			name:          "flag set but no billing falls back to shipping fields",
			shipping:      shippingForm(),
			sameAsBilling: "1",
			wantTypes:     []model.AddressType{model.AddressTypeShipping},
			wantLines:     []string{"9 Side St"},
		},
		{
			name:          "flag set with neither block yields nothing",
			sameAsBilling: "true",
			wantTypes:     nil,
		},
		{
			name:          "both blocks, flag unset",
			billing:       billingForm(),
			shipping:      shippingForm(),
			sameAsBilling: "0",
			wantTypes:     []model.AddressType{model.AddressTypeBilling, model.AddressTypeShipping},
			wantLines:     []string{"12 Main", "9 Side St"},
		},
		{
			name:          "both blocks, flag set ignores shipping fields",
			billing:       billingForm(),
			shipping:      shippingForm(),
			sameAsBilling: "true",
			wantTypes:     []model.AddressType{model.AddressTypeBilling, model.AddressTypeShipping},
			wantLines:     []string{"12 Main", "12 Main"},
		},
		{
			name:      "city id alone makes a block present",
			billing:   AddressForm{CityID: "7"},
			wantTypes: []model.AddressType{model.AddressTypeBilling},
			wantLines: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := BuildPlan(Form{
				Name:                  "Acme",
				Billing:               tt.billing,
				Shipping:              tt.shipping,
				ShippingSameAsBilling: tt.sameAsBilling,
			}, nil)
			require.NoError(t, err)

			require.Len(t, plan.Addresses, len(tt.wantTypes))
			for i, addr := range plan.Addresses {
				assert.Equal(t, tt.wantTypes[i], addr.AddressType)
				assert.Equal(t, tt.wantLines[i], addr.AddressLine)
				assert.Equal(t, model.OwnerTypeCustomer, addr.OwnerType)
			}
		})
	}
}

func TestBuildPlanAddressFieldParsing(t *testing.T) {
	plan, err := BuildPlan(Form{Name: "Acme", Billing: billingForm()}, nil)
	require.NoError(t, err)
	require.Len(t, plan.Addresses, 1)

	addr := plan.Addresses[0]
	require.NotNil(t, addr.Latitude)
	require.NotNil(t, addr.Longitude)
	assert.InDelta(t, 18.52, *addr.Latitude, 1e-9)
	assert.InDelta(t, 73.85, *addr.Longitude, 1e-9)
	require.NotNil(t, addr.CityID)
	assert.Equal(t, uint(7), *addr.CityID)
	assert.Equal(t, "411001", addr.Pincode)
}

func TestBuildPlanUnparsableCoordinatesAreNull(t *testing.T) {
	plan, err := BuildPlan(Form{
		Name:    "Acme",
		Billing: AddressForm{AddressLine: "12 Main", Latitude: "north", Longitude: ""},
	}, nil)
	require.NoError(t, err)
	require.Len(t, plan.Addresses, 1)
	assert.Nil(t, plan.Addresses[0].Latitude)
	assert.Nil(t, plan.Addresses[0].Longitude)
	assert.Nil(t, plan.Addresses[0].CityID)
}

func TestBuildPlanContactSlots(t *testing.T) {
	tests := []struct {
		name      string
		contacts  []ContactForm
		wantNames []string
	}{
		{name: "no contacts"},
		{
			name:      "first slot only",
			contacts:  []ContactForm{{Name: "Ravi", Designation: "Manager"}, {}},
			wantNames: []string{"Ravi"},
		},
		{
			name:      "second slot only",
			contacts:  []ContactForm{{Email: "orphan@acme.test"}, {Name: "Meera"}},
			wantNames: []string{"Meera"},
		},
		{
			name:      "both slots keep form order",
			contacts:  []ContactForm{{Name: "Ravi"}, {Name: "Meera"}},
			wantNames: []string{"Ravi", "Meera"},
		},
		{
			name:      "whitespace name is skipped",
			contacts:  []ContactForm{{Name: "  "}, {Name: "Meera"}},
			wantNames: []string{"Meera"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := BuildPlan(Form{Name: "Acme", Contacts: tt.contacts}, nil)
			require.NoError(t, err)

			require.Len(t, plan.Contacts, len(tt.wantNames))
			for i, contact := range plan.Contacts {
				assert.Equal(t, tt.wantNames[i], contact.Name)
				assert.Equal(t, model.ParentTypeCustomer, contact.ParentType)
			}
		})
	}
}

func TestParseFlexibleBool(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "True", " 1 "}
	for _, s := range truthy {
		assert.True(t, ParseFlexibleBool(s), "%q should be truthy", s)
	}

	falsy := []string{"", "0", "false", "no", "yes", "2"}
	for _, s := range falsy {
		assert.False(t, ParseFlexibleBool(s), "%q should be falsy", s)
	}
}
