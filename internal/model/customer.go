package model

import "time"

// Owner and parent type tags for rows hanging off a customer.
const (
	OwnerTypeCustomer  = 1
	ParentTypeCustomer = "customer"
)

// AddressType distinguishes billing from shipping rows.
type AddressType int

const (
	AddressTypeBilling  AddressType = 1
	AddressTypeShipping AddressType = 2
)

// Customer represents an onboarded customer record
type Customer struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Email       string    `json:"email" gorm:"type:varchar(255)"`
	Mobile      string    `json:"mobile" gorm:"type:varchar(15)"`
	GSTIN       string    `json:"gstin" gorm:"type:varchar(20)"`
	GSTImages   string    `json:"gst_images,omitempty" gorm:"type:text;column:gst_images"` // JSON list of stored filenames, empty when none
	PaymentTerm int       `json:"payment_term" gorm:"default:0"`
	Status      int       `json:"status" gorm:"default:1"`
	IsGSTReg    bool      `json:"is_gst_registered" gorm:"column:is_gst_registered;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Address is a billing or shipping address owned by a customer
type Address struct {
	ID            uint        `json:"id" gorm:"primarykey"`
	OwnerID       uint        `json:"owner_id" gorm:"index;not null"`
	OwnerType     int         `json:"owner_type" gorm:"not null"`
	AddressType   AddressType `json:"address_type" gorm:"not null"`
	AddressLine   string      `json:"address_line" gorm:"type:text"`
	Latitude      *float64    `json:"latitude,omitempty"`
	Longitude     *float64    `json:"longitude,omitempty"`
	Pincode       string      `json:"pincode" gorm:"type:varchar(10)"`
	GoogleAddress string      `json:"google_formatted_address" gorm:"type:text"`
	CityID        *uint       `json:"city_id,omitempty"`
	Status        int         `json:"status" gorm:"default:1"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// ContactPerson is an optional contact tied to a customer
type ContactPerson struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ParentID    uint      `json:"parent_id" gorm:"index;not null"`
	ParentType  string    `json:"parent_type" gorm:"type:varchar(50);not null"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Email       string    `json:"email" gorm:"type:varchar(255)"`
	Mobile      string    `json:"mobile" gorm:"type:varchar(15)"`
	Designation string    `json:"designation" gorm:"type:varchar(100)"`
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
