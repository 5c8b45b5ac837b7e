package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the lifecycle state of a purchase.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "Menunggu Pembayaran"
	StatusSuccess   TransactionStatus = "Berhasil"
	StatusCancelled TransactionStatus = "Dibatalkan"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s TransactionStatus) bool {
	switch s {
	case StatusPending, StatusSuccess, StatusCancelled:
		return true
	}
	return false
}

// StatusNames lists the valid status values for error messages.
func StatusNames() []string {
	return []string{string(StatusPending), string(StatusSuccess), string(StatusCancelled)}
}

type Transaction struct {
	BaseModel
	UserID            *uuid.UUID        `gorm:"type:uuid;index" json:"user_id"` // nil = guest checkout
	User              *User             `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	ProductID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product           *Product          `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	CustomerName      string            `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	ShippingAddress   string            `gorm:"type:text;not null" json:"shipping_address" validate:"required"`
	PaymentMethod     string            `gorm:"type:varchar(50);not null" json:"payment_method" validate:"required"`
	TransactionStatus TransactionStatus `gorm:"type:varchar(50);not null" json:"transaction_status"`
	PurchasedSize     string            `gorm:"type:varchar(10);not null" json:"purchased_size" validate:"required"`
	PurchasedColor    string            `gorm:"type:varchar(50);not null" json:"purchased_color" validate:"required"`
	TransactionDate   time.Time         `gorm:"autoCreateTime" json:"transaction_date"`
}
