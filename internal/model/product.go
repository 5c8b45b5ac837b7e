package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// StringList stores an ordered list of strings as a JSON text column so the
// same schema works on Postgres and SQLite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported source type for StringList")
}

type Product struct {
	BaseModel
	Name        string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	BrandID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"brand_id" validate:"uuid_required"`
	Brand       *Brand     `gorm:"foreignKey:BrandID" json:"brand,omitempty" validate:"-"`
	Price       float64    `gorm:"not null" json:"price" validate:"required,gt=0"`
	Description string     `gorm:"type:text" json:"description"`
	ImageURL    string     `gorm:"type:varchar(255)" json:"image_url"`
	Material    string     `gorm:"type:varchar(100)" json:"material"`
	Category    string     `gorm:"type:varchar(100)" json:"category"`
	Stock       int        `gorm:"default:0" json:"stock" validate:"gte=0"`
	Sizes       StringList `gorm:"type:text" json:"sizes" validate:"required,min=1"`
	Colors      StringList `gorm:"type:text" json:"colors" validate:"required,min=1"`

	// Menghapus product ikut menghapus transaksi dan favorit terkait
	Transactions []Transaction `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"transactions,omitempty"`
	Favorites    []Favorite    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}
