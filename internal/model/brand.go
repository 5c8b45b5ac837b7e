package model

// Brand owns zero or more products. The name is unique across the catalog.
type Brand struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`

	Products []Product `gorm:"foreignKey:BrandID" json:"products,omitempty"`
}
