package model

// Inspiration is an editorial entry. Tag holds comma separated tokens and is
// filtered by case-insensitive substring match.
type Inspiration struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Description string `gorm:"type:text" json:"description" validate:"required"`
	ImageURL    string `gorm:"type:varchar(255)" json:"image_url" validate:"required"`
	Tag         string `gorm:"type:varchar(100)" json:"tag" validate:"required"`
}
