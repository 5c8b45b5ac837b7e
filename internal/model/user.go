package model

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered customer account
type User struct {
	BaseModel
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	HashedPassword string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Phone          string `gorm:"type:varchar(20)" json:"phone"`
	Address        string `gorm:"type:text" json:"address"`

	// Relasi
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Favorites    []Favorite    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.HashedPassword = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
	return err == nil
}
