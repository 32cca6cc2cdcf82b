package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is deduplicated by trimmed name; contact fields follow
// last-write-wins per field and are never blanked by missing input.
type Customer struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CustomerCode   string    `gorm:"size:50" json:"customer_code,omitempty"`
	Phone          string    `gorm:"size:50" json:"phone,omitempty"`
	ContactChannel string    `gorm:"size:50;column:channel" json:"contact_channel,omitempty"`
	Address        string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
