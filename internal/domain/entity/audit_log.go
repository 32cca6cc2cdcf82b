package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog records who changed what on an order (status transitions,
// payment-slip uploads).
type AuditLog struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	UserID   *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	Action   string     `gorm:"size:100;default:update" json:"action"`
	Field    string     `gorm:"size:100" json:"field,omitempty"`
	OldValue string     `gorm:"type:text" json:"old_value,omitempty"`
	NewValue string     `gorm:"type:text" json:"new_value,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
