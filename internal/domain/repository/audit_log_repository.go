package repository

import (
	"context"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/google/uuid"
)

// AuditLogRepository defines the interface for audit log operations
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.AuditLog, error)
}
