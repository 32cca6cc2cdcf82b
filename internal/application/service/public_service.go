package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/chatchaiw/apparel-api/internal/config"
	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/chatchaiw/apparel-api/internal/domain/enum"
	"github.com/chatchaiw/apparel-api/internal/domain/repository"
	"github.com/chatchaiw/apparel-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PublicOrderService serves the customer-facing order page reached through
// the order's public UUID. No authentication applies here, so it exposes
// only what the paying customer needs.
type PublicOrderService struct {
	orderRepo repository.OrderRepository
	auditRepo repository.AuditLogRepository
	storage   config.StorageConfig
}

// NewPublicOrderService creates a new public order service
func NewPublicOrderService(
	orderRepo repository.OrderRepository,
	auditRepo repository.AuditLogRepository,
	storage config.StorageConfig,
) *PublicOrderService {
	return &PublicOrderService{
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		storage:   storage,
	}
}

// PublicOrderView is what the customer sees: order identity, line summary,
// totals, and which installment is due now.
type PublicOrderView struct {
	Order          *entity.Order
	DueInstallment enum.Installment
	AmountDue      decimal.Decimal
}

// dueInstallment maps a payment-waiting status to the installment the
// customer owes. Other statuses owe nothing right now.
func dueInstallment(order *entity.Order) (enum.Installment, decimal.Decimal) {
	switch order.Status {
	case enum.OrderStatusWaitingBooking:
		return enum.InstallmentBooking, order.Deposit1
	case enum.OrderStatusWaitingDeposit:
		return enum.InstallmentDeposit, order.Deposit2
	case enum.OrderStatusWaitingBalance:
		return enum.InstallmentBalance, order.BalanceAmount
	}
	return "", decimal.Zero
}

// GetOrder resolves an order by its public UUID
func (s *PublicOrderService) GetOrder(ctx context.Context, publicID uuid.UUID) (*PublicOrderView, error) {
	order, err := s.orderRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	installment, amount := dueInstallment(order)
	return &PublicOrderView{
		Order:          order,
		DueInstallment: installment,
		AmountDue:      amount,
	}, nil
}

// UploadSlipInput represents a payment slip upload
type UploadSlipInput struct {
	PublicID    uuid.UUID
	Installment enum.Installment
	Data        []byte
}

var slipExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// UploadSlip stores a payment slip image against one installment of the
// order. Only JPEG and PNG are accepted, sniffed from the content rather
// than trusted from the filename.
func (s *PublicOrderService) UploadSlip(ctx context.Context, input *UploadSlipInput) (*entity.Order, error) {
	if !input.Installment.Valid() {
		return nil, apperror.NewBadRequestError("Invalid installment: " + string(input.Installment))
	}
	if len(input.Data) == 0 {
		return nil, apperror.NewBadRequestError("Empty file")
	}
	if s.storage.UploadMaxSize > 0 && int64(len(input.Data)) > s.storage.UploadMaxSize {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("File exceeds the %d byte upload limit", s.storage.UploadMaxSize))
	}

	contentType := http.DetectContentType(input.Data)
	ext, ok := slipExtensions[contentType]
	if !ok {
		return nil, apperror.NewBadRequestError("Only JPEG and PNG slips are accepted")
	}

	order, err := s.orderRepo.GetByPublicID(ctx, input.PublicID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if err := os.MkdirAll(s.storage.Path, 0o755); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s_%s_%d%s",
		order.OrderNo, input.Installment, time.Now().Unix(), ext)
	path := filepath.Join(s.storage.Path, filename)
	if err := os.WriteFile(path, input.Data, 0o644); err != nil {
		return nil, err
	}

	switch input.Installment {
	case enum.InstallmentBooking:
		order.SlipBookingURL = path
	case enum.InstallmentDeposit:
		order.SlipDepositURL = path
	case enum.InstallmentBalance:
		order.SlipBalanceURL = path
	}

	order.Customer = nil
	order.Items = nil
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Create(ctx, &entity.AuditLog{
		OrderID:  order.ID,
		Action:   "slip_upload",
		Field:    "slip_" + string(input.Installment),
		NewValue: path,
	})

	return order, nil
}
