package enum

// OrderStatus tracks an order through production and payment.
type OrderStatus string

const (
	OrderStatusDraft          OrderStatus = "draft"
	OrderStatusProduction     OrderStatus = "production"
	OrderStatusWaitingBooking OrderStatus = "waiting_booking"
	OrderStatusWaitingDeposit OrderStatus = "waiting_deposit"
	OrderStatusWaitingBalance OrderStatus = "waiting_balance"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Valid reports whether s is a known status value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusProduction, OrderStatusWaitingBooking,
		OrderStatusWaitingDeposit, OrderStatusWaitingBalance,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
