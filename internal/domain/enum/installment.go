package enum

// Installment names the three payment legs of an order.
type Installment string

const (
	InstallmentBooking Installment = "booking"
	InstallmentDeposit Installment = "deposit"
	InstallmentBalance Installment = "balance"
)

// Valid reports whether i is a known installment value.
func (i Installment) Valid() bool {
	switch i {
	case InstallmentBooking, InstallmentDeposit, InstallmentBalance:
		return true
	}
	return false
}
