package enum

// UrgencyLevel flags how hard a deadline is.
type UrgencyLevel string

const (
	UrgencyNormal  UrgencyLevel = "normal"
	UrgencyUrgent  UrgencyLevel = "urgent"
	UrgencyExpress UrgencyLevel = "express"
)

// Valid reports whether u is a known urgency value.
func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyExpress:
		return true
	}
	return false
}
