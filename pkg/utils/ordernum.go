package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewOrderNo generates a production-order number like PO-3F9A1C.
func NewOrderNo() string {
	return "PO-" + strings.ToUpper(uuid.New().String()[:6])
}
