package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order amounts are stored as plain JSON numbers.
func init() { decimal.MarshalJSONWithoutQuotes = true }

// OrderStatusConfirmed is the only status an order ever has.
const OrderStatusConfirmed = "confirmed"

// PaymentMethod names how an order was paid for.
type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "upi"
	PaymentCard       PaymentMethod = "card"
	PaymentNetBanking PaymentMethod = "netbanking"
	PaymentCOD        PaymentMethod = "cod"
)

// PaymentMethods lists every accepted method, default first.
var PaymentMethods = []PaymentMethod{PaymentUPI, PaymentCard, PaymentNetBanking, PaymentCOD}

// PaymentResult is what a payment processor reports back.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message"`
}

// Address is a shipping or billing address.
type Address struct {
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// Order is a finalized purchase. Orders are never modified once appended to
// the ledger.
type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	Items           []CartLine      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Tax             decimal.Decimal `json:"tax"`
	CODCharge       decimal.Decimal `json:"codCharge"`
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	TransactionID   string          `json:"transactionId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShippingAddress Address         `json:"shippingAddress"`
	BillingAddress  Address         `json:"billingAddress"`
}

// ItemCount is the number of units across all lines.
func (o Order) ItemCount() int {
	n := 0
	for _, l := range o.Items {
		n += l.Quantity
	}
	return n
}
