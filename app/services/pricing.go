package services

import (
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/pitstore/app/models"
)

// Pricing holds the checkout charges. Amounts are in the smallest currency
// unit; TaxRate is a fraction (0.08 for 8%).
type Pricing struct {
	ShippingFee           int64
	FreeShippingThreshold int64
	TaxRate               decimal.Decimal
	CODCharge             int64
}

// DefaultPricing is flat 829 shipping waived above 25000, 8% tax and a
// 8299 cash-on-delivery surcharge.
func DefaultPricing() Pricing {
	return Pricing{
		ShippingFee:           829,
		FreeShippingThreshold: 25000,
		TaxRate:               decimal.RequireFromString("0.08"),
		CODCharge:             8299,
	}
}

// Quote is the price breakdown of an order.
type Quote struct {
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Tax       decimal.Decimal
	CODCharge decimal.Decimal
	Total     decimal.Decimal
}

// Quote prices a cart subtotal. Shipping is free strictly above the
// threshold, tax applies to the subtotal alone and the COD surcharge only to
// cash on delivery.
func (p Pricing) Quote(subtotal int64, method models.PaymentMethod) Quote {
	q := Quote{
		Subtotal:  decimal.NewFromInt(subtotal),
		Shipping:  decimal.Zero,
		CODCharge: decimal.Zero,
	}
	if subtotal <= p.FreeShippingThreshold {
		q.Shipping = decimal.NewFromInt(p.ShippingFee)
	}
	if method == models.PaymentCOD {
		q.CODCharge = decimal.NewFromInt(p.CODCharge)
	}
	q.Tax = q.Subtotal.Mul(p.TaxRate)
	q.Total = q.Subtotal.Add(q.Shipping).Add(q.Tax).Add(q.CODCharge)
	return q
}

// FormatPrice renders an amount as rupees with two decimals: ₹17026.84.
func FormatPrice(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

// FormatAmount is FormatPrice for whole-unit amounts.
func FormatAmount(n int64) string {
	return FormatPrice(decimal.NewFromInt(n))
}
