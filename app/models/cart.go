package models

// LineKey identifies a cart line. Two lines with the same key are the same
// line.
type LineKey struct {
	ProductID int64
	Size      string
	Color     string
}

// CartLine is one entry in the cart. Name, Price and Image are copied from
// the product when the line is created and are not refreshed afterwards.
type CartLine struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"selectedSize"`
	Color     string `json:"selectedColor"`
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

// Subtotal is unit price times quantity.
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// CloneLines returns a copy of lines that shares no backing array.
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
