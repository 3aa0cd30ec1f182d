// Package cart implements the visitor's shopping cart on top of the
// observable store.  Totals are pure functions over a snapshot so callers
// never read a stale cached value.
package cart

import (
    "github.com/shopspring/decimal"

    "github.com/iliyamo/sanadimo/internal/store"
)

// Item is what a caller adds to the cart.
type Item struct {
    ID    string          `json:"id"`
    Title string          `json:"title"`
    Price decimal.Decimal `json:"price"`
    Image string          `json:"image"`
}

// Line is one distinct item in the cart.  Quantity is always positive.
type Line struct {
    ID       string          `json:"id"`
    Title    string          `json:"title"`
    Price    decimal.Decimal `json:"price"`
    Image    string          `json:"image"`
    Quantity int             `json:"quantity"`
}

// Cart is an ordered set of lines keyed by item id.
type Cart struct {
    lines *store.Store[Line]
}

// New returns an empty cart.
func New() *Cart {
    return &Cart{lines: store.New[Line]()}
}

// Subscribe registers fn for every change; see store.Store.Subscribe.
func (c *Cart) Subscribe(fn func(store.Snapshot[Line])) func() {
    return c.lines.Subscribe(fn)
}

// Snapshot returns the current lines.
func (c *Cart) Snapshot() store.Snapshot[Line] { return c.lines.Snapshot() }

// AddItem increments the quantity of an existing line or appends a new
// line with quantity 1.
func (c *Cart) AddItem(item Item) {
    c.lines.Update(func(lines []Line) []Line {
        for i := range lines {
            if lines[i].ID == item.ID {
                lines[i].Quantity++
                return lines
            }
        }
        return append(lines, Line{
            ID:       item.ID,
            Title:    item.Title,
            Price:    item.Price,
            Image:    item.Image,
            Quantity: 1,
        })
    })
}

// RemoveItem drops the line with id.  Unknown ids are ignored.
func (c *Cart) RemoveItem(id string) {
    c.lines.Update(func(lines []Line) []Line { return without(lines, id) })
}

// UpdateQuantity sets the quantity of the line with id, removing it when
// quantity is zero or negative.
func (c *Cart) UpdateQuantity(id string, quantity int) {
    c.lines.Update(func(lines []Line) []Line {
        if quantity <= 0 {
            return without(lines, id)
        }
        for i := range lines {
            if lines[i].ID == id {
                lines[i].Quantity = quantity
            }
        }
        return lines
    })
}

// Clear empties the cart.
func (c *Cart) Clear() { c.lines.Set(nil) }

func without(lines []Line, id string) []Line {
    out := lines[:0]
    for _, l := range lines {
        if l.ID != id {
            out = append(out, l)
        }
    }
    return out
}

// Total returns the sum of price times quantity over lines.
func Total(lines []Line) decimal.Decimal {
    sum := decimal.Zero
    for _, l := range lines {
        sum = sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
    }
    return sum
}

// ItemCount returns the sum of quantities over lines.
func ItemCount(lines []Line) int {
    n := 0
    for _, l := range lines {
        n += l.Quantity
    }
    return n
}
