package domain

import "strings"

type CartLine struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
}

// Cart holds at most one line per item name.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) find(name string) int {
	for i, line := range c.Lines {
		if line.Name == name {
			return i
		}
	}
	return -1
}

// Add increments an existing line or appends a new one. The first price and
// description seen for a name are kept.
func (c *Cart) Add(name string, price float64, description string, quantity int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "item name is required"}
	}
	if quantity <= 0 {
		return &ValidationError{Field: "quantity", Message: "quantity must be a positive integer"}
	}
	if price < 0 {
		return &ValidationError{Field: "price", Message: "price must not be negative"}
	}

	if i := c.find(name); i >= 0 {
		c.Lines[i].Quantity += quantity
		return nil
	}

	c.Lines = append(c.Lines, CartLine{
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Description: description,
	})
	return nil
}

// ChangeQuantity drops the line once the quantity reaches zero or below.
func (c *Cart) ChangeQuantity(name string, delta int) {
	i := c.find(name)
	if i < 0 {
		return
	}
	c.Lines[i].Quantity += delta
	if c.Lines[i].Quantity <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

func (c *Cart) Remove(name string) {
	if i := c.find(name); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}

func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return RoundCents(total)
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Snapshot copies the lines into immutable order items.
func (c *Cart) Snapshot() []OrderItem {
	items := make([]OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, OrderItem{
			Name:        line.Name,
			Price:       line.Price,
			Quantity:    line.Quantity,
			Description: line.Description,
		})
	}
	return items
}
