package model

// CartLine is one selected menu item with its quantity. Name and price are
// snapshotted at add-time so later catalogue changes never alter the cart.
type CartLine struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note,omitempty"`
}

// Cart holds one diner's pending selection, keyed by menu item ID with at most
// one line per item. Lines keep insertion order. A Cart is not safe for
// concurrent use; callers serialise access.
type Cart struct {
	lines map[string]*CartLine
	order []string
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

// Add puts one unit of the item into the cart, incrementing the quantity if a
// line already exists. Unavailable items are rejected and the cart is left
// unchanged.
func (c *Cart) Add(item MenuItem) error {
	if !item.Available {
		return ErrItemUnavailable
	}
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		return nil
	}
	c.lines[item.ID] = &CartLine{
		FoodID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	}
	c.order = append(c.order, item.ID)
	return nil
}

// SetQuantity sets the quantity for an existing line. A quantity of 0 removes
// the line; negative quantities are rejected with no state change.
func (c *Cart) SetQuantity(foodID string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if _, ok := c.lines[foodID]; !ok {
		return nil
	}
	if quantity == 0 {
		c.Remove(foodID)
		return nil
	}
	c.lines[foodID].Quantity = quantity
	return nil
}

// Remove deletes the line for the item if present.
func (c *Cart) Remove(foodID string) {
	if _, ok := c.lines[foodID]; !ok {
		return
	}
	delete(c.lines, foodID)
	for i, id := range c.order {
		if id == foodID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Lines returns the cart lines in insertion order as value copies.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}
	return lines
}

// Total returns the sum of price multiplied by quantity over all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[string]*CartLine)
	c.order = nil
}

// CartSnapshot is a read-only view of a cart handed to the presentation layer.
type CartSnapshot struct {
	Lines     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// Snapshot captures the cart's current lines and totals.
func (c *Cart) Snapshot() CartSnapshot {
	return CartSnapshot{
		Lines:     c.Lines(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}
