package model

// TableStatus is the occupancy state of a physical table. Reserved tables are
// seeded or marked outside the ordering engine; the lifecycle only moves
// tables between available and occupied.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

// ParseTableStatus converts a request string into a TableStatus.
func ParseTableStatus(s string) (TableStatus, bool) {
	switch TableStatus(s) {
	case TableAvailable, TableOccupied, TableReserved:
		return TableStatus(s), true
	}
	return "", false
}

// Table is one physical table. CurrentOrder is non-nil only while the table
// is occupied; an available table never references an order.
type Table struct {
	ID           string      `json:"id"`
	Number       int         `json:"number"`
	Capacity     int         `json:"capacity"`
	Status       TableStatus `json:"status"`
	CurrentOrder *Order      `json:"currentOrder,omitempty"`
}

// Clone returns a deep copy of the table and its attached order.
func (t *Table) Clone() Table {
	clone := *t
	clone.CurrentOrder = t.CurrentOrder.Clone()
	return clone
}

// TableSummary is the staff dashboard headline: how many tables are free, how
// many are seated, and how many orders are in flight.
type TableSummary struct {
	Available    int `json:"available"`
	Occupied     int `json:"occupied"`
	Reserved     int `json:"reserved"`
	ActiveOrders int `json:"activeOrders"`
}
