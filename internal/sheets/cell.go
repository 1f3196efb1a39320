package sheets

import (
	"fmt"

	"btd_party/internal/domain/input"
)

// Cell wraps one value read from a roster column. With UNFORMATTED_VALUE
// reads, numbers arrive as float64 and anything typed as text as string.
type Cell struct {
	raw any
}

func NewCell(raw any) Cell {
	return Cell{raw: raw}
}

func (c Cell) String() string {
	switch v := c.raw.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Attack reads the cell as an attack value. Text goes through the same
// normalization as typed input, so "1,200" reads as 1200.
func (c Cell) Attack() int {
	switch v := c.raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		return input.ParseValue(v)
	}
	return 0
}

// IsEmpty reports a blank cell
func (c Cell) IsEmpty() bool {
	return c.raw == nil || c.raw == ""
}
