package card

// cardSize is the number of slots in every column.
const cardSize = 5

// noFreeSpace marks a rule without a free-space slot.
const noFreeSpace = -1

// ColumnRule is the static constraint set for one column.
type ColumnRule struct {
	Column    Column
	Low       int
	High      int
	FreeSpace int // 0-based slot that must hold 0, or noFreeSpace
}

func (r ColumnRule) HasFreeSpace() bool {
	return r.FreeSpace != noFreeSpace
}

func (r ColumnRule) InRange(v int) bool {
	return v >= r.Low && v <= r.High
}

// Rules covers the standard 75-ball card, in column order.
var Rules = [columnCount]ColumnRule{
	{Column: B, Low: 1, High: 15, FreeSpace: noFreeSpace},
	{Column: I, Low: 16, High: 30, FreeSpace: noFreeSpace},
	{Column: N, Low: 31, High: 45, FreeSpace: 2},
	{Column: G, Low: 46, High: 60, FreeSpace: noFreeSpace},
	{Column: O, Low: 61, High: 75, FreeSpace: noFreeSpace},
}
