package gridsheet

// GridListener is notified after the grid changes. Implement it to keep a
// view in sync with the grid, e.g. to redraw after an insertion or sort.
type GridListener interface {
	// CellChanged is called after a committed edit stored value at ref.
	CellChanged(ref CellRef, value string)

	// StructureChanged is called after a row/column insertion or a sort,
	// once row and column counts are up to date.
	StructureChanged(rows, cols int)
}

// ListenerFuncs adapts plain functions to GridListener. Nil fields are skipped.
type ListenerFuncs struct {
	OnCell      func(ref CellRef, value string)
	OnStructure func(rows, cols int)
}

func (l ListenerFuncs) CellChanged(ref CellRef, value string) {
	if l.OnCell != nil {
		l.OnCell(ref, value)
	}
}

func (l ListenerFuncs) StructureChanged(rows, cols int) {
	if l.OnStructure != nil {
		l.OnStructure(rows, cols)
	}
}
