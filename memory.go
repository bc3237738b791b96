package litterlogic

// Memory is what the agent remembers between ticks: the nearest known
// recharge point and stations, and the bin it is heading for.
//
// Remembered positions are never expired. A station that has scrolled out
// of view stays remembered until something strictly closer is seen.
type Memory struct {
	Recharge         NullPosition
	WasteStation     NullPosition
	RecyclingStation NullPosition
	BinTarget        NullPosition
}

// Scan returns mem tightened with everything visible in view, as seen by an
// agent at the given position carrying res. Remembered distances only ever
// shrink, so the result does not depend on the order cells are visited in.
func Scan(mem Memory, view View, at Position, res Resources) Memory {
	for _, row := range view {
		for _, cell := range row {
			mem = scanCell(mem, cell, at, res)
		}
	}
	return mem
}

func scanCell(mem Memory, cell Cell, at Position, res Resources) Memory {
	switch c := cell.(type) {
	case RechargePoint:
		mem.Recharge = tighten(mem.Recharge, c.Pos, at)
	case WasteStation:
		mem.WasteStation = tighten(mem.WasteStation, c.Pos, at)
	case RecyclingStation:
		mem.RecyclingStation = tighten(mem.RecyclingStation, c.Pos, at)
	case WasteBin:
		// only worth chasing when we carry nothing that would block loading
		if c.Task.Worthwhile() && res.Recycling == 0 {
			mem.BinTarget = tighten(mem.BinTarget, c.Pos, at)
		}
	case RecyclingBin:
		if c.Task.Worthwhile() && res.Waste == 0 {
			mem.BinTarget = tighten(mem.BinTarget, c.Pos, at)
		}
	}
	return mem
}

func tighten(old NullPosition, candidate, at Position) NullPosition {
	if IsCloser(old, candidate, at) {
		return Known(candidate)
	}
	return old
}
