package litterlogic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan_remembersNearestOfEachKind(t *testing.T) {
	at := Pt(0, 0)
	view := viewAround(at, 10,
		RechargePoint{Pos: Pt(5, 5)},
		RechargePoint{Pos: Pt(-2, 1)},
		WasteStation{Pos: Pt(8, 0)},
		WasteStation{Pos: Pt(0, -7)},
		RecyclingStation{Pos: Pt(-9, -9)},
		Obstacle{Pos: Pt(1, 0)},
	)

	mem := Scan(Memory{}, view, at, Resources{})
	assert.Equal(t, Known(Pt(-2, 1)), mem.Recharge)
	assert.Equal(t, Known(Pt(0, -7)), mem.WasteStation)
	assert.Equal(t, Known(Pt(-9, -9)), mem.RecyclingStation)
	assert.False(t, mem.BinTarget.Valid)
}

func TestScan_binEligibility(t *testing.T) {
	at := Pt(0, 0)
	task := func(m Material, remaining int) *Task {
		return &Task{Material: m, Remaining: remaining, MaxAmount: 100}
	}

	for _, tc := range []struct {
		name  string
		cell  Cell
		level Resources
		want  bool
	}{
		{"waste bin with work", WasteBin{Pos: Pt(2, 2), Task: task(Waste, 21)}, Resources{}, true},
		{"waste bin at a fifth", WasteBin{Pos: Pt(2, 2), Task: task(Waste, 20)}, Resources{}, false},
		{"waste bin without task", WasteBin{Pos: Pt(2, 2)}, Resources{}, false},
		{"waste bin while carrying waste", WasteBin{Pos: Pt(2, 2), Task: task(Waste, 50)}, Resources{Waste: 30}, true},
		{"waste bin while carrying recycling", WasteBin{Pos: Pt(2, 2), Task: task(Waste, 50)}, Resources{Recycling: 1}, false},
		{"recycling bin with work", RecyclingBin{Pos: Pt(2, 2), Task: task(Recycling, 80)}, Resources{}, true},
		{"recycling bin while carrying waste", RecyclingBin{Pos: Pt(2, 2), Task: task(Recycling, 80)}, Resources{Waste: 1}, false},
		{"recycling bin without task", RecyclingBin{Pos: Pt(2, 2)}, Resources{}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mem := Scan(Memory{}, viewAround(at, 5, tc.cell), at, tc.level)
			if tc.want {
				assert.Equal(t, Known(tc.cell.At()), mem.BinTarget)
			} else {
				assert.False(t, mem.BinTarget.Valid)
			}
		})
	}
}

func TestScan_keepsCloserMemory(t *testing.T) {
	at := Pt(0, 0)
	prior := Memory{
		Recharge:     Known(Pt(1, 0)),
		WasteStation: Known(Pt(100, 100)),
	}
	view := viewAround(at, 10, RechargePoint{Pos: Pt(3, 3)}, WasteStation{Pos: Pt(4, 0)})

	mem := Scan(prior, view, at, Resources{})
	assert.Equal(t, Known(Pt(1, 0)), mem.Recharge)
	assert.Equal(t, Known(Pt(4, 0)), mem.WasteStation)
}

func TestScan_neverForgets(t *testing.T) {
	prior := Memory{
		Recharge:         Known(Pt(1000, 0)),
		WasteStation:     Known(Pt(0, 1000)),
		RecyclingStation: Known(Pt(-1000, 0)),
		BinTarget:        Known(Pt(0, -1000)),
	}
	assert.Equal(t, prior, Scan(prior, viewAround(Pt(0, 0), 10), Pt(0, 0), Resources{}))
}

func TestScan_tieKeepsFirstFound(t *testing.T) {
	at := Pt(0, 0)
	view := viewAround(at, 5, RechargePoint{Pos: Pt(3, 0)}, RechargePoint{Pos: Pt(-3, 0)})

	// rows run south to north, columns west to east
	mem := Scan(Memory{}, view, at, Resources{})
	assert.Equal(t, Known(Pt(-3, 0)), mem.Recharge)

	mem = Scan(Memory{Recharge: Known(Pt(0, 3))}, view, at, Resources{})
	assert.Equal(t, Known(Pt(0, 3)), mem.Recharge)
}

func TestScan_monotonicAndOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	at := Pt(0, 0)

	for round := 0; round < 200; round++ {
		var cells []Cell
		seen := make(map[Position]bool)
		for i := 0; i < 15; i++ {
			p := Pt(rng.Intn(21)-10, rng.Intn(21)-10)
			if seen[p] {
				continue
			}
			seen[p] = true
			switch rng.Intn(4) {
			case 0:
				cells = append(cells, RechargePoint{Pos: p})
			case 1:
				cells = append(cells, WasteStation{Pos: p})
			case 2:
				cells = append(cells, RecyclingStation{Pos: p})
			default:
				cells = append(cells, WasteBin{Pos: p, Task: &Task{Remaining: 90, MaxAmount: 100}})
			}
		}
		prior := Memory{}
		if rng.Intn(2) == 0 {
			prior.Recharge = Known(Pt(rng.Intn(21)-10, rng.Intn(21)-10))
		}

		forward := Scan(prior, viewAround(at, 10, cells...), at, Resources{})

		// a single-row view visits the cells in the opposite order
		reversed := make([]Cell, len(cells))
		for i, c := range cells {
			reversed[len(cells)-1-i] = c
		}
		backward := Scan(prior, View{reversed}, at, Resources{})

		for _, pair := range [][2]NullPosition{
			{forward.Recharge, backward.Recharge},
			{forward.WasteStation, backward.WasteStation},
			{forward.RecyclingStation, backward.RecyclingStation},
			{forward.BinTarget, backward.BinTarget},
		} {
			assert.Equal(t, pair[0].Valid, pair[1].Valid)
			assert.Equal(t, pair[0].DistanceFrom(at), pair[1].DistanceFrom(at))
		}
		assert.LessOrEqual(t, forward.Recharge.DistanceFrom(at), prior.Recharge.DistanceFrom(at))

		for _, c := range cells {
			if rp, ok := c.(RechargePoint); ok {
				assert.LessOrEqual(t, forward.Recharge.DistanceFrom(at), at.Distance(rp.Pos))
			}
		}
	}
}
