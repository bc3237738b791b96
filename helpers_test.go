package litterlogic

// scriptedSource replays fixed draws and records the bounds it was asked
// for. Once the script runs out it returns 0.
type scriptedSource struct {
	draws []int
	calls []int
}

func script(draws ...int) *scriptedSource {
	return &scriptedSource{draws: draws}
}

func (s *scriptedSource) Intn(n int) int {
	s.calls = append(s.calls, n)
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[0] % n
	s.draws = s.draws[1:]
	return v
}

// viewAround builds a (2r+1)x(2r+1) view centred on at. Cells outside the
// window are dropped; everything else is Empty.
func viewAround(at Position, r int, cells ...Cell) View {
	v := make(View, 2*r+1)
	for i := range v {
		v[i] = make([]Cell, 2*r+1)
		for j := range v[i] {
			v[i][j] = Empty{Pos: at.Add(j-r, i-r)}
		}
	}
	for _, c := range cells {
		p := c.At()
		i, j := p.Y-at.Y+r, p.X-at.X+r
		if i < 0 || j < 0 || i >= len(v) || j >= len(v) {
			continue
		}
		v[i][j] = c
	}
	return v
}

// testConfig is DefaultConfig without a home recharge point.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Home = nil
	return cfg
}
