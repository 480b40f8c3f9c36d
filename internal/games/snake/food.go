package snake

// spawnFood places food on a random free cell.
// Random draws are tried first; if they keep hitting the snake the free
// cells are scanned so placement always terminates. HasFood is false when
// the snake fills the whole grid.
func (e *Engine) spawnFood() {
	s := &e.state
	geom := s.Geometry

	if !geom.Valid() || len(s.Snake) >= geom.Area() {
		s.HasFood = false
		return
	}

	for range e.foodAttempts {
		c := Cell{X: e.rng.Intn(geom.Cols), Y: e.rng.Intn(geom.Rows)}
		if !s.Occupies(c) {
			s.Food = c
			s.HasFood = true
			return
		}
	}

	free := e.freeCells()
	if len(free) == 0 {
		s.HasFood = false
		return
	}
	s.Food = free[e.rng.Intn(len(free))]
	s.HasFood = true
}

// freeCells lists every cell not covered by the snake, row by row.
func (e *Engine) freeCells() []Cell {
	geom := e.state.Geometry
	occupied := make(map[Cell]bool, len(e.state.Snake))
	for _, c := range e.state.Snake {
		occupied[c] = true
	}

	free := make([]Cell, 0, geom.Area()-len(occupied))
	for y := range geom.Rows {
		for x := range geom.Cols {
			c := Cell{X: x, Y: y}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	return free
}
