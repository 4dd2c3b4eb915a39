package game

// Adjacent reports whether a and b are orthogonal neighbors on the wrapping
// grid: exactly one axis changes, by 1 directly or by 3 across the seam of
// a size-4 axis.
func Adjacent(a, b Position) bool {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dr != 0 && dc != 0 {
		return false
	}
	d := dr + dc
	return d == 1 || d == BoardSize-1
}

// Neighbors returns p's four orthogonal neighbors under wraparound, in
// up/down/left/right order.
func Neighbors(p Position) [4]Position {
	return [4]Position{
		{Row: wrap(p.Row - 1), Col: p.Col},
		{Row: wrap(p.Row + 1), Col: p.Col},
		{Row: p.Row, Col: wrap(p.Col - 1)},
		{Row: p.Row, Col: wrap(p.Col + 1)},
	}
}

func wrap(i int) int {
	return (i + BoardSize) % BoardSize
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// PathReport is the outcome of the purely geometric path check. On failure
// Step is the index of the first offending position.
type PathReport struct {
	OK    bool
	Steps int
	Step  int
	Code  ReasonCode
}

// ValidatePath checks step adjacency and the no-revisit rule. It never
// consults the board: occupancy and collapse are someone else's business.
func ValidatePath(path []Position) PathReport {
	if len(path) == 0 {
		return PathReport{OK: true}
	}
	for i, p := range path {
		if !p.inBounds() {
			return PathReport{Step: i, Code: ReasonMalformedPosition}
		}
	}
	visited := map[Position]struct{}{path[0]: {}}
	for i := 1; i < len(path); i++ {
		if !Adjacent(path[i-1], path[i]) {
			return PathReport{Step: i, Code: ReasonStepNotOrthogonal}
		}
		if _, seen := visited[path[i]]; seen {
			return PathReport{Step: i, Code: ReasonCellRevisited}
		}
		visited[path[i]] = struct{}{}
	}
	return PathReport{OK: true, Steps: len(path) - 1}
}
