package dnd

// ClosestRow resolves a pointer row y to the index of the row whose vertical
// centre is nearest. tops[i] is the first screen line of row i and every row
// is height lines tall. It returns -1 when there are no rows. Ties go to the
// earlier row.
func ClosestRow(y int, tops []int, height int) int {
	if height < 1 {
		height = 1
	}
	best, bestDist := -1, 0
	for i, top := range tops {
		// Compare doubled distances so half-line centres stay integral.
		d := 2*y + 1 - (2*top + height)
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// RowAt returns the index of the row covering y exactly, or -1.
func RowAt(y int, tops []int, height int) int {
	if height < 1 {
		height = 1
	}
	for i, top := range tops {
		if y >= top && y < top+height {
			return i
		}
	}
	return -1
}
