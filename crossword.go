package main

import "sort"

const minCrosswordDimension = 20

// crossPlacement is a committed crossword placement with its full
// direction vector, kept internal so the placer can walk cells.
type crossPlacement struct {
	entry VocabEntry
	row   int
	col   int
	dir   Direction
}

// GenerateCrossword lays out word/clue pairs on a crossword grid. The
// longest word seeds the center; every later word is attached at the
// first letter match that validates against all placed words, longest
// first. Words with no valid attachment are skipped and reported.
func GenerateCrossword(raw []VocabEntry) (*CrosswordData, error) {
	entries, err := normalizeVocabulary(raw)
	if err != nil {
		return nil, err
	}

	// Oversized square so the layout can grow in any direction from the
	// seed; trimmed to its bounding box at the end.
	dim := 2 * len(entries[0].Word)
	if dim < minCrosswordDimension {
		dim = minCrosswordDimension
	}
	grid := make([][]byte, dim)
	for i := range grid {
		grid[i] = make([]byte, dim)
	}

	seed := crossPlacement{
		entry: entries[0],
		row:   dim / 2,
		col:   (dim - len(entries[0].Word)) / 2,
		dir:   dirAcross,
	}
	commit(grid, seed)
	placements := []crossPlacement{seed}

	var skipped []string
	for _, e := range entries[1:] {
		p, ok := findIntersection(grid, placements, e)
		if !ok {
			skipped = append(skipped, e.Word)
			continue
		}
		commit(grid, p)
		placements = append(placements, p)
	}
	if len(placements) < 2 {
		return nil, ErrInsufficientIntersections
	}

	out, solution := trimGrid(grid, placements)
	across, down := numberClues(solution)

	return &CrosswordData{
		Grid:        out,
		AcrossClues: across,
		DownClues:   down,
		Rows:        len(out),
		Cols:        len(out[0]),
		Solution:    solution,
		Skipped:     skipped,
	}, nil
}

func commit(grid [][]byte, p crossPlacement) {
	for i := 0; i < len(p.entry.Word); i++ {
		grid[p.row+i*p.dir.DRow][p.col+i*p.dir.DCol] = p.entry.Word[i]
	}
}

// findIntersection scans placed words in placement order, their letter
// positions in order, then the candidate's letters in order, and returns
// the first placement that validates. The first hit wins and nothing is
// reconsidered later, so results depend on word order.
func findIntersection(grid [][]byte, placements []crossPlacement, e VocabEntry) (crossPlacement, bool) {
	for _, placed := range placements {
		perp := dirDown
		if placed.dir.Name == dirDown.Name {
			perp = dirAcross
		}
		for i := 0; i < len(placed.entry.Word); i++ {
			for j := 0; j < len(e.Word); j++ {
				if placed.entry.Word[i] != e.Word[j] {
					continue
				}
				// The candidate runs perpendicular through the shared
				// letter, which sits j steps from its start.
				ir := placed.row + i*placed.dir.DRow
				ic := placed.col + i*placed.dir.DCol
				p := crossPlacement{
					entry: e,
					row:   ir - j*perp.DRow,
					col:   ic - j*perp.DCol,
					dir:   perp,
				}
				if validPlacement(grid, p) {
					return p, true
				}
			}
		}
	}
	return crossPlacement{}, false
}

// validPlacement checks a candidate against the grid: fully in bounds,
// no letter hugging either end along its own axis, every cell either a
// genuine intersection (same letter) or empty with empty perpendicular
// neighbors, and at least one intersection overall.
func validPlacement(grid [][]byte, p crossPlacement) bool {
	dim := len(grid)
	word := p.entry.Word
	endRow := p.row + (len(word)-1)*p.dir.DRow
	endCol := p.col + (len(word)-1)*p.dir.DCol
	if p.row < 0 || p.col < 0 || endRow >= dim || endCol >= dim {
		return false
	}

	if letterAt(grid, p.row-p.dir.DRow, p.col-p.dir.DCol) != 0 {
		return false
	}
	if letterAt(grid, endRow+p.dir.DRow, endCol+p.dir.DCol) != 0 {
		return false
	}

	intersections := 0
	for i := 0; i < len(word); i++ {
		r := p.row + i*p.dir.DRow
		c := p.col + i*p.dir.DCol
		cell := grid[r][c]
		switch {
		case cell == word[i]:
			intersections++
		case cell != 0:
			return false
		default:
			// An empty cell must not brush against a parallel word.
			if letterAt(grid, r+p.dir.DCol, c+p.dir.DRow) != 0 {
				return false
			}
			if letterAt(grid, r-p.dir.DCol, c-p.dir.DRow) != 0 {
				return false
			}
		}
	}
	return intersections >= 1
}

// letterAt returns the cell content, treating out-of-bounds as empty.
func letterAt(grid [][]byte, row, col int) byte {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return 0
	}
	return grid[row][col]
}

// trimGrid crops the oversized grid to the bounding box of its letters
// plus a one-cell margin clamped to the edges, translating every
// placement into the cropped coordinate space. Block cells become "".
func trimGrid(grid [][]byte, placements []crossPlacement) ([][]string, []PlacedWord) {
	dim := len(grid)
	minRow, minCol := dim, dim
	maxRow, maxCol := -1, -1
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if grid[r][c] == 0 {
				continue
			}
			if r < minRow {
				minRow = r
			}
			if r > maxRow {
				maxRow = r
			}
			if c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}

	top := max(minRow-1, 0)
	left := max(minCol-1, 0)
	bottom := min(maxRow+1, dim-1)
	right := min(maxCol+1, dim-1)

	out := make([][]string, bottom-top+1)
	for r := range out {
		out[r] = make([]string, right-left+1)
		for c := range out[r] {
			if cell := grid[top+r][left+c]; cell != 0 {
				out[r][c] = string(cell)
			}
		}
	}

	solution := make([]PlacedWord, len(placements))
	for i, p := range placements {
		solution[i] = PlacedWord{
			Word:      p.entry.Word,
			Clue:      p.entry.Clue,
			Row:       p.row - top,
			Col:       p.col - left,
			Direction: p.dir.Name,
		}
	}
	return out, solution
}

// numberClues assigns clue numbers in reading order: placements sorted by
// (row, col), one number per distinct start cell, so an across and a down
// entry starting on the same cell share a number.
func numberClues(solution []PlacedWord) (across, down []ClueEntry) {
	ordered := make([]PlacedWord, len(solution))
	copy(ordered, solution)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Row != ordered[j].Row {
			return ordered[i].Row < ordered[j].Row
		}
		return ordered[i].Col < ordered[j].Col
	})

	type cell struct{ row, col int }
	numbers := make(map[cell]int)
	next := 1
	for _, pw := range ordered {
		key := cell{pw.Row, pw.Col}
		if _, ok := numbers[key]; !ok {
			numbers[key] = next
			next++
		}
		entry := ClueEntry{
			Number: numbers[key],
			Clue:   pw.Clue,
			Answer: pw.Word,
			Row:    pw.Row,
			Col:    pw.Col,
		}
		if pw.Direction == dirAcross.Name {
			across = append(across, entry)
		} else {
			down = append(down, entry)
		}
	}

	sort.Slice(across, func(i, j int) bool { return across[i].Number < across[j].Number })
	sort.Slice(down, func(i, j int) bool { return down[i].Number < down[j].Number })
	return across, down
}
