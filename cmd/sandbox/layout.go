package main

// grid splits normalized device coordinates into cols x rows cells, row 0 on top.
type grid struct {
	cols, rows int
	margin     float32
	gap        float32
}

func newGrid(cols, rows int) grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return grid{cols: cols, rows: rows, margin: 0.1, gap: 0.04}
}

func (g grid) cell(col, row int) (x0, y0, x1, y1 float32) {
	span := 2 - 2*g.margin
	w := (span - g.gap*float32(g.cols-1)) / float32(g.cols)
	h := (span - g.gap*float32(g.rows-1)) / float32(g.rows)

	x0 = -1 + g.margin + float32(col)*(w+g.gap)
	y1 = 1 - g.margin - float32(row)*(h+g.gap)
	return x0, y1 - h, x0 + w, y1
}

func rowsFor(n, cols int) int {
	if cols < 1 {
		cols = 1
	}
	return (n + cols - 1) / cols
}
