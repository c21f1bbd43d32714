package dungeon

import (
	"fmt"
	"strings"
)

// RenderWidth is the number of columns in one rendered map line.
const RenderWidth = 6 + 3*Width

// Glyph renders a kind for Render. It must return a single column.
type Glyph func(Kind) string

// PlainGlyph renders a kind as its Glyph rune.
func PlainGlyph(k Kind) string {
	return string(k.Glyph())
}

// String renders the map in the reference text layout: the rest row first,
// then for every lower row a line of edges above a line of rooms.
func (m *Map) String() string {
	return m.Render(PlainGlyph)
}

// Render is String with a custom glyph renderer.
func (m *Map) Render(glyph Glyph) string {
	return render(m.skeleton, func(row, col int) Kind { return m.kinds[row][col] }, glyph)
}

// String renders the skeleton with unassigned nodes and a rest row.
func (s *Skeleton) String() string {
	return render(s, func(row, col int) Kind {
		if row == RestRow {
			return Rest
		}
		return Unassigned
	}, PlainGlyph)
}

func render(s *Skeleton, kindAt func(row, col int) Kind, glyph Glyph) string {
	var b strings.Builder
	writeRooms(&b, RestRow, glyph, func(col int) Kind {
		if s.rows[RestRow][col].In.IsEmpty() {
			return Empty
		}
		return kindAt(RestRow, col)
	})
	for row := RestRow - 1; row >= 0; row-- {
		b.WriteString("\n      ")
		for col := 0; col < Width; col++ {
			writeEdges(&b, col, s.rows[row][col].Out.Has)
		}
		writeRooms(&b, row, glyph, func(col int) Kind {
			if s.rows[row][col].Out.IsEmpty() {
				return Empty
			}
			return kindAt(row, col)
		})
	}
	return b.String()
}

func writeRooms(b *strings.Builder, row int, glyph Glyph, kindAt func(col int) Kind) {
	fmt.Fprintf(b, "\n%-6d", row)
	for col := 0; col < Width; col++ {
		b.WriteByte(' ')
		b.WriteString(glyph(kindAt(col)))
		b.WriteByte(' ')
	}
}

func writeEdges(b *strings.Builder, col int, has func(int) bool) {
	for i, mark := range [3]byte{'\\', '|', '/'} {
		if has(col - 1 + i) {
			b.WriteByte(mark)
		} else {
			b.WriteByte(' ')
		}
	}
}
