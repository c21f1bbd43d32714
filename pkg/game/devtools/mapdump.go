// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"spireseed/pkg/game/act"
	"spireseed/pkg/game/dungeon"
	"spireseed/pkg/game/seed"
)

// DefaultDumpFilename is where DumpMapToFile writes when given no path.
const DefaultDumpFilename = "map.txt"

// writeLegend lists every glyph the map section can contain.
func writeLegend(w io.Writer) {
	fmt.Fprint(w, "legend:")
	for k := dungeon.Monster; k <= dungeon.Treasure; k++ {
		fmt.Fprintf(w, "  %c = %s", k.Glyph(), k)
	}
	fmt.Fprintln(w)
}

// WriteMapDump writes a full debug dump of the act one map of s: metadata,
// legend, the text map, room counts, bottlenecks, elites and every
// reachable node with its edges.
func WriteMapDump(w io.Writer, s seed.Seed, ascension bool) error {
	src, err := act.MapRNG(s, act.One)
	if err != nil {
		return err
	}
	m := dungeon.Generate(src, ascension)
	elite, hasElite := m.BurningElite(src)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (act one layout, rooms, burning elite) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %s\n", s)
	fmt.Fprintf(w, "seed_decimal: %d\n", int64(s))
	fmt.Fprintf(w, "map_rng_seed: %d\n", int64(s)+1)
	fmt.Fprintf(w, "ascension: %v\n", ascension)
	fmt.Fprintf(w, "rows: %d\n", dungeon.Height)
	fmt.Fprintf(w, "cols: %d\n", dungeon.Width)
	fmt.Fprintln(w, "coordinate_system: row,col (0-based, row 0 = floor 1)")
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (room glyphs) ---")
	writeLegend(w)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map (rest row at the top) ---")
	fmt.Fprintln(w, m.String())
	fmt.Fprintln(w, "")

	// --- Counts ---
	fmt.Fprintln(w, "--- Room counts ---")
	for k := dungeon.Monster; k <= dungeon.Treasure; k++ {
		fmt.Fprintf(w, "  %s: %d\n", k, m.Count(k))
	}
	fmt.Fprintln(w, "")

	// --- Bottlenecks ---
	fmt.Fprintln(w, "--- Bottlenecks (rows with one node carrying every path) ---")
	for row := 0; row < dungeon.Height; row++ {
		if m.IsBottleneck(row) {
			fmt.Fprintf(w, "  row: %d floor: %d\n", row, act.RowToFloor(row))
		}
	}
	fmt.Fprintln(w, "")

	// --- Elites ---
	fmt.Fprintln(w, "--- Elites ---")
	for i, pos := range m.Elites() {
		burning := hasElite && i == elite.Index
		fmt.Fprintf(w, "  row: %d col: %d burning: %v\n", pos.Y, pos.X, burning)
	}
	if hasElite {
		fmt.Fprintf(w, "burning_elite: %d,%d buff: %s index: %d count: %d\n",
			elite.Y, elite.X, elite.Buff, elite.Index, elite.Count)
	} else {
		fmt.Fprintln(w, "burning_elite: none")
	}
	fmt.Fprintln(w, "")

	// --- Nodes ---
	fmt.Fprintln(w, "--- Nodes (reachable, with in and out columns) ---")
	for _, rs := range m.Snapshot().Rows {
		for _, n := range rs.Nodes {
			fmt.Fprintf(w, "  row: %d col: %d kind: %s in: %v out: %v\n", rs.Row, n.Col, n.Kind, n.In, n.Out)
		}
	}
	return nil
}

// DumpMapToFile writes WriteMapDump's output to path, or to map.txt in the
// working directory when path is empty, and returns the absolute path.
func DumpMapToFile(path string, s seed.Seed, ascension bool) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", errors.Wrap(err, "create map dump")
	}
	defer f.Close()

	if err := WriteMapDump(f, s, ascension); err != nil {
		return "", err
	}
	return absPath, errors.Wrap(f.Close(), "close map dump")
}
