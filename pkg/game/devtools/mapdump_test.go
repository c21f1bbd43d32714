package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spireseed/pkg/game/act"
	"spireseed/pkg/game/dungeon"
	"spireseed/pkg/game/seed"
)

func TestWriteMapDump_Sections(t *testing.T) {
	s := seed.MustParse("8AFF4ZZ6")
	var buf bytes.Buffer
	if err := WriteMapDump(&buf, s, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	src, _ := act.MapRNG(s, act.One)
	m := dungeon.Generate(src, true)
	for _, want := range []string{
		"seed: 8AFF4ZZ6\n",
		"seed_decimal: 533907583096\n",
		"ascension: true\n",
		m.String() + "\n",
		"  row: 5 floor: 6\n",
		"burning_elite: 5,6 buff: regenerate index: 0 count: 3\n",
		"  row: 5 col: 6 burning: true\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump lacks %q", want)
		}
	}
	if n := strings.Count(out, " burning: true"); n != 1 {
		t.Errorf("%d burning elites listed", n)
	}
}

func TestDumpMapToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	got, err := DumpMapToFile(path, seed.MustParse("CY"), false)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("path = %s, want %s", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "=== MAP DUMP DEBUG") {
		t.Errorf("dump starts %q", string(data[:20]))
	}
}
