package dungeon

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"spireseed/pkg/engine/neighborhood"
	"spireseed/pkg/engine/rng"
	"spireseed/pkg/game/seed"
)

var bottleneckSeeds = []string{
	"8AFF4ZZ6",
	"XXKBUJNS",
	"1J432TK4I",
	"3QJ3DI01K",
	"3XTMF0PHJ",
	"3YT8RJBX1",
	"4DM63LTVA",
}

var otherSeeds = []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 100, 1000, 10000, 100000, 1000000, 10000001}

func mapRNG(s seed.Seed) *rng.Random {
	return s.OffsetRNG(1)
}

func TestGenerate_MatchesApprovedMaps(t *testing.T) {
	approved, err := os.ReadFile("testdata/maps.txt")
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	for _, str := range bottleneckSeeds {
		m := Generate(mapRNG(seed.MustParse(str)), true)
		fmt.Fprintf(&b, "%s,true\n%s\n\n", str, m)
	}
	for i, v := range otherSeeds {
		ascension := i%2 == 0
		s := seed.Seed(v)
		m := Generate(mapRNG(s), ascension)
		fmt.Fprintf(&b, "%s,%t\n%s\n\n", s, ascension, m)
	}

	if got := b.String(); got != string(approved) {
		gotLines := strings.Split(got, "\n")
		wantLines := strings.Split(string(approved), "\n")
		for i := 0; i < len(gotLines) && i < len(wantLines); i++ {
			if gotLines[i] != wantLines[i] {
				t.Fatalf("line %d:\n got %q\nwant %q", i+1, gotLines[i], wantLines[i])
			}
		}
		t.Fatalf("output has %d lines, approved has %d", len(gotLines), len(wantLines))
	}
}

func TestGenerate_BottleneckSeeds(t *testing.T) {
	for _, str := range bottleneckSeeds {
		m := Generate(mapRNG(seed.MustParse(str)), true)
		if !m.IsBottleneck(5) {
			t.Errorf("%s: row 5 has %d nodes, want 1", str, m.CountOut(5))
		}
	}
	for v := int64(1); v <= 5; v++ {
		m := Generate(mapRNG(seed.Seed(v)), true)
		if m.IsBottleneck(5) {
			t.Errorf("seed %d: row 5 is a bottleneck", v)
		}
	}
}

func TestBurningElite_KnownDraws(t *testing.T) {
	cases := []struct {
		seed string
		want EliteInfo
	}{
		{"8AFF4ZZ6", EliteInfo{Position{6, 5}, Regenerate, 0, 3}},
		{"XXKBUJNS", EliteInfo{Position{2, 10}, Strength, 2, 5}},
		{"1J432TK4I", EliteInfo{Position{0, 5}, Regenerate, 0, 4}},
		{"3QJ3DI01K", EliteInfo{Position{6, 5}, MaxHP, 0, 3}},
		{"3XTMF0PHJ", EliteInfo{Position{1, 5}, MaxHP, 0, 3}},
		{"3YT8RJBX1", EliteInfo{Position{0, 9}, Strength, 3, 5}},
		{"4DM63LTVA", EliteInfo{Position{0, 5}, MaxHP, 0, 4}},
		{"1", EliteInfo{Position{1, 12}, Metallicize, 3, 5}},
		{"2", EliteInfo{Position{6, 5}, Metallicize, 2, 7}},
	}
	for _, c := range cases {
		r := mapRNG(seed.MustParse(c.seed))
		m := Generate(r, true)
		got, ok := m.BurningElite(r)
		if !ok {
			t.Errorf("%s: no burning elite", c.seed)
			continue
		}
		if got != c.want {
			t.Errorf("%s: BurningElite() = %+v, want %+v", c.seed, got, c.want)
		}
		if m.Kind(got.Y, got.X) != Elite {
			t.Errorf("%s: burning elite on %v", c.seed, m.Kind(got.Y, got.X))
		}
	}
}

func TestBurningElite_NoElitesDrawsNothing(t *testing.T) {
	m := &Map{skeleton: newSkeleton(neighborhood.NewDynamic)}
	r := rng.New(7)
	if _, ok := m.BurningElite(r); ok {
		t.Fatal("BurningElite() found an elite on an empty map")
	}
	if r.Position() != 0 {
		t.Errorf("position = %d, want 0", r.Position())
	}
}

func TestGenerate_RoomInvariants(t *testing.T) {
	for v := int64(0); v < 400; v++ {
		m := Generate(mapRNG(seed.Seed(v)), v%2 == 0)
		for col := 0; col < Width; col++ {
			if m.Kind(0, col) != Monster || m.Kind(TreasureRow, col) != Treasure || m.Kind(RestRow, col) != Rest {
				t.Fatalf("seed %d col %d: constant rows %v %v %v", v, col,
					m.Kind(0, col), m.Kind(TreasureRow, col), m.Kind(RestRow, col))
			}
		}
		for row := 0; row < Height; row++ {
			for col := 0; col < Width; col++ {
				k := m.Kind(row, col)
				if row <= 4 && (k == Elite || k == Rest) {
					t.Fatalf("seed %d: %v at row %d", v, k, row)
				}
				if row == BeforeRestRow && k == Rest {
					t.Fatalf("seed %d: rest site before the rest row", v)
				}
				if !m.In(row, col).IsEmpty() && !k.IsAssigned() {
					t.Fatalf("seed %d: reachable node (%d,%d) unassigned", v, row, col)
				}
			}
		}
	}
}

func TestGenerate_NoCrossingEdges(t *testing.T) {
	for v := int64(0); v < 400; v++ {
		m := Generate(mapRNG(seed.Seed(v)), true)
		for row := 0; row < RestRow; row++ {
			for col := 0; col < LastPosition; col++ {
				left, right := m.Out(row, col), m.Out(row, col+1)
				hi, lok := left.Max()
				lo, rok := right.Min()
				if lok && rok && hi > lo {
					t.Fatalf("seed %d row %d: edges from %d (%s) and %d (%s) cross", v, row, col, left, col+1, right)
				}
			}
		}
	}
}

func TestGenerate_FirstRowDeduplicated(t *testing.T) {
	for v := int64(0); v < 400; v++ {
		m := Generate(mapRNG(seed.Seed(v)), false)
		var seen [Width]bool
		for col := 0; col < Width; col++ {
			for _, next := range m.Out(0, col).Values() {
				if seen[next] {
					t.Fatalf("seed %d: two first-row edges into column %d", v, next)
				}
				seen[next] = true
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	s := seed.MustParse("YBQ7FPFZSX1U")
	a := Generate(mapRNG(s), true).String()
	b := Generate(mapRNG(s), true).String()
	if a != b {
		t.Error("same seed produced different maps")
	}
}

func TestGenerators_Equivalent(t *testing.T) {
	for v := int64(0); v < 300; v++ {
		var want string
		var wantPos int64
		for i, g := range Generators() {
			r := mapRNG(seed.Seed(v))
			got := g.Generate(r, v%3 == 0).String()
			if i == 0 {
				want, wantPos = got, r.Position()
				continue
			}
			if got != want {
				t.Fatalf("seed %d: %s map differs from %s:\n%s\n%s", v, g.Name(), DefaultGenerator.Name(), got, want)
			}
			if r.Position() != wantPos {
				t.Fatalf("seed %d: %s drew %d values, dynamic drew %d", v, g.Name(), r.Position(), wantPos)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	for _, g := range Generators() {
		got, err := Lookup(g.Name())
		if err != nil || got != g {
			t.Errorf("Lookup(%q) = %v, %v", g.Name(), got, err)
		}
	}
	if g, err := Lookup(""); err != nil || g != DefaultGenerator {
		t.Errorf("Lookup(\"\") = %v, %v", g, err)
	}
	if _, err := Lookup("pakced"); err == nil || !strings.Contains(err.Error(), "packed") {
		t.Errorf("Lookup(pakced) err = %v", err)
	}
}

func TestRender_Layout(t *testing.T) {
	m := Generate(mapRNG(seed.MustParse("8AFF4ZZ6")), true)
	lines := strings.Split(m.String(), "\n")
	if lines[0] != "" {
		t.Errorf("output does not start with a newline")
	}
	if want := 1 + 1 + 2*RestRow; len(lines) != want {
		t.Fatalf("%d lines, want %d", len(lines), want)
	}
	for i, line := range lines[1:] {
		if len(line) != 6+3*Width {
			t.Errorf("line %d has width %d", i+1, len(line))
		}
	}
	if !strings.HasPrefix(lines[1], "14    ") || !strings.HasPrefix(lines[len(lines)-1], "0     ") {
		t.Errorf("row labels: %q ... %q", lines[1], lines[len(lines)-1])
	}

	custom := m.Render(func(k Kind) string { return string(k.Glyph()) })
	if custom != m.String() {
		t.Error("Render(PlainGlyph) differs from String()")
	}
}

func TestSkeleton_String(t *testing.T) {
	m := Generate(mapRNG(seed.MustParse("8AFF4ZZ6")), true)
	s := m.Skeleton().String()
	if strings.ContainsAny(s, "M?$ET") {
		t.Errorf("skeleton shows room kinds:\n%s", s)
	}
	if !strings.Contains(s, "*") || !strings.Contains(s, "R") {
		t.Errorf("skeleton lacks nodes:\n%s", s)
	}
}

func TestSnapshot_YAML(t *testing.T) {
	m := Generate(mapRNG(seed.MustParse("8AFF4ZZ6")), true)
	snap := m.Snapshot()
	if len(snap.Rows) != Height {
		t.Fatalf("%d rows", len(snap.Rows))
	}
	found := false
	for _, row := range snap.Bottlenecks {
		found = found || row == 5
	}
	if !found {
		t.Errorf("bottlenecks = %v, want row 5 listed", snap.Bottlenecks)
	}

	out, err := snap.YAML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "kind: elite") {
		t.Errorf("YAML lacks elite rooms:\n%s", out)
	}
	back, err := ParseSnapshot(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Rows) != Height || back.Rows[5].Nodes[0].Kind != snap.Rows[5].Nodes[0].Kind {
		t.Errorf("round trip lost rows: %+v", back.Rows[5])
	}
}

func TestKind_NamesAndParse(t *testing.T) {
	if Rest.Name() != "Rest Site" {
		t.Errorf("Rest.Name() = %q", Rest.Name())
	}
	if k, err := ParseKind("Elite"); err != nil || k != Elite {
		t.Errorf("ParseKind(Elite) = %v, %v", k, err)
	}
	if _, err := ParseKind("elit"); err == nil {
		t.Error("ParseKind(elit) succeeded")
	}
	if MaxHP.Name() != "Max HP" {
		t.Errorf("MaxHP.Name() = %q", MaxHP.Name())
	}
	if b, err := ParseBuff("Max HP"); err != nil || b != MaxHP {
		t.Errorf("ParseBuff(Max HP) = %v, %v", b, err)
	}
}

func TestRoomBag_Counts(t *testing.T) {
	bag := roomBag(50, false)
	counts := map[Kind]int{}
	for _, k := range bag {
		counts[k]++
	}
	// round(0.05*50)=3 (2.5 rounds away from zero), round(0.12*50)=6,
	// round(0.08*50)=4, round(0.22*50)=11
	want := map[Kind]int{Shop: 3, Rest: 6, Elite: 4, Event: 11}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%v: %d, want %d", k, counts[k], n)
		}
	}
	asc := roomBag(50, true)
	elites := 0
	for _, k := range asc {
		if k == Elite {
			elites++
		}
	}
	if elites != 6 {
		t.Errorf("ascension elites = %d, want 6", elites)
	}
}
