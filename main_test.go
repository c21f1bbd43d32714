package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spireseed/pkg/game/act"
	"spireseed/pkg/game/dungeon"
	"spireseed/pkg/game/seed"
)

func runArgs(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestRun_Seed(t *testing.T) {
	out, _, code := runArgs(t, "seed", "8AFF4ZZ6", "#453")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := "8AFF4ZZ6\t533907583096\t533907583096\nCY\t453\t453\n"
	if out != want {
		t.Errorf("out = %q, want %q", out, want)
	}
}

func TestRun_MapAutoOnBufferIsPlain(t *testing.T) {
	out, _, code := runArgs(t, "map", "-seed", "8AFF4ZZ6", "-ascension")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	src, _ := act.MapRNG(seed.MustParse("8AFF4ZZ6"), act.One)
	m := dungeon.Generate(src, true)
	if want := "Act 1: Exordium\n\n" + m.String() + "\n"; out != want {
		t.Errorf("out =\n%s\nwant\n%s", out, want)
	}
}

func TestRun_MapText(t *testing.T) {
	out, _, code := runArgs(t, "map", "-seed", "8AFF4ZZ6", "-ascension", "-format", "text", "-elite")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	src, _ := act.MapRNG(seed.MustParse("8AFF4ZZ6"), act.One)
	m := dungeon.Generate(src, true)
	want := "Act 1: Exordium\n\n" + m.String() + "\n\nBurning elite: floor 6, column 6, Regenerate (1 of 3)\n"
	if out != want {
		t.Errorf("out =\n%s\nwant\n%s", out, want)
	}
}

func TestRun_MapYAML(t *testing.T) {
	out, _, code := runArgs(t, "map", "-seed", "8AFF4ZZ6", "-ascension", "-format", "yaml", "-neighborhood", "packed")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	snap, err := dungeon.ParseSnapshot([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if snap.Seed != "8AFF4ZZ6" || !snap.Ascension || len(snap.Rows) != dungeon.Height {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestRun_Rewards(t *testing.T) {
	out, _, code := runArgs(t, "rewards", "-seed", "18ISL35FYK4", "-character", "silent", "-n", "1")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "Prepared DodgeAndRoll EscapePlan") {
		t.Errorf("out = %q", out)
	}
}

func TestRun_Juzu(t *testing.T) {
	for path, want := range map[string]string{"9,0,0": "no combat\n", "10,0,0": "combat\n"} {
		out, _, code := runArgs(t, "juzu", "-seed", "CY", "-path", path)
		if code != 0 || out != want {
			t.Errorf("juzu %s: exit %d, out %q", path, code, out)
		}
	}
}

func TestRun_Daily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.csv")
	record := "1601/01/02,IRONCLAD,Insanity,Purple Cards,DeadlyEvents,E06ALSGPMJ59\n"
	if err := os.WriteFile(path, []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, code := runArgs(t, "daily", "-file", path)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(out, "1601/01/02  Ironclad") || !strings.Contains(out, "- Transform a card\n") {
		t.Errorf("out = %q", out)
	}
}

func TestRun_Sieve(t *testing.T) {
	out, _, code := runArgs(t, "sieve", "-start", "#533907583090", "-end", "#533907583100", "-filter", "bottleneck(6)", "-workers", "2")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "8AFF4ZZ6\n") {
		t.Errorf("out = %q", out)
	}
}

func TestRun_Dump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	if _, _, code := runArgs(t, "dump", "-seed", "CY", "-out", path); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestRun_Errors(t *testing.T) {
	if _, errOut, code := runArgs(t, "mapp"); code != 2 || !strings.Contains(errOut, `did you mean \"map\"`) {
		t.Errorf("unknown command: exit %d, stderr %q", code, errOut)
	}
	if _, errOut, code := runArgs(t, "neow"); code != 1 || !strings.Contains(errOut, "-seed") {
		t.Errorf("missing seed: exit %d, stderr %q", code, errOut)
	}
	if _, _, code := runArgs(t); code != 2 {
		t.Errorf("no command: exit %d", code)
	}
	if _, _, code := runArgs(t, "sieve", "-start", "Z", "-end", "A"); code != 1 {
		t.Errorf("empty range: exit %d", code)
	}
}
