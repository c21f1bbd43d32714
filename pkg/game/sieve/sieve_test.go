package sieve

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"spireseed/pkg/game/filter"
	"spireseed/pkg/game/seed"
)

// multiples accepts seeds divisible by n.
type multiples uint64

func (m multiples) Reject(s seed.Seed) bool { return uint64(s)%uint64(m) != 0 }
func (m multiples) String() string          { return "multiples" }

func lines(s string) []string {
	return strings.Fields(s)
}

func TestRun_FindsBottleneckSeed(t *testing.T) {
	golden := seed.MustParse("8AFF4ZZ6")
	sv := &Sieve{
		Start:  uint64(golden) - 10,
		End:    uint64(golden) + 10,
		Filter: filter.Bottleneck{Floor: filter.DefaultFloor, Ascension: true},
	}
	var out bytes.Buffer
	stats, err := sv.Run(context.Background(), &out)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Scanned != 21 {
		t.Errorf("Scanned = %d, want 21", stats.Scanned)
	}
	found := false
	for _, line := range lines(out.String()) {
		if line == "8AFF4ZZ6" {
			found = true
		}
	}
	if !found {
		t.Errorf("8AFF4ZZ6 missing from %q", out.String())
	}
	if stats.Accepted != uint64(len(lines(out.String()))) {
		t.Errorf("Accepted = %d, wrote %d", stats.Accepted, len(lines(out.String())))
	}
}

func TestRun_OrderedAcrossWorkers(t *testing.T) {
	var want []string
	for v := uint64(100); v <= 5000; v++ {
		if v%7 == 0 {
			want = append(want, seed.Seed(v).String())
		}
	}
	for _, workers := range []int{1, 3, 8} {
		sv := &Sieve{Start: 100, End: 5000, Filter: multiples(7), Workers: workers, ChunkSize: 13}
		var out bytes.Buffer
		stats, err := sv.Run(context.Background(), &out)
		if err != nil {
			t.Fatal(err)
		}
		got := lines(out.String())
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("workers=%d: output differs from sequential scan", workers)
		}
		if stats.Scanned != 4901 || stats.Accepted != uint64(len(want)) {
			t.Errorf("workers=%d: stats = %+v", workers, stats)
		}
	}
}

func TestRun_EndAtMaxUint64(t *testing.T) {
	sv := &Sieve{Start: math.MaxUint64 - 9, End: math.MaxUint64, Filter: multiples(1), ChunkSize: 4, Workers: 2}
	var out bytes.Buffer
	stats, err := sv.Run(context.Background(), &out)
	if err != nil {
		t.Fatal(err)
	}
	got := lines(out.String())
	if len(got) != 10 || stats.Scanned != 10 {
		t.Fatalf("got %d seeds, scanned %d; want 10", len(got), stats.Scanned)
	}
	if last := seed.Seed(-1).String(); got[9] != last {
		t.Errorf("last seed = %s, want %s", got[9], last)
	}
}

func TestRun_SingleSeed(t *testing.T) {
	sv := &Sieve{Start: 42, End: 42, Filter: multiples(2)}
	var out bytes.Buffer
	stats, err := sv.Run(context.Background(), &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != seed.Seed(42).String()+"\n" || stats != (Stats{Scanned: 1, Accepted: 1}) {
		t.Errorf("out = %q, stats = %+v", out.String(), stats)
	}
}

func TestRun_EmptyRange(t *testing.T) {
	sv := &Sieve{Start: 10, End: 9, Filter: multiples(1)}
	if _, err := sv.Run(context.Background(), &bytes.Buffer{}); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("err = %v, want ErrEmptyRange", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sv := &Sieve{Start: 0, End: math.MaxUint64, Filter: multiples(1)}
	_, err := sv.Run(ctx, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRun_LogsProgress(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	sv := &Sieve{Start: 0, End: 99, Filter: multiples(10), Log: logrus.NewEntry(logger)}
	if _, err := sv.Run(context.Background(), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	last := hook.LastEntry()
	if last == nil || last.Message != "sieve finished" {
		t.Fatalf("last entry = %+v", last)
	}
	if last.Data["accepted"] != uint64(10) {
		t.Errorf("accepted field = %v", last.Data["accepted"])
	}
}
