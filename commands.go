package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"spireseed/pkg/engine/terminal"
	"spireseed/pkg/game/act"
	"spireseed/pkg/game/card"
	"spireseed/pkg/game/character"
	"spireseed/pkg/game/config"
	"spireseed/pkg/game/daily"
	"spireseed/pkg/game/devtools"
	"spireseed/pkg/game/dungeon"
	"spireseed/pkg/game/events"
	"spireseed/pkg/game/locale"
	"spireseed/pkg/game/neow"
	"spireseed/pkg/game/renderer"
	"spireseed/pkg/game/renderer/tui"
	"spireseed/pkg/game/seed"
)

// ErrMissingFlag is returned when a required flag is absent.
var ErrMissingFlag = errors.New("missing required flag")

func seedFlag(fs *flag.FlagSet, s *seed.Seed, name string) {
	fs.TextVar(s, name, seed.Seed(0), "seed string, or a decimal seed after '#'")
}

// parse parses args and checks that every required flag was given.
func parse(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, name := range required {
		if !set[name] {
			return errors.Wrapf(ErrMissingFlag, "-%s", name)
		}
	}
	return nil
}

func runMap(_ context.Context, e *env, args []string) error {
	fs := newFlags("map", e)
	var s seed.Seed
	seedFlag(fs, &s, "seed")
	ascension := fs.Bool("ascension", false, "generate the ascension map")
	encoding := fs.String("neighborhood", "", "in-neighborhood encoding: dynamic, enumerated or packed")
	format := fs.String("format", "auto", "output format: text, color, yaml or auto")
	elite := fs.Bool("elite", false, "also draw the burning elite")
	if err := parse(fs, args, "seed"); err != nil {
		return err
	}

	gen, err := dungeon.Lookup(*encoding)
	if err != nil {
		return err
	}
	src, err := act.MapRNG(s, act.One)
	if err != nil {
		return err
	}
	m := gen.Generate(src, *ascension)
	var info *dungeon.EliteInfo
	if *elite {
		if i, ok := m.BurningElite(src); ok {
			info = &i
		}
	}
	e.log.WithFields(logrus.Fields{
		"seed": s.String(), "ascension": *ascension, "neighborhood": gen.Name(),
	}).Debug("map generated")

	var r renderer.Renderer
	switch *format {
	case "yaml":
		snap := m.Snapshot()
		snap.Seed = s.String()
		snap.BurningElite = info
		data, err := snap.YAML()
		if err != nil {
			return err
		}
		_, err = e.out.Write(data)
		return err
	case "text":
		r = tui.NewWithColour(e.out, false)
	case "color", "colour":
		r = tui.NewWithColour(e.out, true)
	case "auto":
		r = tui.New(e.out).FitWidth(terminal.Width(e.out))
	default:
		return errors.Errorf("unknown format %q", *format)
	}
	fmt.Fprintln(e.out, r.RenderMap(act.One, m))
	if *elite {
		fmt.Fprintln(e.out)
		fmt.Fprintln(e.out, r.RenderElite(info))
	}
	return nil
}

func runSieve(ctx context.Context, e *env, args []string) error {
	fs := newFlags("sieve", e)
	path := fs.String("config", "", "YAML file describing the run; flags override it")
	var start, end seed.Seed
	seedFlag(fs, &start, "start")
	seedFlag(fs, &end, "end")
	expr := fs.String("filter", "", "filter expression, e.g. 'bottleneck(6) and not juzu(2, 0, 0)'")
	workers := fs.Int("workers", 0, "worker goroutines (default GOMAXPROCS)")
	ascension := fs.Bool("ascension", true, "map filters use ascension maps")
	if err := parse(fs, args); err != nil {
		return err
	}

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			return err
		}
		e.log.SetLevel(cfg.Level())
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			cfg.Start = start
		case "end":
			cfg.End = end
		case "filter":
			cfg.Filter = *expr
		case "workers":
			cfg.Workers = *workers
		case "ascension":
			cfg.Ascension = *ascension
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := e.log.WithField("command", "sieve")
	sv, err := cfg.Sieve(log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"start": cfg.Start.String(), "end": cfg.End.String(), "filter": sv.Filter.String(),
	}).Info("sieving")
	stats, err := sv.Run(ctx, e.out)
	log.WithFields(logrus.Fields{
		"scanned": stats.Scanned, "accepted": stats.Accepted,
	}).Info(locale.Get("HEADING_SIEVE_DONE"))
	return err
}

func runRewards(_ context.Context, e *env, args []string) error {
	fs := newFlags("rewards", e)
	var s seed.Seed
	seedFlag(fs, &s, "seed")
	name := fs.String("character", "", "ironclad, silent, defect or watcher")
	n := fs.Int("n", 3, "number of rewards")
	if err := parse(fs, args, "seed", "character"); err != nil {
		return err
	}
	c, err := character.Parse(*name)
	if err != nil {
		return err
	}
	if *n < 0 {
		return errors.Errorf("-n must not be negative, got %d", *n)
	}
	rewards := card.NewRewarder(c).Rewards(s.RNG(), *n)
	fmt.Fprintln(e.out, renderer.Current.RenderRewards(rewards))
	return nil
}

func runNeow(_ context.Context, e *env, args []string) error {
	fs := newFlags("neow", e)
	var s seed.Seed
	seedFlag(fs, &s, "seed")
	if err := parse(fs, args, "seed"); err != nil {
		return err
	}
	fmt.Fprintln(e.out, renderer.Current.RenderNeow(neow.Generate(s.RNG())))
	return nil
}

func runDaily(_ context.Context, e *env, args []string) error {
	fs := newFlags("daily", e)
	path := fs.String("file", "", "daily records, one per line; '-' reads stdin")
	if err := parse(fs, args, "file"); err != nil {
		return err
	}
	in := os.Stdin
	if *path != "-" {
		f, err := os.Open(*path)
		if err != nil {
			return errors.Wrap(err, "open dailies")
		}
		defer f.Close()
		in = f
	}
	dailies, err := daily.ParseAll(in)
	if err != nil {
		return err
	}
	for _, d := range dailies {
		fmt.Fprintf(e.out, "%s  %-8s  %-13s  %s, %s, %s\n",
			d.Date, d.Character, d.Seed, d.Starter, d.Generic, d.Difficulty)
		for _, option := range d.Neow.Options() {
			fmt.Fprintf(e.out, "    - %s\n", option)
		}
	}
	e.log.WithField("records", len(dailies)).Debug("dailies parsed")
	return nil
}

func runSeed(_ context.Context, e *env, args []string) error {
	fs := newFlags("seed", e)
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.Wrap(ErrMissingFlag, "no seeds given")
	}
	for _, arg := range fs.Args() {
		var s seed.Seed
		if err := s.UnmarshalText([]byte(arg)); err != nil {
			return err
		}
		renderer.ShowMessage(fmt.Sprintf("%s\t%d\t%s",
			renderer.StyleText(s.String(), renderer.StyleHeading), int64(s), strconv.FormatUint(s.Uint64(), 10)))
	}
	return nil
}

func runJuzu(_ context.Context, e *env, args []string) error {
	fs := newFlags("juzu", e)
	var s seed.Seed
	seedFlag(fs, &s, "seed")
	list := fs.String("path", "", "unknown rooms per segment, e.g. 3,2,0")
	if err := parse(fs, args, "seed", "path"); err != nil {
		return err
	}
	parts := splitList(*list)
	if len(parts) != events.Segments {
		return errors.Errorf("-path needs %d counts, got %d", events.Segments, len(parts))
	}
	var path [events.Segments]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return errors.Errorf("-path: %q is not a room count", p)
		}
		path[i] = n
	}
	if events.JuzulessPath(s.RNG(), path) {
		renderer.ShowMessage(renderer.FormatText("GT{JUZU_NO_COMBAT}"))
	} else {
		renderer.ShowMessage(renderer.FormatText("GT{JUZU_COMBAT}"))
	}
	return nil
}

func runDump(_ context.Context, e *env, args []string) error {
	fs := newFlags("dump", e)
	var s seed.Seed
	seedFlag(fs, &s, "seed")
	out := fs.String("out", devtools.DefaultDumpFilename, "file to write")
	ascension := fs.Bool("ascension", false, "dump the ascension map")
	if err := parse(fs, args, "seed"); err != nil {
		return err
	}
	path, err := devtools.DumpMapToFile(*out, s, *ascension)
	if err != nil {
		return err
	}
	e.log.WithField("path", path).Info("map dumped")
	return nil
}
