package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"spireseed/pkg/game/names"
	"spireseed/pkg/game/renderer"
	"spireseed/pkg/game/renderer/tui"
)

// command is one subcommand. run receives the arguments after its name.
type command struct {
	summary string
	run     func(ctx context.Context, env *env, args []string) error
}

// env is what every command shares.
type env struct {
	out io.Writer
	log *logrus.Logger
}

var commands = map[string]command{
	"map":     {"draw the act one map of a seed", runMap},
	"sieve":   {"scan a seed range for seeds a filter accepts", runSieve},
	"rewards": {"list the first card rewards of a seed", runRewards},
	"neow":    {"list Neow's options for a seed", runNeow},
	"daily":   {"parse a file of daily climb records", runDaily},
	"seed":    {"convert seeds between seed strings and numbers", runSeed},
	"juzu":    {"check for a combat-free run of unknown rooms", runJuzu},
	"dump":    {"write a debug dump of a seed's map", runDump},
}

func commandNames() []string {
	list := make([]string, 0, len(commands))
	for name := range commands {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: spireseed [-log-level LEVEL] <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "commands:")
	for _, name := range commandNames() {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].summary)
	}
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log-level")
	}
	log.SetLevel(lvl)
	return log, nil
}

// run dispatches args and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("spireseed", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { usage(stderr) }
	level := global.String("log-level", "info", "logrus level: panic, fatal, error, warn, info, debug or trace")
	if err := global.Parse(args); err != nil {
		return 2
	}

	log, err := newLogger(stderr, *level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if global.NArg() == 0 {
		usage(stderr)
		return 2
	}
	name := global.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		log.Error(names.Unknown("command", name, commandNames()))
		return 2
	}

	renderer.SetRenderer(tui.New(stdout))
	e := &env{out: stdout, log: log}
	if err := cmd.run(ctx, e, global.Args()[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.WithField("command", name).Error(err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// newFlags returns a flag set for a subcommand that reports errors
// instead of exiting.
func newFlags(name string, e *env) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.log.Out)
	return fs
}

// splitList splits a comma separated flag value, dropping blanks.
func splitList(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
