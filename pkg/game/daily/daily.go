// Package daily parses daily climb records: the date, character,
// modifiers and seed of each day's run.
package daily

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"spireseed/pkg/game/character"
	"spireseed/pkg/game/neow"
	"spireseed/pkg/game/seed"
)

var (
	ErrMissingField      = errors.New("missing field")
	ErrInconsistentSeeds = errors.New("seed does not match seed string")
)

// Daily is one day's run.
type Daily struct {
	Date       string
	Character  character.Character
	Starter    StarterMod
	Generic    GenericMod
	Difficulty DifficultyMod
	Seed       seed.Seed

	// Combat-free unknown-room paths, as recorded. Empty when absent.
	NoCombatPaths          string
	NoCombatPathsAscension string

	Neow neow.Bonuses
}

var fieldNames = [...]string{"date", "character", "starter modifier", "generic modifier", "difficulty modifier", "seed string"}

// Parse reads one record:
//
//	date,character,starter,generic,difficulty,seedString[,seed[,noCombat[,noCombatAscension]]]
func Parse(line string) (Daily, error) {
	fields := strings.Split(line, ",")
	if len(fields) < len(fieldNames) {
		return Daily{}, errors.Wrap(ErrMissingField, fieldNames[len(fields)])
	}

	var (
		d   = Daily{Date: fields[0]}
		err error
	)
	if d.Character, err = character.Parse(fields[1]); err != nil {
		return Daily{}, err
	}
	if d.Starter, err = ParseStarterMod(fields[2]); err != nil {
		return Daily{}, err
	}
	if d.Generic, err = ParseGenericMod(fields[3]); err != nil {
		return Daily{}, err
	}
	if d.Difficulty, err = ParseDifficultyMod(fields[4]); err != nil {
		return Daily{}, err
	}
	if d.Seed, err = seed.Parse(fields[5]); err != nil {
		return Daily{}, err
	}

	rest := fields[6:]
	if len(rest) > 0 {
		n, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return Daily{}, errors.Wrap(err, "seed")
		}
		if seed.Seed(n) != d.Seed {
			return Daily{}, errors.Wrapf(ErrInconsistentSeeds, "%d is %s, not %s", n, seed.Seed(n), fields[5])
		}
		rest = rest[1:]
	}
	if len(rest) > 0 {
		d.NoCombatPaths, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 {
		d.NoCombatPathsAscension = rest[0]
	}

	d.Neow = neow.Generate(d.Seed.RNG())
	return d, nil
}

// ParseAll reads one record per line, skipping blank lines. Errors carry
// the line number.
func ParseAll(r io.Reader) ([]Daily, error) {
	var dailies []Daily
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		d, err := Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		dailies = append(dailies, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read dailies")
	}
	return dailies, nil
}
