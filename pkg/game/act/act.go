// Package act defines the acts of a run, the seed offset each act's map
// generator uses, and the mapping between floors and map rows.
package act

import (
	"github.com/pkg/errors"

	"spireseed/pkg/engine/rng"
	"spireseed/pkg/game/locale"
	"spireseed/pkg/game/seed"
)

// Act is a 1-based act number.
type Act int

const (
	One Act = iota + 1
	Two
	Three
)

// FloorsPerAct is the number of map rows climbed in one act.
const FloorsPerAct = 15

var (
	ErrUnsupportedAct = errors.New("unsupported act")
	ErrInvalidFloor   = errors.New("floor out of range")
)

// SeedOffset returns the value added to the run seed to seed this act's
// map generator. Only the first act's offset is known.
func (a Act) SeedOffset() (int64, error) {
	switch a {
	case One:
		return 1, nil
	case Two, Three:
		return 0, errors.Wrapf(ErrUnsupportedAct, "act %d map offset", int(a))
	}
	return 0, errors.Wrapf(ErrUnsupportedAct, "act %d", int(a))
}

// MapRNG returns the map generator's RNG for act a of run s.
func MapRNG(s seed.Seed, a Act) (*rng.Random, error) {
	offset, err := a.SeedOffset()
	if err != nil {
		return nil, err
	}
	return s.OffsetRNG(offset), nil
}

// Next returns the act after a, or false after the last act.
func (a Act) Next() (Act, bool) {
	if a < One || a >= Three {
		return 0, false
	}
	return a + 1, true
}

// Key returns the catalogue key of the act's name.
func (a Act) Key() string {
	switch a {
	case One:
		return "ACT_ONE"
	case Two:
		return "ACT_TWO"
	case Three:
		return "ACT_THREE"
	}
	return "ACT_UNKNOWN"
}

// Name returns the localized act name.
func (a Act) Name() string {
	return locale.Get(a.Key())
}

// Title combines the act number and name, for headings.
func (a Act) Title() string {
	return locale.Getf("ACT_TITLE", int(a), a.Name())
}

// FloorToRow converts a 1-based floor within an act to a 0-based map row.
func FloorToRow(floor int) (int, error) {
	if floor < 1 || floor > FloorsPerAct {
		return 0, errors.Wrapf(ErrInvalidFloor, "floor %d (want 1..%d)", floor, FloorsPerAct)
	}
	return floor - 1, nil
}

// RowToFloor is the inverse of FloorToRow.
func RowToFloor(row int) int {
	return row + 1
}
