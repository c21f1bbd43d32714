// Package character lists the playable characters.
package character

import "spireseed/pkg/game/names"

// Character is a playable character.
type Character uint8

const (
	Ironclad Character = iota
	Silent
	Defect
	Watcher
)

// All lists the characters in game order.
var All = [...]Character{Ironclad, Silent, Defect, Watcher}

var characterNames = [...]string{
	Ironclad: "Ironclad",
	Silent:   "Silent",
	Defect:   "Defect",
	Watcher:  "Watcher",
}

// IDs are the names the game writes to save and daily files.
var characterIDs = [...]string{
	Ironclad: "IRONCLAD",
	Silent:   "THE_SILENT",
	Defect:   "DEFECT",
	Watcher:  "WATCHER",
}

var lookup = func() *names.Lookup[Character] {
	l := names.NewLookup[Character]("character")
	for _, c := range All {
		l.Add(c, characterNames[c], characterIDs[c], "THE_"+characterNames[c])
	}
	return l
}()

// Parse accepts a character name with or without the "THE_" prefix, in
// any case.
func Parse(s string) (Character, error) {
	return lookup.Find(s)
}

func (c Character) String() string {
	if int(c) < len(characterNames) {
		return characterNames[c]
	}
	return "Unknown"
}

// ID returns the upper-case identifier used in game files.
func (c Character) ID() string {
	return characterIDs[c]
}

// Basics returns how many Strikes and Defends the starting deck holds.
func (c Character) Basics() int {
	if c == Silent {
		return 10
	}
	return 9
}

func (c Character) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Character) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
