package daily

import "spireseed/pkg/game/names"

// StarterMod changes the starting deck or relics.
type StarterMod uint8

const (
	Insanity StarterMod = iota
	Heirloom
	Draft
	Specialized
	Chimera
	SealedDeck
	AllStar
)

// GenericMod changes the card pools or map.
type GenericMod uint8

const (
	PurpleCards GenericMod = iota
	Flight
	BlueCards
	ColorlessCards
	RedCards
	GreenCards
	Vintage
	Hoarder
	ControlledChaos
)

// DifficultyMod makes the run harder.
type DifficultyMod uint8

const (
	DeadlyEvents DifficultyMod = iota
	Midas
	Terminal
	Lethality
	NightTerrors
)

// Names as the game writes them in daily records.
var (
	starterNames = [...]string{
		Insanity:    "Insanity",
		Heirloom:    "Heirloom",
		Draft:       "Draft",
		Specialized: "Specialized",
		Chimera:     "Chimera",
		SealedDeck:  "SealedDeck",
		AllStar:     "Allstar",
	}
	genericNames = [...]string{
		PurpleCards:     "Purple Cards",
		Flight:          "Flight",
		BlueCards:       "Blue Cards",
		ColorlessCards:  "Colorless Cards",
		RedCards:        "Red Cards",
		GreenCards:      "Green Cards",
		Vintage:         "Vintage",
		Hoarder:         "Hoarder",
		ControlledChaos: "ControlledChaos",
	}
	difficultyNames = [...]string{
		DeadlyEvents: "DeadlyEvents",
		Midas:        "Midas",
		Terminal:     "Terminal",
		Lethality:    "Lethality",
		NightTerrors: "Night Terrors",
	}
)

func newLookup[T ~uint8](kind string, table []string) *names.Lookup[T] {
	l := names.NewLookup[T](kind)
	for i, name := range table {
		l.Add(T(i), name)
	}
	return l
}

var (
	starterMods    = newLookup[StarterMod]("starter modifier", starterNames[:])
	genericMods    = newLookup[GenericMod]("generic modifier", genericNames[:])
	difficultyMods = newLookup[DifficultyMod]("difficulty modifier", difficultyNames[:])
)

func ParseStarterMod(s string) (StarterMod, error)       { return starterMods.Find(s) }
func ParseGenericMod(s string) (GenericMod, error)       { return genericMods.Find(s) }
func ParseDifficultyMod(s string) (DifficultyMod, error) { return difficultyMods.Find(s) }

func (m StarterMod) String() string    { return starterNames[m] }
func (m GenericMod) String() string    { return genericNames[m] }
func (m DifficultyMod) String() string { return difficultyNames[m] }
