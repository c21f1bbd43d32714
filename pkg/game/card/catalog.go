package card

import (
	"strconv"

	"spireseed/pkg/game/names"
)

// Card is a card in catalogue order. Character and colorless cards are
// grouped by rarity, as the game lists them.
type Card uint16

const (
	Invalid Card = iota
	// Ironclad, common
	SwordBoomerang
	PerfectedStrike
	HeavyBlade
	WildStrike
	Headbutt
	Havoc
	Armaments
	Clothesline
	TwinStrike
	PommelStrike
	Thunderclap
	Clash
	ShrugItOff
	TrueGrit
	BodySlam
	IronWave
	Flex
	Warcry
	Cleave
	Anger

	// Uncommon
	Evolve
	Uppercut
	GhostlyArmor
	FireBreathing
	Dropkick
	Carnage
	Bloodletting
	Rupture
	SecondWind
	SearingBlow
	BattleTrance
	Sentinel
	Entrench
	Rage
	FeelNoPain
	Disarm
	SeeingRed
	DarkEmbrace
	Combust
	Whirlwind
	SeverSoul
	Rampage
	Shockwave
	Metallicize
	BurningPact
	Pummel
	FlameBarrier
	BloodForBlood
	Intimidate
	Hemokinesis
	RecklessCharge
	InfernalBlade
	DualWield
	PowerThrough
	Inflame
	SpotWeakness

	// Rare
	DoubleTap
	DemonForm
	Bludgeon
	Feed
	LimitBreak
	Corruption
	Barricade
	FiendFire
	Berserk
	Impervious
	Juggernaut
	Brutality
	Reaper
	Exhume
	Offering
	Immolate

	// Silent, common
	FlyingKnee
	DodgeAndRoll
	SuckerPunch
	PiercingWail
	Prepared
	Outmaneuver
	Backflip
	Slice
	QuickSlash
	Acrobatics
	PoisonedStab
	DaggerThrow
	Deflect
	BladeDance
	Bane
	DaggerSpray
	DeadlyPoison
	SneakyStrike
	CloakAndDagger

	// Uncommon
	Predator
	AllOutAttack
	Distraction
	Footwork
	Accuracy
	MasterfulStab
	Flechettes
	Concentrate
	BouncingFlask
	Backstab
	Dash
	Eviscerate
	Reflex
	InfiniteBlades
	NoxiousFumes
	HeelHook
	Terror
	WellLaidPlans
	Finisher
	EscapePlan
	CalculatedGamble
	Skewer
	RiddleWithHoles
	EndlessAgony
	Setup
	Blur
	Caltrops
	Choke
	Expertise
	Tactician
	Catalyst
	LegSweep
	CripplingCloud

	// Rare
	Alchemize
	CorpseExplosion
	Malaise
	PhantasmalKiller
	DieDieDie
	Adrenaline
	Envenom
	Doppelganger
	Burst
	WraithForm
	ToolsOfTheTrade
	Nightmare
	Unload
	AfterImage
	BulletTime
	StormOfSteel
	GlassKnife
	AThousandCuts
	GrandFinale

	// Defect, common
	SteamBarrier
	ColdSnap
	Leap
	BeamCell
	Hologram
	ChargeBattery
	SweepingBeam
	Turbo
	Coolheaded
	Claw
	Rebound
	Stack
	Barrage
	CompileDriver
	Recursion
	Streamline
	BallLightning
	GoForTheEyes

	// Uncommon
	DoomAndGloom
	Defragment
	Capacitor
	WhiteNoise
	Skim
	Recycle
	Scrape
	Bullseye
	Reprogram
	AutoShields
	ReinforcedBody
	DoubleEnergy
	Darkness
	RipAndTear
	Ftl
	ForceField
	Equilibrium
	Tempest
	Heatsinks
	StaticDischarge
	BootSequence
	Chill
	Loop
	SelfRepair
	Melter
	Chaos
	Blizzard
	Aggregate
	Fusion
	Consume
	Glacier
	Sunder
	HelloWorld
	Overclock
	GeneticAlgorithm
	Storm

	// Rare
	MultiCast
	Hyperbeam
	ThunderStrike
	BiasedCognition
	MachineLearning
	Electrodynamics
	Buffer
	Rainbow
	Seek
	MeteorStrike
	EchoForm
	AllForOne
	Reboot
	Amplify
	CreativeAi
	Fission
	CoreSurge

	// Watcher, common
	EmptyFist
	Prostrate
	Evaluate
	CrushJoints
	PressurePoints
	FollowUp
	CutThroughFate
	SashWhip
	EmptyBody
	Tranquility
	Crescendo
	ThirdEye
	Protect
	FlurryOfBlows
	JustLucky
	Halt
	FlyingSleeves
	BowlingBash
	Consecrate

	// Uncommon
	Pray
	SignatureMove
	Weave
	EmptyMind
	Nirvana
	Tantrum
	Conclude
	Worship
	Swivel
	Perseverance
	Meditate
	Study
	WaveOfTheHand
	SandsOfTime
	FearNoEvil
	ReachHeaven
	MentalFortress
	DeceiveReality
	Rushdown
	InnerPeace
	Collect
	WreathOfFlame
	Wallop
	CarveReality
	Fasting
	LikeWater
	ForeignInfluence
	WindmillStrike
	Indignation
	BattleHymn
	TalkToTheHand
	Sanctity
	Foresight
	SimmeringFury
	WheelKick

	// Rare
	Judgment
	ConjureBlade
	MasterReality
	Brilliance
	Devotion
	Blasphemy
	Ragnarok
	LessonLearned
	Scrawl
	Vault
	Alpha
	Wish
	Omniscience
	Establishment
	SpiritShield
	DevaForm
	DeusExMachina

	// Colorless, uncommon
	BandageUp
	Blind
	DarkShackles
	DeepBreath
	Discovery
	DramaticEntrance
	Enlightenment
	Finesse
	FlashOfSteel
	Forethought
	GoodInstincts
	Impatience
	JackOfAllTrades
	Madness
	MindBlast
	Panacea
	PanicButton
	Purity
	SwiftStrike
	Trip

	// Rare
	Apotheosis
	Chrysalis
	HandOfGreed
	Magnetism
	MasterOfStrategy
	Mayhem
	Metamorphosis
	Panache
	SadisticNature
	SecretTechnique
	SecretWeapon
	TheBomb
	ThinkingAhead
	Transmutation
	Violence
)

// Count is the number of catalogue entries, Invalid included.
const Count = int(Violence) + 1

var cardNames = [Count]string{
	Invalid:          "Invalid",
	SwordBoomerang:   "SwordBoomerang",
	PerfectedStrike:  "PerfectedStrike",
	HeavyBlade:       "HeavyBlade",
	WildStrike:       "WildStrike",
	Headbutt:         "Headbutt",
	Havoc:            "Havoc",
	Armaments:        "Armaments",
	Clothesline:      "Clothesline",
	TwinStrike:       "TwinStrike",
	PommelStrike:     "PommelStrike",
	Thunderclap:      "Thunderclap",
	Clash:            "Clash",
	ShrugItOff:       "ShrugItOff",
	TrueGrit:         "TrueGrit",
	BodySlam:         "BodySlam",
	IronWave:         "IronWave",
	Flex:             "Flex",
	Warcry:           "Warcry",
	Cleave:           "Cleave",
	Anger:            "Anger",
	Evolve:           "Evolve",
	Uppercut:         "Uppercut",
	GhostlyArmor:     "GhostlyArmor",
	FireBreathing:    "FireBreathing",
	Dropkick:         "Dropkick",
	Carnage:          "Carnage",
	Bloodletting:     "Bloodletting",
	Rupture:          "Rupture",
	SecondWind:       "SecondWind",
	SearingBlow:      "SearingBlow",
	BattleTrance:     "BattleTrance",
	Sentinel:         "Sentinel",
	Entrench:         "Entrench",
	Rage:             "Rage",
	FeelNoPain:       "FeelNoPain",
	Disarm:           "Disarm",
	SeeingRed:        "SeeingRed",
	DarkEmbrace:      "DarkEmbrace",
	Combust:          "Combust",
	Whirlwind:        "Whirlwind",
	SeverSoul:        "SeverSoul",
	Rampage:          "Rampage",
	Shockwave:        "Shockwave",
	Metallicize:      "Metallicize",
	BurningPact:      "BurningPact",
	Pummel:           "Pummel",
	FlameBarrier:     "FlameBarrier",
	BloodForBlood:    "BloodForBlood",
	Intimidate:       "Intimidate",
	Hemokinesis:      "Hemokinesis",
	RecklessCharge:   "RecklessCharge",
	InfernalBlade:    "InfernalBlade",
	DualWield:        "DualWield",
	PowerThrough:     "PowerThrough",
	Inflame:          "Inflame",
	SpotWeakness:     "SpotWeakness",
	DoubleTap:        "DoubleTap",
	DemonForm:        "DemonForm",
	Bludgeon:         "Bludgeon",
	Feed:             "Feed",
	LimitBreak:       "LimitBreak",
	Corruption:       "Corruption",
	Barricade:        "Barricade",
	FiendFire:        "FiendFire",
	Berserk:          "Berserk",
	Impervious:       "Impervious",
	Juggernaut:       "Juggernaut",
	Brutality:        "Brutality",
	Reaper:           "Reaper",
	Exhume:           "Exhume",
	Offering:         "Offering",
	Immolate:         "Immolate",
	FlyingKnee:       "FlyingKnee",
	DodgeAndRoll:     "DodgeAndRoll",
	SuckerPunch:      "SuckerPunch",
	PiercingWail:     "PiercingWail",
	Prepared:         "Prepared",
	Outmaneuver:      "Outmaneuver",
	Backflip:         "Backflip",
	Slice:            "Slice",
	QuickSlash:       "QuickSlash",
	Acrobatics:       "Acrobatics",
	PoisonedStab:     "PoisonedStab",
	DaggerThrow:      "DaggerThrow",
	Deflect:          "Deflect",
	BladeDance:       "BladeDance",
	Bane:             "Bane",
	DaggerSpray:      "DaggerSpray",
	DeadlyPoison:     "DeadlyPoison",
	SneakyStrike:     "SneakyStrike",
	CloakAndDagger:   "CloakAndDagger",
	Predator:         "Predator",
	AllOutAttack:     "AllOutAttack",
	Distraction:      "Distraction",
	Footwork:         "Footwork",
	Accuracy:         "Accuracy",
	MasterfulStab:    "MasterfulStab",
	Flechettes:       "Flechettes",
	Concentrate:      "Concentrate",
	BouncingFlask:    "BouncingFlask",
	Backstab:         "Backstab",
	Dash:             "Dash",
	Eviscerate:       "Eviscerate",
	Reflex:           "Reflex",
	InfiniteBlades:   "InfiniteBlades",
	NoxiousFumes:     "NoxiousFumes",
	HeelHook:         "HeelHook",
	Terror:           "Terror",
	WellLaidPlans:    "WellLaidPlans",
	Finisher:         "Finisher",
	EscapePlan:       "EscapePlan",
	CalculatedGamble: "CalculatedGamble",
	Skewer:           "Skewer",
	RiddleWithHoles:  "RiddleWithHoles",
	EndlessAgony:     "EndlessAgony",
	Setup:            "Setup",
	Blur:             "Blur",
	Caltrops:         "Caltrops",
	Choke:            "Choke",
	Expertise:        "Expertise",
	Tactician:        "Tactician",
	Catalyst:         "Catalyst",
	LegSweep:         "LegSweep",
	CripplingCloud:   "CripplingCloud",
	Alchemize:        "Alchemize",
	CorpseExplosion:  "CorpseExplosion",
	Malaise:          "Malaise",
	PhantasmalKiller: "PhantasmalKiller",
	DieDieDie:        "DieDieDie",
	Adrenaline:       "Adrenaline",
	Envenom:          "Envenom",
	Doppelganger:     "Doppelganger",
	Burst:            "Burst",
	WraithForm:       "WraithForm",
	ToolsOfTheTrade:  "ToolsOfTheTrade",
	Nightmare:        "Nightmare",
	Unload:           "Unload",
	AfterImage:       "AfterImage",
	BulletTime:       "BulletTime",
	StormOfSteel:     "StormOfSteel",
	GlassKnife:       "GlassKnife",
	AThousandCuts:    "AThousandCuts",
	GrandFinale:      "GrandFinale",
	SteamBarrier:     "SteamBarrier",
	ColdSnap:         "ColdSnap",
	Leap:             "Leap",
	BeamCell:         "BeamCell",
	Hologram:         "Hologram",
	ChargeBattery:    "ChargeBattery",
	SweepingBeam:     "SweepingBeam",
	Turbo:            "Turbo",
	Coolheaded:       "Coolheaded",
	Claw:             "Claw",
	Rebound:          "Rebound",
	Stack:            "Stack",
	Barrage:          "Barrage",
	CompileDriver:    "CompileDriver",
	Recursion:        "Recursion",
	Streamline:       "Streamline",
	BallLightning:    "BallLightning",
	GoForTheEyes:     "GoForTheEyes",
	DoomAndGloom:     "DoomAndGloom",
	Defragment:       "Defragment",
	Capacitor:        "Capacitor",
	WhiteNoise:       "WhiteNoise",
	Skim:             "Skim",
	Recycle:          "Recycle",
	Scrape:           "Scrape",
	Bullseye:         "Bullseye",
	Reprogram:        "Reprogram",
	AutoShields:      "AutoShields",
	ReinforcedBody:   "ReinforcedBody",
	DoubleEnergy:     "DoubleEnergy",
	Darkness:         "Darkness",
	RipAndTear:       "RipAndTear",
	Ftl:              "Ftl",
	ForceField:       "ForceField",
	Equilibrium:      "Equilibrium",
	Tempest:          "Tempest",
	Heatsinks:        "Heatsinks",
	StaticDischarge:  "StaticDischarge",
	BootSequence:     "BootSequence",
	Chill:            "Chill",
	Loop:             "Loop",
	SelfRepair:       "SelfRepair",
	Melter:           "Melter",
	Chaos:            "Chaos",
	Blizzard:         "Blizzard",
	Aggregate:        "Aggregate",
	Fusion:           "Fusion",
	Consume:          "Consume",
	Glacier:          "Glacier",
	Sunder:           "Sunder",
	HelloWorld:       "HelloWorld",
	Overclock:        "Overclock",
	GeneticAlgorithm: "GeneticAlgorithm",
	Storm:            "Storm",
	MultiCast:        "MultiCast",
	Hyperbeam:        "Hyperbeam",
	ThunderStrike:    "ThunderStrike",
	BiasedCognition:  "BiasedCognition",
	MachineLearning:  "MachineLearning",
	Electrodynamics:  "Electrodynamics",
	Buffer:           "Buffer",
	Rainbow:          "Rainbow",
	Seek:             "Seek",
	MeteorStrike:     "MeteorStrike",
	EchoForm:         "EchoForm",
	AllForOne:        "AllForOne",
	Reboot:           "Reboot",
	Amplify:          "Amplify",
	CreativeAi:       "CreativeAi",
	Fission:          "Fission",
	CoreSurge:        "CoreSurge",
	EmptyFist:        "EmptyFist",
	Prostrate:        "Prostrate",
	Evaluate:         "Evaluate",
	CrushJoints:      "CrushJoints",
	PressurePoints:   "PressurePoints",
	FollowUp:         "FollowUp",
	CutThroughFate:   "CutThroughFate",
	SashWhip:         "SashWhip",
	EmptyBody:        "EmptyBody",
	Tranquility:      "Tranquility",
	Crescendo:        "Crescendo",
	ThirdEye:         "ThirdEye",
	Protect:          "Protect",
	FlurryOfBlows:    "FlurryOfBlows",
	JustLucky:        "JustLucky",
	Halt:             "Halt",
	FlyingSleeves:    "FlyingSleeves",
	BowlingBash:      "BowlingBash",
	Consecrate:       "Consecrate",
	Pray:             "Pray",
	SignatureMove:    "SignatureMove",
	Weave:            "Weave",
	EmptyMind:        "EmptyMind",
	Nirvana:          "Nirvana",
	Tantrum:          "Tantrum",
	Conclude:         "Conclude",
	Worship:          "Worship",
	Swivel:           "Swivel",
	Perseverance:     "Perseverance",
	Meditate:         "Meditate",
	Study:            "Study",
	WaveOfTheHand:    "WaveOfTheHand",
	SandsOfTime:      "SandsOfTime",
	FearNoEvil:       "FearNoEvil",
	ReachHeaven:      "ReachHeaven",
	MentalFortress:   "MentalFortress",
	DeceiveReality:   "DeceiveReality",
	Rushdown:         "Rushdown",
	InnerPeace:       "InnerPeace",
	Collect:          "Collect",
	WreathOfFlame:    "WreathOfFlame",
	Wallop:           "Wallop",
	CarveReality:     "CarveReality",
	Fasting:          "Fasting",
	LikeWater:        "LikeWater",
	ForeignInfluence: "ForeignInfluence",
	WindmillStrike:   "WindmillStrike",
	Indignation:      "Indignation",
	BattleHymn:       "BattleHymn",
	TalkToTheHand:    "TalkToTheHand",
	Sanctity:         "Sanctity",
	Foresight:        "Foresight",
	SimmeringFury:    "SimmeringFury",
	WheelKick:        "WheelKick",
	Judgment:         "Judgment",
	ConjureBlade:     "ConjureBlade",
	MasterReality:    "MasterReality",
	Brilliance:       "Brilliance",
	Devotion:         "Devotion",
	Blasphemy:        "Blasphemy",
	Ragnarok:         "Ragnarok",
	LessonLearned:    "LessonLearned",
	Scrawl:           "Scrawl",
	Vault:            "Vault",
	Alpha:            "Alpha",
	Wish:             "Wish",
	Omniscience:      "Omniscience",
	Establishment:    "Establishment",
	SpiritShield:     "SpiritShield",
	DevaForm:         "DevaForm",
	DeusExMachina:    "DeusExMachina",
	BandageUp:        "BandageUp",
	Blind:            "Blind",
	DarkShackles:     "DarkShackles",
	DeepBreath:       "DeepBreath",
	Discovery:        "Discovery",
	DramaticEntrance: "DramaticEntrance",
	Enlightenment:    "Enlightenment",
	Finesse:          "Finesse",
	FlashOfSteel:     "FlashOfSteel",
	Forethought:      "Forethought",
	GoodInstincts:    "GoodInstincts",
	Impatience:       "Impatience",
	JackOfAllTrades:  "JackOfAllTrades",
	Madness:          "Madness",
	MindBlast:        "MindBlast",
	Panacea:          "Panacea",
	PanicButton:      "PanicButton",
	Purity:           "Purity",
	SwiftStrike:      "SwiftStrike",
	Trip:             "Trip",
	Apotheosis:       "Apotheosis",
	Chrysalis:        "Chrysalis",
	HandOfGreed:      "HandOfGreed",
	Magnetism:        "Magnetism",
	MasterOfStrategy: "MasterOfStrategy",
	Mayhem:           "Mayhem",
	Metamorphosis:    "Metamorphosis",
	Panache:          "Panache",
	SadisticNature:   "SadisticNature",
	SecretTechnique:  "SecretTechnique",
	SecretWeapon:     "SecretWeapon",
	TheBomb:          "TheBomb",
	ThinkingAhead:    "ThinkingAhead",
	Transmutation:    "Transmutation",
	Violence:         "Violence",
}

var lookup = func() *names.Lookup[Card] {
	l := names.NewLookup[Card]("card")
	for c := Card(1); int(c) < Count; c++ {
		l.Add(c, cardNames[c])
	}
	return l
}()

// Parse resolves a card by name. Spaces, underscores and case are ignored.
func Parse(s string) (Card, error) {
	return lookup.Find(s)
}

// ParseList resolves every name in list.
func ParseList(list []string) ([]Card, error) {
	cards := make([]Card, 0, len(list))
	for _, s := range list {
		c, err := Parse(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func (c Card) String() string {
	if int(c) < Count {
		return cardNames[c]
	}
	return "Card(" + strconv.Itoa(int(c)) + ")"
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
