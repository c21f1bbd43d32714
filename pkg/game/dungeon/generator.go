package dungeon

import (
	"spireseed/pkg/engine/neighborhood"
	"spireseed/pkg/engine/rng"
	"spireseed/pkg/game/names"
)

// Generator builds maps with one in-neighborhood encoding.
type Generator interface {
	Generate(src rng.Source, ascension bool) *Map
	Name() string
}

type encodingGenerator struct {
	name    string
	factory neighborhood.Factory
}

func (g *encodingGenerator) Generate(src rng.Source, ascension bool) *Map {
	return Generate(src, ascension, WithNeighborhood(g.factory))
}

func (g *encodingGenerator) Name() string {
	return g.name
}

// Available generators
var (
	DynamicGenerator    Generator = &encodingGenerator{"dynamic", neighborhood.NewDynamic}
	EnumeratedGenerator Generator = &encodingGenerator{"enumerated", neighborhood.NewEnumerated}
	PackedGenerator     Generator = &encodingGenerator{"packed", neighborhood.NewPacked}
)

// DefaultGenerator is the generator used when none is named.
var DefaultGenerator = DynamicGenerator

var generators = func() *names.Lookup[Generator] {
	l := names.NewLookup[Generator]("neighborhood")
	for _, g := range Generators() {
		l.Add(g, g.Name())
	}
	return l
}()

// Generators returns every registered generator.
func Generators() []Generator {
	return []Generator{DynamicGenerator, EnumeratedGenerator, PackedGenerator}
}

// Lookup returns the generator with the given name. An empty name selects
// DefaultGenerator.
func Lookup(name string) (Generator, error) {
	if name == "" {
		return DefaultGenerator, nil
	}
	return generators.Find(name)
}
