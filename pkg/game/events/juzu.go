// Package events rolls the outcome of unknown rooms.
package events

import "spireseed/pkg/engine/rng"

// combatIncrement is the growth of the chance that an unknown room holds a
// combat, per unknown room entered without one.
const combatIncrement float32 = 0.1

// Segments is the number of unknown-room runs a path is split into.
const Segments = 3

// JuzulessPath reports whether a run entering path[i] consecutive unknown
// rooms in each of three segments meets no combat in any of them, without
// the Juzu Bracelet. src must be seeded with the run seed. The combat
// chance resets at the start of every segment.
func JuzulessPath(src rng.Source, path [Segments]int) bool {
	for _, length := range path {
		threshold := combatIncrement
		for i := 0; i < length; i++ {
			if roll(src) < threshold {
				return false
			}
			threshold += combatIncrement
		}
	}
	return true
}

// roll is libgdx's nextFloat computed through a double, as the game does.
func roll(src rng.Source) float32 {
	return float32(float64(src.NextUint64()>>40) * 5.9604644775390625e-8)
}
