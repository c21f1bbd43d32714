package neighborhood

const (
	// ContiguousShapes is the number of gap-free shapes within the
	// multiplicity budget, the empty shape included.
	ContiguousShapes = 233
	// HollowShapes is the number of three-column windows with an empty middle.
	HollowShapes = 75
	// TotalShapes is the size of the packed shape table.
	TotalShapes = ContiguousShapes + HollowShapes
)

// compositions lists the strong compositions of 1..6 into at most three
// parts, in the canonical order that fixes the packed codes.
var compositions = [][]int{
	{1},
	{1, 1}, {2},
	{1, 1, 1}, {1, 2}, {2, 1}, {3},
	{1, 1, 2}, {1, 2, 1}, {2, 1, 1}, {2, 2}, {1, 3}, {3, 1}, {4},
	{1, 2, 2}, {2, 1, 2}, {2, 2, 1}, {1, 1, 3}, {1, 3, 1}, {3, 1, 1},
	{2, 3}, {3, 2}, {1, 4}, {4, 1}, {5},
	{2, 2, 2}, {1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	{1, 1, 4}, {1, 4, 1}, {4, 1, 1},
	{3, 3}, {2, 4}, {4, 2}, {1, 5}, {5, 1}, {6},
}

// Shapes returns every representable neighborhood in packed-code order:
// the empty shape, the contiguous shapes, then the hollow ones.
func Shapes() []Enumerated {
	shapes := make([]Enumerated, 0, TotalShapes)
	shapes = append(shapes, Enumerated{})
	for _, comp := range compositions {
		for first := 0; first+len(comp) <= Width; first++ {
			shapes = append(shapes, mustEnumerated(first, comp...))
		}
	}
	for total := 2; total <= MaxMultiplicity; total++ {
		for left := 1; left < total; left++ {
			for first := 0; first+3 <= Width; first++ {
				shapes = append(shapes, mustEnumerated(first, left, 0, total-left))
			}
		}
	}
	return shapes
}

func mustEnumerated(first int, counts ...int) Enumerated {
	e, err := MakeEnumerated(first, counts...)
	if err != nil {
		panic(err)
	}
	return e
}
