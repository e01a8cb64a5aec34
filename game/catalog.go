package game

import "golang.org/x/exp/slices"

// NumActions is the size of the fixed catalog: 4 steps, 4 straight jumps, 8 side jumps and
// 128 wall placements.
const NumActions = 4 + 4 + 8 + AnchorSize*AnchorSize*2

var catalog = buildCatalog()

func buildCatalog() []Action {
	actions := make([]Action, 0, NumActions)
	for _, d := range Directions {
		actions = append(actions, NewStep(d))
	}
	for _, d := range Directions {
		actions = append(actions, NewJumpStraight(d))
	}
	actions = append(actions,
		NewJumpSide(North, East),
		NewJumpSide(North, West),
		NewJumpSide(South, East),
		NewJumpSide(South, West),
		NewJumpSide(East, North),
		NewJumpSide(East, South),
		NewJumpSide(West, North),
		NewJumpSide(West, South),
	)
	for y := 0; y < AnchorSize; y++ {
		for x := 0; x < AnchorSize; x++ {
			for _, o := range Orientations {
				actions = append(actions, NewPlaceWall(Cell{X: x, Y: y}, o))
			}
		}
	}
	return actions
}

// Catalog returns a copy of every action in enumeration order.
func Catalog() []Action {
	return slices.Clone(catalog)
}

// InCatalog reports whether a is one of the enumerated actions.
func InCatalog(a Action) bool {
	return slices.Contains(catalog, a)
}
