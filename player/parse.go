package player

import (
	"errors"
	"fmt"
	"strings"

	"quoridor/game"
)

var ErrUnparsable = errors.New("unparsable action")

// ParseAction reads the console notation:
//
//	m<d>       step, e.g. "ms"
//	j<d>       straight jump, e.g. "jn"
//	j<d><s>    side jump, e.g. "jse"
//	w<x><y><o> wall anchored at (x, y), e.g. "w34h"
//
// Directions are n, s, e, w and orientations v, h. Input is case-insensitive and surrounding
// whitespace is ignored. Parsing says nothing about applicability.
func ParseAction(text string) (game.Action, error) {
	input := []rune(strings.ToLower(strings.TrimSpace(text)))
	if len(input) < 2 {
		return game.Action{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
	}

	var (
		action game.Action
		ok     bool
	)
	switch input[0] {
	case 'm':
		action, ok = parseStep(input[1:])
	case 'j':
		action, ok = parseJump(input[1:])
	case 'w':
		action, ok = parseWall(input[1:])
	}
	if !ok {
		return game.Action{}, fmt.Errorf("%w: %q", ErrUnparsable, text)
	}
	return action, nil
}

func parseStep(args []rune) (game.Action, bool) {
	if len(args) != 1 {
		return game.Action{}, false
	}
	d, ok := game.ParseDirection(args[0])
	return game.NewStep(d), ok
}

func parseJump(args []rune) (game.Action, bool) {
	d, ok := game.ParseDirection(args[0])
	if !ok {
		return game.Action{}, false
	}
	switch len(args) {
	case 1:
		return game.NewJumpStraight(d), true
	case 2:
		side, ok := game.ParseDirection(args[1])
		if !ok {
			return game.Action{}, false
		}
		action := game.NewJumpSide(d, side)
		return action, game.InCatalog(action)
	default:
		return game.Action{}, false
	}
}

func parseWall(args []rune) (game.Action, bool) {
	if len(args) != 3 {
		return game.Action{}, false
	}
	x, y := int(args[0]-'0'), int(args[1]-'0')
	if x < 0 || x >= game.AnchorSize || y < 0 || y >= game.AnchorSize {
		return game.Action{}, false
	}
	o, ok := game.ParseOrientation(args[2])
	if !ok {
		return game.Action{}, false
	}
	return game.NewPlaceWall(game.Cell{X: x, Y: y}, o), true
}
