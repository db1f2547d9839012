package state

import "image/color"

type Join string

const (
	JoinRound Join = "round"
	JoinBevel Join = "bevel"
	JoinMiter Join = "miter"
)

type Cap string

const (
	CapRound  Cap = "round"
	CapButt   Cap = "butt"
	CapSquare Cap = "square"
)

// Style describes how a Path is stroked. Paths are never filled.
type Style struct {
	Color     color.Color
	Width     float32
	Join      Join
	Cap       Cap
	AntiAlias bool
}

// DefaultStyle is the doodle pen: a 20 unit wide black round brush.
func DefaultStyle() Style {
	return Style{
		Color:     color.Black,
		Width:     20,
		Join:      JoinRound,
		Cap:       CapRound,
		AntiAlias: true,
	}
}
