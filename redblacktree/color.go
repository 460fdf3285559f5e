package redblacktree

import "strconv"

// region Color ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Color encodes the balancing color of a Node. The sentinel color ColorNil is reserved for missing children, which
// are represented by nil pointers - no real Node ever carries it.
type Color int8

const (
	// ColorBlack is the color of black Nodes (missing children count as black as well).
	ColorBlack Color = iota

	// ColorRed is the color of red Nodes.
	ColorRed

	// ColorNil is the color reported for a missing child.
	ColorNil
)

// String returns a human readable version of the Color.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "BLACK"
	case ColorRed:
		return "RED"
	case ColorNil:
		return "NIL"
	default:
		return "UNKNOWN(" + strconv.Itoa(int(c)) + ")"
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Direction ////////////////////////////////////////////////////////////////////////////////////////////////////

// Direction encodes the side of a child or a rotation relative to a parent Node.
type Direction int8

const (
	// Left is the side of the smaller keys.
	Left Direction = iota

	// Right is the side of the larger keys.
	Right
)

// Opposite returns the inverted Direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}

	return Left
}

// String returns a human readable version of the Direction.
func (d Direction) String() string {
	if d == Left {
		return "LEFT"
	}

	return "RIGHT"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
