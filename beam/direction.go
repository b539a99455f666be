package beam

import (
	"fmt"
	"strings"
)

// Direction is the heading of a beam.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every heading in declaration order.
var Directions = [4]Direction{North, East, South, West}

// vectors holds the (dRow, dCol) unit displacement of each Direction.
var vectors = [4][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

var directionNames = [4]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d <= West
}

// Vector returns the unit displacement (dRow, dCol) of d.
func (d Direction) Vector() (dRow, dCol int) {
	v := vectors[d&3]
	return v[0], v[1]
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return (d + 2) & 3
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection accepts a heading name ("east") or its initial ("E"),
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		name := strings.ToLower(directionNames[d])
		if s == name || s == name[:1] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
