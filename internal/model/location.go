package model

import "fmt"

// Location is a block position in a world
type Location struct {
	World string
	X     int
	Y     int
	Z     int
}

func (l Location) String() string {
	return fmt.Sprintf("%s(%d,%d,%d)", l.World, l.X, l.Y, l.Z)
}
