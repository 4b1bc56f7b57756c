package note

import "math/rand"

// Palette holds the colors a note gets when none is chosen
var Palette = []string{"#9b87f5", "#0EA5E9", "#14b8a6", "#7E69AB"}

// RandomColor picks a color from the Palette uniformly
func RandomColor() string {
	return Palette[rand.Intn(len(Palette))]
}
