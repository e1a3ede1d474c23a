package note

import (
	"math/rand"

	"github.com/jsphweid/genecomposer/model"
)

var letters = []byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

// weighted toward the middle of the keyboard, index drawn uniformly
var octaves = [16]int{2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5, 6, 6, 7, 1}

// Random returns a natural note with a uniformly drawn letter and an
// octave from the weighted table.
func Random(rng *rand.Rand, d model.Duration) model.Element {
	p := model.Pitch{
		Letter: letters[rng.Intn(len(letters))],
		Octave: octaves[rng.Intn(len(octaves))],
	}
	return model.NewNote(p, d)
}
