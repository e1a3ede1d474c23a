package note

import (
	"math"
	"unicode"

	"github.com/jsphweid/genecomposer/model"
)

const accidentalOffset = 0.05

// Degree maps a letter onto the diatonic scale starting at C, so C is 0
// and B is 6. The letter is case-insensitive.
func Degree(letter byte) int {
	return (int(unicode.ToUpper(rune(letter))-'A') + 5) % 7
}

// Value places a pitch on a single numeric line. Each octave spans 10
// units and sharps/flats nudge the octave by a twentieth.
func Value(p model.Pitch) float64 {
	octave := float64(p.Octave)
	switch p.Accidental {
	case model.Sharp:
		octave += accidentalOffset
	case model.Flat:
		octave -= accidentalOffset
	}
	return 10*octave + float64(Degree(p.Letter))
}

func Distance(a, b model.Pitch) float64 {
	return math.Abs(Value(a) - Value(b))
}
