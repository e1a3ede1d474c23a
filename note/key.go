package note

import (
	"unicode"

	"github.com/jsphweid/genecomposer/model"
)

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

var spellings = [12]model.Pitch{
	{Letter: 'C'}, {Letter: 'C', Accidental: model.Sharp},
	{Letter: 'D'}, {Letter: 'D', Accidental: model.Sharp},
	{Letter: 'E'},
	{Letter: 'F'}, {Letter: 'F', Accidental: model.Sharp},
	{Letter: 'G'}, {Letter: 'G', Accidental: model.Sharp},
	{Letter: 'A'}, {Letter: 'A', Accidental: model.Sharp},
	{Letter: 'B'},
}

// Key converts a pitch to a MIDI key number, 60 being C4. Results are
// clamped to the 0-127 range.
func Key(p model.Pitch) uint8 {
	k := (p.Octave+1)*12 + semitones[byte(unicode.ToUpper(rune(p.Letter)))]
	switch p.Accidental {
	case model.Sharp:
		k++
	case model.Flat:
		k--
	}
	if k < 0 {
		return 0
	}
	if k > 127 {
		return 127
	}
	return uint8(k)
}

// FromKey spells a MIDI key, using sharps for the black keys.
func FromKey(key uint8) model.Pitch {
	p := spellings[key%12]
	p.Octave = int(key)/12 - 1
	return p
}
