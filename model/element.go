package model

type Kind uint8

const (
	KindNote Kind = iota
	KindRest
	KindChord
)

type Accidental uint8

const (
	Natural Accidental = iota
	Sharp
	Flat
)

// Duration is a length in quarter notes. Only decoders and encoders
// interpret it; evolution copies it as-is.
type Duration float64

type Pitch struct {
	Letter     byte
	Accidental Accidental
	Octave     int
}

// Element is one slot of the flattened timeline. Rests and chords are
// treated as immutable values: Keys is shared between copies and must
// never be written to.
type Element struct {
	Kind     Kind
	Pitch    Pitch
	Keys     []uint8
	Duration Duration
}

func (e Element) IsPitched() bool {
	return e.Kind == KindNote
}

func NewNote(p Pitch, d Duration) Element {
	return Element{Kind: KindNote, Pitch: p, Duration: d}
}

func NewRest(d Duration) Element {
	return Element{Kind: KindRest, Duration: d}
}

func NewChord(keys []uint8, d Duration) Element {
	return Element{Kind: KindChord, Keys: keys, Duration: d}
}
