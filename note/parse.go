package note

import (
	"strconv"
	"strings"

	"github.com/jsphweid/genecomposer/model"
	"github.com/pkg/errors"
)

const defaultDuration model.Duration = 1

// Format writes an element in the text notation accepted by Parse:
// "C#4:1" for notes, "R:0.5" for rests and "C4+E4+G4:2" for chords.
func Format(e model.Element) string {
	var body string
	switch e.Kind {
	case model.KindNote:
		body = FormatPitch(e.Pitch)
	case model.KindRest:
		body = "R"
	case model.KindChord:
		names := make([]string, len(e.Keys))
		for i, k := range e.Keys {
			names[i] = FormatPitch(FromKey(k))
		}
		body = strings.Join(names, "+")
	}
	return body + ":" + strconv.FormatFloat(float64(e.Duration), 'g', -1, 64)
}

func FormatPitch(p model.Pitch) string {
	var sb strings.Builder
	sb.WriteByte(p.Letter)
	switch p.Accidental {
	case model.Sharp:
		sb.WriteByte('#')
	case model.Flat:
		sb.WriteByte('b')
	}
	sb.WriteString(strconv.Itoa(p.Octave))
	return sb.String()
}

// Parse reads one element of text notation. The duration suffix is
// optional and defaults to a quarter note.
func Parse(s string) (model.Element, error) {
	s = strings.TrimSpace(s)
	body, d := s, defaultDuration
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		body = s[:i]
		f, err := strconv.ParseFloat(s[i+1:], 64)
		if err != nil || f <= 0 {
			return model.Element{}, errors.Errorf("invalid duration in %q", s)
		}
		d = model.Duration(f)
	}

	if body == "R" || body == "r" {
		return model.NewRest(d), nil
	}

	if strings.Contains(body, "+") {
		parts := strings.Split(body, "+")
		keys := make([]uint8, len(parts))
		for i, part := range parts {
			p, err := ParsePitch(part)
			if err != nil {
				return model.Element{}, errors.Wrapf(err, "invalid chord %q", s)
			}
			keys[i] = Key(p)
		}
		return model.NewChord(keys, d), nil
	}

	p, err := ParsePitch(body)
	if err != nil {
		return model.Element{}, err
	}
	return model.NewNote(p, d), nil
}

func ParsePitch(s string) (model.Pitch, error) {
	if len(s) < 2 {
		return model.Pitch{}, errors.Errorf("invalid pitch %q", s)
	}

	var p model.Pitch
	p.Letter = strings.ToUpper(s[:1])[0]
	if _, ok := semitones[p.Letter]; !ok {
		return model.Pitch{}, errors.Errorf("invalid letter in pitch %q", s)
	}

	rest := s[1:]
	switch rest[0] {
	case '#':
		p.Accidental = model.Sharp
		rest = rest[1:]
	case 'b':
		p.Accidental = model.Flat
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return model.Pitch{}, errors.Errorf("invalid octave in pitch %q", s)
	}
	p.Octave = octave
	return p, nil
}

func ParseAll(notes []string) ([]model.Element, error) {
	res := make([]model.Element, 0, len(notes))
	for _, n := range notes {
		e, err := Parse(n)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func FormatAll(elements []model.Element) []string {
	res := make([]string, len(elements))
	for i, e := range elements {
		res[i] = Format(e)
	}
	return res
}
