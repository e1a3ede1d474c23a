package midi

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s, e = nil, errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}
	return res, nil
}

// ReadScore reads a file and flattens it into a single timeline.
func ReadScore(filepath string) (Score, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return Score{}, err
	}
	return Decode(s)
}

func WriteScore(score Score, filepath string) error {
	s, err := Encode(score)
	if err != nil {
		return err
	}
	return errors.Wrap(s.WriteFile(filepath), "Error writing midi file")
}
