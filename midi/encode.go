package midi

import (
	"math"

	"github.com/jsphweid/genecomposer/constants"
	"github.com/jsphweid/genecomposer/model"
	"github.com/jsphweid/genecomposer/note"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Encode lays the elements out one after another on a single track.
func Encode(score Score) (*smf.SMF, error) {
	res := smf.New()
	resolution := smf.MetricTicks(constants.DefaultResolution)
	res.TimeFormat = resolution

	bpm := score.BPM
	if bpm <= 0 {
		bpm = constants.DefaultBPM
	}

	var track smf.Track
	track.Add(0, smf.MetaTempo(bpm))

	var delta uint32
	for _, e := range score.Elements {
		length := uint32(math.Round(float64(e.Duration) * float64(resolution)))

		var keys []uint8
		switch e.Kind {
		case model.KindNote:
			keys = []uint8{note.Key(e.Pitch)}
		case model.KindChord:
			keys = e.Keys
		}
		if len(keys) == 0 || length == 0 {
			delta += length
			continue
		}

		for i, key := range keys {
			var d uint32
			if i == 0 {
				d = delta
			}
			track.Add(d, gomidi.NoteOn(0, key, constants.DefaultVelocity))
		}
		for i, key := range keys {
			var d uint32
			if i == 0 {
				d = length
			}
			track.Add(d, gomidi.NoteOff(0, key))
		}
		delta = 0
	}
	track.Close(delta)

	if err := res.Add(track); err != nil {
		return nil, errors.Wrap(err, "Error adding track")
	}
	return res, nil
}
