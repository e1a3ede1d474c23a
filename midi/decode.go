package midi

import (
	"sort"

	"github.com/jsphweid/genecomposer/model"
	"github.com/jsphweid/genecomposer/note"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Score is a flattened melody plus the tempo needed to play it back.
type Score struct {
	Elements []model.Element
	BPM      float64
}

type span struct {
	key   uint8
	start int64
	end   int64
}

// Decode merges every track into one time-ordered list of elements.
// Notes starting on the same tick become one chord and silences become
// rests.
func Decode(s *smf.SMF) (Score, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return Score{}, errors.Errorf("unsupported time format %v", s.TimeFormat)
	}

	var score Score
	var spans []span
	for _, track := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8][]int64)
		release := func(key uint8) {
			starts := pressed[key]
			if len(starts) == 0 {
				return
			}
			spans = append(spans, span{key: key, start: starts[0], end: absTicks})
			pressed[key] = starts[1:]
		}

		for _, evt := range track {
			absTicks += int64(evt.Delta)
			var channel, key, velocity uint8
			var bpm float64
			switch {
			case evt.Message.GetMetaTempo(&bpm):
				if score.BPM == 0 {
					score.BPM = bpm
				}
			case evt.Message.GetNoteOn(&channel, &key, &velocity):
				if velocity == 0 {
					release(key)
				} else {
					pressed[key] = append(pressed[key], absTicks)
				}
			case evt.Message.GetNoteOff(&channel, &key, &velocity):
				release(key)
			}
		}

		// close anything left hanging at the end of the track
		for key, starts := range pressed {
			for range starts {
				release(key)
			}
		}
	}

	score.Elements = flatten(spans, float64(ticks))
	return score, nil
}

func flatten(spans []span, ticksPerQuarter float64) []model.Element {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].key < spans[j].key
	})

	quarters := func(ticks int64) model.Duration {
		return model.Duration(float64(ticks) / ticksPerQuarter)
	}

	var res []model.Element
	var cursor int64
	for i := 0; i < len(spans); {
		start := spans[i].start
		var keys []uint8
		var end int64
		for ; i < len(spans) && spans[i].start == start; i++ {
			if spans[i].end <= start {
				continue
			}
			keys = append(keys, spans[i].key)
			if spans[i].end > end {
				end = spans[i].end
			}
		}
		if len(keys) == 0 {
			continue
		}

		if start > cursor {
			res = append(res, model.NewRest(quarters(start-cursor)))
		}
		if len(keys) == 1 {
			res = append(res, model.NewNote(note.FromKey(keys[0]), quarters(end-start)))
		} else {
			res = append(res, model.NewChord(keys, quarters(end-start)))
		}
		if end > cursor {
			cursor = end
		}
	}
	return res
}
