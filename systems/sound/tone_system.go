package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"ebiten-snake/components"
	"ebiten-snake/systems"
)

const toneSampleRate = beep.SampleRate(44100)

// tone describes a synthesized sound effect
type tone struct {
	freq     float64
	duration time.Duration
	volume   float64 // Base 2 exponent applied by effects.Volume
}

var tones = map[components.Sound][]tone{
	components.SoundEat: {
		{freq: 880, duration: 60 * time.Millisecond, volume: -1},
		{freq: 1320, duration: 60 * time.Millisecond, volume: -1},
	},
	components.SoundGameOver: {
		{freq: 330, duration: 150 * time.Millisecond, volume: -1},
		{freq: 220, duration: 150 * time.Millisecond, volume: -1},
		{freq: 110, duration: 300 * time.Millisecond, volume: -1},
	},
}

// ToneSystem plays synthesized tones through the speaker, for frontends
// without sound files
type ToneSystem struct {
	enabled bool
}

// NewToneSystem initializes the speaker. An unavailable audio device leaves
// the system silent.
func NewToneSystem(muted bool) *ToneSystem {
	s := &ToneSystem{}
	if muted {
		return s
	}

	if err := speaker.Init(toneSampleRate, toneSampleRate.N(time.Second/10)); err != nil {
		systems.GetDebugLog().AddColored(fmt.Sprintf("Speaker unavailable, tones disabled: %v", err), systems.MessageTypeAlert)
		return s
	}
	s.enabled = true
	return s
}

// Play queues the tone sequence for a sound
func (s *ToneSystem) Play(sound components.Sound) {
	if !s.enabled {
		return
	}
	streamer, err := buildTone(sound)
	if err != nil {
		systems.GetDebugLog().AddColored(fmt.Sprintf("Tone %s: %v", sound, err), systems.MessageTypeAlert)
		return
	}
	speaker.Play(streamer)
}

// buildTone chains the sine segments of a sound into one streamer
func buildTone(sound components.Sound) (beep.Streamer, error) {
	segments, ok := tones[sound]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %s", sound)
	}

	parts := make([]beep.Streamer, 0, len(segments))
	for _, seg := range segments {
		sine, err := generators.SineTone(toneSampleRate, seg.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create sine tone: %w", err)
		}
		parts = append(parts, &effects.Volume{
			Streamer: beep.Take(toneSampleRate.N(seg.duration), sine),
			Base:     2,
			Volume:   seg.volume,
		})
	}
	return beep.Seq(parts...), nil
}

// Close stops every queued tone
func (s *ToneSystem) Close() {
	if s.enabled {
		speaker.Clear()
		s.enabled = false
	}
}
