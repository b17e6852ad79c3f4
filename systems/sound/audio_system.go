package sound

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"ebiten-snake/components"
	"ebiten-snake/ecs"
	"ebiten-snake/systems"
)

// SoundPlayer plays the sound triggers emitted by the simulation
type SoundPlayer interface {
	Play(sound components.Sound)
}

// soundExtensions lists the formats tried for every sound, in order
var soundExtensions = []string{".wav", ".mp3", ".ogg"}

// ConnectSounds subscribes a player to the food and game over events
func ConnectSounds(world *ecs.World, player SoundPlayer) {
	world.GetEventManager().Subscribe(systems.EventFoodEaten, func(event ecs.Event) {
		player.Play(components.SoundEat)
	})
	world.GetEventManager().Subscribe(systems.EventGameOver, func(event ecs.Event) {
		player.Play(components.SoundGameOver)
	})
}

// AudioSystem handles all audio playback
type AudioSystem struct {
	audioContext *audio.Context
	sounds       map[components.Sound][]byte
	volume       float64
	sampleRate   int
	muted        bool
}

// NewAudioSystem creates a new audio system and decodes the sounds found in
// resourceDir. Missing or broken files are logged and the sound stays silent.
func NewAudioSystem(resourceDir string, muted bool) *AudioSystem {
	sampleRate := 44100
	s := &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		sounds:       make(map[components.Sound][]byte),
		volume:       1.0, // Default volume
		sampleRate:   sampleRate,
		muted:        muted,
	}

	for _, sound := range []components.Sound{components.SoundEat, components.SoundGameOver} {
		pcm, err := s.loadSound(resourceDir, sound)
		if err != nil {
			systems.GetDebugLog().AddColored(fmt.Sprintf("Sound %s unavailable: %v", sound, err), systems.MessageTypeAlert)
			continue
		}
		s.sounds[sound] = pcm
	}

	return s
}

// loadSound finds the first supported file for a sound and decodes it to PCM
func (s *AudioSystem) loadSound(dir string, sound components.Sound) ([]byte, error) {
	for _, ext := range soundExtensions {
		path := filepath.Join(dir, sound.String()+ext)
		pcm, err := s.decodeFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return pcm, err
	}
	return nil, fmt.Errorf("no %s file in %s: %w", sound, dir, fs.ErrNotExist)
}

// decodeFile decodes an audio file, choosing the decoder by file extension
func (s *AudioSystem) decodeFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(s.sampleRate, file)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(s.sampleRate, file)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(s.sampleRate, file)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio file %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	return pcm, nil
}

// Play starts a sound. Each call gets its own player so sounds can overlap.
func (s *AudioSystem) Play(sound components.Sound) {
	if s.muted {
		return
	}
	pcm, ok := s.sounds[sound]
	if !ok {
		return
	}
	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
}
