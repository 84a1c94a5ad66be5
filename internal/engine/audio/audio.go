// Package audio plays the looping ambient track behind the scene.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/seascape/internal/logger"
)

// DefaultSampleRate is the speaker sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playback is requested before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Manager owns the speaker and the ambient loop. Its methods may be called
// from any goroutine; the speaker goroutine reads the streamers it builds.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	ambient beep.StreamSeekCloser
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	path    string

	// Volume settings (0.0 to 1.0)
	masterVolume  float64
	ambientVolume float64
	muted         bool
}

// New creates a manager with the given volume levels.
func New(master, ambient float64, muted bool) *Manager {
	return &Manager{
		masterVolume:  clamp(master, 0, 1),
		ambientVolume: clamp(ambient, 0, 1),
		muted:         muted,
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.initialized = true
	return nil
}

// Close stops playback and releases the track.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopInternal()
	m.initialized = false
}

// IsInitialized returns whether the speaker is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// PlayAmbient starts looping the WAV file at path, replacing any current track.
func (m *Manager) PlayAmbient(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open ambient track: %w", err)
	}
	if err := m.PlayAmbientReader(f, path); err != nil {
		f.Close()
		return err
	}
	return nil
}

// PlayAmbientReader loops WAV data from rc. name is reported by AmbientPath.
// rc is closed when the track stops.
func (m *Manager) PlayAmbientReader(rc io.ReadCloser, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}

	m.stopInternal()

	loop, source, err := decodeLoop(rc, m.sampleRate)
	if err != nil {
		return err
	}

	m.ambient = source
	m.ctrl = &beep.Ctrl{Streamer: loop}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 2}
	m.applyVolume()
	m.path = name

	speaker.Play(m.volume)
	logger.Info("ambient track started", zap.String("track", name))
	return nil
}

// SetAmbientTrack switches the looping track to path, opening the speaker on
// first use. An empty path stops playback. Asking for the current track is a
// no-op.
func (m *Manager) SetAmbientTrack(path string) error {
	if path == m.AmbientPath() {
		return nil
	}
	if path == "" {
		m.StopAmbient()
		logger.Info("ambient track stopped")
		return nil
	}
	if !m.IsInitialized() {
		if err := m.Init(); err != nil {
			return err
		}
	}
	return m.PlayAmbient(path)
}

// StopAmbient stops the ambient track.
func (m *Manager) StopAmbient() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopInternal()
}

func (m *Manager) stopInternal() {
	if m.initialized {
		speaker.Clear()
	}
	if m.ambient != nil {
		m.ambient.Close()
	}
	m.ambient = nil
	m.ctrl = nil
	m.volume = nil
	m.path = ""
}

// IsPlaying returns whether an ambient track is loaded. A muted track still
// counts as playing.
func (m *Manager) IsPlaying() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ctrl != nil
}

// AmbientPath returns the name of the current track.
func (m *Manager) AmbientPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.applyVolume()
}

// SetAmbientVolume sets the ambient volume (0.0 to 1.0).
func (m *Manager) SetAmbientVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ambientVolume = clamp(vol, 0, 1)
	m.applyVolume()
}

// SetMuted silences or restores output without stopping the track.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.applyVolume()
}

// ToggleMute flips the mute state and returns the new one.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	m.applyVolume()
	return m.muted
}

// MasterVolume returns the master volume.
func (m *Manager) MasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// AmbientVolume returns the ambient volume.
func (m *Manager) AmbientVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ambientVolume
}

// Muted reports whether output is muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// effectiveVolume is the linear gain the ambient track plays at.
func (m *Manager) effectiveVolume() float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * m.ambientVolume
}

// applyVolume pushes the current levels into the live volume effect.
func (m *Manager) applyVolume() {
	if m.volume == nil {
		return
	}
	vol := m.effectiveVolume()

	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	m.volume.Silent = vol <= 0
	m.volume.Volume = volumeToExponent(vol)
}

// volumeToExponent converts a linear 0-1 gain to the base-2 exponent
// effects.Volume expects.
func volumeToExponent(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// decodeLoop decodes WAV data from rc into an endless streamer at rate.
// The returned source owns rc.
func decodeLoop(rc io.ReadCloser, rate beep.SampleRate) (beep.Streamer, beep.StreamSeekCloser, error) {
	source, format, err := wav.Decode(rc)
	if err != nil {
		return nil, nil, fmt.Errorf("decode wav: %w", err)
	}
	if source.Len() == 0 {
		source.Close()
		return nil, nil, errors.New("decode wav: empty track")
	}

	var s beep.Streamer = &loopStreamer{source: source}
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, s)
	}
	return s, source, nil
}

// loopStreamer rewinds its source whenever it runs dry. A source that yields
// nothing right after a rewind has no playable data, so the loop ends there.
type loopStreamer struct {
	source beep.StreamSeeker
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	rewound := false
	sinceRewind := 0
	for filled < len(samples) {
		n, ok := l.source.Stream(samples[filled:])
		filled += n
		sinceRewind += n
		if ok && n > 0 {
			continue
		}
		if rewound && sinceRewind == 0 {
			return filled, filled > 0
		}
		if err := l.source.Seek(0); err != nil {
			return filled, filled > 0
		}
		rewound = true
		sinceRewind = 0
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}
