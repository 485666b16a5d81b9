// Package replay records play sessions as a seed, a config snapshot and a
// per-tick input log, and plays them back headless. Because the simulation
// is deterministic for a seed and an input sequence, playback reproduces
// the session exactly.
package replay

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/boat-runner/internal/config"
	"github.com/vovakirdan/boat-runner/internal/core"
	"github.com/vovakirdan/boat-runner/internal/storage"
)

// Recording is a complete session ready for playback.
type Recording struct {
	Seed       int64
	Difficulty config.DifficultyPreset
	ConfigYAML []byte
	Inputs     []uint8 // one input mask per tick
}

// Recorder collects the input of every simulated tick.
// It is safe for concurrent use so an SSH session can save while playing.
type Recorder struct {
	mu     sync.Mutex
	seed   int64
	preset config.DifficultyPreset
	cfg    []byte
	inputs []uint8
}

// NewRecorder snapshots the effective config. cfg must already have the
// preset applied; preset is kept for display only.
func NewRecorder(seed int64, preset config.DifficultyPreset, cfg config.BoatRunnerConfig) (*Recorder, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &Recorder{seed: seed, preset: preset, cfg: data}, nil
}

// Record appends one tick's input.
func (r *Recorder) Record(in core.InputFrame) {
	r.mu.Lock()
	r.inputs = append(r.inputs, in.Mask())
	r.mu.Unlock()
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inputs)
}

// Recording returns a copy of everything recorded so far.
func (r *Recorder) Recording() Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Recording{
		Seed:       r.seed,
		Difficulty: r.preset,
		ConfigYAML: append([]byte(nil), r.cfg...),
		Inputs:     append([]uint8(nil), r.inputs...),
	}
}

// ToStorage converts a recording and its playback summary to a stored row.
func ToStorage(rec Recording, sum Summary, player string) storage.Replay {
	return storage.Replay{
		Player:       player,
		Seed:         rec.Seed,
		Difficulty:   string(rec.Difficulty),
		ConfigYAML:   string(rec.ConfigYAML),
		Inputs:       EncodeInputs(rec.Inputs),
		Ticks:        sum.Ticks,
		Runs:         sum.Runs,
		Crashes:      sum.Crashes,
		BestDistance: sum.BestDistance,
	}
}

// FromStorage decodes a stored row back into a recording.
func FromStorage(r storage.Replay) (Recording, error) {
	inputs, err := DecodeInputs(r.Inputs)
	if err != nil {
		return Recording{}, fmt.Errorf("replay %d: %w", r.ID, err)
	}
	return Recording{
		Seed:       r.Seed,
		Difficulty: config.DifficultyPreset(r.Difficulty),
		ConfigYAML: []byte(r.ConfigYAML),
		Inputs:     inputs,
	}, nil
}

// Save plays the recording back to compute its summary and stores it.
// Empty recordings are not stored and return ID 0.
func Save(store *storage.Store, rec Recording, player string) (int64, Summary, error) {
	if len(rec.Inputs) == 0 {
		return 0, Summary{}, nil
	}
	sum, err := Play(rec)
	if err != nil {
		return 0, Summary{}, err
	}
	id, err := store.SaveReplay(ToStorage(rec, sum, player))
	if err != nil {
		return 0, sum, err
	}
	return id, sum, nil
}
