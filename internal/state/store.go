// Package state holds the per-sheet view state: one slot per configured
// sheet, replaced wholesale when a fetch completes. All mutation happens on
// the UI event loop, so no locking is needed; staleness is handled with a
// per-slot generation counter instead of aborting in-flight requests.
package state

import (
	"github.com/rs/zerolog/log"

	"sheetboard/internal/rows"
)

type Status int

const (
	Loading Status = iota
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// Slot is the full state of one sheet. Rows and Err are only meaningful for
// the matching Status.
type Slot struct {
	Status    Status
	Rows      []rows.Row
	SourceURL string
	Err       string
	Gen       int
}

// Store maps sheet names to slots.
type Store struct {
	slots map[string]*Slot
}

func NewStore(names []string) *Store {
	slots := make(map[string]*Slot, len(names))
	for _, name := range names {
		slots[name] = &Slot{Status: Loading}
	}
	return &Store{slots: slots}
}

// StartLoad marks a sheet as loading and returns the new generation. Results
// carrying an older generation are discarded when they arrive.
func (s *Store) StartLoad(name string) int {
	slot, ok := s.slots[name]
	if !ok {
		slot = &Slot{}
		s.slots[name] = slot
	}
	slot.Gen++
	slot.Status = Loading
	slot.Err = ""
	return slot.Gen
}

// ApplyResult replaces a sheet's row set wholesale. Returns false when the
// result is stale and was discarded.
func (s *Store) ApplyResult(name string, gen int, rs []rows.Row, sourceURL string) bool {
	slot, ok := s.current(name, gen)
	if !ok {
		return false
	}
	slot.Status = Ready
	slot.Rows = rs
	slot.SourceURL = sourceURL
	slot.Err = ""
	log.Debug().
		Str("sheet", name).
		Int("rows", len(rs)).
		Str("source", sourceURL).
		Msg("Sheet ready")
	return true
}

// ApplyError records a fetch failure for one sheet. Other sheets are
// unaffected. Returns false when the failure is stale and was discarded.
func (s *Store) ApplyError(name string, gen int, msg string) bool {
	slot, ok := s.current(name, gen)
	if !ok {
		return false
	}
	slot.Status = Failed
	slot.Rows = nil
	slot.SourceURL = ""
	slot.Err = msg
	log.Warn().
		Str("sheet", name).
		Str("error", msg).
		Msg("Sheet failed to load")
	return true
}

// Slot returns a copy of a sheet's state.
func (s *Store) Slot(name string) (Slot, bool) {
	slot, ok := s.slots[name]
	if !ok {
		return Slot{}, false
	}
	return *slot, true
}

func (s *Store) current(name string, gen int) (*Slot, bool) {
	slot, ok := s.slots[name]
	if !ok {
		return nil, false
	}
	if slot.Gen != gen {
		log.Debug().
			Str("sheet", name).
			Int("result_gen", gen).
			Int("current_gen", slot.Gen).
			Msg("Discarding stale sheet result")
		return nil, false
	}
	return slot, true
}
