// Package snapshot implements a pure, versioned (de)serialization pair for
// a RoundState plus the UnseenTracker observing it, so a host can persist
// an in-progress decision and later resume it exactly. The wire format is
// an opaque JSON envelope; this package does not read or write a file or
// socket itself — that transport is a host responsibility.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/0x4D44/mdhearts-sub002/rules"
	"github.com/0x4D44/mdhearts-sub002/tracker"
)

// currentVersion is bumped whenever Record's shape changes incompatibly.
const currentVersion = 1

// Record is the versioned envelope written to and read from the wire
// format: a RoundState and the full internal state of the tracker
// observing it from one seat.
type Record struct {
	Version int          `json:"version"`
	Round   rules.RoundState `json:"round"`
	Tracker tracker.State    `json:"tracker"`
}

// Marshal serializes round and the tracker observing it into a versioned
// JSON envelope.
func Marshal(round rules.RoundState, observer *tracker.UnseenTracker) ([]byte, error) {
	rec := Record{
		Version: currentVersion,
		Round:   round,
		Tracker: observer.State(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a versioned JSON envelope produced by Marshal back into
// a RoundState and a restored UnseenTracker. It rejects any version other
// than the one this build writes, rather than guessing at a migration.
func Unmarshal(data []byte) (rules.RoundState, *tracker.UnseenTracker, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return rules.RoundState{}, nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if rec.Version != currentVersion {
		return rules.RoundState{}, nil, fmt.Errorf("snapshot: unsupported version %d (want %d)", rec.Version, currentVersion)
	}
	return rec.Round, tracker.FromState(rec.Tracker), nil
}
