// Package snapshot loads and validates the budget snapshot document
// exported by the host application.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spendable-dev/spendable/internal/model"
)

// Read decodes a snapshot document from r. Amounts are accepted as JSON
// numbers or as quoted strings; unknown fields are ignored so newer host
// exports keep loading.
func Read(r io.Reader) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snap, nil
}

// Load reads a snapshot document from disk.
func Load(path string) (model.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	snap, err := Read(f)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Write encodes a snapshot document to w, indented for hand editing.
func Write(w io.Writer, snap model.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}
