// SPDX-License-Identifier: MIT

package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/logger"
)

const (
	kindInt    = "int"
	kindFloats = "floats"
)

// entry is one named value in the encoded stream.
type entry struct {
	Name   string    `json:"name"`
	Kind   string    `json:"kind"`
	Int    int       `json:"int,omitempty"`
	Floats []float64 `json:"floats,omitempty"`
}

// Memory is an in-memory Archiver and Unarchiver. Entries keep their write
// order; writing an existing name replaces its value in place.
// Memory is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	index   map[string]int
	entries []entry
}

var (
	_ Archiver   = (*Memory)(nil)
	_ Unarchiver = (*Memory)(nil)
)

// NewMemory returns an empty archive.
func NewMemory() *Memory {
	return &Memory{index: make(map[string]int)}
}

func memoryErrorf(method, name string, err error) error {
	return fmt.Errorf("Memory.%s(%q): %w", method, name, err)
}

func (m *Memory) put(e entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.index[e.Name]; ok {
		m.entries[i] = e
		return
	}
	m.index[e.Name] = len(m.entries)
	m.entries = append(m.entries, e)
}

func (m *Memory) get(method, name, kind string) (entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[name]
	if !ok {
		return entry{}, memoryErrorf(method, name, errs.New(errs.BadFormat, "no entry"))
	}
	e := m.entries[i]
	if e.Kind != kind {
		return entry{}, memoryErrorf(method, name, errs.New(errs.IllegalValue, "entry holds %s, not %s", e.Kind, kind))
	}

	return e, nil
}

// WriteInt stores value under name.
func (m *Memory) WriteInt(name string, value int) error {
	m.put(entry{Name: name, Kind: kindInt, Int: value})
	return nil
}

// WriteFloats stores a copy of values under name.
func (m *Memory) WriteFloats(name string, values []float64) error {
	cp := make([]float64, len(values))
	copy(cp, values)
	m.put(entry{Name: name, Kind: kindFloats, Floats: cp})

	return nil
}

// ReadInt loads the int stored under name.
func (m *Memory) ReadInt(name string) (int, error) {
	e, err := m.get("ReadInt", name, kindInt)
	if err != nil {
		return 0, err
	}

	return e.Int, nil
}

// ReadFloats loads a copy of the array stored under name.
func (m *Memory) ReadFloats(name string) ([]float64, error) {
	e, err := m.get("ReadFloats", name, kindFloats)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(e.Floats))
	copy(out, e.Floats)

	return out, nil
}

// Names lists the stored names in write order.
func (m *Memory) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}

	return names
}

// Encode writes the archive as a JSON array of entries, optionally zstd-compressed.
// Non-finite floats cannot be represented and fail with errs.IllegalValue.
func (m *Memory) Encode(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)

	m.mu.RLock()
	raw, err := json.Marshal(m.entries)
	n := len(m.entries)
	m.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("Memory.Encode: %w", errs.New(errs.IllegalValue, "%v", err))
	}
	if o.compress {
		if raw, err = CompressLevel(raw, o.level); err != nil {
			return fmt.Errorf("Memory.Encode: %w", err)
		}
	}
	if _, err = w.Write(raw); err != nil {
		return fmt.Errorf("Memory.Encode: %w", err)
	}
	logger.Sugar().Debugw("archive encoded", "entries", n, "bytes", len(raw), "compressed", o.compress)

	return nil
}

// Decode reads a stream produced by Encode with the same options.
func Decode(r io.Reader, opts ...Option) (*Memory, error) {
	o := gatherOptions(opts...)

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("archive.Decode: %w", err)
	}
	if o.compress {
		if raw, err = Decompress(raw); err != nil {
			return nil, fmt.Errorf("archive.Decode: %w", err)
		}
	}
	var entries []entry
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err = dec.Decode(&entries); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("archive.Decode: %w", errs.New(errs.AbruptEnd, "%v", err))
		}
		return nil, fmt.Errorf("archive.Decode: %w", errs.New(errs.BadFormat, "%v", err))
	}

	m := NewMemory()
	for _, e := range entries {
		if e.Kind != kindInt && e.Kind != kindFloats {
			return nil, fmt.Errorf("archive.Decode: %w", errs.New(errs.IllegalValue, "entry %q has kind %q", e.Name, e.Kind))
		}
		m.put(e)
	}
	logger.Sugar().Debugw("archive decoded", "entries", len(entries), "compressed", o.compress)

	return m, nil
}
