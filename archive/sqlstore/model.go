// SPDX-License-Identifier: MIT

package sqlstore

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/katalvlaran/linalg/archive"
)

const (
	kindInt    = "int"
	kindFloats = "floats"
)

// Entry is one named archive value. Exactly one of Int and Floats is
// meaningful, as selected by Kind.
type Entry struct {
	ID        uint64 `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Kind      string `gorm:"not null"`
	Int       int64  `gorm:"not null;default:0"`
	Floats    FloatsField
	UpdatedAt time.Time `gorm:"autoUpdateTime;index;not null"`
}

func (m *Entry) BeforeCreate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *Entry) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// FloatsField stores a float64 array as zstd-compressed little-endian IEEE
// bits, so values round trip exactly (NaN payloads and signed zeros included).
type FloatsField []float64

// GormDataType stores the field as a binary column.
func (FloatsField) GormDataType() string { return string(schema.Bytes) }

// Scan scan value into FloatsField, implements sql.Scanner interface
func (f *FloatsField) Scan(value any) error {
	if value == nil {
		*f = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal FloatsField value: %T", value)
	}
	raw, err := archive.Decompress(bytes)
	if err != nil {
		return fmt.Errorf("failed to decompress FloatsField value: %w", err)
	}
	if len(raw)%8 != 0 {
		return fmt.Errorf("FloatsField payload of %d bytes is not a float64 array", len(raw))
	}
	out := make([]float64, len(raw)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}
	*f = out
	return nil
}

// Value return FloatsField value, implement driver.Valuer interface
func (f FloatsField) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	raw := make([]byte, 8*len(f))
	for i, x := range f {
		binary.LittleEndian.PutUint64(raw[8*i:], math.Float64bits(x))
	}
	return archive.Compress(raw), nil
}
