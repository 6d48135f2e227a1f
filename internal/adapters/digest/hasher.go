// Package digest computes xxhash fingerprints of frames and strings.
package digest

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for block outputs and runtime envs.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the row count, then every column name followed by its values.
// Frames with equal names and bit-identical values share a fingerprint.
func (h *Hasher) Fingerprint(frame *domain.Frame) string {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(strconv.Itoa(frame.Rows()))
	_, _ = hasher.Write([]byte{0})

	var buf [8]byte
	for _, col := range frame.Columns() {
		_, _ = hasher.WriteString(col.Name)
		_, _ = hasher.Write([]byte{0}) // Separator
		for _, v := range col.Values {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = hasher.Write(buf[:])
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// HashStrings hashes parts in order, separated so that ("ab", "c") and ("a", "bc") differ.
func (h *Hasher) HashStrings(parts ...string) string {
	hasher := xxhash.New()
	for _, p := range parts {
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
