// Package unit represents data amounts like "1024 kB" as read from
// kernel text interfaces, with conversions between units.
package unit

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rawbytedev/sharedstr/internal/byteparse"
)

var ErrMalformed = errors.New("malformed data size")

// DataSizeUnit is the unit a DataSize is expressed in. Conversions use a
// 1024 radix throughout.
type DataSizeUnit int

const (
	B DataSizeUnit = iota
	Kb
	Mb
	Gb
)

const radix = 1024.0

// factor returns the number of bytes in one u.
func (u DataSizeUnit) factor() float64 {
	f := 1.0
	for i := B; i < u; i++ {
		f *= radix
	}
	return f
}

func (u DataSizeUnit) suffix() string {
	switch u {
	case Kb:
		return " kB"
	case Mb:
		return " mB"
	case Gb:
		return " gB"
	default:
		return ""
	}
}

// DataSize is an amount of data tagged with the unit it was read in.
type DataSize struct {
	val  float64
	unit DataSizeUnit
}

func New(val float64, u DataSizeUnit) DataSize {
	return DataSize{val: val, unit: u}
}

// Parse reads sizes like "24576 kB" or "4.2gB". A bare number is bytes.
// Recognized suffixes are kB, mB and gB, upper or lower case second
// letter as written by the kernel or by hand.
func Parse(s string) (DataSize, error) {
	c := byteparse.NewString(s)
	c.SkipSpace()
	f, ok := c.Float()
	if !ok {
		return DataSize{}, ErrMalformed
	}
	switch strings.TrimSpace(string(c.Rest())) {
	case "":
		return DataSize{val: f, unit: B}, nil
	case "kB", "kb":
		return DataSize{val: f, unit: Kb}, nil
	case "mB", "mb":
		return DataSize{val: f, unit: Mb}, nil
	case "gB", "gb":
		return DataSize{val: f, unit: Gb}, nil
	default:
		return DataSize{}, ErrMalformed
	}
}

// Value returns the raw amount in the tagged unit.
func (d DataSize) Value() float64 { return d.val }

// Unit returns the tagged unit.
func (d DataSize) Unit() DataSizeUnit { return d.unit }

// To converts the amount into u.
func (d DataSize) To(u DataSizeUnit) float64 {
	return d.val * d.unit.factor() / u.factor()
}

// In returns the same size re-expressed in u.
func (d DataSize) In(u DataSizeUnit) DataSize {
	return DataSize{val: d.To(u), unit: u}
}

// String renders the size the way it was tagged: a bare number for
// bytes, "10 kB" style otherwise.
func (d DataSize) String() string {
	return strconv.FormatFloat(d.val, 'f', -1, 64) + d.unit.suffix()
}
