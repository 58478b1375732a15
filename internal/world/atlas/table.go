package atlas

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Sprite table layout: a run of fixed-size records, each a NUL-padded name
// followed by four little-endian float32 pixel coordinates.
const (
	NameLen    = 20
	RecordSize = NameLen + 4*4
)

var (
	// ErrTruncatedTable means the table does not end on a record boundary.
	ErrTruncatedTable = errors.New("sprite table truncated")
	// ErrEmptyTable means the table holds no records, so there is no reference sprite.
	ErrEmptyTable = errors.New("sprite table is empty")
)

// Record is one raw table entry. Coordinates are atlas pixels with y growing
// downward, as in the source image.
type Record struct {
	Name                     string
	Left, Top, Right, Bottom float32
}

// DecodeTable reads every record from r.
func DecodeTable(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite table: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyTable
	}
	if len(data)%RecordSize != 0 {
		return nil, fmt.Errorf("%d bytes is not a multiple of %d: %w", len(data), RecordSize, ErrTruncatedTable)
	}

	records := make([]Record, 0, len(data)/RecordSize)
	for off := 0; off < len(data); off += RecordSize {
		rec := data[off : off+RecordSize]
		name := rec[:NameLen]
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		f := func(i int) float32 {
			return math.Float32frombits(binary.LittleEndian.Uint32(rec[NameLen+4*i:]))
		}
		records = append(records, Record{
			Name:   string(name),
			Left:   f(0),
			Top:    f(1),
			Right:  f(2),
			Bottom: f(3),
		})
	}
	return records, nil
}

// EncodeTable writes records in table layout.
func EncodeTable(w io.Writer, records []Record) error {
	buf := make([]byte, RecordSize)
	for _, r := range records {
		if len(r.Name) == 0 || len(r.Name) > NameLen {
			return fmt.Errorf("sprite name %q must be 1-%d bytes", r.Name, NameLen)
		}
		clear(buf)
		copy(buf, r.Name)
		for i, v := range []float32{r.Left, r.Top, r.Right, r.Bottom} {
			binary.LittleEndian.PutUint32(buf[NameLen+4*i:], math.Float32bits(v))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("failed to write sprite %s: %w", r.Name, err)
		}
	}
	return nil
}
