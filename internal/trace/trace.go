// Package trace reads and writes cursor recordings.
//
// A recording is a JSON array of [time, x, y, cursorType] records in
// ascending time order, with time in milliseconds:
//
//	[[0, 412, 230, "default"], [16, 415, 233, "default"], ...]
package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	humanizer "github.com/tphakala/go-cursor-humanizer"
)

// Record layout
const (
	recordArity = 4

	fieldTime       = 0
	fieldX          = 1
	fieldY          = 2
	fieldCursorType = 3
)

// Errors returned while reading recordings.
var (
	// ErrMalformedRecord indicates a record with the wrong arity or types.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnsorted indicates a timestamp smaller than its predecessor.
	ErrUnsorted = errors.New("timestamps not in ascending order")

	// ErrNegativeTime indicates a negative timestamp.
	ErrNegativeTime = errors.New("negative timestamp")
)

// Read decodes a recording from r and checks its ordering.
func Read(r io.Reader) (humanizer.Sequence, error) {
	var records []json.RawMessage
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode recording: %w", err)
	}

	seq := make(humanizer.Sequence, len(records))
	for i, raw := range records {
		s, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		seq[i] = s
	}

	if err := Check(seq); err != nil {
		return nil, err
	}

	return seq, nil
}

// decodeRecord parses one [time, x, y, cursorType] tuple.
func decodeRecord(raw json.RawMessage) (humanizer.Sample, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return humanizer.Sample{}, fmt.Errorf("%w: not an array", ErrMalformedRecord)
	}
	if len(fields) != recordArity {
		return humanizer.Sample{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformedRecord, len(fields), recordArity)
	}

	var s humanizer.Sample
	numbers := []struct {
		name string
		dst  *float64
		idx  int
	}{
		{"time", &s.Time, fieldTime},
		{"x", &s.X, fieldX},
		{"y", &s.Y, fieldY},
	}
	for _, n := range numbers {
		if err := decodeNumber(fields[n.idx], n.dst); err != nil {
			return humanizer.Sample{}, fmt.Errorf("%w: %s is not a number", ErrMalformedRecord, n.name)
		}
	}

	if err := decodeString(fields[fieldCursorType], &s.CursorType); err != nil {
		return humanizer.Sample{}, fmt.Errorf("%w: cursor type is not a string", ErrMalformedRecord)
	}

	return s, nil
}

// decodeNumber rejects null, which json.Unmarshal would silently accept.
func decodeNumber(raw json.RawMessage, dst *float64) error {
	if string(raw) == "null" {
		return ErrMalformedRecord
	}
	return json.Unmarshal(raw, dst)
}

func decodeString(raw json.RawMessage, dst *string) error {
	if string(raw) == "null" {
		return ErrMalformedRecord
	}
	return json.Unmarshal(raw, dst)
}

// Check verifies that timestamps are non-negative and non-decreasing.
func Check(seq humanizer.Sequence) error {
	for i, s := range seq {
		if s.Time < 0 {
			return fmt.Errorf("record %d: %w: %v", i, ErrNegativeTime, s.Time)
		}
		if i > 0 && s.Time < seq[i-1].Time {
			return fmt.Errorf("record %d: %w: %v after %v", i, ErrUnsorted, s.Time, seq[i-1].Time)
		}
	}
	return nil
}

// Write encodes seq as a recording, one record per line.
func Write(w io.Writer, seq humanizer.Sequence) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("["); err != nil {
		return err
	}
	for i, s := range seq {
		rec, err := json.Marshal([recordArity]any{s.Time, s.X, s.Y, s.CursorType})
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		sep := ",\n"
		if i == 0 {
			sep = "\n"
		}
		if _, err := bw.WriteString(sep); err != nil {
			return err
		}
		if _, err := bw.Write(rec); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n]\n"); err != nil {
		return err
	}

	return bw.Flush()
}

// LoadFile reads a recording from path.
func LoadFile(path string) (humanizer.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}
	defer func() { _ = f.Close() }()

	seq, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// SaveFile writes seq to path, replacing any existing file.
func SaveFile(path string, seq humanizer.Sequence) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return Write(f, seq)
}
