package storage

import "fmt"

// Notes are stored as a raw string, not JSON: the pad holds freeform
// text and an empty file is a valid (empty) note.

// LoadNotes reads the notes pad. A missing key yields an empty string.
func (s *Storage) LoadNotes() (string, error) {
	if !s.kv.Has(keyNotes) {
		return "", nil
	}
	data, err := s.kv.Read(keyNotes)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", keyNotes, err)
	}
	return string(data), nil
}

// SaveNotes writes the notes pad verbatim.
func (s *Storage) SaveNotes(text string) error {
	return s.writeRaw(keyNotes, []byte(text))
}
