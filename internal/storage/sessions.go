package storage

import (
	"bytes"
	"fmt"
	"strconv"
)

// The session counter is stored as a plain decimal string so it stays
// readable and hand-editable.

// LoadSessionCount reads the number of completed focus sessions. A
// missing or unparseable value yields zero.
func (s *Storage) LoadSessionCount() (int, error) {
	if !s.kv.Has(keySessionCount) {
		return 0, nil
	}
	data, err := s.kv.Read(keySessionCount)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", keySessionCount, err)
	}

	n, err := strconv.Atoi(string(bytes.TrimSpace(data)))
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

// SaveSessionCount writes the completed focus session counter.
func (s *Storage) SaveSessionCount(n int) error {
	if n < 0 {
		n = 0
	}
	return s.writeRaw(keySessionCount, []byte(strconv.Itoa(n)))
}
