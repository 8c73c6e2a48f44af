// Package storage persists all dashboard data in a flat key/value store
// on disk. Each key (schedules, tasks, notes, habits, sessionCount) maps
// to one file in the data directory; structured values are JSON, notes
// and the session counter are plain text.
package storage

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"studydash/internal/fsutil"
)

// Store keys. One file per key in the data directory.
const (
	keySchedules    = "schedules"
	keyTasks        = "tasks"
	keyNotes        = "notes"
	keyHabits       = "habits"
	keySessionCount = "sessionCount"
)

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	maxTaskTextLen = 200
	maxSubjectLen  = 100
	maxTeacherLen  = 60
)

// Storage handles all persistence. Operations are synchronous: every
// mutation is written back before the call returns.
type Storage struct {
	dataDir string
	kv      *diskv.Diskv
	now     func() time.Time // injectable clock for deterministic tests
}

// New creates a Storage rooted at dataDir, creating the directory if
// needed.
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	kv := diskv.New(diskv.Options{
		BasePath:     dataDir,
		Transform:    func(string) []string { return []string{} },
		TempDir:      filepath.Join(dataDir, ".tmp"),
		CacheSizeMax: 1 << 20,
		PathPerm:     dataDirPerm,
		FilePerm:     dataFilePerm,
	})

	return &Storage{dataDir: dataDir, kv: kv, now: time.Now}, nil
}

// SetNowFunc overrides the clock used by time-dependent storage
// operations. Passing nil resets it to time.Now.
func (s *Storage) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the storage clock.
func (s *Storage) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// DataDir returns the path to the data directory.
func (s *Storage) DataDir() string {
	return s.dataDir
}

func (s *Storage) path(key string) string {
	return filepath.Join(s.dataDir, key)
}

func newID(prefix string) (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(b[:])), nil
}

// writeRaw stores val under key, keeping a best-effort backup of the
// previous contents alongside it.
func (s *Storage) writeRaw(key string, val []byte) error {
	fsutil.BestEffortBackup(s.path(key), dataFilePerm)
	if err := s.kv.Write(key, val); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Storage) writeJSON(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	return s.writeRaw(key, data)
}

// readJSON loads the value under key into v. A missing key seeds the
// store with v's current (default) contents. A corrupt value is
// recovered from the .bak copy when possible, otherwise reset.
func (s *Storage) readJSON(key string, v any) error {
	if !s.kv.Has(key) {
		return s.writeJSON(key, v)
	}

	data, err := s.kv.Read(key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recoverCorruptJSON(key, v, fmt.Errorf("%s is empty", key))
	}

	if err := decodeInto(v, data); err != nil {
		return s.recoverCorruptJSON(key, v, fmt.Errorf("parse %s: %w", key, err))
	}
	return nil
}

// decodeInto parses data into a fresh value of v's type and copies the
// result into v only when parsing succeeds. A failed parse leaves v
// untouched, so recovery paths still see the caller's defaults.
func decodeInto(v any, data []byte) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer")
	}
	fresh := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}

// recoverCorruptJSON salvages a broken value: restore from the .bak
// copy when it parses, otherwise preserve the broken file and reset the
// key to the defaults v already holds. Either way the caller gets a
// descriptive error while v holds usable data.
func (s *Storage) recoverCorruptJSON(key string, v any, cause error) error {
	path := s.path(key)
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, s.Now().Format("20060102-150405"))

	bakData, bakErr := os.ReadFile(path + ".bak")
	if bakErr == nil && len(bytes.TrimSpace(bakData)) > 0 {
		if err := decodeInto(v, bakData); err == nil {
			_ = os.Rename(path, corruptPath)
			_ = s.writeJSON(key, v)
			return fmt.Errorf("%s (recovered from %s.bak)", cause.Error(), key)
		}
	}

	_ = os.Rename(path, corruptPath)
	_ = s.writeJSON(key, v)
	return fmt.Errorf("%s (reset to defaults; original moved to %s)", cause.Error(), corruptPath)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeekSunday returns midnight of the Sunday on or before t.
func startOfWeekSunday(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
