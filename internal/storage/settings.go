package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Setting returns the stored value for key. ok is false when the key is unset.
func (s *Store) Setting(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// BestScore returns the best score stored under key, 0 when unset or unparsable.
func (s *Store) BestScore(key string) (int, error) {
	v, ok, err := s.Setting(key)
	if err != nil || !ok {
		return 0, err
	}
	best, err := strconv.Atoi(v)
	if err != nil {
		return 0, nil
	}
	return best, nil
}

// SetBestScore raises the best score stored under key. Lower scores are ignored,
// so concurrent sessions can report their bests without coordinating.
func (s *Store) SetBestScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		 WHERE CAST(settings.value AS INTEGER) < CAST(excluded.value AS INTEGER)`,
		key, strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write best score %q: %w", key, err)
	}
	return nil
}
