package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/koffee/internal/models"
)

func (s *Store) GetProfile() (models.Profile, error) {
	if s.db == nil {
		return models.Profile{}, fmt.Errorf("database not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Profile{}, err
	}
	defer rows.Close()

	data := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Profile{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Profile{}, err
	}

	if len(data) == 0 {
		return models.Profile{}, fmt.Errorf("profile not found")
	}

	return models.MapToProfile(data)
}

func (s *Store) SaveProfile(profile models.Profile) error {
	if s.db == nil {
		return fmt.Errorf("database not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value, updated_at) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for key, value := range models.ProfileToMap(profile) {
		if _, err := stmt.Exec(key, value, now); err != nil {
			return fmt.Errorf("saving %s: %w", key, err)
		}
	}

	return tx.Commit()
}
