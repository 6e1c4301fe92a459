package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the store catalog schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStoresQuery := `
	CREATE TABLE IF NOT EXISTS stores (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		postal_code TEXT NOT NULL,
		address TEXT NOT NULL,
		number TEXT NOT NULL DEFAULT '',
		neighborhood TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		business_hours TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL DEFAULT 'LOJA',
		handling_days INTEGER NOT NULL DEFAULT 1,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION
	);
	`

	createStateIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stores_state
	ON stores (lower(state));
	`

	statements := []string{
		createStoresQuery,
		createStateIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StoreSeed struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PostalCode    string   `json:"postal_code"`
	Address       string   `json:"address"`
	Number        string   `json:"number"`
	Neighborhood  string   `json:"neighborhood"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Phone         string   `json:"phone"`
	BusinessHours string   `json:"business_hours"`
	Kind          string   `json:"kind"`
	HandlingDays  int      `json:"handling_days"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// Populate the catalog with store data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stores: read %q: %w", jsonPath, err)
	}

	var data []StoreSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stores: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("seed stores: item at index %d: id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed stores: item at index %d: name cannot be empty", i+1)
		}
		switch item.Kind {
		case "", "PDV", "LOJA":
		default:
			return fmt.Errorf("seed stores: item at index %d: invalid kind %q", i+1, item.Kind)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stores: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO stores (
		id, name, postal_code, address, number, neighborhood,
		city, state, phone, business_hours, kind, handling_days,
		latitude, longitude
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		postal_code = EXCLUDED.postal_code,
		address = EXCLUDED.address,
		number = EXCLUDED.number,
		neighborhood = EXCLUDED.neighborhood,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		phone = EXCLUDED.phone,
		business_hours = EXCLUDED.business_hours,
		kind = EXCLUDED.kind,
		handling_days = EXCLUDED.handling_days,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stores: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range data {
		kind := s.Kind
		if kind == "" {
			kind = "LOJA"
		}
		handling := s.HandlingDays
		if handling <= 0 {
			handling = 1
		}

		_, err := stmt.Exec(
			s.ID, s.Name, s.PostalCode, s.Address, s.Number, s.Neighborhood,
			s.City, s.State, s.Phone, s.BusinessHours, kind, handling,
			s.Latitude, s.Longitude,
		)
		if err != nil {
			return fmt.Errorf("seed stores: insert id=%s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stores: commit tx: %w", err)
	}

	return nil
}
