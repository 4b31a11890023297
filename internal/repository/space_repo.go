package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"sharedspaces/internal/db"
)

type SpaceRepository struct {
	DB *sql.DB
}

func NewSpaceRepository(database *sql.DB) *SpaceRepository {
	return &SpaceRepository{DB: database}
}

func (r *SpaceRepository) GetByID(id int) (*db.Space, error) {
	var s db.Space
	err := r.DB.QueryRow(`SELECT id, name FROM spaces WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying space %d: %w", id, err)
	}
	return &s, nil
}

func (r *SpaceRepository) ListAll() ([]db.Space, error) {
	rows, err := r.DB.Query(`SELECT id, name FROM spaces ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error querying spaces: %w", err)
	}
	defer rows.Close()

	var spaces []db.Space
	for rows.Next() {
		var s db.Space
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("error scanning space: %w", err)
		}
		spaces = append(spaces, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating spaces: %w", err)
	}
	return spaces, nil
}
