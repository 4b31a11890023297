package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"sharedspaces/internal/db"
)

// ActorRepository answers identity lookups for the three actor roles. A
// numeric id may be present in both users and responsible_persons; precedence
// between the two is the resolver's business, not the repository's. All
// getters return (nil, nil) when no row matches.
type ActorRepository struct {
	DB *sql.DB
}

func NewActorRepository(database *sql.DB) *ActorRepository {
	return &ActorRepository{DB: database}
}

func (r *ActorRepository) GetUserByID(id int64) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(
		`SELECT id, first_name, last_name, email, phone FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user %d: %w", id, err)
	}
	return &u, nil
}

func (r *ActorRepository) GetUserByEmail(email string) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(
		`SELECT id, first_name, last_name, email, phone FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return &u, nil
}

func (r *ActorRepository) GetResponsibleByID(id int64) (*db.ResponsiblePerson, error) {
	var p db.ResponsiblePerson
	err := r.DB.QueryRow(
		`SELECT id, first_name, last_name, email FROM responsible_persons WHERE id = $1`, id,
	).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying responsible person %d: %w", id, err)
	}
	return &p, nil
}

func (r *ActorRepository) GetResponsibleByEmail(email string) (*db.ResponsiblePerson, error) {
	var p db.ResponsiblePerson
	err := r.DB.QueryRow(
		`SELECT id, first_name, last_name, email FROM responsible_persons WHERE email = $1`, email,
	).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying responsible person by email: %w", err)
	}
	return &p, nil
}

func (r *ActorRepository) GetAdminByEmail(email string) (*db.Admin, error) {
	var a db.Admin
	err := r.DB.QueryRow(
		`SELECT id, email, password_hash FROM admins WHERE email = $1`, email,
	).Scan(&a.ID, &a.Email, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying admin by email: %w", err)
	}
	return &a, nil
}
