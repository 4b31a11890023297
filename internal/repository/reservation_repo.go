package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"sharedspaces/internal/db"
	apperrors "sharedspaces/internal/errors"
)

const uniqueViolation = "23505"

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(database *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: database}
}

// Create inserts the reservation and fills in its generated id. The
// reservations table carries a unique index on (space_id, start_datetime,
// end_datetime), so a concurrent booking of the same slot surfaces here as
// ErrAlreadyReserved instead of slipping past the pre-insert check.
func (r *ReservationRepository) Create(res *db.Reservation) error {
	query := `
		INSERT INTO reservations
		(title, space_id, start_datetime, end_datetime, reservation_datetime, reserved_by_id, responsible_person_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.DB.QueryRow(query,
		res.Title,
		res.SpaceID,
		res.StartDateTime,
		res.EndDateTime,
		res.ReservationDateTime,
		res.ReservedByID,
		res.ResponsiblePersonID,
	).Scan(&res.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.ErrAlreadyReserved
		}
		return fmt.Errorf("error inserting reservation: %w", err)
	}
	return nil
}

// GetByDetails looks up the reservation occupying the exact slot. Returns
// (nil, nil) when the slot is free.
func (r *ReservationRepository) GetByDetails(spaceID int, start, end time.Time) (*db.Reservation, error) {
	var res db.Reservation
	query := `
		SELECT id, title, space_id, start_datetime, end_datetime, reservation_datetime, reserved_by_id, responsible_person_id
		FROM reservations
		WHERE space_id = $1 AND start_datetime = $2 AND end_datetime = $3`
	err := r.DB.QueryRow(query, spaceID, start, end).Scan(
		&res.ID, &res.Title, &res.SpaceID, &res.StartDateTime, &res.EndDateTime,
		&res.ReservationDateTime, &res.ReservedByID, &res.ResponsiblePersonID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying reservation by details: %w", err)
	}
	return &res, nil
}

func (r *ReservationRepository) GetByID(id int64) (*db.Reservation, error) {
	var res db.Reservation
	query := `
		SELECT id, title, space_id, start_datetime, end_datetime, reservation_datetime, reserved_by_id, responsible_person_id
		FROM reservations
		WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&res.ID, &res.Title, &res.SpaceID, &res.StartDateTime, &res.EndDateTime,
		&res.ReservationDateTime, &res.ReservedByID, &res.ResponsiblePersonID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying reservation by id: %w", err)
	}
	return &res, nil
}

func (r *ReservationRepository) ListAll() ([]db.Reservation, error) {
	query := `
		SELECT id, title, space_id, start_datetime, end_datetime, reservation_datetime, reserved_by_id, responsible_person_id
		FROM reservations
		ORDER BY start_datetime ASC`
	return r.list(query)
}

func (r *ReservationRepository) ListByUserEmail(email string) ([]db.Reservation, error) {
	query := `
		SELECT r.id, r.title, r.space_id, r.start_datetime, r.end_datetime, r.reservation_datetime, r.reserved_by_id, r.responsible_person_id
		FROM reservations r
		JOIN users u ON u.id = r.reserved_by_id
		WHERE u.email = $1
		ORDER BY r.start_datetime ASC`
	return r.list(query, email)
}

func (r *ReservationRepository) ListByResponsibleEmail(email string) ([]db.Reservation, error) {
	query := `
		SELECT r.id, r.title, r.space_id, r.start_datetime, r.end_datetime, r.reservation_datetime, r.reserved_by_id, r.responsible_person_id
		FROM reservations r
		JOIN responsible_persons p ON p.id = r.responsible_person_id
		WHERE p.email = $1
		ORDER BY r.start_datetime ASC`
	return r.list(query, email)
}

func (r *ReservationRepository) Delete(id int64) error {
	result, err := r.DB.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting reservation %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted reservation %d: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ReservationRepository) list(query string, args ...interface{}) ([]db.Reservation, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := rows.Scan(
			&res.ID, &res.Title, &res.SpaceID, &res.StartDateTime, &res.EndDateTime,
			&res.ReservationDateTime, &res.ReservedByID, &res.ResponsiblePersonID,
		); err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservations: %w", err)
	}
	return reservations, nil
}
