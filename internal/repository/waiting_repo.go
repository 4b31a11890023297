package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"sharedspaces/internal/db"
	apperrors "sharedspaces/internal/errors"
)

type WaitingRepository struct {
	DB *sql.DB
}

func NewWaitingRepository(database *sql.DB) *WaitingRepository {
	return &WaitingRepository{DB: database}
}

func (r *WaitingRepository) Create(w *db.Waiting) error {
	query := `
		INSERT INTO waitings
		(space_id, start_datetime, end_datetime, reservation_datetime, reserved_by_id, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.DB.QueryRow(query,
		w.SpaceID, w.StartDateTime, w.EndDateTime, w.ReservationDateTime, w.ReservedByID, w.Available,
	).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("error inserting waiting entry: %w", err)
	}
	return nil
}

// Delete removes a waitlist entry, typically because its claimant converted it
// into a reservation. Deleting an unknown id is an error the caller treats as
// an invalid claim.
func (r *WaitingRepository) Delete(id int64) error {
	result, err := r.DB.Exec(`DELETE FROM waitings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting waiting entry %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted waiting entry %d: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListByDetails returns every waitlist claim filed for the exact slot, in no
// particular order; the service sorts by filing time before promoting.
func (r *WaitingRepository) ListByDetails(spaceID int, start, end time.Time) ([]db.Waiting, error) {
	query := `
		SELECT id, space_id, start_datetime, end_datetime, reservation_datetime, reserved_by_id, available
		FROM waitings
		WHERE space_id = $1 AND start_datetime = $2 AND end_datetime = $3`
	return r.list(query, spaceID, start, end)
}

func (r *WaitingRepository) ListByUserEmail(email string) ([]db.Waiting, error) {
	query := `
		SELECT w.id, w.space_id, w.start_datetime, w.end_datetime, w.reservation_datetime, w.reserved_by_id, w.available
		FROM waitings w
		JOIN users u ON u.id = w.reserved_by_id
		WHERE u.email = $1
		ORDER BY w.start_datetime ASC`
	return r.list(query, email)
}

func (r *WaitingRepository) ListAll() ([]db.Waiting, error) {
	query := `
		SELECT id, space_id, start_datetime, end_datetime, reservation_datetime, reserved_by_id, available
		FROM waitings
		ORDER BY start_datetime ASC`
	return r.list(query)
}

// SetAvailable flips the promotion flag; the claimant still has to convert the
// entry into a reservation themselves.
func (r *WaitingRepository) SetAvailable(id int64, available bool) error {
	result, err := r.DB.Exec(`UPDATE waitings SET available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return fmt.Errorf("error updating waiting entry %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated waiting entry %d: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpired drops claims whose slot end time has already passed.
func (r *WaitingRepository) DeleteExpired(before time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM waitings WHERE end_datetime < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("error purging expired waiting entries: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
		return 0, nil
	}
	return affected, nil
}

func (r *WaitingRepository) list(query string, args ...interface{}) ([]db.Waiting, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying waiting entries: %w", err)
	}
	defer rows.Close()

	var waitings []db.Waiting
	for rows.Next() {
		var w db.Waiting
		if err := rows.Scan(
			&w.ID, &w.SpaceID, &w.StartDateTime, &w.EndDateTime,
			&w.ReservationDateTime, &w.ReservedByID, &w.Available,
		); err != nil {
			return nil, fmt.Errorf("error scanning waiting entry: %w", err)
		}
		waitings = append(waitings, w)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating waiting entries: %w", err)
	}
	return waitings, nil
}
