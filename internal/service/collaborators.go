package service

import (
	"time"

	"sharedspaces/internal/db"
)

// Store interfaces consumed by the services. The repository package provides
// the Postgres implementations; tests substitute mocks.

type ReservationStore interface {
	Create(res *db.Reservation) error
	GetByDetails(spaceID int, start, end time.Time) (*db.Reservation, error)
	GetByID(id int64) (*db.Reservation, error)
	ListAll() ([]db.Reservation, error)
	ListByUserEmail(email string) ([]db.Reservation, error)
	ListByResponsibleEmail(email string) ([]db.Reservation, error)
	Delete(id int64) error
}

type WaitingStore interface {
	Create(w *db.Waiting) error
	Delete(id int64) error
	ListByDetails(spaceID int, start, end time.Time) ([]db.Waiting, error)
	ListByUserEmail(email string) ([]db.Waiting, error)
	ListAll() ([]db.Waiting, error)
	SetAvailable(id int64, available bool) error
}

type ActorStore interface {
	GetUserByID(id int64) (*db.User, error)
	GetUserByEmail(email string) (*db.User, error)
	GetResponsibleByID(id int64) (*db.ResponsiblePerson, error)
	GetResponsibleByEmail(email string) (*db.ResponsiblePerson, error)
	GetAdminByEmail(email string) (*db.Admin, error)
}

type SpaceStore interface {
	GetByID(id int) (*db.Space, error)
	ListAll() ([]db.Space, error)
}

// Notifier delivers the four notification kinds of the booking lifecycle.
// Sends happen after the corresponding mutation has committed; an error here
// surfaces as an email-delivery failure without rolling anything back.
type Notifier interface {
	ReservationCreatedToResponsible(recipientName, recipientEmail, reservedByName, spaceName string, start, end time.Time) error
	ReservationCreatedToUser(recipientName, recipientEmail, responsibleName, spaceName string, start, end time.Time) error
	SlotFreed(recipientName, recipientEmail, recipientPhone, spaceName string, start, end time.Time) error
	ReservationDeleted(recipientName, recipientEmail, cancelledByName, spaceName string, start, end time.Time) error
}
