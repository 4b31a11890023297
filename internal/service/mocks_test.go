package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"sharedspaces/internal/db"
)

/* ==================== MOCKS ==================== */

/* -------- ReservationStore -------- */

type MockReservationStore struct {
	mock.Mock
}

func (m *MockReservationStore) Create(res *db.Reservation) error {
	args := m.Called(res)
	return args.Error(0)
}

func (m *MockReservationStore) GetByDetails(spaceID int, start, end time.Time) (*db.Reservation, error) {
	args := m.Called(spaceID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Reservation), args.Error(1)
}

func (m *MockReservationStore) GetByID(id int64) (*db.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Reservation), args.Error(1)
}

func (m *MockReservationStore) ListAll() ([]db.Reservation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Reservation), args.Error(1)
}

func (m *MockReservationStore) ListByUserEmail(email string) ([]db.Reservation, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Reservation), args.Error(1)
}

func (m *MockReservationStore) ListByResponsibleEmail(email string) ([]db.Reservation, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Reservation), args.Error(1)
}

func (m *MockReservationStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

/* -------- WaitingStore -------- */

type MockWaitingStore struct {
	mock.Mock
}

func (m *MockWaitingStore) Create(w *db.Waiting) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockWaitingStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWaitingStore) ListByDetails(spaceID int, start, end time.Time) ([]db.Waiting, error) {
	args := m.Called(spaceID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Waiting), args.Error(1)
}

func (m *MockWaitingStore) ListByUserEmail(email string) ([]db.Waiting, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Waiting), args.Error(1)
}

func (m *MockWaitingStore) ListAll() ([]db.Waiting, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Waiting), args.Error(1)
}

func (m *MockWaitingStore) SetAvailable(id int64, available bool) error {
	args := m.Called(id, available)
	return args.Error(0)
}

/* -------- ActorStore -------- */

type MockActorStore struct {
	mock.Mock
}

func (m *MockActorStore) GetUserByID(id int64) (*db.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.User), args.Error(1)
}

func (m *MockActorStore) GetUserByEmail(email string) (*db.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.User), args.Error(1)
}

func (m *MockActorStore) GetResponsibleByID(id int64) (*db.ResponsiblePerson, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.ResponsiblePerson), args.Error(1)
}

func (m *MockActorStore) GetResponsibleByEmail(email string) (*db.ResponsiblePerson, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.ResponsiblePerson), args.Error(1)
}

func (m *MockActorStore) GetAdminByEmail(email string) (*db.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Admin), args.Error(1)
}

/* -------- SpaceStore -------- */

type MockSpaceStore struct {
	mock.Mock
}

func (m *MockSpaceStore) GetByID(id int) (*db.Space, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Space), args.Error(1)
}

func (m *MockSpaceStore) ListAll() ([]db.Space, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Space), args.Error(1)
}

/* -------- Notifier -------- */

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ReservationCreatedToResponsible(recipientName, recipientEmail, reservedByName, spaceName string, start, end time.Time) error {
	args := m.Called(recipientName, recipientEmail, reservedByName, spaceName, start, end)
	return args.Error(0)
}

func (m *MockNotifier) ReservationCreatedToUser(recipientName, recipientEmail, responsibleName, spaceName string, start, end time.Time) error {
	args := m.Called(recipientName, recipientEmail, responsibleName, spaceName, start, end)
	return args.Error(0)
}

func (m *MockNotifier) SlotFreed(recipientName, recipientEmail, recipientPhone, spaceName string, start, end time.Time) error {
	args := m.Called(recipientName, recipientEmail, recipientPhone, spaceName, start, end)
	return args.Error(0)
}

func (m *MockNotifier) ReservationDeleted(recipientName, recipientEmail, cancelledByName, spaceName string, start, end time.Time) error {
	args := m.Called(recipientName, recipientEmail, cancelledByName, spaceName, start, end)
	return args.Error(0)
}
