package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sharedspaces/internal/db"
	"sharedspaces/internal/entities"
	apperrors "sharedspaces/internal/errors"
)

func waitlistFixture() (*WaitlistService, *MockWaitingStore, *MockReservationStore, *MockActorStore, *MockSpaceStore) {
	waitings := new(MockWaitingStore)
	reservations := new(MockReservationStore)
	actors := new(MockActorStore)
	spaces := new(MockSpaceStore)
	svc := NewWaitlistService(waitings, reservations, actors, spaces)
	return svc, waitings, reservations, actors, spaces
}

func TestJoinWaitlistForTakenSlot(t *testing.T) {
	svc, waitings, reservations, actors, spaces := waitlistFixture()
	actors.On("GetUserByID", int64(30)).Return(userU3, nil)
	reservations.On("GetByDetails", 1, slotStart, slotEnd).Return(storedReservation(), nil)
	waitings.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(*db.Waiting).ID = 31
	}).Return(nil)
	spaces.On("GetByID", 1).Return(blueRoom, nil)

	response, err := svc.JoinWaitlist(entities.WaitingRequest{
		Date:                "2024-01-01",
		StartTime:           930,
		EndTime:             1030,
		SpaceID:             1,
		ReservedBy:          30,
		ReservationDateTime: time.Date(2023, 12, 1, 0, 0, 5, 0, time.UTC).UnixMilli(),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(31), response.ID)
	assert.Equal(t, "Blue Room", response.SpaceName)
	assert.False(t, response.Available)
	waitings.AssertCalled(t, "Create", mock.MatchedBy(func(w *db.Waiting) bool {
		return w.ReservedByID == 30 && w.StartDateTime.Equal(slotStart) && !w.Available
	}))
}

func TestJoinWaitlistRejectsFreeSlot(t *testing.T) {
	svc, waitings, reservations, actors, _ := waitlistFixture()
	actors.On("GetUserByID", int64(30)).Return(userU3, nil)
	reservations.On("GetByDetails", 1, slotStart, slotEnd).Return(nil, nil)

	_, err := svc.JoinWaitlist(entities.WaitingRequest{
		Date:       "2024-01-01",
		StartTime:  930,
		EndTime:    1030,
		SpaceID:    1,
		ReservedBy: 30,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidData)
	waitings.AssertNotCalled(t, "Create", mock.Anything)
}

func TestJoinWaitlistUnknownUser(t *testing.T) {
	svc, waitings, _, actors, _ := waitlistFixture()
	actors.On("GetUserByID", int64(99)).Return(nil, nil)

	_, err := svc.JoinWaitlist(entities.WaitingRequest{
		Date:       "2024-01-01",
		StartTime:  930,
		EndTime:    1030,
		SpaceID:    1,
		ReservedBy: 99,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidData)
	waitings.AssertNotCalled(t, "Create", mock.Anything)
}
