package service

import (
	"fmt"
	"log"
	"time"

	"sharedspaces/internal/db"
	"sharedspaces/internal/entities"
	apperrors "sharedspaces/internal/errors"
	"sharedspaces/internal/utils"
)

// WaitlistService files and lists waitlist claims. A claim only makes sense
// for a slot somebody else currently holds; converting a claim into a booking
// and promoting claims on cancellation live in ReservationService.
type WaitlistService struct {
	waitings     WaitingStore
	reservations ReservationStore
	actors       ActorStore
	spaces       SpaceStore
}

func NewWaitlistService(waitings WaitingStore, reservations ReservationStore,
	actors ActorStore, spaces SpaceStore) *WaitlistService {
	return &WaitlistService{
		waitings:     waitings,
		reservations: reservations,
		actors:       actors,
		spaces:       spaces,
	}
}

// JoinWaitlist files a claim for a taken slot. Claims for free slots are
// rejected; the caller should just book.
func (s *WaitlistService) JoinWaitlist(req entities.WaitingRequest) (*entities.WaitingResponse, error) {
	start, err := utils.CombineDateTime(req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidData, err)
	}
	end, err := utils.CombineDateTime(req.Date, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidData, err)
	}

	user, err := s.actors.GetUserByID(req.ReservedBy)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: unknown user %d", apperrors.ErrInvalidData, req.ReservedBy)
	}

	existing, err := s.reservations.GetByDetails(req.SpaceID, start, end)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: slot is free, book it directly", apperrors.ErrInvalidData)
	}

	filedAt := time.Now().UTC()
	if req.ReservationDateTime > 0 {
		filedAt = time.UnixMilli(req.ReservationDateTime).UTC()
	}

	waiting := &db.Waiting{
		SpaceID:             req.SpaceID,
		StartDateTime:       start,
		EndDateTime:         end,
		ReservationDateTime: filedAt,
		ReservedByID:        req.ReservedBy,
		Available:           false,
	}
	if err := s.waitings.Create(waiting); err != nil {
		return nil, err
	}

	response := s.waitingToResponse(*waiting)
	return &response, nil
}

func (s *WaitlistService) GetUserWaitlist(email string) ([]entities.WaitingResponse, error) {
	waitings, err := s.waitings.ListByUserEmail(email)
	if err != nil {
		return nil, err
	}
	responses := make([]entities.WaitingResponse, 0, len(waitings))
	for _, w := range waitings {
		responses = append(responses, s.waitingToResponse(w))
	}
	return responses, nil
}

func (s *WaitlistService) GetAllWaitlist() ([]entities.WaitingResponse, error) {
	waitings, err := s.waitings.ListAll()
	if err != nil {
		return nil, err
	}
	responses := make([]entities.WaitingResponse, 0, len(waitings))
	for _, w := range waitings {
		responses = append(responses, s.waitingToResponse(w))
	}
	return responses, nil
}

func (s *WaitlistService) waitingToResponse(w db.Waiting) entities.WaitingResponse {
	var spaceName string
	space, err := s.spaces.GetByID(w.SpaceID)
	if err != nil || space == nil {
		log.Printf("could not resolve space %d: %v", w.SpaceID, err)
	} else {
		spaceName = space.Name
	}

	return entities.WaitingResponse{
		ID:        w.ID,
		SpaceID:   w.SpaceID,
		SpaceName: spaceName,
		Date:      utils.FormatDate(w.StartDateTime),
		StartTime: utils.PackClock(w.StartDateTime),
		EndTime:   utils.PackClock(w.EndDateTime),
		Available: w.Available,
	}
}
