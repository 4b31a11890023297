package service

import (
	"fmt"
	"log"
	"sort"
	"time"

	"sharedspaces/internal/db"
	"sharedspaces/internal/entities"
	apperrors "sharedspaces/internal/errors"
	"sharedspaces/internal/utils"
)

// ReservationService implements the slot-conflict and waitlist-promotion
// engine: whether a requested slot may be booked, who is acting on whose
// behalf, how a cancellation cascades into a promotion, and how stored rows
// project into caller-facing responses.
type ReservationService struct {
	reservations ReservationStore
	waitings     WaitingStore
	actors       ActorStore
	spaces       SpaceStore
	resolver     *ActorResolver
	notifier     Notifier
}

func NewReservationService(reservations ReservationStore, waitings WaitingStore,
	actors ActorStore, spaces SpaceStore, notifier Notifier) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		waitings:     waitings,
		actors:       actors,
		spaces:       spaces,
		resolver:     NewActorResolver(actors),
		notifier:     notifier,
	}
}

func (s *ReservationService) GetAllSpaces() ([]db.Space, error) {
	return s.spaces.ListAll()
}

// GetAllReservations returns every reservation, earliest start time first.
func (s *ReservationService) GetAllReservations() ([]entities.ReservationResponse, error) {
	reservations, err := s.reservations.ListAll()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].StartDateTime.Before(reservations[j].StartDateTime)
	})

	return s.project(reservations), nil
}

func (s *ReservationService) GetUserReservationList(email string) ([]entities.ReservationResponse, error) {
	reservations, err := s.reservations.ListByUserEmail(email)
	if err != nil {
		return nil, err
	}
	return s.project(reservations), nil
}

func (s *ReservationService) GetResponsibleReservationList(email string) ([]entities.ReservationResponse, error) {
	reservations, err := s.reservations.ListByResponsibleEmail(email)
	if err != nil {
		return nil, err
	}
	return s.project(reservations), nil
}

// CreateReservation validates and commits a booking. When the request carries
// a waiting id it converts that waitlist claim; the claim is consumed up
// front, so a bogus id fails the whole request before anything is booked.
// Notifications go out only after the reservation is committed; their failure
// is reported but never unwinds the booking.
func (s *ReservationService) CreateReservation(req entities.ReservationRequest) (*entities.ReservationResponse, error) {
	reservation, err := requestToReservation(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidData, err)
	}

	if req.WaitingID > 0 {
		if err := s.waitings.Delete(req.WaitingID); err != nil {
			return nil, fmt.Errorf("%w: unknown waitlist claim %d", apperrors.ErrInvalidData, req.WaitingID)
		}
	}

	user, err := s.actors.GetUserByID(reservation.ReservedByID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: unknown user %d", apperrors.ErrInvalidData, reservation.ReservedByID)
	}

	responsible, err := s.actors.GetResponsibleByID(reservation.ResponsiblePersonID)
	if err != nil {
		return nil, err
	}
	if responsible == nil {
		return nil, fmt.Errorf("%w: unknown responsible person %d", apperrors.ErrInvalidData, reservation.ResponsiblePersonID)
	}

	existing, err := s.reservations.GetByDetails(reservation.SpaceID, reservation.StartDateTime, reservation.EndDateTime)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyReserved
	}
	// The unique index on (space_id, start_datetime, end_datetime) backs this
	// up: a concurrent insert between the check and here comes back as
	// ErrAlreadyReserved from the store.
	if err := s.reservations.Create(reservation); err != nil {
		return nil, err
	}

	spaceName := s.spaceName(reservation.SpaceID)

	// The acting actor may itself be a responsible person sharing the user id
	// space; that changes the displayed name and the argument pairing of the
	// two notifications, but exactly two are sent either way.
	reuser, err := s.actors.GetResponsibleByID(reservation.ReservedByID)
	if err != nil {
		return nil, err
	}

	var response *entities.ReservationResponse
	if reuser != nil {
		response = s.reservationToResponse(reservation, reuser.FullName(), responsible.FullName(), spaceName)
		if err := s.notifier.ReservationCreatedToResponsible(responsible.FullName(), responsible.Email,
			reuser.FullName(), spaceName, reservation.StartDateTime, reservation.EndDateTime); err != nil {
			return response, fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
		}
		if err := s.notifier.ReservationCreatedToUser(reuser.FullName(), reuser.Email,
			responsible.FullName(), spaceName, reservation.StartDateTime, reservation.EndDateTime); err != nil {
			return response, fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
		}
	} else {
		response = s.reservationToResponse(reservation, user.FullName(), responsible.FullName(), spaceName)
		if err := s.notifier.ReservationCreatedToResponsible(responsible.FullName(), responsible.Email,
			user.FullName(), spaceName, reservation.StartDateTime, reservation.EndDateTime); err != nil {
			return response, fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
		}
		if err := s.notifier.ReservationCreatedToUser(user.FullName(), user.Email,
			responsible.FullName(), spaceName, reservation.StartDateTime, reservation.EndDateTime); err != nil {
			return response, fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
		}
	}

	return response, nil
}

// DeleteReservationBySlot cancels the reservation occupying the exact slot.
func (s *ReservationService) DeleteReservationBySlot(slot entities.Slot, email string) (string, error) {
	reservation, err := s.reservations.GetByDetails(slot.SpaceID, slot.StartDateTime, slot.EndDateTime)
	if err != nil {
		return "", err
	}
	if reservation == nil {
		return "", fmt.Errorf("%w: no reservation for that slot", apperrors.ErrNotFound)
	}
	return s.cancel(reservation, email)
}

// DeleteReservationByID cancels a reservation addressed directly by id.
func (s *ReservationService) DeleteReservationByID(id int64, email string) (string, error) {
	reservation, err := s.reservations.GetByID(id)
	if err != nil {
		return "", err
	}
	if reservation == nil {
		return "", fmt.Errorf("%w: no reservation %d", apperrors.ErrNotFound, id)
	}
	return s.cancel(reservation, email)
}

// cancel authorizes and performs the deletion, then cascades: promote the
// earliest waitlist claim for the freed slot (unless an admin cancelled), and
// tell the original booker who cancelled on them. Both input shapes share
// this path; only the lookup key differs.
func (s *ReservationService) cancel(reservation *db.Reservation, email string) (string, error) {
	admin, err := s.actors.GetAdminByEmail(email)
	if err != nil {
		return "", err
	}
	isAdmin := admin != nil

	authorized, err := s.isAuthorized(reservation, email, isAdmin)
	if err != nil {
		return "", err
	}
	if !authorized {
		return "", fmt.Errorf("%w: %s may not cancel this reservation", apperrors.ErrNotAuthorized, email)
	}

	if err := s.reservations.Delete(reservation.ID); err != nil {
		return "", err
	}

	spaceName := s.spaceName(reservation.SpaceID)

	if !isAdmin {
		if err := s.promoteWaitlist(reservation, spaceName); err != nil {
			return "", err
		}
	}

	reservedParty, err := s.resolver.ResolveByID(reservation.ReservedByID)
	if err != nil {
		return "", err
	}
	canceller, err := s.resolver.ResolveCancellerByEmail(email)
	if err != nil {
		return "", err
	}

	if reservedParty != nil && canceller != nil {
		if err := s.notifier.ReservationDeleted(reservedParty.FullName, reservedParty.Email,
			canceller.FullName, spaceName, reservation.StartDateTime, reservation.EndDateTime); err != nil {
			return "", fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
		}
	}

	return "Deleted", nil
}

// isAuthorized admits the reserving party, the responsible person of record,
// and registered admins. Both ids are resolved with the usual
// responsible-over-user precedence since they share the identity space.
func (s *ReservationService) isAuthorized(reservation *db.Reservation, email string, isAdmin bool) (bool, error) {
	if isAdmin {
		return true, nil
	}

	reservedParty, err := s.resolver.ResolveByID(reservation.ReservedByID)
	if err != nil {
		return false, err
	}
	if reservedParty != nil && reservedParty.Email == email {
		return true, nil
	}

	responsible, err := s.resolver.ResolveByID(reservation.ResponsiblePersonID)
	if err != nil {
		return false, err
	}
	if responsible != nil && responsible.Email == email {
		return true, nil
	}

	return false, nil
}

// promoteWaitlist offers the freed slot to the earliest-filed claim. The slot
// is re-checked against the ledger first: another actor may have booked it
// between the deletion and now, in which case nobody is promoted. Promotion
// only flips the available flag; the claimant still has to book.
func (s *ReservationService) promoteWaitlist(reservation *db.Reservation, spaceName string) error {
	waitings, err := s.waitings.ListByDetails(reservation.SpaceID, reservation.StartDateTime, reservation.EndDateTime)
	if err != nil {
		return err
	}
	if len(waitings) == 0 {
		return nil
	}

	sort.SliceStable(waitings, func(i, j int) bool {
		return waitings[i].ReservationDateTime.Before(waitings[j].ReservationDateTime)
	})
	waiting := waitings[0]

	claimant, err := s.actors.GetUserByID(waiting.ReservedByID)
	if err != nil {
		return err
	}

	taken, err := s.reservations.GetByDetails(waiting.SpaceID, waiting.StartDateTime, waiting.EndDateTime)
	if err != nil {
		return err
	}
	if taken != nil {
		return nil
	}

	if err := s.waitings.SetAvailable(waiting.ID, true); err != nil {
		return err
	}

	if claimant != nil {
		if err := s.notifier.SlotFreed(claimant.FullName(), claimant.Email, claimant.Phone,
			spaceName, waiting.StartDateTime, waiting.EndDateTime); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
		}
	}
	return nil
}

// project maps stored reservations to responses, resolving display names
// itself. Rows that no longer resolve (a deleted actor, say) are logged and
// skipped rather than failing the whole listing.
func (s *ReservationService) project(reservations []db.Reservation) []entities.ReservationResponse {
	responses := make([]entities.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		response, err := s.projectReservation(reservation)
		if err != nil {
			log.Printf("skipping reservation %d in listing: %v", reservation.ID, err)
			continue
		}
		responses = append(responses, *response)
	}
	return responses
}

func (s *ReservationService) projectReservation(reservation db.Reservation) (*entities.ReservationResponse, error) {
	reservedParty, err := s.resolver.ResolveByID(reservation.ReservedByID)
	if err != nil {
		return nil, err
	}
	if reservedParty == nil {
		return nil, fmt.Errorf("reserved-by id %d resolves to nobody", reservation.ReservedByID)
	}

	responsible, err := s.actors.GetResponsibleByID(reservation.ResponsiblePersonID)
	if err != nil {
		return nil, err
	}
	if responsible == nil {
		return nil, fmt.Errorf("responsible person id %d resolves to nobody", reservation.ResponsiblePersonID)
	}

	return s.reservationToResponse(&reservation, reservedParty.FullName, responsible.FullName(), s.spaceName(reservation.SpaceID)), nil
}

// reservationToResponse is the projector entry point with pre-resolved names,
// used right after creation where the actors are already in hand.
func (s *ReservationService) reservationToResponse(reservation *db.Reservation, reservedByName, responsibleName, spaceName string) *entities.ReservationResponse {
	return &entities.ReservationResponse{
		ID:                  reservation.ID,
		SpaceID:             reservation.SpaceID,
		SpaceName:           spaceName,
		Title:               reservation.Title,
		Date:                utils.FormatDate(reservation.StartDateTime),
		StartTime:           utils.PackClock(reservation.StartDateTime),
		EndTime:             utils.PackClock(reservation.EndDateTime),
		ReservedBy:          reservedByName,
		ResponsiblePerson:   responsibleName,
		ResponsiblePersonID: reservation.ResponsiblePersonID,
	}
}

func (s *ReservationService) spaceName(spaceID int) string {
	space, err := s.spaces.GetByID(spaceID)
	if err != nil || space == nil {
		log.Printf("could not resolve space %d: %v", spaceID, err)
		return ""
	}
	return space.Name
}

func requestToReservation(req entities.ReservationRequest) (*db.Reservation, error) {
	start, err := utils.CombineDateTime(req.Date, req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.CombineDateTime(req.Date, req.EndTime)
	if err != nil {
		return nil, err
	}

	requestedAt := time.Now().UTC()
	if req.ReservationDateTime > 0 {
		requestedAt = time.UnixMilli(req.ReservationDateTime).UTC()
	}

	return &db.Reservation{
		Title:               req.Title,
		SpaceID:             req.SpaceID,
		StartDateTime:       start,
		EndDateTime:         end,
		ReservationDateTime: requestedAt,
		ReservedByID:        req.ReservedBy,
		ResponsiblePersonID: req.ResponsiblePerson,
	}, nil
}
