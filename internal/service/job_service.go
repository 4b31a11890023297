package service

import (
	"fmt"
	"log"
	"time"

	"sharedspaces/internal/repository"
)

type JobService struct {
	Waitings *repository.WaitingRepository
}

func NewJobService(waitings *repository.WaitingRepository) *JobService {
	return &JobService{Waitings: waitings}
}

// PurgeExpiredWaitlist drops waitlist claims whose slot end time has passed.
// A claim that was never promoted before its slot elapsed can never be
// converted, so there is no point keeping it around.
func (s *JobService) PurgeExpiredWaitlist() error {
	log.Println("Cron Job: purging expired waitlist claims...")

	purged, err := s.Waitings.DeleteExpired(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cron job: failed to purge expired waitlist claims: %w", err)
	}

	if purged == 0 {
		log.Println("Cron Job: no expired waitlist claims found.")
		return nil
	}

	log.Printf("Cron Job: purged %d expired waitlist claims.", purged)
	return nil
}
