package service

import (
	"fmt"
	"log"
	"time"
)

const emailTimeLayout = "02 Jan 2006 15:04"

// EmailNotifier is the production Notifier: plain-text emails through
// SendGrid, plus a best-effort SMS through Twilio when a waitlisted slot
// frees up. Email errors propagate to the caller; SMS failures are only
// logged, the email result stays authoritative.
type EmailNotifier struct{}

func NewEmailNotifier() *EmailNotifier {
	return &EmailNotifier{}
}

func (n *EmailNotifier) ReservationCreatedToResponsible(recipientName, recipientEmail, reservedByName, spaceName string, start, end time.Time) error {
	subject := fmt.Sprintf("New reservation for %s", spaceName)
	body := fmt.Sprintf(
		"Hello %s,\n\n%s has reserved %s, a space you are responsible for.\n\n"+
			"From: %s\nTo: %s\n\n"+
			"SharedSpaces",
		recipientName, reservedByName, spaceName,
		start.Format(emailTimeLayout), end.Format(emailTimeLayout),
	)
	return SendEmailWithSendGrid(recipientEmail, recipientName, subject, body)
}

func (n *EmailNotifier) ReservationCreatedToUser(recipientName, recipientEmail, responsibleName, spaceName string, start, end time.Time) error {
	subject := fmt.Sprintf("Your reservation of %s is confirmed", spaceName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation of %s is confirmed.\n\n"+
			"From: %s\nTo: %s\nResponsible person: %s\n\n"+
			"SharedSpaces",
		recipientName, spaceName,
		start.Format(emailTimeLayout), end.Format(emailTimeLayout), responsibleName,
	)
	return SendEmailWithSendGrid(recipientEmail, recipientName, subject, body)
}

func (n *EmailNotifier) SlotFreed(recipientName, recipientEmail, recipientPhone, spaceName string, start, end time.Time) error {
	subject := fmt.Sprintf("%s is now free", spaceName)
	body := fmt.Sprintf(
		"Hello %s,\n\nThe slot you were waiting for is now free:\n\n"+
			"Space: %s\nFrom: %s\nTo: %s\n\n"+
			"The slot is not booked for you yet. Reserve it before someone else does.\n\n"+
			"SharedSpaces",
		recipientName, spaceName,
		start.Format(emailTimeLayout), end.Format(emailTimeLayout),
	)
	if err := SendEmailWithSendGrid(recipientEmail, recipientName, subject, body); err != nil {
		return err
	}

	if recipientPhone != "" {
		sms := fmt.Sprintf("SharedSpaces: %s is free on %s. Book it before someone else does.",
			spaceName, start.Format("02/01 15:04"))
		if err := SendSMS(recipientPhone, sms); err != nil {
			log.Printf("Slot-free email sent but SMS to %s failed: %v", recipientPhone, err)
		}
	}
	return nil
}

func (n *EmailNotifier) ReservationDeleted(recipientName, recipientEmail, cancelledByName, spaceName string, start, end time.Time) error {
	subject := fmt.Sprintf("Your reservation of %s was cancelled", spaceName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation has been cancelled by %s.\n\n"+
			"Space: %s\nFrom: %s\nTo: %s\n\n"+
			"SharedSpaces",
		recipientName, cancelledByName, spaceName,
		start.Format(emailTimeLayout), end.Format(emailTimeLayout),
	)
	return SendEmailWithSendGrid(recipientEmail, recipientName, subject, body)
}
