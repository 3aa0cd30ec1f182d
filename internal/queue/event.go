// Package queue defines message payloads exchanged over the message broker
// and the consumer that stores them.
package queue

import (
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/sanadimo/internal/model"
    "github.com/iliyamo/sanadimo/internal/validation"
)

// ContactQueue is the durable queue carrying validated contact forms.
const ContactQueue = "contact.submitted"

// ContactSubmittedEvent is published once per accepted contact form.  It
// carries the whole form so the consumer never has to call back into the
// web server.
type ContactSubmittedEvent struct {
    SubmissionID string `json:"submission_id"`
    MessageType  string `json:"message_type"`
    Name         string `json:"name"`
    Phone        string `json:"phone"`
    Email        string `json:"email"`
    Message      string `json:"message"`
    Date         string `json:"date,omitempty"`
    Time         string `json:"time,omitempty"`
    Guests       *int   `json:"guests,omitempty"`
    SubmittedAt  string `json:"submitted_at"` // RFC3339, UTC
}

// NewContactSubmitted builds the event for f with a fresh submission id.
func NewContactSubmitted(f validation.Form, now time.Time) ContactSubmittedEvent {
    c := f.ContactInfo()
    ev := ContactSubmittedEvent{
        SubmissionID: uuid.NewString(),
        MessageType:  string(f.Type()),
        Name:         strings.TrimSpace(c.Name),
        Phone:        strings.TrimSpace(c.Phone),
        Email:        strings.TrimSpace(c.Email),
        Message:      strings.TrimSpace(c.Message),
        SubmittedAt:  now.UTC().Format(time.RFC3339),
    }
    if r, ok := f.(validation.Reservation); ok {
        ev.Date = reservationDay(r.Date, now.Location())
        ev.Time = strings.TrimSpace(r.Time)
        ev.Guests = r.Guests
    }
    return ev
}

// reservationDay is the calendar day of s in loc, the same day the
// validator checked against.  Unparsable values are kept trimmed.
func reservationDay(s string, loc *time.Location) string {
    if day, ok := validation.CalendarDay(s, loc); ok {
        return day.Format(time.DateOnly)
    }
    return strings.TrimSpace(s)
}

// ToMessage converts the event into the row stored by the repository.  An
// unparsable SubmittedAt falls back to now.
func (e ContactSubmittedEvent) ToMessage(now time.Time) *model.ContactMessage {
    created, err := time.Parse(time.RFC3339, e.SubmittedAt)
    if err != nil {
        created = now
    }
    m := &model.ContactMessage{
        SubmissionID: e.SubmissionID,
        MessageType:  e.MessageType,
        Name:         e.Name,
        Phone:        e.Phone,
        Email:        e.Email,
        Message:      e.Message,
        Guests:       e.Guests,
        CreatedAt:    created.UTC(),
    }
    if e.Date != "" {
        d := e.Date
        m.Date = &d
    }
    if e.Time != "" {
        t := e.Time
        m.Time = &t
    }
    return m
}
