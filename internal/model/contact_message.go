package model

import "time"

// ContactMessage is a row of the contact_messages table: one submitted and
// validated contact form.  The reservation columns are nil for inquiries
// and feedback.
type ContactMessage struct {
    ID           uint64    `json:"id"`
    SubmissionID string    `json:"submission_id"` // UUID assigned at submit time, dedupes redeliveries
    MessageType  string    `json:"message_type"`
    Name         string    `json:"name"`
    Phone        string    `json:"phone"`
    Email        string    `json:"email"`
    Message      string    `json:"message"`
    Date         *string   `json:"date,omitempty"` // YYYY-MM-DD
    Time         *string   `json:"time,omitempty"`
    Guests       *int      `json:"guests,omitempty"`
    CreatedAt    time.Time `json:"created_at"`
}
