// Package validation checks the contact and reservation form.  Every rule
// is a pure function; Validate runs all of them and returns one Georgian
// message per invalid field.
package validation

import "strings"

// MessageType selects the form variant.
type MessageType string

const (
    TypeReservation MessageType = "reservation"
    TypeInquiry     MessageType = "inquiry"
    TypeFeedback    MessageType = "feedback"
)

// Valid reports whether t is one of the three known types.
func (t MessageType) Valid() bool {
    switch t {
    case TypeReservation, TypeInquiry, TypeFeedback:
        return true
    }
    return false
}

// Contact carries the fields every form variant shares.
type Contact struct {
    Name    string `json:"name"`
    Phone   string `json:"phone"`
    Email   string `json:"email"`
    Message string `json:"message"`
}

// Form is one of Reservation, Inquiry, Feedback or Unspecified.
type Form interface {
    Type() MessageType
    ContactInfo() Contact
    isForm()
}

// Inquiry is a general question.
type Inquiry struct{ Contact }

// Feedback is a comment about a visit.
type Feedback struct{ Contact }

// Reservation is a table request.  Date, Time and Guests are optional;
// empty strings and a nil Guests mean "not given".
type Reservation struct {
    Contact
    Date   string `json:"date,omitempty"`
    Time   string `json:"time,omitempty"`
    Guests *int   `json:"guests,omitempty"`
}

// Unspecified is a form whose message type is missing or unknown.  Raw
// keeps what the client sent.
type Unspecified struct {
    Contact
    Raw string `json:"message_type"`
}

func (Inquiry) Type() MessageType     { return TypeInquiry }
func (Feedback) Type() MessageType    { return TypeFeedback }
func (Reservation) Type() MessageType { return TypeReservation }
func (Unspecified) Type() MessageType { return "" }

func (f Inquiry) ContactInfo() Contact     { return f.Contact }
func (f Feedback) ContactInfo() Contact    { return f.Contact }
func (f Reservation) ContactInfo() Contact { return f.Contact }
func (f Unspecified) ContactInfo() Contact { return f.Contact }

func (Inquiry) isForm()     {}
func (Feedback) isForm()    {}
func (Reservation) isForm() {}
func (Unspecified) isForm() {}

// Request is the flat record posted by the contact form.
type Request struct {
    Name        string `json:"name"`
    Phone       string `json:"phone"`
    Email       string `json:"email"`
    Message     string `json:"message"`
    MessageType string `json:"messageType"`
    Date        string `json:"date,omitempty"`
    Time        string `json:"time,omitempty"`
    Guests      *int   `json:"guests,omitempty"`
}

// Form maps r onto its variant.  Reservation-only fields are dropped for
// every other type.
func (r Request) Form() Form {
    c := Contact{Name: r.Name, Phone: r.Phone, Email: r.Email, Message: r.Message}
    switch MessageType(strings.TrimSpace(r.MessageType)) {
    case TypeReservation:
        return Reservation{Contact: c, Date: r.Date, Time: r.Time, Guests: r.Guests}
    case TypeInquiry:
        return Inquiry{Contact: c}
    case TypeFeedback:
        return Feedback{Contact: c}
    }
    return Unspecified{Contact: c, Raw: r.MessageType}
}

// Sanitized returns f with HTML stripped from every free-text field.
func Sanitized(f Form) Form {
    clean := func(c Contact) Contact {
        return Contact{
            Name:    SanitizeInput(c.Name),
            Phone:   SanitizeInput(c.Phone),
            Email:   SanitizeInput(c.Email),
            Message: SanitizeInput(c.Message),
        }
    }
    switch v := f.(type) {
    case Reservation:
        v.Contact = clean(v.Contact)
        return v
    case Inquiry:
        v.Contact = clean(v.Contact)
        return v
    case Feedback:
        v.Contact = clean(v.Contact)
        return v
    case Unspecified:
        v.Contact = clean(v.Contact)
        return v
    }
    return f
}
