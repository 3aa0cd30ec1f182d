package validation

import (
    "strconv"
    "time"
)

// Field names used as FieldErrors keys.
const (
    FieldName        = "name"
    FieldEmail       = "email"
    FieldPhone       = "phone"
    FieldMessage     = "message"
    FieldMessageType = "messageType"
    FieldDate        = "date"
    FieldTime        = "time"
    FieldGuests      = "guests"
)

// fieldOrder is the order in which the form shows its fields.
var fieldOrder = []string{
    FieldName, FieldEmail, FieldPhone, FieldMessage,
    FieldMessageType, FieldDate, FieldTime, FieldGuests,
}

// FieldErrors maps a field name to its error text.  A missing key means
// the field is valid; an empty map means the whole form is valid.
type FieldErrors map[string]string

// HasErrors reports whether any field is invalid.
func (e FieldErrors) HasErrors() bool { return len(e) > 0 }

// First returns the error of the first invalid field in form order.
func (e FieldErrors) First() (field, msg string, ok bool) {
    for _, f := range fieldOrder {
        if m, found := e[f]; found {
            return f, m, true
        }
    }
    return "", "", false
}

// Without returns a copy of e with field removed.
func (e FieldErrors) Without(field string) FieldErrors {
    out := make(FieldErrors, len(e))
    for k, v := range e {
        if k != field {
            out[k] = v
        }
    }
    return out
}

// Validator validates forms against a clock; the zero value uses
// time.Now.
type Validator struct {
    Now func() time.Time
}

func (v Validator) now() time.Time {
    if v.Now != nil {
        return v.Now()
    }
    return time.Now()
}

// Validate runs every rule against f.
func (v Validator) Validate(f Form) FieldErrors {
    errs := FieldErrors{}
    c := f.ContactInfo()

    for field, value := range map[string]string{
        FieldName:    c.Name,
        FieldEmail:   c.Email,
        FieldPhone:   c.Phone,
        FieldMessage: c.Message,
    } {
        if msg, bad := contactFieldError(field, value); bad {
            errs[field] = msg
        }
    }

    if !f.Type().Valid() {
        errs[FieldMessageType] = MsgRequired
    }

    if r, ok := f.(Reservation); ok {
        if r.Date != "" && !ValidateDate(r.Date, v.now()) {
            errs[FieldDate] = MsgInvalidDate
        }
        if r.Time != "" && !ValidateTime(r.Time) {
            errs[FieldTime] = MsgInvalidTime
        }
        if r.Guests != nil && !ValidateGuestCount(*r.Guests) {
            errs[FieldGuests] = MsgInvalidGuests
        }
    }
    return errs
}

// ValidateForm validates f against the wall clock.
func ValidateForm(f Form) FieldErrors {
    return Validator{}.Validate(f)
}

// ValidateField checks a single contact field as the visitor types.  It
// returns the error text and true when the value is invalid.  Fields
// without a live rule always pass.
func (v Validator) ValidateField(field, value string) (string, bool) {
    switch field {
    case FieldName, FieldEmail, FieldPhone, FieldMessage:
        return contactFieldError(field, value)
    case FieldMessageType:
        if !MessageType(value).Valid() {
            return MsgRequired, true
        }
    case FieldDate:
        if value != "" && !ValidateDate(value, v.now()) {
            return MsgInvalidDate, true
        }
    case FieldTime:
        if value != "" && !ValidateTime(value) {
            return MsgInvalidTime, true
        }
    case FieldGuests:
        if value == "" {
            return "", false
        }
        n, err := strconv.Atoi(value)
        if err != nil || !ValidateGuestCount(n) {
            return MsgInvalidGuests, true
        }
    }
    return "", false
}

func contactFieldError(field, value string) (string, bool) {
    if !ValidateRequired(value) {
        return MsgRequired, true
    }
    switch field {
    case FieldName:
        if !ValidateName(value) {
            return MsgInvalidName, true
        }
    case FieldEmail:
        if !ValidateEmail(value) {
            return MsgInvalidEmail, true
        }
    case FieldPhone:
        if !ValidatePhone(value) {
            return MsgInvalidPhone, true
        }
    case FieldMessage:
        if res := ValidateLength(value, MessageMinLen, MessageMaxLen); !res.Valid {
            if res.Error == "" {
                return MsgInvalidFormat, true
            }
            return res.Error, true
        }
    }
    return "", false
}
