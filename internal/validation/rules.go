package validation

import (
    "net/url"
    "regexp"
    "strings"
    "time"
    "unicode/utf8"
)

var (
    emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
    phoneRe      = regexp.MustCompile(`^(\+995|995|0)[0-9]{9}$`)
    phoneStripRe = regexp.MustCompile(`[\s\p{Zs}\-()]`)
    nameRe       = regexp.MustCompile(`^[\x{10A0}-\x{10FF}a-zA-Z\s\p{Zs}\-]+$`)
    timeRe       = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
    tagRe        = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(\s[^<>]*)?/?>|<!--.*?-->`)

    phonePlusRe  = regexp.MustCompile(`(\+995)(\d{3})(\d{3})(\d{3})`)
    phone995Re   = regexp.MustCompile(`(995)(\d{3})(\d{3})(\d{3})`)
    phoneLocalRe = regexp.MustCompile(`(\d{3})(\d{3})(\d{3})`)
)

// Length limits for the free-text fields.
const (
    NameMinLen    = 2
    NameMaxLen    = 100
    MessageMinLen = 10
    MessageMaxLen = 1000
    GuestsMin     = 1
    GuestsMax     = 20
)

// dateLayouts are tried in order by ValidateDate.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ValidateRequired reports whether value has a non-blank character.
func ValidateRequired(value string) bool {
    return strings.TrimSpace(value) != ""
}

// ValidateEmail checks the simple local@domain.tld shape.
func ValidateEmail(email string) bool {
    if email == "" {
        return false
    }
    return emailRe.MatchString(strings.TrimSpace(email))
}

// stripPhone removes spaces, hyphens and parentheses.
func stripPhone(phone string) string {
    return phoneStripRe.ReplaceAllString(phone, "")
}

// ValidatePhone accepts Georgian numbers written as 0XXXXXXXXX,
// 995XXXXXXXXX or +995XXXXXXXXX, ignoring spaces, hyphens and
// parentheses.
func ValidatePhone(phone string) bool {
    if phone == "" {
        return false
    }
    return phoneRe.MatchString(stripPhone(phone))
}

// FormatGeorgianPhone groups the digits of a Georgian number for display.
// The cleaned number is returned when its digits cannot be grouped; a value
// with no known prefix is returned unchanged.
func FormatGeorgianPhone(phone string) string {
    c := stripPhone(phone)
    switch {
    case strings.HasPrefix(c, "+995"):
        return replaceFirst(phonePlusRe, c, "$1 $2 $3 $4")
    case strings.HasPrefix(c, "995"):
        return replaceFirst(phone995Re, c, "+$1 $2 $3 $4")
    case strings.HasPrefix(c, "0"):
        return replaceFirst(phoneLocalRe, c, "$1 $2 $3")
    }
    return phone
}

// replaceFirst expands tmpl over the leftmost match of re in s only.
func replaceFirst(re *regexp.Regexp, s, tmpl string) string {
    loc := re.FindStringSubmatchIndex(s)
    if loc == nil {
        return s
    }
    return s[:loc[0]] + string(re.ExpandString(nil, tmpl, s, loc)) + s[loc[1]:]
}

// ValidateName accepts Georgian or Latin letters, whitespace and hyphens,
// 2 to 100 characters after trimming.
func ValidateName(name string) bool {
    trimmed := strings.TrimSpace(name)
    n := utf8.RuneCountInString(trimmed)
    return n >= NameMinLen && n <= NameMaxLen && nameRe.MatchString(trimmed)
}

// ValidateMessage checks the trimmed message is 10 to 1000 characters.
func ValidateMessage(message string) bool {
    return ValidateLength(message, MessageMinLen, MessageMaxLen).Valid
}

// LengthResult is the outcome of ValidateLength.  Error is empty when
// Valid is true.
type LengthResult struct {
    Valid bool
    Error string
}

// ValidateLength checks the trimmed rune length of value against min and
// max.  A bound of zero or less is not checked.
func ValidateLength(value string, min, max int) LengthResult {
    n := utf8.RuneCountInString(strings.TrimSpace(value))
    if min > 0 && n < min {
        return LengthResult{Error: MsgMinLength(min)}
    }
    if max > 0 && n > max {
        return LengthResult{Error: MsgMaxLength(max)}
    }
    return LengthResult{Valid: true}
}

// CalendarDay parses a YYYY-MM-DD or RFC3339 value and returns midnight
// of the day it falls on in loc.  An RFC3339 value with another offset is
// converted to loc first.
func CalendarDay(s string, loc *time.Location) (time.Time, bool) {
    s = strings.TrimSpace(s)
    if s == "" {
        return time.Time{}, false
    }
    for _, layout := range dateLayouts {
        d, err := time.ParseInLocation(layout, s, loc)
        if err != nil {
            continue
        }
        d = d.In(loc)
        return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc), true
    }
    return time.Time{}, false
}

// ValidateDate reports whether s names a calendar day on or after the day
// of now, in now's location.  Time of day is ignored.
func ValidateDate(s string, now time.Time) bool {
    day, ok := CalendarDay(s, now.Location())
    if !ok {
        return false
    }
    loc := now.Location()
    today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
    return !day.Before(today)
}

// ValidateTime checks a 24-hour H:MM or HH:MM clock time.
func ValidateTime(s string) bool {
    return s != "" && timeRe.MatchString(s)
}

// ValidateGuestCount checks the party size is between 1 and 20.
func ValidateGuestCount(n int) bool {
    return n >= GuestsMin && n <= GuestsMax
}

// ValidateURL reports whether s is an absolute URL.
func ValidateURL(s string) bool {
    if s == "" {
        return false
    }
    u, err := url.Parse(s)
    return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// SanitizeInput strips HTML tags, comments and surrounding whitespace.  A
// '<' that does not open a tag, as in "x < y", is kept.
func SanitizeInput(s string) string {
    return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}
