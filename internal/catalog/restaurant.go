package catalog

import (
    "fmt"
    "strings"
    "time"
)

// DayHours is the opening window for one weekday, "HH:MM - HH:MM".
type DayHours struct {
    Day      string `json:"day"`
    Hours    string `json:"hours"`
    IsClosed bool   `json:"is_closed"`
}

// SocialLink points at one of the restaurant's social profiles.
type SocialLink struct {
    Platform string `json:"platform"`
    URL      string `json:"url"`
    Label    string `json:"label"`
    Icon     string `json:"icon,omitempty"`
}

// Coordinates of the restaurant on the map.
type Coordinates struct {
    Lat float64 `json:"lat"`
    Lng float64 `json:"lng"`
}

// RestaurantInfo is everything the contact and footer sections show.
type RestaurantInfo struct {
    Name           string       `json:"name"`
    Tagline        string       `json:"tagline"`
    Description    string       `json:"description"`
    Established    int          `json:"established"`
    Address        string       `json:"address"`
    AddressLine2   string       `json:"address_line2,omitempty"`
    City           string       `json:"city"`
    PostalCode     string       `json:"postal_code,omitempty"`
    Country        string       `json:"country"`
    Phone          string       `json:"phone"`
    PhoneFormatted string       `json:"phone_formatted,omitempty"`
    Email          string       `json:"email"`
    Hours          []DayHours   `json:"hours"` // Monday first
    MapEmbedURL    string       `json:"map_embed_url"`
    Coordinates    Coordinates  `json:"coordinates"`
    Social         []SocialLink `json:"social"`
}

// ClosedText is shown instead of hours on closed days.
const ClosedText = "დახურულია"

var restaurant = RestaurantInfo{
    Name:           "სანადიმო",
    Tagline:        "ავთენტური ქართული კერძები",
    Description:    "ჩვენ ვთავაზობთ ავთენტურ ქართულ კერძებს, რომლებიც მომზადებულია ტრადიციული რეცეპტებით და ახალი ინგრედიენტებით. ჩვენი რესტორანი არის იდეალური ადგილი ოჯახური სადილისთვის ან მეგობრებთან შეხვედრისთვის.",
    Established:    2015,
    Address:        "რუსთაველის გამზირი 25",
    AddressLine2:   "მე-2 სართული",
    City:           "თბილისი",
    PostalCode:     "0108",
    Country:        "საქართველო",
    Phone:          "+995 555 123 456",
    PhoneFormatted: "+995 555 12 34 56",
    Email:          "info@georgian-restaurant.ge",
    Hours: []DayHours{
        {Day: "ორშაბათი", Hours: "12:00 - 23:00"},
        {Day: "სამშაბათი", Hours: "12:00 - 23:00"},
        {Day: "ოთხშაბათი", Hours: "12:00 - 23:00"},
        {Day: "ხუთშაბათი", Hours: "12:00 - 23:00"},
        {Day: "პარასკევი", Hours: "12:00 - 00:00"},
        {Day: "შაბათი", Hours: "12:00 - 00:00"},
        {Day: "კვირა", Hours: "12:00 - 22:00"},
    },
    MapEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d2977.2573155018!2d44.79379431542658!3d41.69411797923654!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!2sRustaveli%20Avenue%2C%20Tbilisi",
    Coordinates: Coordinates{Lat: 41.6941179, Lng: 44.7959839},
    Social: []SocialLink{
        {Platform: "facebook", URL: "https://facebook.com/georgian-restaurant", Label: "ფეისბუქი", Icon: "facebook"},
        {Platform: "instagram", URL: "https://instagram.com/georgian-restaurant", Label: "ინსტაგრამი", Icon: "instagram"},
        {Platform: "youtube", URL: "https://youtube.com/@georgian-restaurant", Label: "იუთუბი", Icon: "youtube"},
    },
}

// Restaurant returns a copy of the restaurant details.
func Restaurant() RestaurantInfo {
    r := restaurant
    r.Hours = append([]DayHours(nil), restaurant.Hours...)
    r.Social = append([]SocialLink(nil), restaurant.Social...)
    return r
}

// FormattedAddress joins the address parts on one line.
func (r RestaurantInfo) FormattedAddress() string {
    parts := []string{r.Address}
    if r.AddressLine2 != "" {
        parts = append(parts, r.AddressLine2)
    }
    parts = append(parts, r.City, r.Country)
    return strings.Join(parts, ", ")
}

// hoursFor returns the entry for now's weekday; Hours starts on Monday.
func (r RestaurantInfo) hoursFor(now time.Time) (DayHours, bool) {
    idx := (int(now.Weekday()) + 6) % 7
    if idx >= len(r.Hours) {
        return DayHours{}, false
    }
    return r.Hours[idx], true
}

// TodaysHours returns the opening window for now's weekday.
func (r RestaurantInfo) TodaysHours(now time.Time) string {
    h, ok := r.hoursFor(now)
    if !ok || h.IsClosed {
        return ClosedText
    }
    return h.Hours
}

// IsOpen reports whether the restaurant is open at now.  A closing time at
// or before the opening time means the window runs past midnight.
func (r RestaurantInfo) IsOpen(now time.Time) bool {
    h, ok := r.hoursFor(now)
    if !ok || h.IsClosed {
        return false
    }
    open, closing, err := parseWindow(h.Hours)
    if err != nil {
        return false
    }
    cur := now.Hour()*60 + now.Minute()
    if closing <= open {
        return cur >= open
    }
    return cur >= open && cur <= closing
}

func parseWindow(s string) (open, closing int, err error) {
    var oh, om, ch, cm int
    if _, err = fmt.Sscanf(s, "%d:%d - %d:%d", &oh, &om, &ch, &cm); err != nil {
        return 0, 0, fmt.Errorf("parse hours %q: %w", s, err)
    }
    return oh*60 + om, ch*60 + cm, nil
}

// PhoneLink is a tel: URI for the main phone number.
func (r RestaurantInfo) PhoneLink() string {
    return "tel:" + strings.Join(strings.Fields(r.Phone), "")
}

// EmailLink is a mailto: URI for the contact address.
func (r RestaurantInfo) EmailLink() string {
    return "mailto:" + r.Email
}
