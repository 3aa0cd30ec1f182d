package validation

import "fmt"

// Georgian error texts shown next to form fields.
const (
    MsgRequired      = "ეს ველი სავალდებულოა"
    MsgInvalidEmail  = "გთხოვთ შეიყვანოთ სწორი ელ-ფოსტა"
    MsgInvalidPhone  = "გთხოვთ შეიყვანოთ სწორი ტელეფონის ნომერი"
    MsgInvalidName   = "გთხოვთ შეიყვანოთ სწორი სახელი"
    MsgInvalidFormat = "არასწორი ფორმატი"
    MsgInvalidDate   = "გთხოვთ აირჩიოთ სწორი თარიღი"
    MsgInvalidTime   = "გთხოვთ აირჩიოთ სწორი დრო"
    MsgInvalidGuests = "გთხოვთ შეიყვანოთ სტუმრების რაოდენობა (1-20)"
    MsgNetworkError  = "ქსელის შეცდომა. შეამოწმეთ ინტერნეტ კავშირი"
    MsgServerError   = "სერვერის შეცდომა. გთხოვთ სცადოთ მოგვიანებით"
)

// MsgMinLength is the "at least min characters" text.
func MsgMinLength(min int) string { return fmt.Sprintf("მინიმუმ %d სიმბოლო", min) }

// MsgMaxLength is the "at most max characters" text.
func MsgMaxLength(max int) string { return fmt.Sprintf("მაქსიმუმ %d სიმბოლო", max) }
