package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash using the given cost.  A cost outside
// bcrypt's range falls back to bcrypt.DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
    if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
        cost = bcrypt.DefaultCost
    }
    b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
    if err != nil {
        return "", err
    }
    return string(b), nil
}

// VerifyPassword safely compares a bcrypt hash and a plain password.  An
// empty hash never matches.
func VerifyPassword(hash, plain string) bool {
    if hash == "" {
        return false
    }
    return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
