package utils

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when no staff hash is configured so a
// login attempt costs the same either way.  It matches no password.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOa5Zp0dXnDXe6S0X4r5dEJb0o0TyaJ9a")

// HashPassword returns the bcrypt hash of plain.  cost is clamped to the
// range bcrypt accepts.
func HashPassword(plain string, cost int) (string, error) {
    switch {
    case cost < bcrypt.MinCost:
        cost = bcrypt.MinCost
    case cost > bcrypt.MaxCost:
        cost = bcrypt.MaxCost
    }
    b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
    if err != nil {
        return "", err
    }
    return string(b), nil
}

// VerifyPassword reports whether plain matches the staff hash.  An empty
// hash never matches but still pays for one bcrypt comparison.
func VerifyPassword(hash, plain string) bool {
    if hash == "" {
        _ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
        return false
    }
    return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
