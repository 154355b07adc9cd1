package domain

import "regexp"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// Account is the session collaborator's view of a user. Sellers own a shop.
type Account struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Shop     string `json:"shop,omitempty"`
}

var passwordCharset = regexp.MustCompile(`^[A-Za-z0-9]{8,16}$`)

// ValidatePassword enforces the sign-up rule: alphanumeric, 8 to 16
// characters, with at least one letter and one digit.
func ValidatePassword(password string) error {
	if !passwordCharset.MatchString(password) {
		return ErrInvalidPassword
	}
	hasLetter, hasDigit := false, false
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasLetter = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrInvalidPassword
	}
	return nil
}
