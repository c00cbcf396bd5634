// Package validation checks user input before it leaves the client. The
// server revalidates everything; these checks only catch obvious mistakes
// early.
package validation

import (
	"fmt"
	"regexp"
)

// IdentifyTypeEmail is the only identifier kind the client supports today
const IdentifyTypeEmail = "email"

// emailPattern is intentionally loose; the server sends the verification
// code and is the final authority on deliverability.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// verifyCodePattern matches the 6-digit codes the server issues
var verifyCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

const (
	// MinPasswordLen is the minimum password length
	MinPasswordLen = 8
	// MaxPasswordLen is the maximum password length
	MaxPasswordLen = 16
)

// ValidateIdentifier checks an identifier against its declared kind
func ValidateIdentifier(identifyType, identifier string) error {
	if identifier == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	switch identifyType {
	case IdentifyTypeEmail:
		if !emailPattern.MatchString(identifier) {
			return fmt.Errorf("%q is not a valid email address", identifier)
		}
		return nil
	default:
		return fmt.Errorf("unsupported identify type %q", identifyType)
	}
}

// ValidateVerifyCode checks that a verification code is six digits
func ValidateVerifyCode(code string) error {
	if code == "" {
		return fmt.Errorf("verify code cannot be empty")
	}
	if !verifyCodePattern.MatchString(code) {
		return fmt.Errorf("verify code must be exactly 6 digits")
	}
	return nil
}

// ValidatePassword checks the password length bounds
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLen)
	}
	return nil
}
