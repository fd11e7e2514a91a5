package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ContactChannel verification channel
type ContactChannel string

const (
	ChannelEmail ContactChannel = "email"
	ChannelPhone ContactChannel = "phone"
)

var (
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	germanMobileRe = regexp.MustCompile(`^(\+49|0049|0)1[5-7][0-9]{7,10}$`)
	phoneNoise     = strings.NewReplacer(" ", "", "-", "", "/", "", "(", "", ")", "")
)

// IsValidEmail syntactic email check
func IsValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// NormalizePhone removes spaces, dashes, slashes and parentheses
func NormalizePhone(s string) string {
	return phoneNoise.Replace(strings.TrimSpace(s))
}

// IsGermanMobile checks the number after normalization
func IsGermanMobile(s string) bool {
	return germanMobileRe.MatchString(NormalizePhone(s))
}

// ParseContact detects the channel and returns the normalized contact
func ParseContact(s string) (ContactChannel, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", fmt.Errorf("%w: empty", ErrInvalidContact)
	}
	if strings.Contains(s, "@") {
		if !IsValidEmail(s) {
			return "", "", fmt.Errorf("%w: %q is not a valid email", ErrInvalidContact, s)
		}
		return ChannelEmail, s, nil
	}
	phone := NormalizePhone(s)
	if !germanMobileRe.MatchString(phone) {
		return "", "", fmt.Errorf("%w: %q is not a German mobile number", ErrInvalidContact, s)
	}
	return ChannelPhone, phone, nil
}
