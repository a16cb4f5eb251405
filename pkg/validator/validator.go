package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	minEmailLength = 3
	maxEmailLength = 100
	maxNameLength  = 50
	maxPhoneLength = 20

	errEmailEmptyFmt     = "email cannot be empty"
	errEmailLengthFmt    = "email must be between %d and %d characters"
	errEmailInvalidFmt   = "invalid email format"
	errNameEmptyFmt      = "%s cannot be empty"
	errNameMaxLengthFmt  = "%s must not exceed %d characters"
	errPhoneEmptyFmt     = "phone number cannot be empty"
	errPhoneMaxLengthFmt = "phone number must not exceed %d characters"
	errPhoneInvalidFmt   = "phone number may contain only digits, spaces, and + - ( )"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

// Name validates a first or last name; field names the offending
// input in the returned error.
func Name(field, name string) error {
	if name == "" {
		return fmt.Errorf(errNameEmptyFmt, field)
	}

	if len(name) > maxNameLength {
		return fmt.Errorf(errNameMaxLengthFmt, field, maxNameLength)
	}

	return nil
}

func PhoneNumber(number string) error {
	if number == "" {
		return fmt.Errorf(errPhoneEmptyFmt)
	}

	if len(number) > maxPhoneLength {
		return fmt.Errorf(errPhoneMaxLengthFmt, maxPhoneLength)
	}

	for _, char := range number {
		if unicode.IsDigit(char) || char == '+' || char == '-' || char == ' ' {
			continue
		}
		if strings.ContainsRune("()", char) {
			continue
		}
		return fmt.Errorf(errPhoneInvalidFmt)
	}

	return nil
}
