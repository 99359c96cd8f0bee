package teams

import (
	"errors"
	"unicode/utf8"
)

// MinNameLength is the minimum number of characters in a team name.
const MinNameLength = 8

// NameTooShortMessage is shown next to the name field when validation fails.
const NameTooShortMessage = "Team name must have at least 8 characters."

// ErrNameTooShort is returned when a team name has fewer than MinNameLength characters.
var ErrNameTooShort = errors.New("team name too short")

// ValidateName checks a team name before it is sent to the API. Length is counted in runes
// and the input is not trimmed.
func ValidateName(name string) error {
	if utf8.RuneCountInString(name) < MinNameLength {
		return ErrNameTooShort
	}
	return nil
}
