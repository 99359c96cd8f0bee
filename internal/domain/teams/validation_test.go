package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"empty", "", ErrNameTooShort},
		{"seven chars", "Santos1", ErrNameTooShort},
		{"exactly eight", "Santos12", nil},
		{"long", "Corinthians", nil},
		{"spaces count", "        ", nil},
		{"multibyte counted as runes", "Grêmio ã", nil},
		{"multibyte short", "São Paul", nil},
		{"multibyte seven", "Grêmio!", ErrNameTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateName(tc.input), tc.err)
		})
	}
}
