package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	assert.True(t, boolEnvOrDefault("BOOL_TEST", true), "default when unset")

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // unknown keeps default
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		assert.Equal(t, tc.expected, boolEnvOrDefault("BOOL_TEST", true), tc.val)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("DURATION_TEST", "45s")
	assert.Equal(t, 45*time.Second, durationEnvOrDefault("DURATION_TEST", time.Second))

	t.Setenv("DURATION_TEST", "-1s")
	assert.Equal(t, time.Second, durationEnvOrDefault("DURATION_TEST", time.Second))
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("STRING_TEST", "")
	assert.Equal(t, "fallback", envOrDefault("STRING_TEST", "fallback"))

	t.Setenv("STRING_TEST", "set")
	assert.Equal(t, "set", envOrDefault("STRING_TEST", "fallback"))
}

func TestLowerEnvOrDefault(t *testing.T) {
	t.Setenv("ENUM_TEST", "  ")
	assert.Equal(t, "http", lowerEnvOrDefault("ENUM_TEST", "http"))

	t.Setenv("ENUM_TEST", " Fixture ")
	assert.Equal(t, "fixture", lowerEnvOrDefault("ENUM_TEST", "http"))
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "250")
	assert.Equal(t, 250, intEnvOrDefault("INT_TEST", 10))

	for _, raw := range []string{"", "abc", "0", "-3"} {
		t.Setenv("INT_TEST", raw)
		assert.Equal(t, 10, intEnvOrDefault("INT_TEST", 10), raw)
	}
}
