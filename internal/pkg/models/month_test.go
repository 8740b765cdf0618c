package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    Month
		expectedErr error
	}{
		{name: "first month", input: "January", expected: January},
		{name: "middle month", input: "June", expected: June},
		{name: "last month", input: "December", expected: December},
		{name: "lowercase rejected", input: "march", expectedErr: ErrInvalidMonth},
		{name: "uppercase rejected", input: "MARCH", expectedErr: ErrInvalidMonth},
		{name: "abbreviation rejected", input: "Mar", expectedErr: ErrInvalidMonth},
		{name: "empty rejected", input: "", expectedErr: ErrInvalidMonth},
		{name: "garbage rejected", input: "Smarch", expectedErr: ErrInvalidMonth},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMonth(tc.input)
			if tc.expectedErr != nil {
				assert.True(t, errors.Is(err, tc.expectedErr))
				assert.Equal(t, Month(0), m)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, m)
		})
	}
}

func TestMonthOrdinalsAreTotal(t *testing.T) {
	for i, name := range monthNames {
		m, err := ParseMonth(name)
		assert.NoError(t, err)
		assert.Equal(t, i+1, m.Ordinal())
		assert.Equal(t, name, m.String())
	}
}

func TestMonthStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Unknown", Month(0).String())
	assert.Equal(t, "Unknown", Month(13).String())
}
