// File: error_test.go
// Title: Core Error Tests
// Description: Tests for error construction, wrapping and code lookups.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-08-14 v0.2.0: Tests for wrapped code lookups

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("date string is mandatory")

	assert.Equal(t, "date string is mandatory", err.Error())
	assert.Equal(t, CodeUnknown, err.Code())
	assert.Equal(t, SeverityMedium, err.Severity())
	assert.Empty(t, err.Details())
}

func TestWithCode_SetsSeverity(t *testing.T) {
	testCases := []struct {
		name     string
		code     Code
		severity Severity
	}{
		{"invalid argument", CodeInvalidArgument, SeverityHigh},
		{"parse failure", CodeParseFailure, SeverityLow},
		{"internal", CodeInternal, SeverityCritical},
		{"unknown", CodeUnknown, SeverityMedium},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := New("x").WithCode(tc.code)
			assert.Equal(t, tc.code, err.Code())
			assert.Equal(t, tc.severity, err.Severity())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("standard error", func(t *testing.T) {
		base := errors.New("boom")
		err := Wrap(base, "loading config")

		assert.Equal(t, "loading config: boom", err.Error())
		assert.Equal(t, CodeUnknown, err.Code())
		assert.True(t, errors.Is(err, base))
	})

	t.Run("inherits code and details", func(t *testing.T) {
		inner := New("bad pattern").
			WithCode(CodeInvalidPattern).
			WithDetail("pattern", "dd-qq")
		err := Wrap(inner, "formatting")

		assert.Equal(t, CodeInvalidPattern, err.Code())
		v, ok := err.Detail("pattern")
		require.True(t, ok)
		assert.Equal(t, "dd-qq", v)
	})
}

func TestHasCode(t *testing.T) {
	inner := New("no match").WithCode(CodeParseFailure)
	outer := Wrap(inner, "parse").WithCode(CodeInvalidConfig)
	foreign := fmt.Errorf("cli: %w", outer)

	assert.True(t, HasCode(inner, CodeParseFailure))
	assert.True(t, HasCode(outer, CodeInvalidConfig))
	assert.True(t, HasCode(outer, CodeParseFailure))
	assert.True(t, HasCode(foreign, CodeParseFailure))
	assert.False(t, HasCode(outer, CodeInternal))
	assert.False(t, HasCode(errors.New("plain"), CodeParseFailure))
	assert.False(t, HasCode(nil, CodeParseFailure))
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New("x").WithCode(CodeInvalidArgument))

	assert.Equal(t, CodeInvalidArgument, GetCode(err))
	assert.Equal(t, SeverityHigh, GetSeverity(err))
	assert.Equal(t, CodeUnknown, GetCode(errors.New("plain")))
	assert.Equal(t, SeverityMedium, GetSeverity(errors.New("plain")))
}

func TestMarshalJSON(t *testing.T) {
	err := New("no match").
		WithCode(CodeParseFailure).
		WithOperation("ParseInFormat").
		WithDetail("pattern", "dd-MM-yyyy")

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "no match", decoded["message"])
	assert.Equal(t, "PARSE_FAILURE", decoded["code"])
	assert.Equal(t, "low", decoded["severity"])
	assert.Equal(t, "ParseInFormat", decoded["operation"])
}

func TestString(t *testing.T) {
	err := New("no match").
		WithCode(CodeParseFailure).
		WithDetail("text", "32-01-2020").
		WithDetail("pattern", "dd-MM-yyyy")

	s := err.String()
	assert.Contains(t, s, "Code: PARSE_FAILURE")
	assert.Contains(t, s, "Details: {pattern=dd-MM-yyyy, text=32-01-2020}")
}

func TestCodeHelpers(t *testing.T) {
	assert.True(t, CodeParseFailure.IsValid())
	assert.False(t, Code("NOPE").IsValid())
	assert.Equal(t, "contract", CodeInvalidArgument.Category())
	assert.Equal(t, "parsing", CodeParseFailure.Category())
	assert.Equal(t, 2, CodeInvalidArgument.ExitCode())
	assert.Equal(t, 3, CodeParseFailure.ExitCode())
	assert.Equal(t, 1, CodeUnknown.ExitCode())
}
