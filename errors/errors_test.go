package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	tests := []struct {
		name     string
		class    ErrorClass
		expected string
	}{
		{name: "malformed", class: ErrorMalformed, expected: "malformed"},
		{name: "invalid", class: ErrorInvalid, expected: "invalid"},
		{name: "fatal", class: ErrorFatal, expected: "fatal"},
		{name: "unknown value", class: ErrorClass(42), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.String())
		})
	}
}

func TestWrapFormatsContext(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(base, "decoder", "Decode", "list traversal")
	require.Error(t, err)
	assert.Equal(t, "decoder.Decode: list traversal failed: boom", err.Error())
	assert.True(t, errors.Is(err, base))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "c", "m", "a"))
	assert.NoError(t, WrapMalformed(nil, "c", "m", "a"))
	assert.NoError(t, WrapFatal(nil, "c", "m", "a"))
}

func TestWrapInvalidToleratesNil(t *testing.T) {
	// Validation call sites wrap nil to report a precondition failure.
	err := WrapInvalid(nil, "config", "Validate", "primary language required")
	require.Error(t, err)
	assert.True(t, IsInvalid(err))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		malformed bool
		invalid   bool
		fatal     bool
	}{
		{
			name:      "wrapped cyclic list",
			err:       fmt.Errorf("decode: %w", ErrCyclicList),
			malformed: true,
		},
		{
			name:      "classified malformed",
			err:       WrapMalformed(errors.New("broken chain"), "decoder", "Decode", "list"),
			malformed: true,
		},
		{
			name:    "sentinel invalid config",
			err:     fmt.Errorf("load: %w", ErrInvalidConfig),
			invalid: true,
		},
		{
			name:  "classified fatal",
			err:   WrapFatal(errors.New("connection refused"), "pipeline", "Run", "reasoner"),
			fatal: true,
		},
		{
			name:  "sentinel reasoner failure",
			err:   fmt.Errorf("run: %w", ErrReasonerFailed),
			fatal: true,
		},
		{
			name:      "unknown error defaults to malformed class only via Classify",
			err:       errors.New("mystery"),
			malformed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.malformed, IsMalformed(tt.err))
			assert.Equal(t, tt.invalid, IsInvalid(tt.err))
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
		})
	}
}

func TestClassifyDefaultsToMalformed(t *testing.T) {
	assert.Equal(t, ErrorMalformed, Classify(errors.New("mystery")))
	assert.Equal(t, ErrorFatal, Classify(ErrStoreUnavailable))
	assert.Equal(t, ErrorInvalid, Classify(ErrMissingConfig))
}

func TestNilStoreClassifiesInvalidBareAndWrapped(t *testing.T) {
	// The class must not change when the sentinel is wrapped.
	assert.Equal(t, ErrorInvalid, Classify(ErrNilStore))
	assert.Equal(t, ErrorInvalid, Classify(WrapInvalid(ErrNilStore, "extract", "New", "check store")))
	assert.False(t, IsFatal(ErrNilStore))
	assert.True(t, IsInvalid(fmt.Errorf("run: %w", ErrNilStore)))
}

func TestUnwrapPreservesChain(t *testing.T) {
	base := ErrListBudgetExceeded
	err := WrapMalformed(base, "decoder", "listMembers", "traversal budget")

	var ce *ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrorMalformed, ce.Class)
	assert.Equal(t, "decoder", ce.Component)
	assert.Equal(t, "listMembers", ce.Operation)
	assert.True(t, errors.Is(err, base))
}

func TestNilChecks(t *testing.T) {
	assert.False(t, IsMalformed(nil))
	assert.False(t, IsInvalid(nil))
	assert.False(t, IsFatal(nil))
}
