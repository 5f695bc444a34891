package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"Valid", Config{Expression: "sin(x)", Period: 2 * math.Pi}, false},
		{"ValidWithTerms", Config{Expression: "x", Period: 4, Terms: 25}, false},
		{"EmptyExpression", Config{Period: 2 * math.Pi}, true},
		{"ZeroPeriod", Config{Expression: "sin(x)"}, true},
		{"NegativePeriod", Config{Expression: "sin(x)", Period: -1}, true},
		{"NegativeTerms", Config{Expression: "sin(x)", Period: 1, Terms: -1}, true},
		{"NegativeWorkers", Config{Expression: "sin(x)", Period: 1, Workers: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestNew tests solver construction and error wrapping.
func TestNew(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("ParseError", func(t *testing.T) {
		_, err := New(&Config{Expression: "foo(x)", Period: 2 * math.Pi})
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("DisallowedIdentifier", func(t *testing.T) {
		_, err := New(&Config{Expression: "__import__('os')", Period: 2 * math.Pi})
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("Accessors", func(t *testing.T) {
		s, err := New(&Config{Expression: "x**2", Period: 4})
		require.NoError(t, err)
		assert.Equal(t, 4.0, s.Period())
		assert.Equal(t, 2.0, s.HalfPeriod())
		assert.Equal(t, DefaultTerms, s.Terms())
		assert.Equal(t, "x**2", s.Expression())
		assert.True(t, s.IsSymbolic())
	})

	t.Run("ConditionalIsNumericOnly", func(t *testing.T) {
		s, err := New(&Config{Expression: "x if x > 0 else 0", Period: 2})
		require.NoError(t, err)
		assert.False(t, s.IsSymbolic())
	})

	t.Run("ConfigNotMutated", func(t *testing.T) {
		cfg := Config{Expression: "sin(x)", Period: 2 * math.Pi}
		_, err := New(&cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Terms)
	})
}

// TestEvaluateFunction tests bulk evaluation with zero-fill on domain
// violations.
func TestEvaluateFunction(t *testing.T) {
	s, err := New(&Config{Expression: "1/x", Period: 2})
	require.NoError(t, err)

	ys := s.EvaluateFunction([]float64{-1, 0, 0.5})
	require.Len(t, ys, 3)
	assert.InDelta(t, -1.0, ys[0], 1e-12)
	assert.Equal(t, 0.0, ys[1])
	assert.InDelta(t, 2.0, ys[2], 1e-12)
}
