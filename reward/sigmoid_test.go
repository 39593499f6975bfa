package reward

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSigmoidRoundTrip(t *testing.T) {
	for _, s := range Sigmoids() {
		parsed, err := ParseSigmoid(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseSigmoid("bogus")
	assert.ErrorIs(t, err, ErrUnknownSigmoid)
}

func TestSigmoidOneAtZeroAndValueAtOne(t *testing.T) {
	for _, s := range Sigmoids() {
		for _, valueAt1 := range []float64{0.05, 0.1, 0.5, 0.9} {
			out, err := evalSigmoid[[]float64](sliceOps{}, []float64{0, 1, -1}, valueAt1, s)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, out[0], 1e-12, "%s must be 1 at x=0", s)
			assert.InDelta(t, valueAt1, out[1], 1e-9, "%s must pass through value_at_1 at x=1", s)
			if s != Linear {
				// Every shape but linear is even in x. The scorer only
				// feeds non-negative distances, so linear's asymmetry on
				// the negative axis never reaches callers.
				assert.InDelta(t, valueAt1, out[2], 1e-9, "%s must be symmetric at x=-1", s)
			}
		}
	}
}

func TestSigmoidParameterValidation(t *testing.T) {
	permissive := map[Sigmoid]bool{Cosine: true, Linear: true, Quadratic: true}

	for _, s := range Sigmoids() {
		t.Run(s.String(), func(t *testing.T) {
			for _, bad := range []float64{-0.1, 1, 1.5, math.NaN()} {
				_, err := evalSigmoid[[]float64](sliceOps{}, []float64{1}, bad, s)
				assert.ErrorIs(t, err, ErrInvalidValueAtMargin, "value_at_1=%v", bad)
			}

			out, err := evalSigmoid[[]float64](sliceOps{}, []float64{1}, 0, s)
			if permissive[s] {
				require.NoError(t, err, "%s must accept value_at_1 == 0", s)
				assert.Equal(t, 0.0, out[0])
			} else {
				assert.ErrorIs(t, err, ErrInvalidValueAtMargin, "%s must reject value_at_1 == 0", s)
			}
		})
	}

	_, err := evalSigmoid[[]float64](sliceOps{}, []float64{1}, 0.1, Sigmoid(42))
	assert.ErrorIs(t, err, ErrUnknownSigmoid)
}

func TestSigmoidMonotoneDecay(t *testing.T) {
	for _, s := range Sigmoids() {
		out, err := evalSigmoid[[]float64](sliceOps{}, []float64{0, 0.25, 0.5, 1, 2, 5, 20}, 0.1, s)
		require.NoError(t, err)
		for i := 1; i < len(out); i++ {
			assert.LessOrEqual(t, out[i], out[i-1], "%s must be non-increasing in |x|", s)
			assert.GreaterOrEqual(t, out[i], 0.0, "%s must stay non-negative", s)
		}
	}
}

func TestCosineDiscardsOutOfDomainBranch(t *testing.T) {
	// cos sees an infinite argument in the element the mask discards; the
	// score must come out 0, not NaN.
	out, err := evalSigmoid[[]float64](sliceOps{}, []float64{math.Inf(1), 0.5}, 0.1, Cosine)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out[0])
	assert.False(t, math.IsNaN(out[1]))
}
