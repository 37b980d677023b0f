package canonjson

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	//nolint:govet //Dont shift order
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"positive zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"one", 1, "1"},
		{"minus one", -1, "-1"},
		{"smallest subnormal", 5e-324, "5e-324"},
		{"negative smallest subnormal", -5e-324, "-5e-324"},
		{"largest double", math.MaxFloat64, "1.7976931348623157e+308"},
		{"negative largest double", -math.MaxFloat64, "-1.7976931348623157e+308"},
		{"exponent cutoff high", 1e21, "1e+21"},
		{"below high cutoff", 1e20, "100000000000000000000"},
		{"exponent cutoff low", 1e-6, "0.000001"},
		{"below low cutoff", 1e-7, "1e-7"},
		{"five below low cutoff", 5e-7, "5e-7"},
		{"max safe integer plus one", 9007199254740992, "9007199254740992"},
		{"long fraction", 333333333.3333333, "333333333.3333333"},
		{"trailing fraction digit", 1424953923781206.2, "1424953923781206.2"},
		{"one third", 1.0 / 3.0, "0.3333333333333333"},
		{"tenth", 0.1, "0.1"},
		{"one hundred from float", 1e2, "100"},
		{"milli", 2e-3, "0.002"},
		{"big exponent", 1e30, "1e+30"},
		{"tiny exponent", 1e-27, "1e-27"},
		{"plain fraction", 4.5, "4.5"},
		{"negative fraction", -1.5, "-1.5"},
		{"integral float", 10.0, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatNumber(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNumberRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FormatNumber(f)
		require.ErrorIs(t, err, ErrUnrepresentableNumber, "FormatNumber(%v)", f)
	}
}

// TestFormatNumberRoundTrip checks that parsing the canonical form recovers
// the exact binary64 that produced it.
func TestFormatNumberRoundTrip(t *testing.T) {
	samples := []float64{
		0.1, 1.0 / 3.0, math.Pi, math.E, math.Sqrt2,
		5e-324, math.MaxFloat64, math.SmallestNonzeroFloat64,
		1e21, 1e20, 1e-6, 1e-7, 9007199254740992,
		333333333.3333333, 1424953923781206.2,
		-0.000001, -123456.789e-20, 2.2250738585072014e-308,
	}

	for _, f := range samples {
		s, err := FormatNumber(f)
		require.NoError(t, err)

		back, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "canonical form %q must reparse", s)
		assert.Equal(t, f, back, "round trip of %q", s)
	}
}

// TestFormatNumberShortest checks that no decimal with fewer significant
// digits than the emitted one rounds back to the same binary64.
func TestFormatNumberShortest(t *testing.T) {
	samples := []float64{
		0.1, 1.0 / 3.0, math.Pi, 5e-324, math.MaxFloat64,
		333333333.3333333, 1424953923781206.2, 9007199254740992,
	}

	for _, f := range samples {
		s, err := FormatNumber(f)
		require.NoError(t, err)

		n := significantDigits(s)

		for prec := 0; prec < n-1; prec++ {
			shorter := strconv.FormatFloat(f, 'e', prec, 64)
			back, perr := strconv.ParseFloat(shorter, 64)
			if perr != nil {
				// Rounding up past the largest double overflows to +Inf,
				// which cannot equal a finite f.
				require.ErrorIs(t, perr, strconv.ErrRange, "%d-digit form %q", prec+1, shorter)
			}
			assert.NotEqual(t, f, back, "%d-digit form %q must not round trip for %q", prec+1, shorter, s)
		}
	}
}

func significantDigits(s string) int {
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		s = s[:i]
	}

	// Strip the sign and zero padding ahead of the digit core.
	s = strings.TrimLeft(s, "-0.")

	if len(s) == 0 {
		return 1
	}

	n := 0

	for _, c := range []byte(s) {
		if c >= '0' && c <= '9' {
			n++
		}
	}

	return n
}
