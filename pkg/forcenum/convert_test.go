package forcenum_test

import (
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/randalmurphal/forcenum/pkg/forcenum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type price float64

type label string

type flag bool

// TestConvert_Numbers verifies numeric input passes through when finite.
func TestConvert_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"int", 25, 25},
		{"negative int", -7, -7},
		{"int8", int8(-8), -8},
		{"int64", int64(1 << 40), 1 << 40},
		{"uint16", uint16(65535), 65535},
		{"uint64", uint64(42), 42},
		{"float32", float32(0.5), 0.5},
		{"float64", 123.47, 123.47},
		{"zero", 0.0, 0},
		{"max float", math.MaxFloat64, math.MaxFloat64},
		{"named float", price(3.25), 3.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, forcenum.Convert(tt.input))
		})
	}
}

// TestConvert_NonFiniteNumbers verifies infinities and NaN are rejected.
func TestConvert_NonFiniteNumbers(t *testing.T) {
	for _, v := range []any{math.NaN(), math.Inf(1), math.Inf(-1), float32(math.Inf(1))} {
		assert.True(t, math.IsNaN(forcenum.Convert(v)), "input %v", v)
	}
}

// TestConvert_Booleans verifies true -> 1 and false -> 0.
func TestConvert_Booleans(t *testing.T) {
	assert.Equal(t, 1.0, forcenum.Convert(true))
	assert.Equal(t, 0.0, forcenum.Convert(false))
	assert.Equal(t, 1.0, forcenum.Convert(flag(true)))
}

// TestConvert_Strings covers the documented text scenarios.
func TestConvert_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"currency prefix", "USD$ 123.47", 123.47},
		{"accounting negative", "(100,000¥)", -100000},
		{"negative millions", "-$30.65235M", -30652350},
		{"date digits", "12/31/2007", 12312007},
		{"tenths is not a suffix", "5 tenths", 5},
		{"meters is not a suffix", "5 meters", 5},
		{"e notation", "7e4", 70000},
		{"extra decimal point", "32.43.54", 32.43},
		{"thousand letter", "5k", 5000},
		{"thousand upper letter", "5K", 5000},
		{"thousand word", "5 thousand", 5000},
		{"million letter", "5M", 5000000},
		{"million lower letter", "5m", 5000000},
		{"million word", "5 million", 5000000},
		{"billion letter", "5B", 5000000000},
		{"billion word", "5 billion", 5000000000},
		{"garbage before digits", "asdbs45k", 45000},
		{"plain integer", "42", 42},
		{"leading dot", ".5", 0.5},
		{"trailing dot", "5.", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, forcenum.Convert(tt.input))
		})
	}
}

// TestConvert_DecimalSymbol verifies a custom decimal symbol.
func TestConvert_DecimalSymbol(t *testing.T) {
	comma := forcenum.WithDecimalSymbol(',')

	assert.Equal(t, 25120.0, forcenum.Convert("25,12K", comma))
	assert.Equal(t, -5340000.0, forcenum.Convert("-5,34M", comma))
	assert.InDelta(t, 1234.56, forcenum.Convert("1.234,56", comma), 1e-9)

	t.Run("repeated symbol stops at the second", func(t *testing.T) {
		assert.InDelta(t, 1.2, forcenum.Convert("1,2,3", comma), 1e-12)
	})

	t.Run("invalid symbol keeps default", func(t *testing.T) {
		assert.Equal(t, 12.5, forcenum.Convert("12.5", forcenum.WithDecimalSymbol('7')))
		assert.Equal(t, 12.5, forcenum.Convert("12.5", forcenum.WithDecimalSymbol('-')))
	})

	t.Run("non-ascii symbol", func(t *testing.T) {
		assert.InDelta(t, 3.75, forcenum.Convert("3·75", forcenum.WithDecimalSymbol('·')), 1e-12)
	})

	t.Run("nil option ignored", func(t *testing.T) {
		assert.Equal(t, 7.5, forcenum.Convert("7.5", nil))
	})
}

// TestConvert_Exponent verifies scientific notation survives filtering.
func TestConvert_Exponent(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"7e4", 70000},
		{"7E4", 70000},
		{"1.5e+3", 1500},
		{"$2.5E-3", 0.0025},
		{"1,000e2", 100000},
		{"(2e3)", -2000},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, forcenum.Convert(tt.input), 1e-12)
		})
	}
}

// TestConvert_NaN verifies every unusable input yields NaN.
func TestConvert_NaN(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"word", "whatever"},
		{"empty string", ""},
		{"only minus", "-"},
		{"double minus", "--5"},
		{"only punctuation", "$.,"},
		{"overflowing exponent", "1e400"},
		{"overflowing multiplier", "9e300b"},
		{"nil", nil},
		{"empty map", map[string]any{}},
		{"struct", struct{}{}},
		{"empty slice", []any{}},
		{"slice with number", []any{4}},
		{"int slice", []int{4}},
		{"pointer", new(float64)},
		{"func", func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, math.IsNaN(forcenum.Convert(tt.input)))
		})
	}
}

// TestConvert_TextKinds verifies named strings and json.Number are parsed.
func TestConvert_TextKinds(t *testing.T) {
	assert.Equal(t, 5000.0, forcenum.Convert(label("5k")))
	assert.Equal(t, 1000.0, forcenum.Convert(json.Number("1e3")))
	assert.Equal(t, 12.0, forcenum.Convert(json.Number("12")))
}

// TestConvert_Idempotent verifies converting a finite result again is a no-op.
func TestConvert_Idempotent(t *testing.T) {
	inputs := []any{"USD$ 123.47", "(100,000¥)", "5 billion", 3, true, "7e4"}
	for _, in := range inputs {
		first := forcenum.Convert(in)
		require.False(t, math.IsNaN(first), "input %v", in)
		assert.Equal(t, first, forcenum.Convert(first), "input %v", in)
	}
}

// TestConvertOrNil verifies NaN maps to nil and finite results pass through.
func TestConvertOrNil(t *testing.T) {
	t.Run("finite results", func(t *testing.T) {
		for _, in := range []any{"asdbs45k", 12, false, "(3)"} {
			got := forcenum.ConvertOrNil(in)
			require.NotNil(t, got, "input %v", in)
			assert.Equal(t, forcenum.Convert(in), *got)
		}
	})

	t.Run("absent results", func(t *testing.T) {
		for _, in := range []any{"whatever", nil, map[string]any{}, []any{}, math.Inf(1)} {
			assert.Nil(t, forcenum.ConvertOrNil(in), "input %v", in)
		}
	})

	t.Run("options pass through", func(t *testing.T) {
		got := forcenum.ConvertOrNil("25,12K", forcenum.WithDecimalSymbol(','))
		require.NotNil(t, got)
		assert.Equal(t, 25120.0, *got)
	})

	t.Run("pointers are independent", func(t *testing.T) {
		a := forcenum.ConvertOrNil(1)
		b := forcenum.ConvertOrNil(1)
		require.NotNil(t, a)
		require.NotNil(t, b)
		assert.NotSame(t, a, b)
	})
}

// TestTryConvert verifies the comma-ok form agrees with Convert.
func TestTryConvert(t *testing.T) {
	n, ok := forcenum.TryConvert("5K")
	assert.True(t, ok)
	assert.Equal(t, 5000.0, n)

	n, ok = forcenum.TryConvert("whatever")
	assert.False(t, ok)
	assert.Equal(t, 0.0, n)
}

// TestKindOf verifies input classification.
func TestKindOf(t *testing.T) {
	tests := []struct {
		input any
		want  forcenum.Kind
	}{
		{1, forcenum.KindNumeric},
		{uint8(1), forcenum.KindNumeric},
		{price(1), forcenum.KindNumeric},
		{math.NaN(), forcenum.KindNumeric},
		{true, forcenum.KindBoolean},
		{flag(false), forcenum.KindBoolean},
		{"x", forcenum.KindText},
		{label("x"), forcenum.KindText},
		{json.Number("1"), forcenum.KindText},
		{nil, forcenum.KindOther},
		{[]any{4}, forcenum.KindOther},
		{map[string]int{}, forcenum.KindOther},
		{[]byte("12"), forcenum.KindOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, forcenum.KindOf(tt.input), "input %#v", tt.input)
	}

	assert.Equal(t, "numeric", forcenum.KindNumeric.String())
	assert.Equal(t, "boolean", forcenum.KindBoolean.String())
	assert.Equal(t, "text", forcenum.KindText.String())
	assert.Equal(t, "other", forcenum.KindOther.String())
}

// TestConvert_Concurrent runs conversions from many goroutines.
func TestConvert_Concurrent(t *testing.T) {
	const goroutines = 32

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.Equal(t, 25120.0, forcenum.Convert("25,12K", forcenum.WithDecimalSymbol(',')))
			} else {
				assert.Equal(t, 123.47, forcenum.Convert("USD$ 123.47"))
			}
		}(i)
	}
	wg.Wait()
}
