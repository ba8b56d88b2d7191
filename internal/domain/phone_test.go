package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "national form unchanged", input: "09123456789", expected: "09123456789"},
		{name: "plus international", input: "+989123456789", expected: "09123456789"},
		{name: "double zero international", input: "00989123456789", expected: "09123456789"},
		{name: "bare country code", input: "989123456789", expected: "09123456789"},
		{name: "nine digits starting with 9", input: "912345678", expected: "0912345678"},
		{name: "0098 with non-mobile remainder", input: "00982112345678", expected: "02112345678"},
		{name: "+98 with non-mobile remainder", input: "+982112345678", expected: "02112345678"},
		{name: "98 with non-mobile remainder", input: "982112345678", expected: "02112345678"},
		{name: "bare 0098 stays", input: "0098", expected: "0098"},
		{name: "bare +98 stays", input: "+98", expected: "+98"},
		{name: "bare 98 stays", input: "98", expected: "98"},
		{name: "separators stripped", input: "0912 345-6789", expected: "09123456789"},
		{name: "parenthesized international", input: "+98 (912) 345 6789", expected: "09123456789"},
		{name: "inner plus dropped", input: "09+12", expected: "0912"},
		{name: "letters dropped", input: "abc", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "short partial", input: "091", expected: "091"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.input))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{
		"", "+", "00", "0098", "00980989123456", "+98098912345", "980098912",
		"+989123456789", "00989123456789", "989123456789", "912345678", "09123456789",
		"9", "98", "989", "+9", "++989123", "0+98",
	}

	alphabet := []rune("0123456789+ -a")
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := rng.Intn(16)
		s := make([]rune, n)
		for j := range s {
			s[j] = alphabet[rng.Intn(len(alphabet))]
		}
		inputs = append(inputs, string(s))
	}

	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "input %q", in)
	}
}

func TestNormalizePhone_NationalFormIsFixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		b := []byte("09")
		for j := 0; j < 9; j++ {
			b = append(b, byte('0'+rng.Intn(10)))
		}
		assert.Equal(t, string(b), NormalizePhone(string(b)))
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKind VerdictKind
		expectedErr  error
	}{
		{name: "empty", input: "", expectedKind: VerdictEmpty},
		{name: "whitelisted operator", input: "09123456789", expectedKind: VerdictValid},
		{name: "unknown operator", input: "09993456789", expectedKind: VerdictError, expectedErr: ErrInvalidOperator},
		{name: "foreign country code", input: "+1234", expectedKind: VerdictError, expectedErr: ErrUnsupportedCountry},
		{name: "lone plus is not a country error", input: "+", expectedKind: VerdictError, expectedErr: ErrInvalidStart},
		{name: "+98 prefix alone", input: "+98", expectedKind: VerdictError, expectedErr: ErrInvalidStart},
		{name: "+98 with letters", input: "+98912abc", expectedKind: VerdictError, expectedErr: ErrDigitsOnly},
		{name: "foreign 00 form", input: "0044123", expectedKind: VerdictError, expectedErr: ErrUnsupportedCountry00},
		{name: "lone 00", input: "00", expectedKind: VerdictValid},
		{name: "0098 prefix", input: "0098", expectedKind: VerdictValid},
		{name: "partial national", input: "0912", expectedKind: VerdictValid},
		{name: "digit not starting with 0 or 9", input: "1234", expectedKind: VerdictError, expectedErr: ErrInvalidStart},
		{name: "too many digits", input: "091234567890", expectedKind: VerdictError, expectedErr: ErrTooManyDigits},
		{name: "complete +989", input: "+989123456789", expectedKind: VerdictValid},
		{name: "complete 00989", input: "00989353456789", expectedKind: VerdictValid},
		{name: "rightel operator", input: "09011234567", expectedKind: VerdictValid},
		{name: "taliya operator", input: "09321234567", expectedKind: VerdictValid},
		{name: "irancell gap 934 belongs to taliya", input: "09341234567", expectedKind: VerdictValid},
		{name: "unlisted 940", input: "09401234567", expectedKind: VerdictError, expectedErr: ErrInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := ValidatePhone(tt.input)
			assert.Equal(t, tt.expectedKind, verdict.Kind)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, verdict.Err, tt.expectedErr)
			} else {
				assert.NoError(t, verdict.Err)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"09123456789", true},
		{"+989123456789", true},
		{"00989123456789", true},
		{"989123456789", true},
		{"0912345678", false},
		{"09993456789", false},
		{"", false},
		{"+1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidPhone(tt.input))
		})
	}
}

func TestIsCompletePhone(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"09123456789", true},
		{"0912345678", false},
		{"+98912345678", true},
		{"+989123456789", false},
		{"0098912345678", true},
		{"00989123456789", false},
		{"98912345678", true},
		{"989123456789", false},
		{"9891234567", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCompletePhone(tt.input))
		})
	}
}

func TestPhoneErrorText(t *testing.T) {
	assert.Empty(t, PhoneErrorText(nil))
	assert.Equal(t, "پیش شماره موبایل معتبر نیست", PhoneErrorText(ErrInvalidOperator))
	assert.Equal(t, "فقط اعداد مجاز هستند", PhoneErrorText(ErrDigitsOnly))
}
