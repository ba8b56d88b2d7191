package domain

import (
	"errors"
	"strings"
)

// Phone validation errors
var (
	ErrUnsupportedCountry   = errors.New("unsupported country code")
	ErrUnsupportedCountry00 = errors.New("unsupported country code (00 form)")
	ErrDigitsOnly           = errors.New("only digits are allowed")
	ErrInvalidStart         = errors.New("phone must start with 09, 00989 or +989")
	ErrInvalidOperator      = errors.New("invalid operator prefix")
	ErrTooManyDigits        = errors.New("phone must not exceed 11 digits")
)

// NationalPhoneLength is the length of a normalized mobile number (09xxxxxxxxx)
const NationalPhoneLength = 11

// operatorPrefixes are the three digits after the leading 0 of Iranian mobile numbers
var operatorPrefixes = map[string]struct{}{
	// MCI
	"912": {}, "913": {}, "914": {}, "915": {}, "916": {}, "917": {}, "918": {}, "919": {},
	// Irancell
	"930": {}, "933": {}, "935": {}, "936": {}, "937": {}, "938": {}, "939": {},
	// Rightel
	"901": {}, "902": {}, "903": {}, "904": {}, "905": {}, "941": {},
	"920": {}, "921": {}, "922": {}, "923": {},
	// Taliya
	"931": {}, "932": {}, "934": {},
}

// VerdictKind is the outcome of validating a phone string
type VerdictKind int

const (
	VerdictEmpty VerdictKind = iota
	VerdictError
	VerdictValid
)

// PhoneVerdict holds the validation outcome and, for VerdictError, the reason
type PhoneVerdict struct {
	Kind VerdictKind
	Err  error
}

// IsOperatorPrefix reports whether prefix is a known mobile operator prefix
func IsOperatorPrefix(prefix string) bool {
	_, ok := operatorPrefixes[prefix]
	return ok
}

// cleanPhone keeps decimal digits and a single leading '+'
func cleanPhone(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// rewritePhone applies the first matching lead-prefix rule.
// Order matters: 00989 must be checked before the shorter 0098 form.
func rewritePhone(cleaned string) string {
	switch {
	case strings.HasPrefix(cleaned, "00989"):
		return "0" + cleaned[4:]
	case strings.HasPrefix(cleaned, "+989"):
		return "0" + cleaned[3:]
	case strings.HasPrefix(cleaned, "989"):
		return "0" + cleaned[2:]
	case strings.HasPrefix(cleaned, "0098") && len(cleaned) > 4:
		return "0" + cleaned[4:]
	case strings.HasPrefix(cleaned, "+98") && len(cleaned) > 3:
		return "0" + cleaned[3:]
	case strings.HasPrefix(cleaned, "98") && len(cleaned) > 2:
		return "0" + cleaned[2:]
	case strings.HasPrefix(cleaned, "9") && len(cleaned) == 9:
		return "0" + cleaned
	}
	return cleaned
}

// NormalizePhone maps any supported lead-prefix style to the national 0-prefixed form.
// Rules are reapplied until the value is stable, so the result is always a fixed point.
func NormalizePhone(value string) string {
	current := cleanPhone(value)
	for {
		next := rewritePhone(current)
		if next == current {
			return current
		}
		current = next
	}
}

// ValidatePhone checks a raw (possibly partial) phone input
func ValidatePhone(value string) PhoneVerdict {
	if value == "" {
		return PhoneVerdict{Kind: VerdictEmpty}
	}

	if err := validatePhone(value); err != nil {
		return PhoneVerdict{Kind: VerdictError, Err: err}
	}

	return PhoneVerdict{Kind: VerdictValid}
}

func validatePhone(value string) error {
	if strings.HasPrefix(value, "+") {
		if !strings.HasPrefix(value, "+98") && value != "+" {
			return ErrUnsupportedCountry
		}
		if strings.HasPrefix(value, "+98") && len(value) > 3 && !isDigits(value[3:]) {
			return ErrDigitsOnly
		}
	}

	if strings.HasPrefix(value, "00") && !strings.HasPrefix(value, "0098") && value != "00" {
		return ErrUnsupportedCountry00
	}

	normalized := NormalizePhone(value)
	if normalized == "" {
		return nil
	}

	if !strings.HasPrefix(normalized, "0") {
		return ErrInvalidStart
	}

	if len(normalized) == NationalPhoneLength && !IsOperatorPrefix(normalized[1:4]) {
		return ErrInvalidOperator
	}

	if len(normalized) > NationalPhoneLength {
		return ErrTooManyDigits
	}

	return nil
}

// IsValidPhone reports whether value passes validation and normalizes to a full national number
func IsValidPhone(value string) bool {
	if ValidatePhone(value).Err != nil {
		return false
	}
	return isNationalPhone(NormalizePhone(value))
}

func isNationalPhone(normalized string) bool {
	return len(normalized) == NationalPhoneLength && strings.HasPrefix(normalized, "0")
}

// IsCompletePhone reports whether the raw value has the exact shape of a finished number
func IsCompletePhone(value string) bool {
	switch {
	case strings.HasPrefix(value, "09") && len(value) == 11:
		return true
	case strings.HasPrefix(value, "+989") && len(value) == 12:
		return true
	case strings.HasPrefix(value, "00989") && len(value) == 13:
		return true
	case strings.HasPrefix(value, "989") && len(value) == 11:
		return true
	}
	return false
}

// PhoneErrorText returns the user-facing message for a phone validation error
func PhoneErrorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedCountry):
		return "فقط شماره موبایل ایران (+98) پشتیبانی میشود"
	case errors.Is(err, ErrUnsupportedCountry00):
		return "فقط شماره موبایل ایران (0098) پشتیبانی میشود"
	case errors.Is(err, ErrDigitsOnly):
		return "فقط اعداد مجاز هستند"
	case errors.Is(err, ErrInvalidStart):
		return "شماره موبایل باید با ۰۹، ۰۰۹۸۹ یا +۹۸۹ شروع شود"
	case errors.Is(err, ErrInvalidOperator):
		return "پیش شماره موبایل معتبر نیست"
	case errors.Is(err, ErrTooManyDigits):
		return "شماره موبایل نباید بیشتر از ۱۱ رقم باشد"
	}
	return err.Error()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
