package service

import (
	"strings"

	"phonegate/internal/domain"
)

// Keys understood by the phone input besides digits and '+'
const (
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyTab        = "Tab"
	KeyEnter      = "Enter"
)

// PhoneInput is the state behind the sign-in phone field.
// It is not safe for concurrent use; one form owns it.
type PhoneInput struct {
	phone   string
	err     error
	mounted bool
}

// NewPhoneInput creates an input holding initial without validating it
func NewPhoneInput(initial string) *PhoneInput {
	return &PhoneInput{phone: initial}
}

// Mount calls focus the first time the input is shown
func (p *PhoneInput) Mount(focus func()) {
	if p.mounted {
		return
	}
	p.mounted = true
	if focus != nil {
		focus()
	}
}

// OnChange accepts a new field value. Values with disallowed characters are
// dropped silently; anything else is stored even when it fails validation.
func (p *PhoneInput) OnChange(value string) bool {
	if !allowedPhoneChars(value) {
		return false
	}

	p.err = domain.ValidatePhone(value).Err
	p.phone = value
	return true
}

// OnKeyDown reports whether a keystroke may proceed
func (p *PhoneInput) OnKeyDown(key string, caret int, value string) bool {
	// keep the international lead from being half-deleted
	if key == KeyBackspace {
		if strings.HasPrefix(value, "+") && caret == 1 {
			return false
		}
		if strings.HasPrefix(value, "00") && caret == 2 {
			return false
		}
	}

	if !isInputKey(key) {
		return false
	}

	if key == "+" && caret != 0 {
		return false
	}

	return true
}

// OnPaste reports whether pasted text may be inserted; a rejected paste surfaces its error
func (p *PhoneInput) OnPaste(text string) bool {
	if err := domain.ValidatePhone(text).Err; err != nil {
		p.err = err
		return false
	}
	return true
}

// Clear resets value and error
func (p *PhoneInput) Clear() {
	p.phone = ""
	p.err = nil
}

// SetPhone replaces the value without filtering or validation
func (p *PhoneInput) SetPhone(value string) {
	p.phone = value
}

// Phone returns the raw value
func (p *PhoneInput) Phone() string {
	return p.phone
}

// FormattedPhone returns the value for display.
// TODO: group digits once a display mask is agreed on; until then it is the raw value.
func (p *PhoneInput) FormattedPhone() string {
	return p.phone
}

// Err returns the current validation error, if any
func (p *PhoneInput) Err() error {
	return p.err
}

// IsValid reports whether the value is a full, error-free national number
func (p *PhoneInput) IsValid() bool {
	if p.err != nil {
		return false
	}
	normalized := domain.NormalizePhone(p.phone)
	return len(normalized) == domain.NationalPhoneLength && strings.HasPrefix(normalized, "0")
}

// IsComplete reports whether the raw value has a finished shape
func (p *PhoneInput) IsComplete() bool {
	return domain.IsCompletePhone(p.phone)
}

func allowedPhoneChars(value string) bool {
	if strings.HasPrefix(value, "+") || strings.HasPrefix(value, "00") {
		return strings.Trim(value, "0123456789+") == ""
	}
	return strings.Trim(value, "0123456789") == ""
}

func isInputKey(key string) bool {
	switch key {
	case "+", KeyBackspace, KeyDelete, KeyArrowLeft, KeyArrowRight, KeyTab, KeyEnter:
		return true
	}
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
