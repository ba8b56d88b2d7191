package service

// Keypad drives a PhoneInput the way a text field does: every press goes
// through OnKeyDown first, and edits are applied at the caret via OnChange.
type Keypad struct {
	input *PhoneInput
	caret int
}

// NewKeypad creates a keypad with the caret after the current value
func NewKeypad(input *PhoneInput) *Keypad {
	k := &Keypad{input: input}
	k.Reset()
	return k
}

// Caret returns the cursor position
func (k *Keypad) Caret() int {
	return k.caret
}

// Reset moves the caret to the end of the value
func (k *Keypad) Reset() {
	k.caret = len([]rune(k.input.Phone()))
}

// Press handles a key and reports whether it requested a submit
func (k *Keypad) Press(key string) bool {
	value := []rune(k.input.Phone())
	if k.caret > len(value) {
		k.caret = len(value)
	}

	if !k.input.OnKeyDown(key, k.caret, string(value)) {
		return false
	}

	switch key {
	case KeyEnter:
		return true
	case KeyTab:
	case KeyArrowLeft:
		if k.caret > 0 {
			k.caret--
		}
	case KeyArrowRight:
		if k.caret < len(value) {
			k.caret++
		}
	case KeyBackspace:
		if k.caret == 0 {
			return false
		}
		next := string(value[:k.caret-1]) + string(value[k.caret:])
		if k.input.OnChange(next) {
			k.caret--
		}
	case KeyDelete:
		if k.caret >= len(value) {
			return false
		}
		next := string(value[:k.caret]) + string(value[k.caret+1:])
		k.input.OnChange(next)
	default:
		next := string(value[:k.caret]) + key + string(value[k.caret:])
		if k.input.OnChange(next) {
			k.caret++
		}
	}

	return false
}
