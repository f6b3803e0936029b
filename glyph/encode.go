package glyph

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStyle  = errors.New("glyph: style out of range")
	ErrNegativeValue = errors.New("glyph: negative value")
	ErrValueOverflow = errors.New("glyph: value has more digits than render slots")
	ErrMalformedSlot = errors.New("glyph: malformed slot")
)

// MaxValue is the largest value whose digits fit in RenderCharLength slots
const MaxValue = 999_999_999

// DigitScratch receives extracted digits; sized for the slot count so
// extraction never allocates
type DigitScratch [RenderCharLength]uint8

// DigitCount returns the number of decimal digits in value, 1 for zero.
// Value must be non-negative, negative input returns 0
func DigitCount(value int) int {
	if value == 0 {
		return 1
	}
	n := 0
	for v := value; v > 0; v /= 10 {
		n++
	}
	return n
}

// Digits writes the decimal digits of value into scratch, most significant
// first, and returns how many were written
func Digits(value int, scratch *DigitScratch) (int, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeValue, value)
	}
	n := DigitCount(value)
	if n > RenderCharLength {
		return 0, fmt.Errorf("%w: %d (max %d)", ErrValueOverflow, value, MaxValue)
	}
	for i := n - 1; i >= 0; i-- {
		scratch[i] = uint8(value % 10)
		value /= 10
	}
	return n, nil
}

// Encode builds the packed index that renders value in the given style.
// Values above MaxValue are rejected rather than truncated
func Encode(style, value int) (PackedIndex, error) {
	var idx PackedIndex
	if style < 0 || style >= StyleCount {
		return idx, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidStyle, style, StyleCount-1)
	}

	var digits DigitScratch
	n, err := Digits(value, &digits)
	if err != nil {
		return idx, err
	}

	for i := 0; i < RenderCharLength; i++ {
		if i < n {
			idx.SetSlot(i, packCorners(uint8(GlyphBase(style, int(digits[i])))))
		} else {
			idx.SetSlot(i, BlankWord)
		}
	}
	return idx, nil
}

// Decoded is the content recovered from a packed index
type Decoded struct {
	Style  int
	Value  int
	Digits int
}

// Decode inverts Encode. Populated slots come first, each holding four
// consecutive corner IDs of one style; once a blank word appears every later
// slot must be blank too
func Decode(idx PackedIndex) (Decoded, error) {
	d := Decoded{Style: -1}
	blank := false
	for i := 0; i < RenderCharLength; i++ {
		w := idx.Slot(i)
		if w == BlankWord {
			blank = true
			continue
		}
		if blank {
			return Decoded{}, fmt.Errorf("slot %d: %w: digit after blank", i, ErrMalformedSlot)
		}
		style, digit, err := decodeWord(w)
		if err != nil {
			return Decoded{}, fmt.Errorf("slot %d: %w", i, err)
		}
		if d.Style == -1 {
			d.Style = style
		} else if style != d.Style {
			return Decoded{}, fmt.Errorf("slot %d: %w: style %d after %d", i, ErrMalformedSlot, style, d.Style)
		}
		d.Value = d.Value*10 + digit
		d.Digits++
	}
	if d.Digits == 0 {
		return Decoded{}, fmt.Errorf("%w: no populated slots", ErrMalformedSlot)
	}
	return d, nil
}

// Runes returns the atlas characters d renders, in slot order. Leading zero
// digits are kept
func (d Decoded) Runes() []rune {
	out := make([]rune, d.Digits)
	v := d.Value
	for i := d.Digits - 1; i >= 0; i-- {
		out[i] = RuneAt(d.Style, v%10)
		v /= 10
	}
	return out
}

// Runes decodes idx and returns the characters it renders
func Runes(idx PackedIndex) ([]rune, error) {
	d, err := Decode(idx)
	if err != nil {
		return nil, err
	}
	return d.Runes(), nil
}

func decodeWord(w uint32) (style, digit int, err error) {
	a, b, c, d := Unpack(w)
	if b != a+1 || c != a+2 || d != a+3 || a%CornersPerGlyph != 0 || int(a) >= BlankGlyph {
		return 0, 0, fmt.Errorf("%w: %#08x", ErrMalformedSlot, w)
	}
	return int(a) / StyleStride, int(a) % StyleStride / CornersPerGlyph, nil
}
