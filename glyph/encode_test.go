package glyph

import (
	"errors"
	"testing"
)

func blankSlotsFrom(t *testing.T, idx PackedIndex, from int) {
	t.Helper()
	for i := from; i < RenderCharLength; i++ {
		if w := idx.Slot(i); w != BlankWord {
			t.Errorf("Expected slot %d to be blank %#08x, got %#08x", i, BlankWord, w)
		}
	}
}

func TestBlankWordPacksBlankCorners(t *testing.T) {
	a, b, c, d := Unpack(BlankWord)
	if a != 160 || b != 161 || c != 162 || d != 163 {
		t.Errorf("Expected blank corners (160,161,162,163), got (%d,%d,%d,%d)", a, b, c, d)
	}
	if BlankWord != Pack(160, 161, 162, 163) {
		t.Errorf("Expected BlankWord to equal Pack(160,161,162,163)")
	}
}

func TestEncodeZero(t *testing.T) {
	idx, err := Encode(0, 0)
	if err != nil {
		t.Fatalf("Encode(0, 0) failed: %v", err)
	}

	a, b, c, d := Unpack(idx.Slot(0))
	if a != 0 || b != 1 || c != 2 || d != 3 {
		t.Errorf("Expected slot 0 to pack (0,1,2,3), got (%d,%d,%d,%d)", a, b, c, d)
	}
	blankSlotsFrom(t, idx, 1)
}

func TestEncodeStyledValue(t *testing.T) {
	idx, err := Encode(2, 42)
	if err != nil {
		t.Fatalf("Encode(2, 42) failed: %v", err)
	}

	if w := idx.Slot(0); w != Pack(96, 97, 98, 99) {
		a, b, c, d := Unpack(w)
		t.Errorf("Expected slot 0 (96,97,98,99), got (%d,%d,%d,%d)", a, b, c, d)
	}
	if w := idx.Slot(1); w != Pack(88, 89, 90, 91) {
		a, b, c, d := Unpack(w)
		t.Errorf("Expected slot 1 (88,89,90,91), got (%d,%d,%d,%d)", a, b, c, d)
	}
	blankSlotsFrom(t, idx, 2)
}

func TestEncodeSlotGridMapping(t *testing.T) {
	idx, err := Encode(0, 123456789)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Slot i lives at column i%3, row i/3
	for i := 0; i < RenderCharLength; i++ {
		x, y := i%3, i/3
		want := Pack(uint8(4*(i+1)), uint8(4*(i+1)+1), uint8(4*(i+1)+2), uint8(4*(i+1)+3))
		if idx[x][y] != want {
			t.Errorf("Expected cell (%d,%d) for slot %d to be %#08x, got %#08x", x, y, i, want, idx[x][y])
		}
	}
}

func TestEncodeDigitOrder(t *testing.T) {
	tests := []struct {
		value  int
		digits []int
	}{
		{7, []int{7}},
		{10, []int{1, 0}},
		{905, []int{9, 0, 5}},
		{100000000, []int{1, 0, 0, 0, 0, 0, 0, 0, 0}},
		{MaxValue, []int{9, 9, 9, 9, 9, 9, 9, 9, 9}},
	}

	for _, tt := range tests {
		idx, err := Encode(1, tt.value)
		if err != nil {
			t.Fatalf("Encode(1, %d) failed: %v", tt.value, err)
		}
		for i, digit := range tt.digits {
			a, _, _, _ := Unpack(idx.Slot(i))
			want := uint8(GlyphBase(1, digit))
			if a != want {
				t.Errorf("value %d slot %d: Expected base %d, got %d", tt.value, i, want, a)
			}
		}
		blankSlotsFrom(t, idx, len(tt.digits))
	}
}

func TestEncodeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		style int
		value int
		want  error
	}{
		{"Negative style", -1, 5, ErrInvalidStyle},
		{"Style past atlas", StyleCount, 5, ErrInvalidStyle},
		{"Negative value", 0, -1, ErrNegativeValue},
		{"Ten digits", 0, MaxValue + 1, ErrValueOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := Encode(tt.style, tt.value)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if idx != (PackedIndex{}) {
				t.Errorf("Expected zero index on error, got %v", idx)
			}
		})
	}
}

func TestDigitCount(t *testing.T) {
	tests := []struct {
		value int
		want  int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{999999, 6},
		{MaxValue, 9},
		{MaxValue + 1, 10},
	}
	for _, tt := range tests {
		if got := DigitCount(tt.value); got != tt.want {
			t.Errorf("DigitCount(%d): Expected %d, got %d", tt.value, tt.want, got)
		}
	}
}

func TestDigitsDoesNotAllocate(t *testing.T) {
	var scratch DigitScratch
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = Digits(987654321, &scratch)
	})
	if allocs != 0 {
		t.Errorf("Expected 0 allocations, got %v", allocs)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for style := 0; style < StyleCount; style++ {
		for _, value := range []int{0, 1, 42, 1000, 31337, MaxValue} {
			idx, err := Encode(style, value)
			if err != nil {
				t.Fatalf("Encode(%d, %d) failed: %v", style, value, err)
			}
			got, err := Decode(idx)
			if err != nil {
				t.Fatalf("Decode failed for (%d, %d): %v", style, value, err)
			}
			if got.Style != style || got.Value != value || got.Digits != DigitCount(value) {
				t.Errorf("Expected (%d, %d, %d), got %+v", style, value, DigitCount(value), got)
			}
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	var zero PackedIndex
	if _, err := Decode(zero); !errors.Is(err, ErrMalformedSlot) {
		t.Errorf("Expected ErrMalformedSlot for zero index, got %v", err)
	}

	var empty PackedIndex
	for i := 0; i < RenderCharLength; i++ {
		empty.SetSlot(i, BlankWord)
	}
	if _, err := Decode(empty); !errors.Is(err, ErrMalformedSlot) {
		t.Errorf("Expected ErrMalformedSlot for all-blank index, got %v", err)
	}

	mixed, _ := Encode(0, 11)
	mixed.SetSlot(1, Pack(44, 45, 46, 47)) // style 1 after style 0
	if _, err := Decode(mixed); !errors.Is(err, ErrMalformedSlot) {
		t.Errorf("Expected ErrMalformedSlot for mixed styles, got %v", err)
	}

	gap, _ := Encode(0, 7)
	gap.SetSlot(2, packCorners(uint8(GlyphBase(0, 3))))
	if d, err := Decode(gap); !errors.Is(err, ErrMalformedSlot) {
		t.Errorf("Expected ErrMalformedSlot for digit after blank, got %+v, %v", d, err)
	}
}

func TestDecodedRunesKeepsLeadingZeros(t *testing.T) {
	var idx PackedIndex
	for i := 0; i < RenderCharLength; i++ {
		idx.SetSlot(i, BlankWord)
	}
	idx.SetSlot(0, packCorners(uint8(GlyphBase(0, 0))))
	idx.SetSlot(1, packCorners(uint8(GlyphBase(0, 7))))

	d, err := Decode(idx)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if d.Value != 7 || d.Digits != 2 {
		t.Errorf("Expected value 7 over 2 digits, got %+v", d)
	}
	if got := string(d.Runes()); got != "07" {
		t.Errorf("Expected %q, got %q", "07", got)
	}
}

func TestRunes(t *testing.T) {
	tests := []struct {
		style int
		value int
		want  string
	}{
		{0, 1234, "1234"},
		{1, 90, "pq"},
		{2, 42, "gd"},
		{3, 7, "M"},
	}
	for _, tt := range tests {
		idx, _ := Encode(tt.style, tt.value)
		runes, err := Runes(idx)
		if err != nil {
			t.Fatalf("Runes failed: %v", err)
		}
		if string(runes) != tt.want {
			t.Errorf("style %d value %d: Expected %q, got %q", tt.style, tt.value, tt.want, string(runes))
		}
	}
}
