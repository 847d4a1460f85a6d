package ppu

import "testing"

func TestSystemPaletteTestVectors(t *testing.T) {
	cases := []struct {
		index uint8
		want  RGB
	}{
		{0x0F, RGB{0x00, 0x00, 0x00}},
		{0x21, RGB{0x3F, 0xBF, 0xFF}},
		{0x30, RGB{0xFF, 0xFF, 0xFF}},
	}

	for _, tc := range cases {
		if got := SystemPalette[tc.index]; got != tc.want {
			t.Errorf("SystemPalette[%#02x] = %+v, want %+v", tc.index, got, tc.want)
		}
	}
}
