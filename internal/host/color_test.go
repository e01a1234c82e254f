package host

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#000000", RGB(0, 0, 0), false},
		{"#ff8000", RGB(255, 128, 0), false},
		{"#FFF", RGB(255, 255, 255), false},
		{" #0a0b0c ", RGB(10, 11, 12), false},
		{"ff8000", RGBA{}, true},
		{"#12345", RGBA{}, true},
		{"#gggggg", RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorNamed(t *testing.T) {
	for _, name := range []string{"darkmagenta", "DarkMagenta", "dark_magenta", "dark-magenta"} {
		got, err := ParseColor(name)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", name, err)
			continue
		}
		if got != DarkMagenta {
			t.Errorf("ParseColor(%q) = %v, want %v", name, got, DarkMagenta)
		}
	}

	if _, err := ParseColor("notacolour"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestRGBAHexRoundTrip(t *testing.T) {
	for _, c := range []RGBA{Black, White, DarkRed, LightCyan, RGB(1, 2, 3)} {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", c.Hex(), err)
		}
		if got != c {
			t.Errorf("round trip of %v gave %v", c, got)
		}
	}
}

func TestRGBALerp(t *testing.T) {
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("Lerp(1) = %v", got)
	}
	mid := Black.Lerp(White, 0.5)
	if mid.R < 127 || mid.R > 128 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("Lerp(0.5) = %v, want mid grey", mid)
	}
	if got := Black.Lerp(White, 7); got != White {
		t.Errorf("Lerp should clamp t, got %v", got)
	}
	if got := Transparent.Lerp(Black, 1).A; got != 255 {
		t.Errorf("alpha = %d, want 255", got)
	}
}

func TestRGBAString(t *testing.T) {
	if got := RGB(255, 0, 16).String(); got != "#ff0010" {
		t.Errorf("String() = %q", got)
	}
	if got := NewRGBA(0, 0, 0, 128).String(); got != "#000000/128" {
		t.Errorf("String() = %q", got)
	}
}

func TestRGBAToTcell(t *testing.T) {
	r, g, b := RGB(12, 34, 56).ToTcell().RGB()
	if r != 12 || g != 34 || b != 56 {
		t.Errorf("ToTcell().RGB() = %d,%d,%d", r, g, b)
	}
}
