package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{2340, "2,340"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatGrams(t *testing.T) {
	if got := FormatGrams(80); got != "80 g" {
		t.Errorf("FormatGrams(80) = %q", got)
	}
	if got := FormatGrams(12.5); got != "12.5 g" {
		t.Errorf("FormatGrams(12.5) = %q", got)
	}
}

func TestFormatKg(t *testing.T) {
	if got := FormatKg(0.5); got != "0.5 kg" {
		t.Errorf("FormatKg(0.5) = %q", got)
	}
}

func TestFormatKcal(t *testing.T) {
	if got := FormatKcal(2340); got != "2,340 kcal" {
		t.Errorf("FormatKcal(2340) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.52); got != "52%" {
		t.Errorf("FormatPercent(0.52) = %q", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("abcdefghij"); got != "abcdefgh" {
		t.Errorf("ShortID = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID = %q", got)
	}
}
