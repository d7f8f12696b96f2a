package form

import (
	"fmt"
	"strings"
	"testing"
)

func TestMask(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"2":       "2",
		"20":      "20",
		"200":     "20.0",
		"2000":    "20.00",
		"20001":   "20.00",
		"20.0":    "20.0",
		"2a0b0c9": "20.09",
		"..::":    "",
		"18.29":   "18.29",
	}
	for in, want := range cases {
		if got := Mask(in); got != want {
			t.Errorf("Mask(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaskLength(t *testing.T) {
	d := "0123"
	for n := 0; n <= 4; n++ {
		in := d[:n]
		got := Mask(in)
		want := n
		if n >= 3 {
			want++
		}
		if len(got) != want {
			t.Errorf("Mask(%q) = %q: length %d, want %d", in, got, len(got), want)
		}
		seps := strings.Count(got, ".")
		if n >= 3 && seps != 1 {
			t.Errorf("Mask(%q) = %q: %d separators, want 1", in, got, seps)
		}
		if n < 3 && seps != 0 {
			t.Errorf("Mask(%q) = %q: unexpected separator", in, got)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Normalized
	}{
		{"", Normalized{Kind: Unchanged}},
		{"1", Normalized{Kind: Unchanged}},
		{"18", Normalized{Kind: Unchanged}},
		{"18.", Normalized{Kind: Unchanged}},
		{"1829", Normalized{Kind: Canonical, Value: "18.29"}},
		{"18.29", Normalized{Kind: Canonical, Value: "18.29"}},
		{"18.3", Normalized{Kind: Canonical, Value: "18.30"}},
		{"183", Normalized{Kind: Canonical, Value: "18.30"}},
		{"0000", Normalized{Kind: Canonical, Value: "00.00"}},
		{"2359", Normalized{Kind: Canonical, Value: "23.59"}},
		{"0905", Normalized{Kind: Canonical, Value: "09.05"}},
		{"2400", Normalized{Kind: Invalid}},
		{"2360", Normalized{Kind: Invalid}},
		{"2575", Normalized{Kind: Invalid}},
		{"930", Normalized{Kind: Invalid}},
		{"187", Normalized{Kind: Invalid}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeAllValid(t *testing.T) {
	for hh := 0; hh < 24; hh++ {
		for mm := 0; mm < 60; mm++ {
			in := Mask(pad2(hh) + pad2(mm))
			got := Normalize(in)
			want := pad2(hh) + "." + pad2(mm)
			if got.Kind != Canonical || got.Value != want {
				t.Fatalf("Normalize(%q) = %+v, want %s", in, got, want)
			}
		}
	}
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

func TestPlain(t *testing.T) {
	cases := map[string]string{
		"18.29": "1829",
		"1829":  "1829",
		"18.3":  "",
		"":      "",
		"12345": "1234",
	}
	for in, want := range cases {
		if got := Plain(in); got != want {
			t.Errorf("Plain(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatHHMM(t *testing.T) {
	cases := map[string]string{
		"2024":  "20.24",
		"0905":  "09.05",
		"905":   "905",
		"":      "",
		"20.24": "20.24",
	}
	for in, want := range cases {
		if got := FormatHHMM(in); got != want {
			t.Errorf("FormatHHMM(%q) = %q, want %q", in, got, want)
		}
	}
}
