package form

import "testing"

func TestToISO(t *testing.T) {
	cases := map[string]string{
		"01.03.2019":  "2019-03-01",
		"31.12.1999":  "1999-12-31",
		"1.3.2019":    "",
		"01-03-2019":  "",
		"2019-03-01":  "",
		" 01.03.2019": "",
		"":            "",
	}
	for in, want := range cases {
		if got := ToISO(in); got != want {
			t.Errorf("ToISO(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFromISO(t *testing.T) {
	cases := map[string]string{
		"2019-03-01": "01.03.2019",
		"2019-3-1":   "",
		"01.03.2019": "",
		"":           "",
	}
	for in, want := range cases {
		if got := FromISO(in); got != want {
			t.Errorf("FromISO(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	for _, display := range []string{"01.03.2019", "29.02.2024", "99.99.0000"} {
		if got := FromISO(ToISO(display)); got != display {
			t.Errorf("FromISO(ToISO(%q)) = %q", display, got)
		}
	}
	for _, iso := range []string{"2019-03-01", "0000-99-99"} {
		if got := ToISO(FromISO(iso)); got != iso {
			t.Errorf("ToISO(FromISO(%q)) = %q", iso, got)
		}
	}
}

func TestValidISODate(t *testing.T) {
	if !ValidISODate("2024-02-29") {
		t.Error("2024-02-29 should be valid")
	}
	if ValidISODate("2023-02-29") {
		t.Error("2023-02-29 should not be valid")
	}
	if ValidISODate("2019-3-01") {
		t.Error("2019-3-01 should not be valid")
	}
}
