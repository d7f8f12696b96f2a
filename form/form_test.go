package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPayloadSample(t *testing.T) {
	got, err := Sample().Payload(DefaultCodes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Payload{
		DateStr:    "2019-03-01",
		DepHHMM:    "1829",
		CrsArrHHMM: "1925",
		Origin:     "IND",
		Dest:       "BWI",
		Carrier:    "WN",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *Fields)
		want   error
	}{
		{"same airport", func(f *Fields) { f.Dest = "IND" }, ErrSameAirport},
		{"same airport case", func(f *Fields) { f.Origin = "ind"; f.Dest = "IND" }, ErrSameAirport},
		{"same time", func(f *Fields) { f.CrsArrHHMM = "18.29" }, ErrSameTime},
		{"same time after normalizing", func(f *Fields) { f.DepHHMM = "18.3"; f.CrsArrHHMM = "18.30" }, ErrSameTime},
		{"same invalid time", func(f *Fields) { f.DepHHMM = "25.75"; f.CrsArrHHMM = "25.75" }, ErrSameTime},
		{"invalid departure", func(f *Fields) { f.DepHHMM = "25.75" }, ErrTimeFormat},
		{"short arrival", func(f *Fields) { f.CrsArrHHMM = "19" }, ErrTimeFormat},
		{"empty departure", func(f *Fields) { f.DepHHMM = "" }, ErrTimeFormat},
		{"bad date", func(f *Fields) { f.Date = "1.3.2019" }, ErrIncomplete},
		{"impossible date", func(f *Fields) { f.Date = "30.02.2019" }, ErrIncomplete},
		{"no carrier", func(f *Fields) { f.Carrier = "" }, ErrIncomplete},
		{"no origin", func(f *Fields) { f.Origin = "" }, ErrIncomplete},
		{"unknown airport", func(f *Fields) { f.Dest = "XXX" }, ErrUnknownCode},
		{"unknown carrier", func(f *Fields) { f.Carrier = "UA" }, ErrUnknownCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Sample()
			tt.modify(&f)
			before := f
			_, err := f.Payload(DefaultCodes())
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if f != before {
				t.Fatalf("form modified: %+v", f)
			}
		})
	}
}

func TestPayloadLowercaseCodes(t *testing.T) {
	f := Sample()
	f.Origin, f.Dest, f.Carrier = "ind", "bwi", "wn"
	p, err := f.Payload(DefaultCodes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Origin != "IND" || p.Dest != "BWI" || p.Carrier != "WN" {
		t.Fatalf("codes not upper-cased: %+v", p)
	}
}

func TestMaskTimesAndBlur(t *testing.T) {
	f := Fields{DepHHMM: "183", CrsArrHHMM: "2575"}
	f.MaskTimes()
	if f.DepHHMM != "18.3" || f.CrsArrHHMM != "25.75" {
		t.Fatalf("unexpected masked fields: %+v", f)
	}
	f.Blur()
	if f.DepHHMM != "18.30" {
		t.Errorf("expected departure to be normalized, got %q", f.DepHHMM)
	}
	if f.CrsArrHHMM != "25.75" {
		t.Errorf("invalid arrival must be left alone, got %q", f.CrsArrHHMM)
	}

	f = Fields{DepHHMM: "1"}
	f.Blur()
	if f.DepHHMM != "1" {
		t.Errorf("incomplete departure must be left alone, got %q", f.DepHHMM)
	}
}

func TestPickDate(t *testing.T) {
	tests := []struct {
		name string
		f    Fields
		want string
	}{
		{"picked", Fields{Date: "01.03.2019", DateISO: "2019-03-02", DatePrev: "2019-03-01"}, "02.03.2019"},
		{"picked into empty", Fields{DateISO: "2020-12-31"}, "31.12.2020"},
		{"untouched picker keeps typed date", Fields{Date: "05.03.2019", DateISO: "2019-03-01", DatePrev: "2019-03-01"}, "05.03.2019"},
		{"no picker value", Fields{Date: "01.03.2019"}, "01.03.2019"},
		{"malformed picker value", Fields{Date: "01.03.2019", DateISO: "2019-3-2"}, "01.03.2019"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.f
			f.PickDate()
			if f.Date != tt.want {
				t.Errorf("Date = %q, want %q", f.Date, tt.want)
			}
		})
	}
}

func TestPayloadValidate(t *testing.T) {
	base := Payload{
		DateStr:    "2019-03-01",
		DepHHMM:    "1829",
		CrsArrHHMM: "1925",
		Origin:     "IND",
		Dest:       "BWI",
		Carrier:    "WN",
	}
	if err := base.Validate(DefaultCodes()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		modify func(p *Payload)
		want   error
	}{
		{"same airport", func(p *Payload) { p.Dest = "IND" }, ErrSameAirport},
		{"same time", func(p *Payload) { p.CrsArrHHMM = "1829" }, ErrSameTime},
		{"separator in time", func(p *Payload) { p.DepHHMM = "18.29" }, ErrIncomplete},
		{"three digit time", func(p *Payload) { p.DepHHMM = "183" }, ErrIncomplete},
		{"display date", func(p *Payload) { p.DateStr = "01.03.2019" }, ErrIncomplete},
		{"out of range", func(p *Payload) { p.DepHHMM = "2460" }, ErrTimeFormat},
		{"unknown", func(p *Payload) { p.Origin = "ZZZ" }, ErrUnknownCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.modify(&p)
			if err := p.Validate(DefaultCodes()); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPayloadFields(t *testing.T) {
	p, err := Sample().Payload(DefaultCodes())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Sample(), p.Fields()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMessageTable(t *testing.T) {
	errs := []*ValidationError{ErrSameAirport, ErrSameTime, ErrTimeFormat, ErrIncomplete, ErrUnknownCode}
	seen := map[string]bool{}
	for _, e := range errs {
		msg := e.Error()
		if msg == string(e.ID) {
			t.Errorf("no message for %s", e.ID)
		}
		if seen[msg] {
			t.Errorf("duplicate message %q", msg)
		}
		seen[msg] = true
	}
	if got := Message("does.not.exist"); got != "does.not.exist" {
		t.Errorf("unexpected fallback %q", got)
	}
}

func TestCodes(t *testing.T) {
	c := DefaultCodes()
	if !c.HasAirport("ind") || c.HasAirport("XXX") {
		t.Error("unexpected airport lookup result")
	}
	if !c.HasCarrier("WN") || c.HasCarrier("UA") {
		t.Error("unexpected carrier lookup result")
	}
	c.Airports[0] = "ZZZ"
	if DefaultCodes().Airports[0] != "ATL" {
		t.Error("DefaultCodes shares its backing array")
	}
}
