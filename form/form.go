// Package form holds the flight form state and the rules that turn it into a
// prediction request: time masking and normalization, date conversion and the
// submit-time guards.
package form

import (
	"strings"
)

// Fields is the form as the user sees it. Times are HH.MM and the date is DD.MM.YYYY.
type Fields struct {
	Date       string `schema:"date"`
	DepHHMM    string `schema:"depHHMM"`
	CrsArrHHMM string `schema:"crsArrHHMM"`
	Origin     string `schema:"origin"`
	Dest       string `schema:"dest"`
	Carrier    string `schema:"carrier"`

	// DateISO is the date picker's YYYY-MM-DD value. DatePrev is the value the picker
	// was rendered with, so an untouched picker does not override a typed date.
	DateISO  string `schema:"dateISO"`
	DatePrev string `schema:"datePrev"`
}

// Sample returns a filled-in form that the default model knows about.
func Sample() Fields {
	return Fields{
		Date:       "01.03.2019",
		DepHHMM:    "18.29",
		CrsArrHHMM: "19.25",
		Origin:     "IND",
		Dest:       "BWI",
		Carrier:    "WN",
	}
}

// Payload is the JSON body of a prediction request.
type Payload struct {
	DateStr    string `json:"date_str"`
	DepHHMM    string `json:"dep_hhmm"`
	CrsArrHHMM string `json:"crs_arr_hhmm"`
	Origin     string `json:"origin"`
	Dest       string `json:"dest"`
	Carrier    string `json:"carrier"`
}

// MaskTimes runs both time fields through Mask, as typing into them would.
func (f *Fields) MaskTimes() {
	f.DepHHMM = Mask(f.DepHHMM)
	f.CrsArrHHMM = Mask(f.CrsArrHHMM)
}

// PickDate copies a changed date picker value into Date.
func (f *Fields) PickDate() {
	if f.DateISO == "" || f.DateISO == f.DatePrev {
		return
	}
	if d := FromISO(f.DateISO); d != "" {
		f.Date = d
	}
}

// Blur normalizes both time fields. Fields that are invalid or still incomplete keep
// their current value.
func (f *Fields) Blur() {
	if n := Normalize(f.DepHHMM); n.Kind == Canonical {
		f.DepHHMM = n.Value
	}
	if n := Normalize(f.CrsArrHHMM); n.Kind == Canonical {
		f.CrsArrHHMM = n.Value
	}
}

// Payload checks the form and builds the request body. No field of f is modified.
func (f Fields) Payload(codes Codes) (Payload, error) {
	if f.Origin != "" && f.Dest != "" && strings.EqualFold(f.Origin, f.Dest) {
		return Payload{}, ErrSameAirport
	}

	dep := Normalize(f.DepHHMM)
	arr := Normalize(f.CrsArrHHMM)
	if dep.Kind == Canonical && arr.Kind == Canonical {
		if dep.Value == arr.Value {
			return Payload{}, ErrSameTime
		}
	} else if f.DepHHMM != "" && f.DepHHMM == f.CrsArrHHMM {
		return Payload{}, ErrSameTime
	}
	if dep.Kind != Canonical || arr.Kind != Canonical {
		return Payload{}, ErrTimeFormat
	}

	p := Payload{
		DateStr:    ToISO(strings.TrimSpace(f.Date)),
		DepHHMM:    Plain(dep.Value),
		CrsArrHHMM: Plain(arr.Value),
		Origin:     strings.ToUpper(strings.TrimSpace(f.Origin)),
		Dest:       strings.ToUpper(strings.TrimSpace(f.Dest)),
		Carrier:    strings.ToUpper(strings.TrimSpace(f.Carrier)),
	}
	if err := p.complete(); err != nil {
		return Payload{}, err
	}
	if err := p.known(codes); err != nil {
		return Payload{}, err
	}
	return p, nil
}

// Validate applies the submit-time guards to a payload that arrived already in wire
// format.
func (p Payload) Validate(codes Codes) error {
	if p.Origin != "" && p.Dest != "" && strings.EqualFold(p.Origin, p.Dest) {
		return ErrSameAirport
	}
	if p.DepHHMM != "" && p.DepHHMM == p.CrsArrHHMM {
		return ErrSameTime
	}
	if err := p.complete(); err != nil {
		return err
	}
	if Normalize(p.DepHHMM).Kind != Canonical || Normalize(p.CrsArrHHMM).Kind != Canonical {
		return ErrTimeFormat
	}
	return p.known(codes)
}

// Upper returns p with the airport and carrier codes upper-cased.
func (p Payload) Upper() Payload {
	p.Origin = strings.ToUpper(strings.TrimSpace(p.Origin))
	p.Dest = strings.ToUpper(strings.TrimSpace(p.Dest))
	p.Carrier = strings.ToUpper(strings.TrimSpace(p.Carrier))
	return p
}

// Fields converts p back into display form.
func (p Payload) Fields() Fields {
	return Fields{
		Date:       FromISO(p.DateStr),
		DepHHMM:    FormatHHMM(p.DepHHMM),
		CrsArrHHMM: FormatHHMM(p.CrsArrHHMM),
		Origin:     p.Origin,
		Dest:       p.Dest,
		Carrier:    p.Carrier,
	}
}

func (p Payload) complete() error {
	if !ValidISODate(p.DateStr) ||
		len(p.DepHHMM) != 4 || Plain(p.DepHHMM) != p.DepHHMM ||
		len(p.CrsArrHHMM) != 4 || Plain(p.CrsArrHHMM) != p.CrsArrHHMM ||
		p.Origin == "" || p.Dest == "" || p.Carrier == "" {
		return ErrIncomplete
	}
	return nil
}

func (p Payload) known(codes Codes) error {
	if !codes.HasAirport(p.Origin) || !codes.HasAirport(p.Dest) || !codes.HasCarrier(p.Carrier) {
		return ErrUnknownCode
	}
	return nil
}
