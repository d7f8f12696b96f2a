package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tells the caller what to do with a Normalize result.
type Kind int

const (
	// Unchanged means there is not enough input yet; the field must be left as is.
	Unchanged Kind = iota
	// Invalid means the hour or minute is out of range.
	Invalid
	// Canonical means Value holds a zero-padded HH.MM string.
	Canonical
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Invalid:
		return "invalid"
	case Canonical:
		return "canonical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Normalized struct {
	Kind  Kind
	Value string
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func timeDigits(s string) string {
	d := digits(s)
	if len(d) > 4 {
		d = d[:4]
	}
	return d
}

// Mask formats raw typed text as a partial HH.MM string.
// It never rejects input: "2" -> "2", "200" -> "20.0", "2000" -> "20.00".
func Mask(s string) string {
	d := timeDigits(s)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "." + d[2:]
}

// Normalize pads and range-checks a masked time, as done when the field loses focus.
func Normalize(s string) Normalized {
	d := timeDigits(s)
	if len(d) < 3 {
		return Normalized{Kind: Unchanged}
	}
	minute := d[2:]
	for len(minute) < 2 {
		minute += "0"
	}
	hh, err := strconv.Atoi(d[:2])
	if err != nil {
		return Normalized{Kind: Invalid}
	}
	mm, err := strconv.Atoi(minute)
	if err != nil {
		return Normalized{Kind: Invalid}
	}
	if hh > 23 || mm > 59 {
		return Normalized{Kind: Invalid}
	}
	return Normalized{Kind: Canonical, Value: fmt.Sprintf("%02d.%02d", hh, mm)}
}

// Plain returns the four digits of a time, or "" if there are not exactly four.
func Plain(s string) string {
	d := timeDigits(s)
	if len(d) != 4 {
		return ""
	}
	return d
}

// FormatHHMM turns "2024" into "20.24". Anything that is not four characters long is
// returned unchanged.
func FormatHHMM(s string) string {
	if len(s) != 4 {
		return s
	}
	return s[:2] + "." + s[2:]
}
