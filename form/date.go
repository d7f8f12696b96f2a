package form

import (
	"regexp"
	"time"
)

var (
	displayDateRe = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)
	isoDateRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// ToISO converts DD.MM.YYYY to YYYY-MM-DD, or returns "" if s does not have that shape.
func ToISO(display string) string {
	m := displayDateRe.FindStringSubmatch(display)
	if m == nil {
		return ""
	}
	return m[3] + "-" + m[2] + "-" + m[1]
}

// FromISO converts YYYY-MM-DD to DD.MM.YYYY, or returns "" if s does not have that shape.
func FromISO(iso string) string {
	m := isoDateRe.FindStringSubmatch(iso)
	if m == nil {
		return ""
	}
	return m[3] + "." + m[2] + "." + m[1]
}

// ValidISODate reports whether iso is a YYYY-MM-DD string naming a real calendar day.
func ValidISODate(iso string) bool {
	if !isoDateRe.MatchString(iso) {
		return false
	}
	_, err := time.Parse("2006-01-02", iso)
	return err == nil
}
