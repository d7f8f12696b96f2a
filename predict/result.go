package predict

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"nyiyui.ca/flight-delay/form"
)

// The service has used two naming schemes for its response. Keys are tried in order.
var (
	DelayKeys   = []string{"pred_delay_min", "tahmini_varis_gecikmesi_dk"}
	ArrivalKeys = []string{"pred_arrival_hhmm", "tahmini_varis_saati_hhmm"}
)

// Result is a decoded prediction response.
type Result struct {
	// Delay is a float64 when the service sent a number, nil when no key matched.
	Delay   any
	Arrival string
	Raw     json.RawMessage
}

func ParseResult(data []byte) (*Result, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	r := &Result{Raw: json.RawMessage(bytes.Clone(data))}
	if raw, ok := first(fields, DelayKeys); ok {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode delay: %w", err)
		}
		r.Delay = v
	}
	if raw, ok := first(fields, ArrivalKeys); ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			r.Arrival = s
		} else {
			r.Arrival = string(raw)
		}
	}
	return r, nil
}

func first(fields map[string]json.RawMessage, keys []string) (json.RawMessage, bool) {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || string(bytes.TrimSpace(raw)) == "null" {
			continue
		}
		return raw, true
	}
	return nil, false
}

// DelayMinutes returns the delay when the service sent a number.
func (r *Result) DelayMinutes() (float64, bool) {
	f, ok := r.Delay.(float64)
	return f, ok
}

// FormatDelay renders minutes with one decimal, e.g. "12.3 min".
func FormatDelay(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', 1, 64) + " " + form.Message(form.MsgMinutes)
}

// DelayText renders a numeric delay with FormatDelay and anything else as-is.
func (r *Result) DelayText() string {
	if f, ok := r.DelayMinutes(); ok {
		return FormatDelay(f)
	}
	if r.Delay == nil {
		return ""
	}
	return fmt.Sprint(r.Delay)
}

// ArrivalText renders the arrival as HH.MM.
func (r *Result) ArrivalText() string {
	return form.FormatHHMM(r.Arrival)
}
