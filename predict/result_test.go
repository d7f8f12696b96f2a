package predict

import "testing"

func TestParseResultAliases(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		delayText   string
		arrivalText string
	}{
		{
			name:        "primary keys",
			body:        `{"pred_delay_min": 7.04, "pred_arrival_hhmm": "1932"}`,
			delayText:   "7.0 min",
			arrivalText: "19.32",
		},
		{
			name:        "legacy keys",
			body:        `{"tahmini_varis_gecikmesi_dk": -3.26, "tahmini_varis_saati_hhmm": "1921"}`,
			delayText:   "-3.3 min",
			arrivalText: "19.21",
		},
		{
			name:        "primary wins",
			body:        `{"pred_delay_min": 1, "tahmini_varis_gecikmesi_dk": 2, "pred_arrival_hhmm": "0001", "tahmini_varis_saati_hhmm": "0002"}`,
			delayText:   "1.0 min",
			arrivalText: "00.01",
		},
		{
			name:        "null primary falls back",
			body:        `{"pred_delay_min": null, "tahmini_varis_gecikmesi_dk": 2.5, "pred_arrival_hhmm": null, "tahmini_varis_saati_hhmm": "0002"}`,
			delayText:   "2.5 min",
			arrivalText: "00.02",
		},
		{
			name:        "non-numeric delay",
			body:        `{"pred_delay_min": "n/a", "pred_arrival_hhmm": "930"}`,
			delayText:   "n/a",
			arrivalText: "930",
		},
		{
			name:        "numeric arrival",
			body:        `{"pred_delay_min": 0, "pred_arrival_hhmm": 1925}`,
			delayText:   "0.0 min",
			arrivalText: "19.25",
		},
		{
			name: "nothing",
			body: `{}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseResult([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := r.DelayText(); got != tt.delayText {
				t.Errorf("DelayText() = %q, want %q", got, tt.delayText)
			}
			if got := r.ArrivalText(); got != tt.arrivalText {
				t.Errorf("ArrivalText() = %q, want %q", got, tt.arrivalText)
			}
			if string(r.Raw) != tt.body {
				t.Errorf("raw body not kept: %s", r.Raw)
			}
		})
	}
}

func TestParseResultNotObject(t *testing.T) {
	if _, err := ParseResult([]byte(`[1,2]`)); err == nil {
		t.Fatal("expected error")
	}
}

func TestFormatDelay(t *testing.T) {
	for minutes, want := range map[float64]string{
		12.34: "12.3 min",
		0:     "0.0 min",
		-4.5:  "-4.5 min",
		90:    "90.0 min",
	} {
		if got := FormatDelay(minutes); got != want {
			t.Errorf("FormatDelay(%v) = %q, want %q", minutes, got, want)
		}
	}
}
