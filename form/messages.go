package form

// MessageID names a piece of user-facing text.
type MessageID string

const (
	MsgSameAirport MessageID = "error.same_airport"
	MsgSameTime    MessageID = "error.same_time"
	MsgTimeFormat  MessageID = "error.time_format"
	MsgIncomplete  MessageID = "error.incomplete"
	MsgUnknownCode MessageID = "error.unknown_code"
	MsgInFlight    MessageID = "error.in_flight"
	MsgBadRequest  MessageID = "error.bad_request"
	MsgErrorTitle  MessageID = "error.title"

	MsgTitle       MessageID = "page.title"
	MsgSubtitle    MessageID = "page.subtitle"
	MsgDisclaimer  MessageID = "page.disclaimer"
	MsgDate        MessageID = "label.date"
	MsgDateHint    MessageID = "label.date_hint"
	MsgDeparture   MessageID = "label.departure"
	MsgArrival     MessageID = "label.planned_arrival"
	MsgOrigin      MessageID = "label.origin"
	MsgDest        MessageID = "label.dest"
	MsgCarrier     MessageID = "label.carrier"
	MsgChoose      MessageID = "label.choose"
	MsgSubmit      MessageID = "button.submit"
	MsgSubmitting  MessageID = "button.submitting"
	MsgSample      MessageID = "button.sample"
	MsgRoute       MessageID = "result.route"
	MsgPredDelay   MessageID = "result.delay"
	MsgPredArrival MessageID = "result.arrival"
	MsgMinutes     MessageID = "result.minutes"
	MsgHistory     MessageID = "history.title"
	MsgNoHistory   MessageID = "history.empty"
	MsgTimezone    MessageID = "settings.timezone"
	MsgSave        MessageID = "button.save"
)

var messages = map[MessageID]string{
	MsgSameAirport: "Origin and destination must be different airports.",
	MsgSameTime:    "Departure and arrival times cannot be the same.",
	MsgTimeFormat:  "Invalid time. Please enter HH.MM (e.g. 20.00).",
	MsgIncomplete:  "Please fill in all fields in a valid format.",
	MsgUnknownCode: "Please choose an airport and carrier from the list.",
	MsgInFlight:    "A prediction is already being calculated.",
	MsgBadRequest:  "Could not read the request.",
	MsgErrorTitle:  "Error",

	MsgTitle:       "Flight Delay Prediction",
	MsgSubtitle:    "Estimate the arrival delay from route, schedule and carrier.",
	MsgDisclaimer:  "Experimental model. Results are estimates.",
	MsgDate:        "Date",
	MsgDateHint:    "e.g. 01.03.2019",
	MsgDeparture:   "Departure (HH.MM)",
	MsgArrival:     "Planned arrival (HH.MM)",
	MsgOrigin:      "Origin airport (IATA)",
	MsgDest:        "Destination airport (IATA)",
	MsgCarrier:     "Carrier",
	MsgChoose:      "Choose",
	MsgSubmit:      "Get prediction",
	MsgSubmitting:  "Calculating…",
	MsgSample:      "Fill sample",
	MsgRoute:       "Route",
	MsgPredDelay:   "Estimated delay",
	MsgPredArrival: "Estimated arrival",
	MsgMinutes:     "min",
	MsgHistory:     "Prediction history",
	MsgNoHistory:   "No predictions yet.",
	MsgTimezone:    "Timezone",
	MsgSave:        "Save",
}

// Message returns the text for id. Unknown ids are returned verbatim so a missing
// entry shows up on screen instead of as an empty string.
func Message(id MessageID) string {
	if s, ok := messages[id]; ok {
		return s
	}
	return string(id)
}

func (id MessageID) String() string {
	return Message(id)
}
