package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"nyiyui.ca/flight-delay/form"
	"nyiyui.ca/flight-delay/predict"
)

const maxBodySize = 1 << 16

// writeDetail writes an error body in the same shape the prediction service uses.
func writeDetail(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(map[string]string{"detail": detail})
	if err != nil {
		log.Printf("write detail: %s", err)
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// apiPredict checks a JSON request body and forwards it to the prediction service.
func (s *Server) apiPredict(w http.ResponseWriter, r *http.Request) {
	key := s.apiClientKey(r)
	var p form.Payload
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&p)
	if err != nil {
		writeDetail(w, 422, form.Message(form.MsgBadRequest))
		return
	}

	state := s.sub.SubmitPayload(r.Context(), key, p)
	if state.Status == predict.StatusSucceeded {
		s.recordPrediction(r.Context(), state)
		w.Header().Set("Content-Type", "application/json")
		w.Write(state.Result.Raw)
		return
	}

	var se *predict.ServerError
	switch {
	case errors.Is(state.Err, predict.ErrInFlight):
		writeDetail(w, http.StatusTooManyRequests, state.Message())
	case predict.IsValidation(state.Err):
		writeDetail(w, 422, state.Message())
	case errors.As(state.Err, &se):
		log.Printf("predict: %s", se)
		if se.ContentType != "" {
			w.Header().Set("Content-Type", se.ContentType)
		}
		w.WriteHeader(se.StatusCode)
		w.Write(se.Body)
	default:
		log.Printf("predict: %s", state.Err)
		writeDetail(w, http.StatusBadGateway, state.Message())
	}
}
