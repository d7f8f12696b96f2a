package server

import (
	"errors"
	"log"
	"net/http"

	"nyiyui.ca/flight-delay/form"
	"nyiyui.ca/flight-delay/predict"
)

func (s *Server) formView(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, form.Fields{}, nil)
}

func (s *Server) sampleView(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, r, form.Sample(), nil)
}

func (s *Server) formSubmit(w http.ResponseWriter, r *http.Request) {
	key, err := s.clientKey(w, r)
	if err != nil {
		log.Printf("client key: %s", err)
		http.Error(w, "session failure", 400)
		return
	}
	err = r.ParseForm()
	if err != nil {
		http.Error(w, "failed to parse form", 422)
		return
	}
	var f form.Fields
	err = newDecoder().Decode(&f, r.PostForm)
	if err != nil {
		http.Error(w, "failed to decode form", 422)
		return
	}
	f.PickDate()
	f.MaskTimes()
	f.Blur()

	state := s.sub.Submit(r.Context(), key, f)
	switch {
	case state.Status == predict.StatusSucceeded:
		s.recordPrediction(r.Context(), state)
	case !predict.IsValidation(state.Err):
		log.Printf("predict: %s", state.Err)
	}
	s.renderForm(w, r, f, &state)
}

// renderForm renders the form page. It hands out the client key before the first
// submission so that a double submit from a new browser is caught.
func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, f form.Fields, state *predict.State) {
	key, err := s.clientKey(w, r)
	if err != nil {
		log.Printf("client key: %s", err)
		http.Error(w, "session failure", 400)
		return
	}
	data := map[string]interface{}{
		"form":     f,
		"codes":    s.codes(),
		"inFlight": s.sub.Status(key) == predict.StatusSubmitting,
	}
	if state != nil {
		switch {
		case state.Status == predict.StatusSucceeded:
			data["result"] = map[string]string{
				"delay":   state.Result.DelayText(),
				"arrival": state.Result.ArrivalText(),
			}
		case errors.Is(state.Err, predict.ErrInFlight):
			// The earlier submission is still running; show it as such.
			data["inFlight"] = true
		case state.Status == predict.StatusFailed:
			data["error"] = state.Message()
		}
	}
	s.renderTemplate("index.html", w, r, data)
}
