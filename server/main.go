package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
	"nyiyui.ca/flight-delay/form"
	"nyiyui.ca/flight-delay/predict"
	"nyiyui.ca/flight-delay/storage"

	"github.com/google/safehtml/template"
)

func composeFunc(handler http.HandlerFunc, middleware ...func(http.Handler) http.Handler) http.Handler {
	var h http.Handler = handler
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}

type Server struct {
	mux         *http.ServeMux
	tps         map[string]*template.Template
	oauthConfig *oauth2.Config
	store       sessions.Store
	mainUser    string
	st          *storage.Storage
	sub         *predict.Submitter
	disclaimer  string
}

// New sets up the routes. When oauthConfig is nil, login and the history views are
// not served.
func New(oauthConfig *oauth2.Config, store sessions.Store, adminUser string, st *storage.Storage, sub *predict.Submitter, disclaimer string) (*Server, error) {
	if oauthConfig != nil && adminUser == "" {
		return nil, errors.New("login is enabled but no admin user is configured")
	}
	s := &Server{
		mux:         http.NewServeMux(),
		oauthConfig: oauthConfig,
		store:       store,
		mainUser:    adminUser,
		st:          st,
		sub:         sub,
		disclaimer:  disclaimer,
	}
	err := s.setup()
	return s, err
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) setup() error {
	s.mux.HandleFunc("GET /{$}", s.formView)
	s.mux.HandleFunc("POST /{$}", s.formSubmit)
	s.mux.HandleFunc("GET /sample", s.sampleView)
	s.mux.HandleFunc("POST /api/predict", s.apiPredict)
	s.mux.HandleFunc("GET /health", s.health)

	if s.oauthConfig != nil {
		s.mux.HandleFunc("GET /login", s.login)
		s.mux.HandleFunc("GET /login/callback", s.loginCallback)
		s.mux.Handle("GET /login/settings", composeFunc(s.loginSettings, s.mainLogin))
		s.mux.Handle("POST /login/settings", composeFunc(s.loginSettings, s.mainLogin))

		s.mux.Handle("GET /history", composeFunc(s.historyView, s.mainLogin))
		s.mux.Handle("GET /history/{id}", composeFunc(s.historyItem, s.mainLogin))
		s.mux.Handle("GET /rdf/history", composeFunc(s.getRDF, s.mainLogin))
	}
	err := s.parseTemplates()
	return err
}

func (s *Server) codes() form.Codes {
	return s.sub.Codes()
}

// recordPrediction stores a successful prediction. Failing to store it does not fail
// the request.
func (s *Server) recordPrediction(ctx context.Context, state predict.State) {
	if s.st == nil || state.Status != predict.StatusSucceeded {
		return
	}
	if _, err := s.st.PredictionAdd(ctx, state.Payload, state.Result); err != nil {
		log.Printf("record prediction: %s", err)
	}
}
