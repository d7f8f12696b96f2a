package server

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
)

type contextKey int

const (
	loginUserDataKey contextKey = iota
	timeLocationKey
)

// LoginUserDataKey is the key for the login user data in the request context.
// When using mainLogin, this key will be set to the githubUserData struct.
var LoginUserDataKey = loginUserDataKey

const (
	loginSessionName = "login"
	oauthSessionName = "login-oauth2"
	githubUserURL    = "https://api.github.com/user"
)

func getTimeLocation(r *http.Request) *time.Location {
	loc, ok := r.Context().Value(timeLocationKey).(*time.Location)
	if !ok {
		return time.UTC
	}
	return loc
}

func init() {
	gob.RegisterName("githubUserData", githubUserData{})
}

type githubUserData struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

func (s *Server) session(w http.ResponseWriter, r *http.Request, name string) (*sessions.Session, bool) {
	session, err := s.store.Get(r, name)
	if err != nil {
		log.Printf("%s session get: %s", name, err)
		http.Error(w, "session failure", 400)
		return nil, false
	}
	return session, true
}

// mainLogin only lets the configured admin user through. It also puts the user's
// timezone into the request context.
func (s *Server) mainLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loginSession, ok := s.session(w, r, loginSessionName)
		if !ok {
			return
		}
		data, ok := loginSession.Values["githubUserData"].(githubUserData)
		if !ok {
			http.Redirect(w, r, "/login", 302)
			return
		}
		if data.Login != s.mainUser {
			http.Error(w, "must be main user", 401)
			return
		}
		ctx := context.WithValue(r.Context(), LoginUserDataKey, data)
		if tzName, ok := loginSession.Values["timezone"].(string); ok {
			loc, err := time.LoadLocation(tzName)
			if err != nil {
				http.Error(w, fmt.Sprintf("invalid timezone: %s", tzName), 500)
				return
			}
			ctx = context.WithValue(ctx, timeLocationKey, loc)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("code") {
		http.Error(w, "login page should not have query parameter `code' - make sure your redirect URI is set correctly.", 500)
		return
	}
	session, ok := s.session(w, r, oauthSessionName)
	if !ok {
		return
	}
	verifier := oauth2.GenerateVerifier()
	session.Values["verifier"] = verifier
	err := session.Save(r, w)
	if err != nil {
		log.Printf("session save: %s", err)
		http.Error(w, "session failure", 400)
		return
	}
	url := s.oauthConfig.AuthCodeURL("", oauth2.S256ChallengeOption(verifier))
	http.Redirect(w, r, url, 302)
}

func (s *Server) fetchGitHubUser(ctx context.Context, token *oauth2.Token) (githubUserData, error) {
	var data githubUserData
	resp, err := s.oauthConfig.Client(ctx, token).Get(githubUserURL)
	if err != nil {
		return data, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return data, fmt.Errorf("response status code %d", resp.StatusCode)
	}
	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return data, fmt.Errorf("response json: %w", err)
	}
	return data, nil
}

func (s *Server) loginCallback(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r, oauthSessionName)
	if !ok {
		return
	}
	loginSession, ok := s.session(w, r, loginSessionName)
	if !ok {
		return
	}
	verifier, ok := session.Values["verifier"].(string)
	if !ok {
		http.Error(w, "try logging in again", 400)
		return
	}
	delete(session.Values, "verifier")

	token, err := s.oauthConfig.Exchange(r.Context(), r.URL.Query().Get("code"), oauth2.VerifierOption(verifier))
	if err != nil {
		log.Printf("oauth2 exchange: %s", err)
		http.Error(w, "failed to exchange code", 500)
		return
	}
	data, err := s.fetchGitHubUser(r.Context(), token)
	if err != nil {
		log.Printf("github user: %s", err)
		http.Error(w, "failed to get user data from GitHub", 500)
		return
	}
	loginSession.Values["githubUserData"] = data
	err = sessions.Save(r, w)
	if err != nil {
		log.Printf("session save: %s", err)
		http.Error(w, "session failure", 400)
		return
	}
	http.Redirect(w, r, "/history", 302)
}

func (s *Server) loginSettings(w http.ResponseWriter, r *http.Request) {
	loginSession, ok := s.session(w, r, loginSessionName)
	if !ok {
		return
	}
	if r.Method == "POST" {
		err := r.ParseForm()
		if err != nil {
			http.Error(w, "failed to parse form", 422)
			return
		}
		tzName := r.Form.Get("timezone")
		_, err = time.LoadLocation(tzName)
		if err != nil {
			http.Error(w, "invalid timezone", 422)
			return
		}
		loginSession.Values["timezone"] = tzName
		err = loginSession.Save(r, w)
		if err != nil {
			log.Printf("login session save: %s", err)
			http.Error(w, "session failure", 400)
			return
		}
	}
	tzName, _ := loginSession.Values["timezone"].(string)
	s.renderTemplate("login-settings.html", w, r, map[string]interface{}{
		"timezone": tzName,
	})
}
