package server

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
)

const clientSessionName = "flight"

func newDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter("", func(s string) reflect.Value {
		return reflect.ValueOf(strings.TrimSpace(s))
	})
	return decoder
}

// clientKey returns the id the submitter uses to tell browsers apart, creating one on
// first use.
func (s *Server) clientKey(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := s.store.Get(r, clientSessionName)
	if err != nil {
		// A cookie signed with an old key still yields a usable new session.
		if session == nil {
			return "", fmt.Errorf("session get: %w", err)
		}
	}
	if key, ok := session.Values["client"].(string); ok && key != "" {
		return key, nil
	}
	buf := make([]byte, 16)
	_, err = rand.Read(buf)
	if err != nil {
		return "", fmt.Errorf("random: %w", err)
	}
	key := hex.EncodeToString(buf)
	session.Values["client"] = key
	err = session.Save(r, w)
	if err != nil {
		return "", fmt.Errorf("session save: %w", err)
	}
	return key, nil
}

// apiClientKey identifies a JSON caller by its session when it has one and by its
// address otherwise.
func (s *Server) apiClientKey(r *http.Request) string {
	if key, ok := s.existingClientKey(r); ok {
		return key
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}

func (s *Server) existingClientKey(r *http.Request) (string, bool) {
	session, err := s.store.Get(r, clientSessionName)
	if err != nil || session == nil {
		return "", false
	}
	key, ok := session.Values["client"].(string)
	return key, ok && key != ""
}
