package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/deiu/rdf2go"
	"nyiyui.ca/flight-delay/storage"
)

const (
	historyLimit = 200
	vocab        = "https://nyiyui.ca/flight-delay/ns#"
	xsd          = "http://www.w3.org/2001/XMLSchema#"
)

func (s *Server) historyView(w http.ResponseWriter, r *http.Request) {
	prs, err := s.st.PredictionList(r.Context(), historyLimit)
	if err != nil {
		log.Printf("error getting prediction list: %s", err)
		http.Error(w, "error getting prediction list", 500)
		return
	}
	s.renderTemplate("history.html", w, r, map[string]interface{}{
		"predictions": prs,
	})
}

func (s *Server) historyItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	pr, err := s.st.PredictionGet(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "prediction not found", 404)
		return
	} else if err != nil {
		log.Printf("error getting prediction: %s", err)
		http.Error(w, "error getting prediction", 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(pr)
	if err != nil {
		log.Printf("encode prediction: %s", err)
	}
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

func predictionGraph(base string, prs []storage.Prediction) *rdf2go.Graph {
	g := rdf2go.NewGraph(base + "/rdf/history")
	typ := rdf2go.NewResource("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	class := rdf2go.NewResource(vocab + "Prediction")
	prop := func(name string) rdf2go.Term {
		return rdf2go.NewResource(vocab + name)
	}
	for _, pr := range prs {
		subject := rdf2go.NewResource(fmt.Sprintf("%s/history/%d", base, pr.ID))
		g.AddTriple(subject, typ, class)
		g.AddTriple(subject, prop("createdAt"), rdf2go.NewLiteralWithDatatype(pr.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"), rdf2go.NewResource(xsd+"dateTime")))
		g.AddTriple(subject, prop("date"), rdf2go.NewLiteralWithDatatype(pr.DateStr, rdf2go.NewResource(xsd+"date")))
		g.AddTriple(subject, prop("departure"), rdf2go.NewLiteral(pr.DepHHMM))
		g.AddTriple(subject, prop("plannedArrival"), rdf2go.NewLiteral(pr.CrsArrHHMM))
		g.AddTriple(subject, prop("origin"), rdf2go.NewLiteral(pr.Origin))
		g.AddTriple(subject, prop("destination"), rdf2go.NewLiteral(pr.Dest))
		g.AddTriple(subject, prop("carrier"), rdf2go.NewLiteral(pr.Carrier))
		if pr.DelayMin != nil {
			g.AddTriple(subject, prop("delayMinutes"), rdf2go.NewLiteralWithDatatype(strconv.FormatFloat(*pr.DelayMin, 'f', -1, 64), rdf2go.NewResource(xsd+"decimal")))
		}
		if pr.ArrivalHHMM != "" {
			g.AddTriple(subject, prop("predictedArrival"), rdf2go.NewLiteral(pr.ArrivalHHMM))
		}
	}
	return g
}

func (s *Server) getRDF(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	if accept != "text/turtle" && accept != "application/ld+json" {
		accept = "text/turtle"
	}
	prs, err := s.st.PredictionList(r.Context(), 0)
	if err != nil {
		log.Printf("error getting prediction list: %s", err)
		http.Error(w, "error getting prediction list", 500)
		return
	}
	g := predictionGraph(baseURL(r), prs)

	w.Header().Set("Content-Type", fmt.Sprintf("%s; charset=utf-8", accept))
	err = g.Serialize(w, accept)
	if err != nil {
		log.Printf("rdf serialization: %s", err)
		http.Error(w, "rdf serialization error", 500)
		return
	}
}
