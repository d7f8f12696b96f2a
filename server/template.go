package server

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"nyiyui.ca/flight-delay/form"
	"nyiyui.ca/flight-delay/predict"
)

var buildInfo debug.BuildInfo

//go:embed layouts
var layoutsFS embed.FS

//go:embed templates
var templatesFS embed.FS

type stringConstant string

var markdownPolicy = bluemonday.UGCPolicy()

func init() {
	buildInfo2, _ := debug.ReadBuildInfo()
	if buildInfo2 != nil {
		buildInfo = *buildInfo2
	}
}

func (s *Server) renderTemplate(path stringConstant, w http.ResponseWriter, r *http.Request, data map[string]interface{}) {
	t, ok := s.tps[string(path)]
	if !ok {
		panic("template not found")
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	data["login"], _ = r.Context().Value(LoginUserDataKey).(githubUserData)
	data["tzloc"] = getTimeLocation(r)
	data["historyEnabled"] = s.oauthConfig != nil
	data["disclaimer"] = s.disclaimer
	var buf bytes.Buffer
	err := t.Execute(&buf, data)
	if err != nil {
		log.Printf("template error: %s", err)
		http.Error(w, "template error", 500)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) parseTemplates() error {
	matches, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return err
	}
	s.tps = map[string]*template.Template{}
	for _, match := range matches {
		_, basename := filepath.Split(match)
		s.tps[basename], err = s.parseTemplate(basename)
		if err != nil {
			return fmt.Errorf("parse %s: %w", basename, err)
		}
	}
	return nil
}

// renderMarkdown converts Markdown to sanitized HTML.
func renderMarkdown(s string) (safehtml.HTML, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Linkify))
	var buf bytes.Buffer
	err := md.Convert([]byte(s), &buf)
	if err != nil {
		return safehtml.HTML{}, err
	}
	clean := markdownPolicy.SanitizeBytes(buf.Bytes())
	return uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(string(clean)), nil
}

func (s *Server) parseTemplate(basename string) (*template.Template, error) {
	t := template.New(basename).
		Funcs(template.FuncMap(sprig.FuncMap())).
		Funcs(template.FuncMap{
			"msg": func(id string) string {
				return form.Message(form.MessageID(id))
			},
			"renderMarkdown": renderMarkdown,
			"formatHHMM":     form.FormatHHMM,
			"isoDate":        form.ToISO,
			"formatDelay": func(d *float64) string {
				if d == nil {
					return "—"
				}
				return predict.FormatDelay(*d)
			},
			"formatUser": func(loc *time.Location, t time.Time) string {
				return t.In(loc).Format("2006-01-02 15:04")
			},
			"buildInfo": func() debug.BuildInfo {
				return buildInfo
			},
		})
	t, err := t.ParseFS(template.TrustedFSFromEmbed(layoutsFS), "layouts/*.html")
	if err != nil {
		return nil, err
	}
	t, err = t.ParseFS(template.TrustedFSFromEmbed(templatesFS), fmt.Sprintf("templates/%s", basename))
	if err != nil {
		return nil, err
	}
	return t, nil
}
