package statusapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stefdude/linknx/internal/element"
)

// buildRouter creates the read-only status router: GET-only, no auth,
// intended for trusted monitoring consumers on the local network.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/status", s.handleStatus)
	r.Get("/objects", s.handleListObjects)
	r.Get("/objects/{id}", s.handleGetObject)
	r.Get("/schedule", s.handleSchedule)
	r.Get("/ports", s.handlePorts)

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"version":   s.version,
		"objects":   len(s.ctl.All()),
		"scheduled": s.scheduleLen(),
		"time":      time.Now().Format(time.RFC3339),
	})
}

func (s *Server) scheduleLen() int {
	if s.sched == nil {
		return 0
	}
	return s.sched.Len()
}

func (s *Server) handleListObjects(w http.ResponseWriter, _ *http.Request) {
	objs := s.ctl.All()
	out := make([]objectView, 0, len(objs))
	for _, o := range objs {
		out = append(out, toObjectView(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetObject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	obj, err := s.ctl.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "object not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, toObjectView(obj))
}

func (s *Server) handleSchedule(w http.ResponseWriter, _ *http.Request) {
	if s.sched == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	root := element.New("schedule")
	s.sched.StatusXML(root)
	writeJSON(w, http.StatusOK, elementToJSON(root))
}

func (s *Server) handlePorts(w http.ResponseWriter, _ *http.Request) {
	if s.ports == nil {
		writeJSON(w, http.StatusOK, []any{})
		return
	}
	root := element.New("ports")
	s.ports.ExportXML(root)
	writeJSON(w, http.StatusOK, elementToJSON(root))
}

// objectView is the JSON projection of an objects.Object.
type objectView struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	GroupAddress string `json:"group_address,omitempty"`
	Init         string `json:"init"`
	Value        string `json:"value"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
