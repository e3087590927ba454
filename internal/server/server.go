package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/carbonplan/dac-costing/pkg/model"
	"github.com/carbonplan/dac-costing/pkg/spec"
	"github.com/carbonplan/dac-costing/pkg/validation"
	"github.com/google/uuid"
)

// Server is the local development server for interactive parameter
// exploration. Each request reloads the scenario from disk so edits to
// scenario.yaml show up on refresh.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/cost", s.handleCost)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/scenario", s.handleScenario)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("daccost server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>daccost</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>daccost</h1>
<p>Cost model API: <code>/api/cost</code>, <code>/api/validation</code>, <code>/api/scenario</code></p>
</div>
</body></html>`)
}

func (s *Server) handleCost(w http.ResponseWriter, _ *http.Request) {
	scenario, report, err := s.load()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"validation": report,
		})
		return
	}

	result, err := model.Compute(scenario)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	validation.ValidateEconomic(scenario, result, report)

	writeJSON(w, http.StatusOK, map[string]any{
		"report_id":    uuid.NewString(),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"cost":         result,
		"validation":   report,
	})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	_, report, err := s.load()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleScenario(w http.ResponseWriter, _ *http.Request) {
	scenario, _, err := s.load()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, scenario)
}

func (s *Server) load() (*spec.ScenarioSpec, *validation.Report, error) {
	scenario, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return nil, nil, err
	}
	return scenario, validation.ValidateSchema(scenario), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
