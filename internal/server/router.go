package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"naturalli/internal/costs"
	"naturalli/internal/score"
)

// ApiV1Router exposes the progress of a scoring run.
type ApiV1Router struct {
	// accumulator: evaluation counters of the run.
	accumulator *score.Accumulator
	// vector: the cost vector being learned.
	vector *costs.Vector
}

// MetricsView is the body of GET /api/v1/metrics.
type MetricsView struct {
	Counters       score.Counters `json:"counters"`
	Metrics        score.Metrics  `json:"metrics"`
	RecentAccuracy float64        `json:"recentAccuracy"`
	RecentWindow   int            `json:"recentWindow"`
}

// CostView is one element of GET /api/v1/costs.
type CostView struct {
	Index    int     `json:"index"`
	Family   string  `json:"family"`
	Relation string  `json:"relation"`
	Value    float64 `json:"value"`
}

// Mux returns a *http.ServeMux with the registered handlers:
// - GET /api/v1/metrics: counters and derived metrics
// - GET /api/v1/costs: current cost vector
func (ar *ApiV1Router) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/metrics", ar.metricsHandler)
	mux.HandleFunc("GET /api/v1/costs", ar.costsHandler)
	return mux
}

func (ar *ApiV1Router) metricsHandler(w http.ResponseWriter, r *http.Request) {
	counters := ar.accumulator.Snapshot()
	accuracy, window := ar.accumulator.RecentAccuracy()
	writeJSON(w, MetricsView{
		Counters:       counters,
		Metrics:        counters.Metrics(),
		RecentAccuracy: accuracy,
		RecentWindow:   window,
	})
}

func (ar *ApiV1Router) costsHandler(w http.ResponseWriter, r *http.Request) {
	weights := ar.vector.Snapshot()
	view := make([]CostView, len(weights))
	for i, value := range weights {
		view[i] = CostView{
			Index:    i,
			Family:   costs.Schema[i].Family,
			Relation: costs.Schema[i].Relation,
			Value:    value,
		}
	}
	writeJSON(w, view)
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Unable to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// NewApiV1Router creates the API v1 router.
func NewApiV1Router(accumulator *score.Accumulator, vector *costs.Vector) *ApiV1Router {
	return &ApiV1Router{
		accumulator: accumulator,
		vector:      vector,
	}
}
