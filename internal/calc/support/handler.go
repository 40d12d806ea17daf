package support

import (
	"encoding/json"
	"errors"
	"net/http"

	rmr "Stratum/internal/calc/rmr"
)

type Handler struct{}

type RecommendInput struct {
	Class rmr.Class `json:"class"`
	SpanM float64   `json:"span_m"`
}

func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var input RecommendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	spec, err := Recommend(input.Class, input.SpanM)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spec)
}

type BoltsInput struct {
	Spec       Spec     `json:"spec"`
	Excavation Geometry `json:"excavation"`
}

func (h *Handler) Bolts(w http.ResponseWriter, r *http.Request) {
	var input BoltsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	est, err := EstimateBolts(input.Spec, input.Excavation)
	if err != nil {
		if errors.Is(err, ErrInvalidGeometry) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(est)
}
