package activity

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"virtual-pet/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /activity dentro del subrouter /pet.
func RegisterRoutes(pr chi.Router, svc *Service) {
	pr.Get("/activity", listActivityHandler(svc))
}

// entryResponse es una entrada del historial de acciones.
type entryResponse struct {
	ID         string      `json:"id"`
	Action     pets.Action `json:"action" enums:"feed,walk,grow_up,rename,adopt_child,reset,have_child"`
	OccurredAt time.Time   `json:"occurred_at"`
	PetName    string      `json:"pet_name"`
	Age        int         `json:"age"`
	Hunger     int         `json:"hunger"`
	Fitness    int         `json:"fitness"`
	Alive      bool        `json:"alive"`
}

// listActivityHandler godoc
// @Summary Historial de acciones
// @Description Lista las acciones aplicadas en la sesión, más reciente primero, con los valores de la mascota después de cada una. Vive solo en memoria.
// @Tags activity
// @Produce json
// @Param limit query int false "Máximo de entradas (> 0, se recorta a 200). Por defecto 50"
// @Param actions query string false "Lista CSV de acciones a incluir (ej: feed,walk)"
// @Param from query string false "Fecha/hora mínima (RFC3339)"
// @Param to query string false "Fecha/hora máxima (RFC3339)"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /pet/activity [get]
func listActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n <= 0 {
			return ListFilter{}, errors.New("limit must be a positive integer")
		}
		// Por encima de MaxLimit lo recorta el service.
		limit = n
	}

	filter := ListFilter{Limit: limit}

	// actions=feed,walk
	if v := strings.TrimSpace(r.URL.Query().Get("actions")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]pets.Action, 0, len(parts))
		for _, p := range parts {
			a := pets.Action(strings.TrimSpace(p))
			if a == "" {
				continue
			}
			out = append(out, a)
		}
		if len(out) > 0 {
			filter.Actions = out
		}
	}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	return filter, nil
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		Action:     e.Action,
		OccurredAt: e.OccurredAt,
		PetName:    e.PetName,
		Age:        e.Age,
		Hunger:     e.Hunger,
		Fitness:    e.Fitness,
		Alive:      e.Alive,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
