package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas relativas a /pet (el router hace el Route).
func RegisterRoutes(pr chi.Router, svc *Service) {
	pr.Get("/", getPetHandler(svc))
	pr.Patch("/", renamePetHandler(svc))

	pr.Post("/feed", actionHandler(svc.Feed))
	pr.Post("/walk", actionHandler(svc.Walk))
	pr.Post("/grow-up", actionHandler(svc.GrowUp))
	pr.Post("/reset", actionHandler(svc.Reset))

	pr.Post("/children", adoptChildHandler(svc))
	pr.Post("/have-child", haveChildHandler(svc))
}

// petResponse es la vista de la mascota que renderiza el shell.
type petResponse struct {
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Hunger       int       `json:"hunger"`
	Fitness      int       `json:"fitness"`
	Children     []string  `json:"children"`
	Alive        bool      `json:"alive"`
	State        LifeState `json:"state" enums:"alive,dead"`
	Status       string    `json:"status"`
	CanHaveChild bool      `json:"can_have_child"`
}

type renameRequest struct {
	Name string `json:"name"`
}

type adoptChildRequest struct {
	Name string `json:"name"`
}

// getPetHandler godoc
// @Summary Ver mascota
// @Description Devuelve la mascota de la sesión con su estado derivado (alive/dead).
// @Tags pet
// @Produce json
// @Success 200 {object} petResponse
// @Router /pet [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toPetResponse(svc.Current()))
	}
}

// renamePetHandler godoc
// @Summary Renombrar mascota
// @Description El nombre es texto libre, sin validación de formato.
// @Tags pet
// @Accept json
// @Produce json
// @Param payload body renameRequest true "Nuevo nombre"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json"
// @Router /pet [patch]
func renamePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req renameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(svc.Rename(r.Context(), req.Name)))
	}
}

// actionHandler godoc
// @Summary Acción simple sobre la mascota
// @Description feed baja hunger 3 (piso 0), walk sube fitness 3 (tope 10), grow-up suma edad y hambre y resta fitness, reset vuelve a los valores por defecto.
// @Tags pet
// @Produce json
// @Param action path string true "Acción" Enums(feed, walk, grow-up, reset)
// @Success 200 {object} petResponse
// @Router /pet/{action} [post]
func actionHandler(fn func(ctx context.Context) Pet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toPetResponse(fn(r.Context())))
	}
}

// adoptChildHandler godoc
// @Summary Adoptar hijo
// @Description Agrega un nombre al final de la lista de hijos. Sin deduplicar ni límite.
// @Tags pet
// @Accept json
// @Produce json
// @Param payload body adoptChildRequest true "Nombre del hijo"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / name required"
// @Router /pet/children [post]
func adoptChildHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adoptChildRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.AdoptChild(r.Context(), req.Name)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// haveChildHandler godoc
// @Summary Tener hijo (transición generacional)
// @Description Con age >= 10 reemplaza la mascota por una nueva por defecto que adopta a los hijos previos y, al final, a la mascota anterior.
// @Tags pet
// @Produce json
// @Success 200 {object} petResponse
// @Failure 409 {string} string "pet too young"
// @Router /pet/have-child [post]
func haveChildHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.HaveChild(r.Context())
		if err != nil {
			if errors.Is(err, ErrTooYoung) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	children := p.Children
	if children == nil {
		children = []string{}
	}
	return petResponse{
		Name:         p.Name,
		Age:          p.Age,
		Hunger:       p.Hunger,
		Fitness:      p.Fitness,
		Children:     children,
		Alive:        p.IsAlive(),
		State:        p.State(),
		Status:       p.Status(),
		CanHaveChild: p.CanHaveChild(),
	}
}

// writeJSON está duplicado en handlers de distintos módulos (pets/activity)
// para no crear un paquete de helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
