package router

import (
	"net/http"

	_ "virtual-pet/docs"

	mem "virtual-pet/internal/adapters/storage/memory"
	"virtual-pet/internal/domain/activity"
	"virtual-pet/internal/domain/pets"
	"virtual-pet/internal/middleware"
	"virtual-pet/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcionales: si no vienen, se arman en memoria (modo dev / tests).
	Pets     *pets.Service
	Activity *activity.Service

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	activitySvc := opts.Activity
	if activitySvc == nil {
		activitySvc = activity.NewService(mem.NewActivityRepo(mem.DefaultActivityCapacity), log)
	}
	petsSvc := opts.Pets
	if petsSvc == nil {
		petsSvc = pets.NewService(mem.NewSnapshotRepo(), activitySvc, log)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/pet", func(pr chi.Router) {
		pets.RegisterRoutes(pr, petsSvc)
		activity.RegisterRoutes(pr, activitySvc)
	})

	return r
}
