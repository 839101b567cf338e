package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/itsatony/w4b_v3/server/readings/api/middleware"
	"github.com/itsatony/w4b_v3/server/readings/api/resources"
	_ "github.com/itsatony/w4b_v3/server/readings/docs"
	"github.com/itsatony/w4b_v3/server/readings/internal/config"
	"github.com/itsatony/w4b_v3/server/readings/internal/service"
)

type Router struct {
	router    *mux.Router
	handler   http.Handler
	resources *resources.Resources
}

func NewRouter(svc service.ReadingService, cfg config.ServerConfig) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	r.handler = middleware.Wrap(r.router, cfg)
	return r
}

func (r *Router) setupRoutes() {
	r.router.Use(middleware.RequestID)

	// Public routes
	r.router.HandleFunc("/health", r.resources.Health.Check).Methods(http.MethodGet)
	r.router.HandleFunc("/swagger/doc.json", r.resources.Health.Docs).Methods(http.MethodGet)

	// Readings, each reachable with and without the trailing slash
	readings := r.router.PathPrefix("/devices/{device_uuid}/readings").Subrouter()
	handle(readings, "", r.resources.Readings.ListReadings, http.MethodGet)
	handle(readings, "", r.resources.Readings.CreateReading, http.MethodPost)
	handle(readings, "/min", r.resources.Readings.Min, http.MethodGet)
	handle(readings, "/max", r.resources.Readings.Max, http.MethodGet)
	handle(readings, "/median", r.resources.Readings.Median, http.MethodGet)
	handle(readings, "/mean", r.resources.Readings.Mean, http.MethodGet)
	handle(readings, "/mode", r.resources.Readings.Mode, http.MethodGet)
	handle(readings, "/quartiles", r.resources.Readings.Quartiles, http.MethodGet)
}

func handle(r *mux.Router, path string, h http.HandlerFunc, method string) {
	r.HandleFunc(path, h).Methods(method)
	r.HandleFunc(path+"/", h).Methods(method)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}
