package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stealthcompany.com/carematch/internal/dal"
	"stealthcompany.com/carematch/internal/matching"
	"stealthcompany.com/carematch/internal/metrics"
)

// API wires the matching pipeline and provider snapshot into HTTP handlers.
type API struct {
	pipeline  *matching.Pipeline
	snapshot  *dal.ProviderSnapshot
	providers *dal.ProviderModel
}

// NewAPI creates the handler set over the given member lookup, provider
// snapshot, and provider model (used only for snapshot reloads).
func NewAPI(members matching.MemberLookup, snapshot *dal.ProviderSnapshot, providers *dal.ProviderModel) *API {
	return &API{
		pipeline:  matching.NewPipeline(members, snapshot),
		snapshot:  snapshot,
		providers: providers,
	}
}

// SetupRoutes configures and returns the HTTP router
func (a *API) SetupRoutes() *mux.Router {
	r := mux.NewRouter()

	// Add middleware to all routes
	r.Use(metrics.MetricsMiddleware)
	r.Use(CORSMiddleware)

	// Routes
	r.HandleFunc("/", a.HealthHandler).Methods("GET")
	r.HandleFunc("/health", a.HealthHandler).Methods("GET")

	// Matching endpoints
	r.HandleFunc("/api/find-providers", a.FindProvidersHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/get-all-providers", a.GetAllProvidersHandler).Methods("GET", "OPTIONS")

	// Snapshot administration
	r.HandleFunc("/admin/reload-providers", a.ReloadProvidersHandler).Methods("POST")

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
