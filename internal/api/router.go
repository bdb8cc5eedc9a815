package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-analysis/docs"
	"github.com/blaisecz/sleep-analysis/internal/api/handler"
	"github.com/blaisecz/sleep-analysis/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	analysisHandler *handler.AnalysisHandler
	feedbackHandler *handler.FeedbackHandler
	importHandler   *handler.ImportHandler
	ratingHandler   *handler.RatingHandler
	log             *logrus.Logger
}

func NewRouter(
	analysisHandler *handler.AnalysisHandler,
	feedbackHandler *handler.FeedbackHandler,
	importHandler *handler.ImportHandler,
	ratingHandler *handler.RatingHandler,
	log *logrus.Logger,
) *Router {
	return &Router{
		analysisHandler: analysisHandler,
		feedbackHandler: feedbackHandler,
		importHandler:   importHandler,
		ratingHandler:   ratingHandler,
		log:             log,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Logger(rt.log))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Stateless analysis of a posted batch
		r.Route("/analysis", func(r chi.Router) {
			r.Post("/", rt.analysisHandler.Analyze)
			r.Post("/{section}", rt.analysisHandler.AnalyzeSection)
		})

		// Stored records, keyed by user
		r.Route("/users/{userId}", func(r chi.Router) {
			r.Post("/records", rt.importHandler.Import)

			r.Route("/analysis", func(r chi.Router) {
				r.Get("/", rt.analysisHandler.GetUserAnalysis)
				r.Get("/insights", rt.analysisHandler.GetInsights)
				r.Post("/insights/rating", rt.ratingHandler.Create)
				r.Get("/{section}", rt.analysisHandler.GetUserAnalysisSection)
			})

			r.Route("/feedback", func(r chi.Router) {
				r.Post("/", rt.feedbackHandler.Create)
				r.Get("/", rt.feedbackHandler.List)
			})
		})
	})

	return r
}
