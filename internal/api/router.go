// Package api exposes the reward engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

func NewRouter(handler *Handler, logger *zap.SugaredLogger) *mux.Router {
	router := mux.NewRouter()
	router.StrictSlash(true)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "route not found")
	})

	router.Use(recoverMiddleware(logger))
	router.Use(loggingMiddleware(logger))

	router.HandleFunc("/healthcheck", handler.healthcheck).Methods(http.MethodGet)
	router.HandleFunc("/votes", handler.submitVote).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}/votes", handler.voteHistory).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}/rewards", handler.rewards).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}/wallet", handler.connectWallet).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}/distributions/retry", handler.retryDistributions).Methods(http.MethodPost)
	router.HandleFunc("/vendors/{id}/stats", handler.vendorStats).Methods(http.MethodGet)

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger *zap.SugaredLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(recorder, r)

			logger.Infow("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(start),
			)
		})
	}
}

func recoverMiddleware(logger *zap.SugaredLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Errorw("handler panicked", "path", r.URL.Path, "panic", recovered)
					respondWithError(w, http.StatusInternalServerError, "internal error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
