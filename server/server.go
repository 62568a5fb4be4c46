package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ColdMacaroni/KaiUI-DTC/handlers"
	"github.com/ColdMacaroni/KaiUI-DTC/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes() *Server {
	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	router.HandleFunc("/menu", handlers.GetMenu).Methods("GET")

	sessions := router.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", handlers.CreateSession).Methods("POST")
	sessions.HandleFunc("/{id}", handlers.GetSession).Methods("GET")
	sessions.HandleFunc("/{id}/items", handlers.AddOrderItem).Methods("POST")
	sessions.HandleFunc("/{id}/items/{productID}", handlers.RemoveOrderItem).Methods("DELETE")
	sessions.HandleFunc("/{id}/day", handlers.SetDay).Methods("PUT")
	sessions.HandleFunc("/{id}/submit", handlers.SubmitOrder).Methods("POST")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
