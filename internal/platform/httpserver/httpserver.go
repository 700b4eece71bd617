package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with sane defaults for this project. The write
// timeout leaves room for the model call behind /clerk/chat.
func New(addr string, handler http.Handler, modelTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      modelTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
