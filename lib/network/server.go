package network

import (
	"net/http"
	"os"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/net/http2"
)

// url prefixes of the routers; the governance API and the
// operational surfaces stay on separate sub routers so middlewares can
// be attached per concern.
const (
	UrlPathPrefixAPI    = "/api"
	UrlPathPrefixMetric = "/metrics"
)

// Server is the single http(2) listener of the node; handlers are
// registered on named sub routers before Start.
type Server struct {
	config ServerConfig

	router  *mux.Router
	routers map[string]*mux.Router
	server  *http.Server
}

func NewServer(config ServerConfig) *Server {
	router := mux.NewRouter()

	server := &http.Server{
		Addr:              config.Addr,
		Handler:           ghandlers.CombinedLoggingHandler(os.Stdout, router),
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
	}

	return &Server{
		config:  config,
		router:  router,
		routers: map[string]*mux.Router{},
		server:  server,
	}
}

func (s *Server) Router(prefix string) *mux.Router {
	if len(prefix) < 1 {
		return s.router
	}

	router, ok := s.routers[prefix]
	if !ok {
		router = s.router.PathPrefix(prefix).Subrouter()
		s.routers[prefix] = router
	}

	return router
}

func (s *Server) AddHandler(prefix, pattern string, handler http.HandlerFunc) *mux.Route {
	return s.Router(prefix).HandleFunc(pattern, handler)
}

func (s *Server) AddMiddleware(prefix string, middlewares ...mux.MiddlewareFunc) {
	router := s.Router(prefix)
	for _, m := range middlewares {
		router.Use(m)
	}
}

// Start blocks until the listener stops; http.ErrServerClosed after
// Stop is not reported as a failure.
func (s *Server) Start() (err error) {
	if err = http2.ConfigureServer(s.server, &http2.Server{}); err != nil {
		return
	}

	log.Info("starting the server", "endpoint", s.config.Endpoint.String())

	if s.config.IsHTTPS() {
		err = s.server.ListenAndServeTLS(s.config.TLSCertFile, s.config.TLSKeyFile)
	} else {
		err = s.server.ListenAndServe()
	}

	if err == http.ErrServerClosed {
		err = nil
	}

	return
}

func (s *Server) Stop() {
	s.server.Close()
}
