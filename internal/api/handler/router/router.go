// Package router registra as rotas da API sobre o httprouter.
package router

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/vfg2006/metrics-api/pkg/apiErrors"
)

type Middleware = func(http.Handler) http.Handler

// Route associa método e caminho a um handler. Os middlewares da rota rodam na
// ordem declarada, depois da cadeia global do servidor.
type Route struct {
	Method      string
	Path        string
	Handler     http.Handler
	Middlewares []Middleware
}

type Option func(*Router)

func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.Add(routes...)
	}
}

type Router struct {
	mux        *httprouter.Router
	registered []string
	patterns   map[string][][]string
}

func New(opts ...Option) *Router {
	r := &Router{mux: httprouter.New(), patterns: make(map[string][][]string)}

	r.mux.NotFound = errorHandler(apiErrors.ErrNotFound, "Rota não encontrada")
	r.mux.MethodNotAllowed = errorHandler(apiErrors.ErrMethodNotAllowed, "Método não permitido para a rota")

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func errorHandler(code, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, code, message, nil)
	})
}

func (r *Router) Add(routes ...Route) {
	for _, route := range routes {
		chain := alice.New()
		for _, mw := range route.Middlewares {
			chain = chain.Append(alice.Constructor(mw))
		}

		r.mux.Handler(route.Method, route.Path, chain.Then(route.Handler))
		r.registered = append(r.registered, route.Method+" "+route.Path)
		r.patterns[route.Method] = append(r.patterns[route.Method], splitPath(route.Path))
	}
}

// Match devolve o padrão registrado que atende method e path, como "/v1/shares/:code".
// Caminhos sem rota, inclusive os que só casariam com barra final, não casam.
func (r *Router) Match(method, path string) (string, bool) {
	if handle, _, _ := r.mux.Lookup(method, path); handle == nil {
		return "", false
	}

	segments := splitPath(path)
	var best []string
	bestParams := len(segments) + 1
	for _, pattern := range r.patterns[method] {
		params, ok := matchSegments(pattern, segments)
		if ok && params < bestParams {
			best, bestParams = pattern, params
		}
	}
	if best == nil {
		return "", false
	}
	return "/" + strings.Join(best, "/"), true
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// matchSegments compara segmento a segmento e conta quantos parâmetros foram usados
func matchSegments(pattern, segments []string) (int, bool) {
	if len(pattern) != len(segments) {
		return 0, false
	}
	params := 0
	for i, p := range pattern {
		switch {
		case strings.HasPrefix(p, ":"):
			params++
		case p != segments[i]:
			return 0, false
		}
	}
	return params, true
}

// Routes lista as rotas registradas como "MÉTODO caminho", em ordem alfabética
func (r *Router) Routes() []string {
	out := make([]string, len(r.registered))
	copy(out, r.registered)
	sort.Strings(out)
	return out
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
