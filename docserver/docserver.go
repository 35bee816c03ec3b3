package docserver

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/erraggy/oasflat/builder"
	"github.com/erraggy/oasflat/oas"
)

// Content types of the served documents
const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeYAML = "application/yaml; charset=utf-8"
)

// Server serves the document accumulated by a builder.
//
// A *builder.Builder is not safe for concurrent use. Server holds a mutex
// around every builder access; callers that keep registering routes while
// serving must do so through Update.
type Server struct {
	mu  sync.Mutex
	b   *builder.Builder
	cfg *serverConfig
}

// New creates a Server for b.
func New(b *builder.Builder, opts ...Option) *Server {
	return &Server{b: b, cfg: applyOptions(opts)}
}

// Register creates a Server for b and mounts its routes on r.
func Register(r gin.IRoutes, b *builder.Builder, opts ...Option) *Server {
	s := New(b, opts...)
	s.Register(r)
	return s
}

// Register mounts the JSON and YAML routes on r.
func (s *Server) Register(r gin.IRoutes) {
	if s.cfg.jsonPath != "" {
		r.GET(s.cfg.jsonPath, s.ServeJSON)
	}
	if s.cfg.yamlPath != "" {
		r.GET(s.cfg.yamlPath, s.ServeYAML)
	}
}

// Update runs fn with exclusive access to the builder.
func (s *Server) Update(fn func(b *builder.Builder)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.b)
}

// ServeJSON writes the document as JSON.
func (s *Server) ServeJSON(c *gin.Context) {
	s.serve(c, contentTypeJSON, oas.EncodeJSON)
}

// ServeYAML writes the document as YAML.
func (s *Server) ServeYAML(c *gin.Context) {
	s.serve(c, contentTypeYAML, oas.EncodeYAML)
}

func (s *Server) serve(c *gin.Context, contentType string, encode func(any) ([]byte, error)) {
	data, err := s.render(encode)
	if err != nil {
		s.cfg.logger.Error("document build failed", "path", c.Request.URL.Path, "error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

func (s *Server) render(encode func(any) ([]byte, error)) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc *oas.Document
	var err error
	if s.cfg.strict {
		doc, err = s.b.StrictDocument()
	} else {
		doc, err = s.b.Document()
	}
	if err != nil {
		return nil, err
	}
	return encode(doc)
}
