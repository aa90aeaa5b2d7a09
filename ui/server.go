// Package ui serves a browser view of the syntax tree. The page parses
// what the user types through the JSON API and expands nodes on demand,
// highlighting the source text each element covers.
package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"github.com/dhamidi/cstea/bridge"
	"github.com/dhamidi/cstea/cst"
	"github.com/tliron/commonlog"
)

//go:embed static templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("cstea.ui")

// maxSourceBytes bounds request bodies.
const maxSourceBytes = 4 << 20

const sampleSource = `; edit me
(define (square x)
  (mul x x))

{:name "cstea" :tags [:cst :wasm]}
`

type Server struct {
	registry   *bridge.Registry
	staticFS   fs.FS
	templateFS fs.FS
	mux        *http.ServeMux
}

// NewServer builds the handler. maxTrees bounds how many parsed trees the
// server keeps for clients that have not released them.
func NewServer(maxTrees int) (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	if _, err := template.ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		registry:   bridge.NewRegistry(maxTrees),
		staticFS:   staticFS,
		templateFS: templateFS,
		mux:        http.NewServeMux(),
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("POST /api/parse", s.handleParse)
	s.mux.HandleFunc("GET /api/trees/{tree}/nodes/{node}/children", s.handleChildren)
	s.mux.HandleFunc("DELETE /api/trees/{tree}", s.handleRelease)
	s.mux.HandleFunc("POST /api/dump", s.handleDump)
	s.mux.HandleFunc("POST /api/position", s.handlePosition)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Debugf("%s %s", r.Method, r.URL.Path)
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("render %s: %s", name, err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", struct {
		Sample string
	}{
		Sample: sampleSource,
	})
}

func readSource(w http.ResponseWriter, r *http.Request) (string, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSourceBytes))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return "", false
	}
	return string(data), true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode json: %s", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, bridge.ErrUnknownTree) || errors.Is(err, bridge.ErrUnknownNode) {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid %s: %q", name, r.PathValue(name)), http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	source, ok := readSource(w, r)
	if !ok {
		return
	}
	writeJSON(w, s.registry.Parse(source))
}

func (s *Server) handleChildren(w http.ResponseWriter, r *http.Request) {
	tree, ok := pathInt(w, r, "tree")
	if !ok {
		return
	}
	node, ok := pathInt(w, r, "node")
	if !ok {
		return
	}
	children, err := s.registry.Children(tree, node)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, children)
}

func (s *Server) handleRelease(w http.ResponseWriter, r *http.Request) {
	tree, ok := pathInt(w, r, "tree")
	if !ok {
		return
	}
	if err := s.registry.Release(tree); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	source, ok := readSource(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, cst.Dump(source)); err != nil {
		log.Errorf("write dump: %s", err)
	}
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		http.Error(w, "offset must be a non-negative integer", http.StatusBadRequest)
		return
	}
	source, ok := readSource(w, r)
	if !ok {
		return
	}
	writeJSON(w, bridge.Position(source, offset))
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// overlayFS prefers files on disk under primaryPath, so assets can be
// edited without rebuilding when the server runs from the repository root.
type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}
