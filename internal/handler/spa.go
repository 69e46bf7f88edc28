package handler

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// SPAHandler serves the embedded frontend build. Requests for files that
// exist in the build are served as-is; everything else gets index.html so
// the client router can take over.
type SPAHandler struct {
	files      fs.FS
	fileServer http.Handler
}

func NewSPAHandler(files fs.FS) *SPAHandler {
	return &SPAHandler{
		files:      files,
		fileServer: http.FileServer(http.FS(files)),
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name == "" {
		name = "index.html"
	}

	_, err := fs.Stat(h.files, name)
	if err != nil {
		// Client-side route, hand over index.html
		r.URL.Path = "/"
	}

	h.fileServer.ServeHTTP(w, r)
}
