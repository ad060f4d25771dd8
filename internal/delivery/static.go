package delivery

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// StaticHandler serves the built client from dir. Unknown paths fall back to
// index.html so client-side routes survive a reload.
func StaticHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		if strings.HasPrefix(clean, "/api/") {
			http.NotFound(w, r)
			return
		}
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean)))
		if err != nil || info.IsDir() && clean != "/" {
			http.ServeFile(w, r, index)
			return
		}
		files.ServeHTTP(w, r)
	}
}
