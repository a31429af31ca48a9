package adapthttp

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// handleStatic serves the frontend. The index page is gated on an
// authenticated session and redirects to the login page otherwise; every
// other path serves a file from the web directory verbatim.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		if !s.sessionValid(r) {
			http.Redirect(w, r, "/login.html", http.StatusFound)
			return
		}
		http.ServeFile(w, r, filepath.Join(s.webDir, "index.html"))
		return
	}

	reqPath := path.Clean(r.URL.Path)
	staticPath := filepath.Join(s.webDir, reqPath)
	if info, err := os.Stat(staticPath); err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, staticPath)
}

func (s *Server) sessionValid(r *http.Request) bool {
	if s.disableAuth {
		return true
	}
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return false
	}
	_, err = s.auth.ValidateSession(r.Context(), cookie.Value)
	return err == nil
}
