package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/azarovs/forumd/internal/common"
	"github.com/azarovs/forumd/internal/server/posts"
)

// Cookie names set on login and read back on every forum request. Part of
// the wire format shared with the frontend.
const (
	cookieUsername = "username"
	cookieToken    = "authTok"
)

// writeCORS adds the permissive CORS headers every response carries.
func writeCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func (s *HTTPServer) handleFrontPage(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	http.ServeFile(w, r, filepath.Join(s.frontendDir, "index.html"))
}

func (s *HTTPServer) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	http.ServeFile(w, r, filepath.Join(s.frontendDir, "login.html"))
}

// handleAuth processes a login attempt. The body is "username\0password";
// a missing body or wrong field count is a 400, failed credentials are an
// empty 401 so the response does not reveal whether the username exists.
func (s *HTTPServer) handleAuth(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		http.Error(w, "Request body was null", http.StatusBadRequest)
		return
	}

	// extra NUL-separated fields beyond the first two are ignored,
	// matching the frontend's encoding
	items := strings.Split(string(body), "\x00")
	if len(items) < 2 || items[0] == "" || items[1] == "" {
		http.Error(w, "Bad format for request body", http.StatusBadRequest)
		return
	}
	username, password := items[0], items[1]

	token, err := s.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.logger.Error(r.Context(), "authentication failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: cookieUsername, Value: username, Path: "/"})
	http.SetCookie(w, &http.Cookie{Name: cookieToken, Value: token, Path: "/"})
	w.WriteHeader(http.StatusOK)

	s.logger.Info(r.Context(), "session granted", "username", username)
}

// handleIndex returns the full post collection as a JSON array for an
// authenticated caller.
func (s *HTTPServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)

	username, token, ok := sessionFromRequest(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	list, err := s.forum.List(r.Context(), username, token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.logger.Error(r.Context(), "listing posts failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		s.logger.Error(r.Context(), "encoding posts failed", "error", err)
	}
}

// handlePost creates a new post for an authenticated caller. The session
// is checked before the body is even read, so a request with bad
// credentials gets a 401 no matter how malformed the rest of it is.
func (s *HTTPServer) handlePost(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)

	username, token, ok := sessionFromRequest(r)
	if !ok || !s.forum.Authorized(username, token) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		http.Error(w, "Request body was null", http.StatusBadRequest)
		return
	}

	var np posts.NewPost
	if err := json.Unmarshal(body, &np); err != nil {
		http.Error(w, "Bad format for request body", http.StatusBadRequest)
		return
	}

	if _, err := s.forum.Create(r.Context(), username, token, np); err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, common.ErrValidation):
			http.Error(w, "Invalid date", http.StatusBadRequest)
		case errors.Is(err, common.ErrNotImplemented):
			http.Error(w, "Replies are not implemented", http.StatusNotImplemented)
		default:
			s.logger.Error(r.Context(), "creating post failed", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)

	s.logger.Info(r.Context(), "post created", "author", username)
}

// sessionFromRequest pulls the username and session token cookies. Both
// must be present and non-empty.
func sessionFromRequest(r *http.Request) (username, token string, ok bool) {
	uc, err := r.Cookie(cookieUsername)
	if err != nil || uc.Value == "" {
		return "", "", false
	}
	tc, err := r.Cookie(cookieToken)
	if err != nil || tc.Value == "" {
		return "", "", false
	}
	return uc.Value, tc.Value, true
}
