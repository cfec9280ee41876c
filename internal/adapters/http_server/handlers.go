// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_rooms/internal/app"
	"hotel_rooms/internal/domain"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotel", h.getHotel)
	s.mux.Get("/v1/rooms", h.listRooms)
	s.mux.Get("/v1/rooms/slugs", h.listSlugs)
	s.mux.Get("/v1/rooms/{slug}", h.getRoom)
	s.mux.Get("/v1/rooms/{slug}/booking", h.getBooking)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeLookupError maps query errors to problem responses.
func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "room not found")
		return
	}
	log.Error().Err(err).Msg("room lookup failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON sends v with a weak ETag, short-circuiting to 304 when the client already has it.
func writeJSON(w http.ResponseWriter, r *http.Request, v any, name string) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("handler", name).Msg("failed to write body")
	}
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Q.Hotel(r.Context()), "getHotel")
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Q.ListRooms(r.Context()), "listRooms")
}

func (h *Handlers) listSlugs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Q.Slugs(r.Context()), "listSlugs")
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	rv, err := h.Q.GetRoom(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, r, rv, "getRoom")
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Q.GetBooking(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, r, bs, "getBooking")
}
