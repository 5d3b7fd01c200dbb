package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wedding_venues/internal/app"
	"wedding_venues/internal/domain"
)

const (
	dateLayout   = "2006-01-02"
	maxBodyBytes = 64 << 10
)

type Handlers struct {
	Sessions  *app.SessionService
	CookieTTL time.Duration
	Now       func() time.Time
}

type problem struct {
	Type   string                `json:"type"`
	Title  string                `json:"title"`
	Status int                   `json:"status"`
	Detail string                `json:"detail,omitempty"`
	Errors []app.ValidationError `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	if h.Now == nil {
		h.Now = time.Now
	}
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Use(Session)
		r.Post("/sessions", h.startSession)
		r.Get("/view", h.view)
		r.Post("/navigate", h.navigate)
		r.Post("/profile", h.saveProfile)
		r.Post("/search", h.search)
		r.Get("/results", h.results)
		r.Post("/select", h.selectHotel)
		r.Get("/compare", h.compare)
		r.Get("/quote", h.quote)
		r.Post("/booking", h.confirm)
		r.Post("/reset", h.reset)
		r.Get("/locations", h.locations)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs app.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeProblemBody(w, problem{
			Type:   "about:blank",
			Title:  "Validation Failed",
			Status: http.StatusUnprocessableEntity,
			Detail: "one or more fields are invalid",
			Errors: verrs,
		})
	case errors.Is(err, domain.ErrSessionNotFound):
		writeProblem(w, http.StatusNotFound, "Session Not Found", "start a session with POST /v1/sessions")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel is not among the current results")
	case errors.Is(err, app.ErrProfileRequired):
		writeProblem(w, http.StatusConflict, "Profile Required", "Please complete your profile on the Home page first")
	case errors.Is(err, app.ErrNoResults):
		writeProblem(w, http.StatusConflict, "No Results", "No search results found. Please perform a search first.")
	case errors.Is(err, app.ErrNoSelection):
		writeProblem(w, http.StatusConflict, "No Selection", "Please select a hotel first")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
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

// writeCacheable answers GETs with a weak ETag and honours If-None-Match.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write cacheable body")
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return false
	}
	return true
}

func (h *Handlers) writeView(w http.ResponseWriter, status int, sess domain.BookingSession, notice string) {
	writeJSON(w, status, app.BuildView(&sess, notice, h.Now()))
}

func (h *Handlers) startSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Start(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(h.CookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(SessionHeader, sess.ID)
	h.writeView(w, http.StatusCreated, sess, "")
}

func (h *Handlers) view(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Load(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeView(w, http.StatusOK, sess, "")
}

type navigateRequest struct {
	Page domain.Page `json:"page"`
}

func (h *Handlers) navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if !decode(w, r, &req) {
		return
	}
	if !req.Page.Valid() {
		writeProblem(w, http.StatusBadRequest, "Invalid Page", fmt.Sprintf("page must be one of %v", domain.Pages))
		return
	}
	sess, notice, err := h.Sessions.Navigate(r.Context(), sessionID(r), req.Page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeView(w, http.StatusOK, sess, notice)
}

func (h *Handlers) saveProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.Profile
	if !decode(w, r, &p) {
		return
	}
	sess, err := h.Sessions.SaveProfile(r.Context(), sessionID(r), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeView(w, http.StatusOK, sess, "")
}

type searchRequest struct {
	Location  string  `json:"location"`
	Budget    float64 `json:"budget"`
	MinRating float64 `json:"min_rating"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	Guests    int     `json:"guests"`
}

func (req searchRequest) criteria() (domain.SearchCriteria, error) {
	c := domain.SearchCriteria{
		Location:  req.Location,
		Budget:    req.Budget,
		MinRating: req.MinRating,
		Guests:    req.Guests,
	}
	var errs app.ValidationErrors
	if req.CheckIn != "" {
		t, err := time.Parse(dateLayout, req.CheckIn)
		if err != nil {
			errs = append(errs, app.ValidationError{Field: "check_in", Message: "check_in must be a date (YYYY-MM-DD)"})
		}
		c.CheckIn = t
	}
	if req.CheckOut != "" {
		t, err := time.Parse(dateLayout, req.CheckOut)
		if err != nil {
			errs = append(errs, app.ValidationError{Field: "check_out", Message: "check_out must be a date (YYYY-MM-DD)"})
		}
		c.CheckOut = t
	}
	if len(errs) > 0 {
		return c, errs
	}
	return c, nil
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := req.criteria()
	if err != nil {
		writeError(w, r, err)
		return
	}
	sess, notice, err := h.Sessions.Search(r.Context(), sessionID(r), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeView(w, http.StatusOK, sess, notice)
}

func (h *Handlers) results(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Load(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !sess.HasProfile() {
		writeError(w, r, app.ErrProfileRequired)
		return
	}
	if len(sess.Results) == 0 {
		writeError(w, r, app.ErrNoResults)
		return
	}

	size := 0
	if ls := r.URL.Query().Get("limit"); ls != "" {
		n, err := strconv.Atoi(ls)
		if err != nil || n <= 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be one of 10, 20 or 50")
			return
		}
		size = n
	}
	writeCacheable(w, r, app.ResultsPage(&sess, app.ParseSortKey(r.URL.Query().Get("sort")), size))
}

type selectRequest struct {
	HotelID int64 `json:"hotel_id"`
}

func (h *Handlers) selectHotel(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if !decode(w, r, &req) {
		return
	}
	sess, err := h.Sessions.Select(r.Context(), sessionID(r), req.HotelID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeView(w, http.StatusOK, sess, "")
}

type compareResponse struct {
	Rows []app.ComparisonRow `json:"rows"`
}

func (h *Handlers) compare(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Load(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if sess.Selected == nil {
		writeError(w, r, app.ErrNoSelection)
		return
	}
	writeCacheable(w, r, compareResponse{Rows: app.Compare(*sess.Selected, sess.Results)})
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	rooms := 0
	if rs := r.URL.Query().Get("rooms"); rs != "" {
		n, err := strconv.Atoi(rs)
		if err != nil || n <= 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid rooms", "rooms must be a positive integer")
			return
		}
		rooms = n
	}
	q, err := h.Sessions.Quote(r.Context(), sessionID(r), rooms)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) confirm(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if !decode(w, r, &req) {
		return
	}
	sess, err := h.Sessions.Confirm(r.Context(), sessionID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeView(w, http.StatusOK, sess, "Booking confirmed")
}

func (h *Handlers) reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Reset(r.Context(), sessionID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeView(w, http.StatusOK, sess, "")
}

func (h *Handlers) locations(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, h.Sessions.LocationStats(r.Context()))
}
