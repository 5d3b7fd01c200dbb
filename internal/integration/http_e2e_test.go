//go:build integration

package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	httpserver "wedding_venues/internal/adapters/http_server"
	redisad "wedding_venues/internal/adapters/redis"
	"wedding_venues/internal/app"
	"wedding_venues/internal/domain"
	mysqlrepo "wedding_venues/internal/storage/mysql"
)

// ---------- helpers ----------

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = filepath.Join("..", "..", "migrations")
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(b)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=venues"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/venues?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))
	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	return db
}

type session struct {
	t   *testing.T
	url string
	id  string
}

func (s *session) post(path string, body any) (int, app.View) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(http.MethodPost, s.url+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.id != "" {
		req.Header.Set(httpserver.SessionHeader, s.id)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		s.t.Fatalf("POST %s: %v", path, err)
	}
	defer res.Body.Close()
	var v app.View
	_ = json.NewDecoder(res.Body).Decode(&v)
	return res.StatusCode, v
}

// ---------- the test ----------

func TestHTTP_EndToEnd_SearchWithFallback(t *testing.T) {
	db := startMySQL(t)
	applyMigrations(t, db)
	if _, err := db.Exec(`
INSERT INTO HOTEL (HotelID, HotelName, City, State, AverageRating, StarRating, TotalRooms) VALUES
  (1, 'Ocean Pearl', 'Miami', 'FL', 4.8, 5, 200),
  (2, 'Palm Court',  'Miami', 'FL', 4.2, 4, 120);
INSERT INTO ROOM (HotelID, BasePrice, RoomStatus) VALUES (1, 450, 'Available'), (2, 250, 'Available');`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rc := redisad.NewClient(miniredis.RunT(t).Addr(), "", 0)
	search := app.NewSearchService(mysqlrepo.New(db), redisad.New(rc), time.Hour)
	srv := httpserver.New(httpserver.Options{})
	srv.MountHandlers(&httpserver.Handlers{
		Sessions:  app.NewSessionService(redisad.NewSessionStore(rc, time.Hour), search, app.NewValidator()),
		CookieTTL: time.Hour,
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	s := &session{t: t, url: ts.URL}
	status, v := s.post("/v1/sessions", nil)
	if status != http.StatusCreated {
		t.Fatalf("start status %d", status)
	}
	s.id = v.SessionID

	if status, _ = s.post("/v1/profile", map[string]any{"name": "Ana", "email": "ana@example.com"}); status != http.StatusOK {
		t.Fatalf("profile status %d", status)
	}

	checkIn := time.Now().UTC().AddDate(0, 1, 0)
	criteria := map[string]any{
		"location":   "Miami",
		"budget":     500,
		"min_rating": 4,
		"check_in":   checkIn.Format("2006-01-02"),
		"check_out":  checkIn.AddDate(0, 0, 2).Format("2006-01-02"),
		"guests":     80,
	}
	status, v = s.post("/v1/search", criteria)
	if status != http.StatusOK || v.Results == nil || v.Results.Source != domain.SourceDatabase || len(v.Results.Hotels) != 2 {
		t.Fatalf("database search: status %d view %+v", status, v.Results)
	}

	// With the database gone the same flow is served from the sample venues.
	_ = db.Close()
	criteria["location"] = "Maui"
	criteria["budget"] = 400
	status, v = s.post("/v1/search", criteria)
	if status != http.StatusOK || v.Results == nil || v.Results.Source != domain.SourceSample || len(v.Results.Hotels) != 7 {
		t.Fatalf("fallback search: status %d view %+v", status, v.Results)
	}
}
