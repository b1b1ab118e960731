//go:build integration || !unit

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

	server "pansiyon_cms/internal/adapters/http_server"
	redisad "pansiyon_cms/internal/adapters/redis"
	"pansiyon_cms/internal/app"
	"pansiyon_cms/internal/domain"
	mysqlrepo "pansiyon_cms/internal/storage/mysql"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func TestHTTP_EndToEnd_ContentAndHotels(t *testing.T) {
	// Start isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=pansiyon",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "pansiyon")

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
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	mr := miniredis.RunT(t)
	repo := mysqlrepo.New(db)
	cache := redisad.New(mr.Addr(), "", 0)

	q := app.NewQueryService(repo, cache, 10*time.Minute)
	e := app.NewEditorService(repo, cache)

	srv := server.New(0)
	srv.MountHandlers(&server.Handlers{Q: q, E: e})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	client := ts.Client()

	// First read seeds and serves the default document.
	res, err := client.Get(ts.URL + "/v1/content/page.home?locale=en")
	if err != nil {
		t.Fatalf("GET home: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET home status %d", res.StatusCode)
	}
	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}
	var home domain.HomeContent
	if err := json.NewDecoder(res.Body).Decode(&home); err != nil {
		t.Fatalf("decode home: %v", err)
	}
	res.Body.Close()
	if home.Hero.TitleMain == "" || len(home.Rooms.Cards) == 0 {
		t.Fatalf("default home incomplete: %+v", home)
	}

	// Conditional re-read short-circuits.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/content/page.home?locale=en", nil)
	req.Header.Set("If-None-Match", etag)
	res, err = client.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", res.StatusCode)
	}

	// Save an English edit; German reads must pick up the shared room image.
	home.Rooms.Cards[0].Image = "/images/rooms/updated-by-e2e.jpg"
	edit, _ := json.Marshal(map[string]any{"locale": "en", "content": home})
	req, _ = http.NewRequest(http.MethodPut, ts.URL+"/v1/content/page.home", bytes.NewReader(edit))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Editor", "e2e@lavanta")
	res, err = client.Do(req)
	if err != nil {
		t.Fatalf("PUT home: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("PUT home status %d", res.StatusCode)
	}

	res, err = client.Get(ts.URL + "/v1/content/page.home?locale=de")
	if err != nil {
		t.Fatalf("GET home de: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET home de status %d", res.StatusCode)
	}
	if cl := res.Header.Get("Content-Language"); cl != "de" {
		t.Fatalf("Content-Language %q", cl)
	}
	var homeDE domain.HomeContent
	if err := json.NewDecoder(res.Body).Decode(&homeDE); err != nil {
		t.Fatalf("decode home de: %v", err)
	}
	res.Body.Close()
	if homeDE.Rooms.Cards[0].Image != "/images/rooms/updated-by-e2e.jpg" {
		t.Fatalf("German read missed shared media: %q", homeDE.Rooms.Cards[0].Image)
	}

	// Invalid submissions come back as problem+json with the first message.
	bad, _ := json.Marshal(map[string]any{
		"locale":  "en",
		"content": map[string]any{"hero": map[string]any{"titleMain": ""}},
	})
	req, _ = http.NewRequest(http.MethodPut, ts.URL+"/v1/content/page.home", bytes.NewReader(bad))
	req.Header.Set("Content-Type", "application/json")
	res, err = client.Do(req)
	if err != nil {
		t.Fatalf("PUT invalid: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	var prob struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(res.Body).Decode(&prob); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	res.Body.Close()
	if prob.Title != "Validation failed" || prob.Detail == "" {
		t.Fatalf("unexpected problem: %+v", prob)
	}

	// Hotels round trip.
	hotel, _ := json.Marshal(map[string]any{
		"name":      "Pansiyon Lavanta",
		"heroTitle": "Sleep by the Aegean",
		"gallery": []any{
			map[string]any{"url": "/images/hotels/lavanta/terrace.jpg", "category": "facilities"},
		},
	})
	req, _ = http.NewRequest(http.MethodPut, ts.URL+"/v1/hotels/pansiyon-lavanta/locales/en", bytes.NewReader(hotel))
	req.Header.Set("Content-Type", "application/json")
	res, err = client.Do(req)
	if err != nil {
		t.Fatalf("PUT hotel: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("PUT hotel status %d", res.StatusCode)
	}

	res, err = client.Get(ts.URL + "/v1/hotels/pansiyon-lavanta?locale=en")
	if err != nil {
		t.Fatalf("GET hotel: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET hotel status %d", res.StatusCode)
	}
	var view app.HotelView
	if err := json.NewDecoder(res.Body).Decode(&view); err != nil {
		t.Fatalf("decode hotel: %v", err)
	}
	res.Body.Close()
	if view.Content.Name != "Pansiyon Lavanta" {
		t.Fatalf("unexpected hotel view: %+v", view)
	}
	if len(view.Content.Gallery) != 1 || view.Content.Gallery[0].ID == "" {
		t.Fatalf("gallery ids not assigned: %+v", view.Content.Gallery)
	}

	// Unknown keys are a 404.
	res, err = client.Get(ts.URL + "/v1/content/page.blog")
	if err != nil {
		t.Fatalf("GET unknown: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
