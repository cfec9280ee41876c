//go:build integration || !unit

package integration

import (
	"context"
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

	server "hotel_rooms/internal/adapters/http_server"
	redisad "hotel_rooms/internal/adapters/redis"
	"hotel_rooms/internal/app"
	"hotel_rooms/internal/catalog"
	"hotel_rooms/internal/domain"
	mysqlrepo "hotel_rooms/internal/storage/mysql"
)

// ---------- helpers ----------
func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = filepath.Join("..", "..", "migrations")
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil || len(files) == 0 {
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

// ---------- the test ----------
// Seeds MySQL from the embedded catalog, reloads the catalog from MySQL and
// serves it through the real router with a Redis cache in front.
func TestHTTP_EndToEnd_MySQLCatalog(t *testing.T) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=hotel",
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
		"root", hostPort, "hotel")

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

	ctx := context.Background()
	repo := mysqlrepo.New(db)
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	seed := app.NewSeedService(repo)
	src, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	for _, r := range src.ListAll() {
		if err := seed.SeedRoom(ctx, r); err != nil {
			t.Fatalf("SeedRoom: %v", err)
		}
	}

	cat, err := app.LoadCatalog(ctx, "mysql", "", repo)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	srv := server.New(server.Options{})
	srv.MountHandlers(&server.Handlers{Q: app.NewQueryService(cat, cache, time.Minute)})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/rooms/penthouse-suite/booking")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body domain.BookingSummary
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Nights != 6 || body.EstimatedTotal != 5394 || body.Currency != "USD" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !mr.Exists("hotel:booking:" + cat.Fingerprint() + ":penthouse-suite") {
		t.Fatalf("expected booking summary in redis, have %v", mr.Keys())
	}
}
