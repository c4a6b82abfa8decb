package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/item"
)

// Resource names used for the hit counters and forced failures.
const (
	ResourceVersions  = "versions"
	ResourceChampions = "champions"
	ResourceItems     = "items"
	ResourceDetail    = "detail"
)

// DataDragon is a fake Data Dragon serving the fixtures.
type DataDragon struct {
	Server *httptest.Server

	mu        sync.Mutex
	versions  []string
	docVer    string
	champions map[string]champion.Champion
	items     map[string]item.Item
	status    map[string]int
	raw       map[string]string
	hits      map[string]int
}

// NewDataDragon starts the fake server, closed with the test.
func NewDataDragon(t *testing.T) *DataDragon {
	t.Helper()

	dd := &DataDragon{
		versions:  FixtureVersions(),
		docVer:    FixtureVersion,
		champions: FixtureChampions(),
		items:     FixtureItems(),
		status:    make(map[string]int),
		raw:       make(map[string]string),
		hits:      make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/versions.json", dd.handle(ResourceVersions, func(w http.ResponseWriter, r *http.Request) any {
		return dd.versions
	}))
	mux.HandleFunc("GET /cdn/{version}/data/{locale}/champion.json", dd.handle(ResourceChampions, func(w http.ResponseWriter, r *http.Request) any {
		return map[string]any{"type": "champion", "version": dd.docVer, "data": dd.champions}
	}))
	mux.HandleFunc("GET /cdn/{version}/data/{locale}/item.json", dd.handle(ResourceItems, func(w http.ResponseWriter, r *http.Request) any {
		return map[string]any{"type": "item", "version": dd.docVer, "data": dd.items}
	}))
	mux.HandleFunc("GET /cdn/{version}/data/{locale}/champion/{file}", dd.handle(ResourceDetail, func(w http.ResponseWriter, r *http.Request) any {
		id := strings.TrimSuffix(r.PathValue("file"), ".json")
		champ, ok := FixtureChampionDetail(id)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return map[string]string{"error": "not found"}
		}
		return map[string]any{"version": dd.docVer, "data": map[string]champion.Champion{id: champ}}
	}))

	dd.Server = httptest.NewServer(mux)
	t.Cleanup(dd.Server.Close)
	return dd
}

func (dd *DataDragon) handle(resource string, body func(w http.ResponseWriter, r *http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dd.mu.Lock()
		defer dd.mu.Unlock()

		dd.hits[resource]++

		if status, ok := dd.status[resource]; ok {
			w.WriteHeader(status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if raw, ok := dd.raw[resource]; ok {
			w.Write([]byte(raw))
			return
		}
		json.NewEncoder(w).Encode(body(w, r))
	}
}

// CDN is the cdn root of the fake server.
func (dd *DataDragon) CDN() string {
	return dd.Server.URL + "/cdn"
}

// API is the api root of the fake server.
func (dd *DataDragon) API() string {
	return dd.Server.URL + "/api"
}

// FailWith makes the resource answer with the status code.
func (dd *DataDragon) FailWith(resource string, status int) {
	dd.mu.Lock()
	defer dd.mu.Unlock()
	dd.status[resource] = status
}

// RespondRaw makes the resource answer with the raw body.
func (dd *DataDragon) RespondRaw(resource string, body string) {
	dd.mu.Lock()
	defer dd.mu.Unlock()
	dd.raw[resource] = body
}

// SetVersions replaces the versions list.
func (dd *DataDragon) SetVersions(versions ...string) {
	dd.mu.Lock()
	defer dd.mu.Unlock()
	dd.versions = versions
}

// SetDocumentVersion replaces the version field of the catalog documents.
func (dd *DataDragon) SetDocumentVersion(version string) {
	dd.mu.Lock()
	defer dd.mu.Unlock()
	dd.docVer = version
}

// Hits returns how many times the resource was requested.
func (dd *DataDragon) Hits(resource string) int {
	dd.mu.Lock()
	defer dd.mu.Unlock()
	return dd.hits[resource]
}
