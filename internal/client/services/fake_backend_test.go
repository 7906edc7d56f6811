package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/vetclinic/internal/client/api"
	"github.com/stretchr/testify/require"
)

// fakeClinic is an in-memory REST backend: every /api/{collection} supports
// list, get, create, update and delete. Records are stored as JSON objects.
type fakeClinic struct {
	mu       sync.Mutex
	nextID   int64
	data     map[string]map[int64]map[string]any
	queries  []url.Values
	failures map[string]int
	envelope bool
}

func newFakeClinic() *fakeClinic {
	return &fakeClinic{data: map[string]map[int64]map[string]any{}, failures: map[string]int{}}
}

func (f *fakeClinic) seed(collection string, records ...map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data[collection] == nil {
		f.data[collection] = map[int64]map[string]any{}
	}
	for _, r := range records {
		f.nextID++
		r["id"] = f.nextID
		f.data[collection][f.nextID] = r
	}
}

func (f *fakeClinic) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return nil
	}
	return f.queries[len(f.queries)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeClinic) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api"), "/"), "/")
	collection := parts[0]
	f.queries = append(f.queries, r.URL.Query())

	if status, ok := f.failures[collection]; ok {
		writeJSON(w, status, map[string]any{"message": "fallo en " + collection})
		return
	}

	if f.data[collection] == nil {
		f.data[collection] = map[int64]map[string]any{}
	}
	items := f.data[collection]

	var id int64
	if len(parts) > 1 {
		id, _ = strconv.ParseInt(parts[1], 10, 64)
	}

	wrap := func(v any) any {
		if f.envelope {
			return map[string]any{"data": v}
		}
		return v
	}

	switch {
	case r.Method == http.MethodGet && len(parts) == 1:
		ids := make([]int64, 0, len(items))
		for k := range items {
			ids = append(ids, k)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out := make([]map[string]any, 0, len(ids))
		for _, k := range ids {
			out = append(out, items[k])
		}
		writeJSON(w, http.StatusOK, wrap(out))

	case r.Method == http.MethodGet:
		item, ok := items[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "No encontrado"})
			return
		}
		writeJSON(w, http.StatusOK, wrap(item))

	case r.Method == http.MethodPost:
		var rec map[string]any
		b, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(b, &rec); err != nil || blankName(rec) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"message": "Datos inválidos",
				"errors":  map[string][]string{"name": {"El campo nombre es obligatorio"}},
			})
			return
		}
		f.nextID++
		rec["id"] = f.nextID
		items[f.nextID] = rec
		writeJSON(w, http.StatusCreated, wrap(rec))

	case r.Method == http.MethodPut:
		item, ok := items[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "No encontrado"})
			return
		}
		var patch map[string]any
		_ = json.NewDecoder(r.Body).Decode(&patch)
		for k, v := range patch {
			item[k] = v
		}
		item["id"] = id
		writeJSON(w, http.StatusOK, wrap(item))

	case r.Method == http.MethodDelete:
		if _, ok := items[id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "No encontrado"})
			return
		}
		delete(items, id)
		writeJSON(w, http.StatusOK, map[string]any{"message": "Eliminado"})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// blankName reports a record whose name field is present but empty.
func blankName(rec map[string]any) bool {
	for _, key := range []string{"name", "first_name"} {
		if v, ok := rec[key]; ok && v == "" {
			return true
		}
	}
	return false
}

func newGateway(t *testing.T, h http.Handler) *api.Gateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	g, err := api.NewGateway(srv.URL)
	require.NoError(t, err)
	return g
}
