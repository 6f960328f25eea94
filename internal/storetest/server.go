// Package storetest runs an in-memory json-server look-alike for tests of
// the store client, repositories, services and routes.
package storetest

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// Record is one stored document, decoded the way encoding/json decodes an
// object (numbers are float64).
type Record = map[string]any

// Request is one call received by the fake.
type Request struct {
	Method     string
	Collection string
	ID         string
	Query      map[string][]string
	Body       Record
}

// Server is the fake store. Every collection named in the store contract
// exists from the start, empty.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	data     map[string][]Record
	requests []Request
	failures map[string]int
}

// New starts a fake store that is closed when t ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		data: map[string][]Record{
			"movies":    {},
			"reviews":   {},
			"users":     {},
			"favorites": {},
			"comments":  {},
		},
		failures: map[string]int{},
	}

	r := chi.NewRouter()
	r.Get("/{collection}", s.list)
	r.Post("/{collection}", s.create)
	r.Get("/{collection}/{id}", s.get)
	r.Patch("/{collection}/{id}", s.patch)
	r.Delete("/{collection}/{id}", s.remove)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Config points a store client at the fake.
func (s *Server) Config() utils.StoreConfig {
	return utils.StoreConfig{BaseURL: s.URL, Timeout: 2 * time.Second}
}

// Seed stores records as-is (through a JSON round trip). Records without an
// id get the next free one.
func (s *Server) Seed(collection string, records ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			panic(fmt.Sprintf("storetest: seed %s: %v", collection, err))
		}
		var doc Record
		if err := json.Unmarshal(raw, &doc); err != nil {
			panic(fmt.Sprintf("storetest: seed %s: %v", collection, err))
		}
		if id, ok := doc["id"]; !ok || id == float64(0) {
			doc["id"] = s.nextID(collection)
		}
		s.data[collection] = append(s.data[collection], doc)
	}
}

// Fail makes every later request matching method and path answer code.
// path is "/<collection>" or "/<collection>/<id>".
func (s *Server) Fail(method, path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = code
}

// Records returns a copy of the collection's current contents.
func (s *Server) Records(collection string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.data[collection]))
	for i, doc := range s.data[collection] {
		out[i] = maps.Clone(doc)
	}
	return out
}

// Requests returns the calls received so far, optionally narrowed to one
// method and collection.
func (s *Server) Requests(method, collection string) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Request
	for _, req := range s.requests {
		if method != "" && req.Method != method {
			continue
		}
		if collection != "" && req.Collection != collection {
			continue
		}
		out = append(out, req)
	}
	return out
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	query := r.URL.Query()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, r, collection, "", nil) {
		return
	}

	result := []Record{}
	for _, doc := range s.data[collection] {
		if matches(doc, query) {
			result = append(result, s.expand(doc, query["_expand"]))
		}
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, r, collection, id, nil) {
		return
	}

	i := s.find(collection, id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, Record{})
		return
	}
	writeJSON(w, http.StatusOK, s.expand(s.data[collection][i], r.URL.Query()["_expand"]))
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	var body Record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, r, collection, "", body) {
		return
	}

	doc := maps.Clone(body)
	doc["id"] = s.nextID(collection)
	s.data[collection] = append(s.data[collection], doc)
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) patch(w http.ResponseWriter, r *http.Request) {
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	var body Record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, r, collection, id, body) {
		return
	}

	i := s.find(collection, id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, Record{})
		return
	}
	doc := maps.Clone(s.data[collection][i])
	for k, v := range body {
		if k != "id" {
			doc[k] = v
		}
	}
	s.data[collection][i] = doc
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	collection, id := chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, r, collection, id, nil) {
		return
	}

	i := s.find(collection, id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, Record{})
		return
	}
	s.data[collection] = append(s.data[collection][:i:i], s.data[collection][i+1:]...)
	writeJSON(w, http.StatusOK, Record{})
}

// begin records the request and answers it when a failure is configured or
// the collection is unknown. Callers hold s.mu.
func (s *Server) begin(w http.ResponseWriter, r *http.Request, collection, id string, body Record) bool {
	s.requests = append(s.requests, Request{
		Method:     r.Method,
		Collection: collection,
		ID:         id,
		Query:      r.URL.Query(),
		Body:       body,
	})

	if code, ok := s.failures[r.Method+" "+r.URL.Path]; ok {
		http.Error(w, http.StatusText(code), code)
		return true
	}
	if _, ok := s.data[collection]; !ok {
		writeJSON(w, http.StatusNotFound, Record{})
		return true
	}
	return false
}

func (s *Server) find(collection, id string) int {
	for i, doc := range s.data[collection] {
		if format(doc["id"]) == id {
			return i
		}
	}
	return -1
}

func (s *Server) nextID(collection string) float64 {
	var highest float64
	for _, doc := range s.data[collection] {
		if id, ok := doc["id"].(float64); ok && id > highest {
			highest = id
		}
	}
	return highest + 1
}

// expand attaches the parent record for each relation (movie -> movieId in
// movies), the way json-server's _expand does.
func (s *Server) expand(doc Record, relations []string) Record {
	out := maps.Clone(doc)
	for _, rel := range relations {
		i := s.find(rel+"s", format(doc[rel+"Id"]))
		if i >= 0 {
			out[rel] = maps.Clone(s.data[rel+"s"][i])
		}
	}
	return out
}

func matches(doc Record, query map[string][]string) bool {
	for key, want := range query {
		if len(key) > 0 && key[0] == '_' {
			continue
		}
		if len(want) == 0 || format(doc[key]) != want[0] {
			return false
		}
	}
	return true
}

func format(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	case nil:
		return ""
	default:
		return fmt.Sprint(n)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
