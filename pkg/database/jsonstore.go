package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-reviews/pkg/utils"
)

// ErrNotFound is matched by StatusError values carrying a 404.
var ErrNotFound = errors.New("not found")

// StatusError is returned for any non-2xx answer from the store.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: store answered %d", e.Method, e.Path, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// StoreIface is the REST contract of the external data store. Collections
// are addressed by name ("movies", "reviews", ...) and ids are integers.
type StoreIface interface {
	List(ctx context.Context, collection string, query url.Values, out any) error
	Get(ctx context.Context, collection string, id int, query url.Values, out any) error
	Create(ctx context.Context, collection string, body, out any) error
	Patch(ctx context.Context, collection string, id int, body, out any) error
	Delete(ctx context.Context, collection string, id int) error
	Ping(ctx context.Context) error
}

// Store talks JSON over HTTP to a json-server compatible backend.
type Store struct {
	base   *url.URL
	client *http.Client
}

// List implements StoreIface
func (s *Store) List(ctx context.Context, collection string, query url.Values, out any) error {
	return s.do(ctx, http.MethodGet, collection, query, nil, out)
}

// Get implements StoreIface
func (s *Store) Get(ctx context.Context, collection string, id int, query url.Values, out any) error {
	return s.do(ctx, http.MethodGet, collection+"/"+strconv.Itoa(id), query, nil, out)
}

// Create implements StoreIface
func (s *Store) Create(ctx context.Context, collection string, body, out any) error {
	return s.do(ctx, http.MethodPost, collection, nil, body, out)
}

// Patch implements StoreIface
func (s *Store) Patch(ctx context.Context, collection string, id int, body, out any) error {
	return s.do(ctx, http.MethodPatch, collection+"/"+strconv.Itoa(id), nil, body, out)
}

// Delete implements StoreIface
func (s *Store) Delete(ctx context.Context, collection string, id int) error {
	return s.do(ctx, http.MethodDelete, collection+"/"+strconv.Itoa(id), nil, nil, nil)
}

// Ping implements StoreIface
func (s *Store) Ping(ctx context.Context) error {
	return s.do(ctx, http.MethodGet, "movies", nil, nil, nil)
}

func (s *Store) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := s.base.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}

	return nil
}

// InitStore builds the store client from config. It does not contact the
// store; call Ping for that.
func InitStore(config utils.StoreConfig) (StoreIface, error) {
	base, err := url.Parse(strings.TrimRight(config.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("store url %q must be absolute", config.BaseURL)
	}

	return &Store{
		base: base,
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}
