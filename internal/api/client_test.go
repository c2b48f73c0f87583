package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("localhost:8000")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != "localhost:8000" {
		t.Fatalf("host = %q, want localhost:8000", u.Host)
	}

	u, err = parseBaseURL("https://api.example.com/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("   "); err == nil {
		t.Fatalf("parseBaseURL accepted empty url, want error")
	}
}

func TestClient_SendsHeadersAndDecodesResponses(t *testing.T) {
	t.Parallel()

	var gotAuth, gotRequestID, gotUserAgent string
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotUserAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "Trator 4"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	c.SetTokenSource(StaticToken("tok-123"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	var dest struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	query := url.Values{}
	query.Set("search", "trator")
	if err := c.Get(ctx, "/vehicles/", query, &dest); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if dest.ID != 7 || dest.Name != "Trator 4" {
		t.Fatalf("Get decoded %#v, want id=7 name=Trator 4", dest)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-ID missing")
	}
	if !strings.HasPrefix(gotUserAgent, "frotactl/") {
		t.Fatalf("User-Agent = %q, want frotactl/*", gotUserAgent)
	}
	if gotQuery.Get("search") != "trator" {
		t.Fatalf("query = %v, want search=trator", gotQuery)
	}
}

func TestClient_NoTokenMeansNoAuthorizationHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	c.SetTokenSource(StaticToken(""))

	if err := c.Delete(context.Background(), "/vehicles/1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClient_PostFormEncodesCredentials(t *testing.T) {
	t.Parallel()

	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "abc"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	values := url.Values{}
	values.Set("username", "a@b.com")
	values.Set("password", "secret")
	var dest struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.PostForm(context.Background(), "/login/token", values, &dest); err != nil {
		t.Fatalf("PostForm returned error: %v", err)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("Content-Type = %q, want form encoding", gotContentType)
	}
	if !strings.Contains(gotBody, "username=a%40b.com") {
		t.Fatalf("body = %q, want encoded username", gotBody)
	}
	if dest.AccessToken != "abc" {
		t.Fatalf("access_token = %q, want abc", dest.AccessToken)
	}
}

func TestClient_SendMultipartCarriesFieldsAndFiles(t *testing.T) {
	t.Parallel()

	var gotName, gotFile string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		gotName = r.FormValue("name")
		file, header, err := r.FormFile("photo")
		if err != nil {
			t.Errorf("FormFile: %v", err)
		} else {
			defer file.Close()
			gotFile = header.Filename
		}
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	files := []FilePart{{Field: "photo", Filename: "pneu.jpg", Content: strings.NewReader("jpegdata")}}
	err = c.SendMultipart(context.Background(), http.MethodPost, "/parts/", map[string]string{"name": "Pneu 295"}, files, nil)
	if err != nil {
		t.Fatalf("SendMultipart returned error: %v", err)
	}
	if gotName != "Pneu 295" {
		t.Fatalf("name field = %q, want Pneu 295", gotName)
	}
	if gotFile != "pneu.jpg" {
		t.Fatalf("file = %q, want pneu.jpg", gotFile)
	}
}

func TestClient_ErrorResponsesDecodeDetail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Placa já cadastrada."})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = c.Post(context.Background(), "/vehicles/", map[string]string{"model": "x"}, nil)
	if err == nil {
		t.Fatalf("Post returned nil error, want 422")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("Status = %d, want 422", apiErr.Status)
	}
	if apiErr.Detail != "Placa já cadastrada." {
		t.Fatalf("Detail = %q, want server detail", apiErr.Detail)
	}
	if got := Detail(err, "fallback"); got != "Placa já cadastrada." {
		t.Fatalf("Detail() = %q, want server detail", got)
	}
}

func TestDetail_ServerErrorsUseFallback(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = c.Get(context.Background(), "/vehicles/", nil, &struct{}{})
	if err == nil {
		t.Fatalf("Get returned nil error, want 500")
	}
	if got := Detail(err, "Ocorreu um erro."); got != "Ocorreu um erro." {
		t.Fatalf("Detail() = %q, want fallback for 5xx", got)
	}
}
