package credstore

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	log := logrus.New()
	log.SetOutput(io.Discard)
	store, err := Open(path, log)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	return store, path
}

func TestStore_SetPersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)

	if err := store.Set(KeyAccessToken, "tok-1"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	type profile struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := store.Set(KeyUser, profile{ID: 9, Name: "Ana"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	reopened, err := Open(path, log)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}

	token, ok := reopened.GetString(KeyAccessToken)
	if !ok || token != "tok-1" {
		t.Fatalf("GetString = %q, %v; want tok-1, true", token, ok)
	}
	var user profile
	if !reopened.Get(KeyUser, &user) || user.ID != 9 || user.Name != "Ana" {
		t.Fatalf("Get user = %#v, want id=9 name=Ana", user)
	}
}

func TestStore_DeleteRemovesKeys(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Set(KeyAccessToken, "tok"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Set(KeyOriginalToken, "orig"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	store.Delete(KeyAccessToken, KeyOriginalToken)

	if _, ok := store.GetString(KeyAccessToken); ok {
		t.Fatalf("access token survived Delete")
	}
	if _, ok := store.GetString(KeyOriginalToken); ok {
		t.Fatalf("original token survived Delete")
	}
}

func TestStore_MissingKeyReturnsFalse(t *testing.T) {
	store, _ := newTestStore(t)
	if _, ok := store.GetString(KeyAccessToken); ok {
		t.Fatalf("GetString on empty store = true, want false")
	}
}

func TestOpen_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	store, err := Open(path, log)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, ok := store.GetString(KeyAccessToken); ok {
		t.Fatalf("corrupt store yielded a token")
	}

	if err := store.Set(KeyAccessToken, "fresh"); err != nil {
		t.Fatalf("Set after corrupt open returned error: %v", err)
	}
	token, ok := store.GetString(KeyAccessToken)
	if !ok || token != "fresh" {
		t.Fatalf("GetString = %q, %v; want fresh, true", token, ok)
	}
}

func TestStore_MalformedEntryCleared(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.Set(KeyUser, "just a string"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	var dest struct {
		ID int64 `json:"id"`
	}
	if store.Get(KeyUser, &dest) {
		t.Fatalf("Get decoded mismatched shape, want false")
	}
	// The bad entry is dropped so the next read does not retry it.
	if store.Get(KeyUser, &dest) {
		t.Fatalf("malformed entry survived Get")
	}
}
