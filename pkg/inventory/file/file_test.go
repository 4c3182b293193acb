package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"invtrack/pkg/inventory"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inv.json")

	inv := inventory.New()
	inv.Add("apple", 8, nil)
	inv.Add("banana", 3, nil)

	store := New(path)
	if err := store.Save(ctx, inv); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := New(path).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Items(), inv.Items()) {
		t.Fatalf("round trip mismatch: %v != %v", loaded.Items(), inv.Items())
	}
}

func TestLoadMissingFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "absent.json")

	inv, err := New(path).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if inv.Len() != 0 {
		t.Fatalf("expected empty inventory, len=%d", inv.Len())
	}

	strict := New(path)
	strict.MustExist = true
	if _, err := strict.Load(ctx); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inv.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := New(path).Load(ctx)
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if serr.Op != "load" {
		t.Fatalf("expected load op, got %s", serr.Op)
	}
}

func TestLoadRejectsTrailingData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inv.json")
	if err := os.WriteFile(path, []byte("{\"apple\": 3}\ngarbage trailing data"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := New(path).Load(ctx)
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError for trailing data, got %v", err)
	}
	if serr.Op != "load" {
		t.Fatalf("expected load op, got %s", serr.Op)
	}
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inv.json")
	if err := os.WriteFile(path, []byte(`{"apple": -1}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := New(path).Load(ctx)
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	var verr *inventory.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected wrapped ValidationError, got %v", err)
	}
}

func TestSaveFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "inv.json")

	err := New(path).Save(ctx, inventory.New())
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if serr.Op != "save" {
		t.Fatalf("expected save op, got %s", serr.Op)
	}
}

func TestLoadHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New("inv.json").Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
