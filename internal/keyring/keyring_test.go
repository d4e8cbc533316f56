package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/salat/internal/constants"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	connStr := "postgres://salat@localhost:5432/salat?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if got != connStr {
		t.Errorf("GetConnectionString() = %q, want %q", got, connStr)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("expected error for empty connection string")
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("postgres://salat@localhost/salat"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete, error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestResolvePrefersEnvironment(t *testing.T) {
	gokeyring.MockInit()
	if err := SetConnectionString("postgres://keyring@localhost/salat"); err != nil {
		t.Fatal(err)
	}

	t.Setenv(constants.EnvConnectionString, "postgres://env@localhost/salat")
	connStr, source, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if source != "environment" || connStr != "postgres://env@localhost/salat" {
		t.Errorf("Resolve() = %q from %q", connStr, source)
	}

	t.Setenv(constants.EnvConnectionString, "")
	connStr, source, err = Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if source != "keyring" || connStr != "postgres://keyring@localhost/salat" {
		t.Errorf("Resolve() = %q from %q", connStr, source)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
