package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	want := "postgres://checkin@localhost:5432/checkin?sslmode=disable"
	if err := SetConnectionString(want); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if got != want {
		t.Errorf("GetConnectionString() = %q, want %q", got, want)
	}
	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring")
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("  "); err == nil {
		t.Error("SetConnectionString with blank input should fail")
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("host=localhost dbname=checkin"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConnectionString() after delete error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestUnavailableKeyring(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("dbus not running"))
	defer gokeyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("GetConnectionString() error = %v, want %v", err, ErrKeyringUnavailable)
	}
	if IsAvailable() {
		t.Error("IsAvailable() = true for failing keyring")
	}
}

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"url with password", "postgres://me:secret@db:5432/checkin", "postgres://me:****@db:5432/checkin"},
		{"url without password", "postgresql://me@db/checkin", "postgresql://me@db/checkin"},
		{"dsn with password", "host=db password=secret dbname=checkin", "host=db password=**** dbname=checkin"},
		{"dsn without password", "host=db dbname=checkin", "host=db dbname=checkin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskPassword(tt.in); got != tt.want {
				t.Errorf("MaskPassword() = %q, want %q", got, tt.want)
			}
		})
	}
}
