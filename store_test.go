package bankbook

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var sixDigits = regexp.MustCompile(`^[1-9]\d{5}$`)

func newTestStore(t *testing.T) *AccountStore {
	t.Helper()
	return NewAccountStore(filepath.Join(t.TempDir(), "accounts.txt"), "USD")
}

func TestAccountStore_Create(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Create("Alice", USD(100), "pw1")
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if !sixDigits.MatchString(a.ID()) {
		t.Errorf("Create() id = %q, want a 6-digit number", a.ID())
	}
	if !a.Balance().Equal(USD(100)) {
		t.Errorf("Create() balance = %s, want %s", a.Balance(), USD(100))
	}
	if a.credentialHash == "pw1" || a.credentialHash == "" {
		t.Error("Create() must store a hash, never the plaintext password")
	}
}

func TestAccountStore_Create_InvalidDeposit(t *testing.T) {
	store := newTestStore(t)

	for _, amount := range []Money{USD(0), USD(-10)} {
		if _, err := store.Create("Alice", amount, "pw1"); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Create(%s) = %v, want ErrInvalidAmount", amount.DecimalString(), err)
		}
	}
	if exists, _ := store.Exists("100000"); exists {
		t.Error("failed Create() must not write a record")
	}
}

func TestAccountStore_Create_InvalidName(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Create("Smith, John", USD(100), "pw1"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Create() = %v, want ErrInvalidName", err)
	}
}

func TestAccountStore_UniqueIDs(t *testing.T) {
	store := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		a, err := store.Create("holder", USD(1), "pw")
		if err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
		if seen[a.ID()] {
			t.Fatalf("Create() produced a duplicate id %s", a.ID())
		}
		seen[a.ID()] = true
	}
}

func TestAccountStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")
	store := NewAccountStore(path, "USD")

	type created struct {
		id      string
		name    string
		balance Money
	}
	var want []created
	for _, c := range []struct {
		name    string
		balance Money
	}{
		{"Alice", USD(100)},
		{"Bob", USD(0.01)},
		{"Carol", USD(99999.99)},
	} {
		a, err := store.Create(c.name, c.balance, "pw")
		if err != nil {
			t.Fatalf("Create(%s) unexpected error: %v", c.name, err)
		}
		want = append(want, created{a.ID(), c.name, c.balance})
	}

	// Reopen the store and read everything back.
	reopened := NewAccountStore(path, "USD")
	for _, w := range want {
		got, err := reopened.Get(w.id)
		if err != nil {
			t.Fatalf("Get(%s) unexpected error: %v", w.id, err)
		}
		if got.Name() != w.name || !got.Balance().Equal(w.balance) {
			t.Errorf("Get(%s) = (%s, %s), want (%s, %s)", w.id, got.Name(), got.Balance(), w.name, w.balance)
		}
	}
}

func TestAccountStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Get("999999"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Get() on an empty store = %v, want ErrAccountNotFound", err)
	}

	if _, err := store.Create("Alice", USD(100), "pw1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get("000000"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Get() for an unknown id = %v, want ErrAccountNotFound", err)
	}
}

func TestAccountStore_Exists(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Create("Alice", USD(100), "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if exists, err := store.Exists(a.ID()); err != nil || !exists {
		t.Errorf("Exists(%s) = (%v, %v), want (true, nil)", a.ID(), exists, err)
	}
	if exists, err := store.Exists("000000"); err != nil || exists {
		t.Errorf("Exists(000000) = (%v, %v), want (false, nil)", exists, err)
	}
}

func TestAccountStore_UpdateBalance(t *testing.T) {
	store := newTestStore(t)

	alice, err := store.Create("Alice", USD(100), "pw1")
	if err != nil {
		t.Fatal(err)
	}
	bob, err := store.Create("Bob", USD(200), "pw2")
	if err != nil {
		t.Fatal(err)
	}

	if err := store.UpdateBalance(alice.ID(), USD(150)); err != nil {
		t.Fatalf("UpdateBalance() unexpected error: %v", err)
	}

	got, err := store.Get(alice.ID())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Balance().Equal(USD(150)) {
		t.Errorf("updated balance = %s, want %s", got.Balance(), USD(150))
	}

	// Every other record passes through unchanged, credentials included.
	other, err := store.Get(bob.ID())
	if err != nil {
		t.Fatal(err)
	}
	if other.Name() != "Bob" || !other.Balance().Equal(USD(200)) || !other.authenticate("pw2") {
		t.Errorf("unrelated record changed by UpdateBalance(): %+v", other)
	}
}

func TestAccountStore_UpdateBalance_NotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Create("Alice", USD(100), "pw1"); err != nil {
		t.Fatal(err)
	}
	if err := store.UpdateBalance("000000", USD(1)); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("UpdateBalance() for an unknown id = %v, want ErrAccountNotFound", err)
	}
}

func TestAccountStore_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.txt")
	store := NewAccountStore(path, "USD")

	a, err := store.Create("Alice", USD(100), "pw1")
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("\n\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if _, err := store.Get(a.ID()); err != nil {
		t.Errorf("Get() after blank lines = %v, want nil", err)
	}
}
