package bankbook

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

// AccountStore is the durable mapping from account identifier to account
// record, backed by a single line-oriented text file acting as the entire
// table.
//
// A missing file reads as an empty store. Every operation is a blocking
// file scan or read-rewrite-write cycle run to completion; there is no
// locking, under the single-process single-user assumption. A multi-process
// deployment would require file locking or a transactional store.
type AccountStore struct {
	path string
	cur  string
}

// NewAccountStore binds a store to the accounts file at path. Balances are
// read and written in the given currency.
func NewAccountStore(path, currency string) *AccountStore {
	return &AccountStore{path: path, cur: currency}
}

// Path returns the accounts file backing this store.
func (s *AccountStore) Path() string { return s.path }

// Exists reports whether a record with this identifier is present.
func (s *AccountStore) Exists(id string) (bool, error) {
	_, err := s.Get(id)
	if errors.Is(err, ErrAccountNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Get parses and returns the full record for id, or ErrAccountNotFound.
func (s *AccountStore) Get(id string) (*Account, error) {
	accounts, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.id == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("account %s: %w", id, ErrAccountNotFound)
}

// Create generates a fresh unique identifier, hashes the password, appends
// a new record, and returns it. It fails with ErrInvalidAmount when the
// initial deposit is not positive, and with ErrInvalidName when the name
// would corrupt the record format.
func (s *AccountStore) Create(name string, initialDeposit Money, password string) (*Account, error) {
	if !initialDeposit.IsPositive() {
		return nil, fmt.Errorf("initial deposit: %w", ErrInvalidAmount)
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	id, err := s.freshID()
	if err != nil {
		return nil, err
	}
	a := &Account{
		id:             id,
		name:           name,
		credentialHash: hashPassword(password),
		balance:        initialDeposit,
	}
	if err := s.append(a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateBalance rewrites the entire store, replacing the matched record's
// balance field; all other records pass through unchanged. The rewrite goes
// through a temporary file renamed over the original.
func (s *AccountStore) UpdateBalance(id string, newBalance Money) error {
	accounts, err := s.readAll()
	if err != nil {
		return err
	}
	found := false
	var b strings.Builder
	for _, a := range accounts {
		if a.id == id {
			a.balance = newBalance
			found = true
		}
		b.WriteString(encodeAccount(a))
		b.WriteByte('\n')
	}
	if !found {
		return fmt.Errorf("account %s: %w", id, ErrAccountNotFound)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0644); err != nil {
		return storageErr("write", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return storageErr("rename", s.path, err)
	}
	return nil
}

// freshID draws a random identifier from the 6-digit space and retries on
// collision. Uniqueness is probabilistic, not cryptographic: the space is
// far larger than realistic account counts, so the retry loop terminates
// quickly even though it has no upper bound.
func (s *AccountStore) freshID() (string, error) {
	for {
		id := strconv.Itoa(rand.IntN(900000) + 100000)
		exists, err := s.Exists(id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
}

// append adds one record line at the end of the accounts file, creating the
// file if needed.
func (s *AccountStore) append(a *Account) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return storageErr("open", s.path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(encodeAccount(a) + "\n"); err != nil {
		return storageErr("write", s.path, err)
	}
	return nil
}

// readAll parses the whole accounts file in record order. A missing file
// reads as an empty store.
func (s *AccountStore) readAll() ([]*Account, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("open", s.path, err)
	}
	defer f.Close()

	var accounts []*Account
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		a, err := decodeAccount(line, s.cur)
		if err != nil {
			return nil, storageErr("parse", s.path, err)
		}
		accounts = append(accounts, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, storageErr("read", s.path, err)
	}
	return accounts, nil
}
