package bankbook

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Account is the in-memory representation of a single bank account.
//
// The identifier and name are immutable after creation. The balance is
// mutated only through Deposit and Withdraw, and is never negative.
// Deposit and Withdraw are pure in-memory mutations: persisting the new
// balance is the caller's responsibility.
type Account struct {
	id             string
	name           string
	credentialHash string // hex-encoded SHA-256 digest of the password
	balance        Money
}

// ID returns the account identifier, a 6-digit numeric string.
func (a *Account) ID() string { return a.id }

// Name returns the account holder display name.
func (a *Account) Name() string { return a.name }

// Balance returns the current in-memory balance.
func (a *Account) Balance() Money { return a.balance }

// Deposit increases the balance by amount and returns the post-operation
// balance. It fails with ErrInvalidAmount when amount is not positive.
func (a *Account) Deposit(amount Money) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, fmt.Errorf("deposit %s: %w", amount.DecimalString(), ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw decreases the balance by amount and returns the post-operation
// balance. It fails with ErrInvalidAmount when amount is not positive, and
// with ErrInsufficientFunds when amount exceeds the balance.
func (a *Account) Withdraw(amount Money) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, fmt.Errorf("withdraw %s: %w", amount.DecimalString(), ErrInvalidAmount)
	}
	if amount.GreaterThan(a.balance) {
		return Money{}, ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}

// authenticate reports whether password matches the stored credential hash.
// The comparison is constant time.
func (a *Account) authenticate(password string) bool {
	return subtle.ConstantTimeCompare([]byte(hashPassword(password)), []byte(a.credentialHash)) == 1
}

// hashPassword returns the hex-encoded SHA-256 digest of password.
// The plaintext is never stored.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
