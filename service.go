package bankbook

// Service orchestrates the account store and the transaction log: account
// creation, login, balance mutation with validation, and history retrieval.
//
// The session is per-instance state, not a package variable, so independent
// services can coexist (tests rely on this). At most one account is
// authenticated at a time.
//
// Balance updates and log appends are two separate writes. A failure
// between them leaves the log inconsistent with the authoritative balance;
// this is a known limitation of the flat-file design. A stronger design
// would merge both into one atomic append-only journal and derive the
// balance by replay.
type Service struct {
	store   *AccountStore
	log     *TransactionLog
	session *Account
}

// NewService creates a banking service over the given store and log, with
// no active session.
func NewService(store *AccountStore, log *TransactionLog) *Service {
	return &Service{store: store, log: log}
}

// CreateAccount creates a new account with an initial deposit and records
// the deposit as the account's first ledger entry. The session state is
// unchanged.
//
// When the record is durable but the initial entry could not be appended,
// the created account is returned along with the append error.
func (s *Service) CreateAccount(name string, initialDeposit Money, password string) (*Account, error) {
	a, err := s.store.Create(name, initialDeposit, password)
	if err != nil {
		return nil, err
	}
	if err := s.log.Append(NewDeposit(a.id, initialDeposit, Now())); err != nil {
		return a, err
	}
	return a, nil
}

// Login authenticates an account and makes it the current session. It fails
// with ErrAccountNotFound for an unknown id and ErrInvalidCredentials for a
// hash mismatch; in both cases the session is unchanged.
func (s *Service) Login(id, password string) error {
	a, err := s.store.Get(id)
	if err != nil {
		return err
	}
	if !a.authenticate(password) {
		return ErrInvalidCredentials
	}
	s.session = a
	return nil
}

// Logout discards the session account. The balance is already committed on
// every mutation, so nothing needs to be persisted.
func (s *Service) Logout() { s.session = nil }

// CurrentAccount returns the authenticated account, or nil when logged out.
// It is a read-only view for display; callers never mutate it directly.
func (s *Service) CurrentAccount() *Account { return s.session }

// Deposit adds amount to the session account: it mutates the entity,
// persists the new balance, then appends a Deposit entry, in that order.
// It fails with ErrNoSession when logged out. When persisting fails the
// in-memory balance is rolled back so the session stays consistent with
// the store.
func (s *Service) Deposit(amount Money) (Money, error) {
	return s.apply(amount, (*Account).Deposit, NewDeposit)
}

// Withdraw removes amount from the session account, with the same ordering
// and failure behavior as Deposit.
func (s *Service) Withdraw(amount Money) (Money, error) {
	return s.apply(amount, (*Account).Withdraw, NewWithdrawal)
}

// apply runs one balance mutation end to end: entity update, balance
// persistence, log append.
func (s *Service) apply(amount Money, mutate func(*Account, Money) (Money, error), entry func(string, Money, Timestamp) Transaction) (Money, error) {
	if s.session == nil {
		return Money{}, ErrNoSession
	}
	before := s.session.balance
	balance, err := mutate(s.session, amount)
	if err != nil {
		return Money{}, err
	}
	if err := s.store.UpdateBalance(s.session.id, balance); err != nil {
		s.session.balance = before
		return Money{}, err
	}
	if err := s.log.Append(entry(s.session.id, amount, Now())); err != nil {
		// The balance is already durable; the missing entry is the accepted
		// dual-write gap.
		return balance, err
	}
	return balance, nil
}

// TransactionHistory returns the session account's entries, newest first.
// Without a session it returns an empty history, not an error.
func (s *Service) TransactionHistory() ([]Transaction, error) {
	if s.session == nil {
		return nil, nil
	}
	return s.log.HistoryFor(s.session.id)
}
