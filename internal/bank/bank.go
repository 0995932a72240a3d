package bank

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"minibank/internal/domain"
)

// Bank is the aggregate root: it owns all users and, through them, all
// accounts. It assumes a single synchronous owner; callers serialize access.
type Bank struct {
	name  string
	users map[domain.UserID]*User
}

// New returns an empty bank with the given display name.
func New(name string) *Bank {
	return &Bank{name: name, users: make(map[domain.UserID]*User)}
}

// Name returns the bank's display name.
func (b *Bank) Name() string { return b.name }

// CreateUser registers a new user under a fresh unique id and returns it.
func (b *Bank) CreateUser(name string) *User {
	id := newUserID()
	for {
		if _, taken := b.users[id]; !taken {
			break
		}
		id = newUserID()
	}
	u := newUser(id, name)
	b.users[id] = u
	return u
}

// User returns the user with the given id, or domain.ErrUserNotFound.
func (b *Bank) User(id domain.UserID) (*User, error) {
	u, ok := b.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// Users returns all users ordered by id.
func (b *Bank) Users() []*User {
	out := make([]*User, 0, len(b.users))
	for _, u := range b.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// TotalBalance sums the balances of every account in the bank.
func (b *Bank) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, u := range b.users {
		for _, a := range u.accounts {
			total = total.Add(a.balance)
		}
	}
	return total
}

// Snapshot exports the full user/account graph in its persisted form.
// Statements are copied, so later mutation does not alias the snapshot.
func (b *Bank) Snapshot() domain.Snapshot {
	s := make(domain.Snapshot, len(b.users))
	for id, u := range b.users {
		rec := domain.UserRecord{
			Name:     u.name,
			Accounts: make(map[domain.AccountNumber]domain.AccountRecord, len(u.accounts)),
		}
		for number, a := range u.accounts {
			rec.Accounts[number] = domain.AccountRecord{
				Balance:      a.balance,
				Transactions: a.Transactions(),
			}
		}
		s[id] = rec
	}
	return s
}

// FromSnapshot rebuilds a bank from its persisted form. Structurally
// invalid data (a negative balance) is reported as corrupt rather than
// admitted into the graph.
func FromSnapshot(name string, s domain.Snapshot) (*Bank, error) {
	b := New(name)
	for id, rec := range s {
		u := newUser(id, rec.Name)
		for number, ar := range rec.Accounts {
			if ar.Balance.Sign() < 0 {
				return nil, fmt.Errorf("%w: account %s has negative balance %s",
					domain.ErrSnapshotCorrupt, number, ar.Balance)
			}
			a := newAccount(number)
			a.balance = ar.Balance
			if len(ar.Transactions) > 0 {
				a.transactions = append(a.transactions, ar.Transactions...)
			}
			u.accounts[number] = a
		}
		b.users[id] = u
	}
	return b, nil
}

func newUserID() domain.UserID {
	return domain.UserID("USR-" + uuid.NewString())
}

func newAccountNumber() domain.AccountNumber {
	return domain.AccountNumber("ACC-" + uuid.NewString())
}
