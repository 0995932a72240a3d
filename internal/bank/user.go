package bank

import (
	"sort"

	"minibank/internal/domain"
)

// User is an identity owning one or more accounts. Each account has
// exactly one owner.
type User struct {
	id       domain.UserID
	name     string
	accounts map[domain.AccountNumber]*Account
}

func newUser(id domain.UserID, name string) *User {
	return &User{id: id, name: name, accounts: make(map[domain.AccountNumber]*Account)}
}

// ID returns the user's immutable identifier.
func (u *User) ID() domain.UserID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// OpenAccount creates a new zero-balance account with a fresh unique
// number and returns that number.
func (u *User) OpenAccount() domain.AccountNumber {
	number := newAccountNumber()
	for {
		if _, taken := u.accounts[number]; !taken {
			break
		}
		number = newAccountNumber()
	}
	u.accounts[number] = newAccount(number)
	return number
}

// Account returns the owned account with the given number, or
// domain.ErrAccountNotFound if this user does not own it.
func (u *User) Account(number domain.AccountNumber) (*Account, error) {
	a, ok := u.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

// Accounts returns the user's accounts ordered by account number.
func (u *User) Accounts() []*Account {
	out := make([]*Account, 0, len(u.accounts))
	for _, a := range u.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].number < out[j].number })
	return out
}
