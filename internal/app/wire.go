package app

import (
	"minibank/internal/bank"
	"minibank/internal/domain"
	"minibank/internal/store"
)

// Wire bundles the live bank and its snapshot store for the CLI.
type Wire struct {
	Bank  *bank.Bank
	Store domain.SnapshotStore
}

// NewWire constructs the dependency graph from cfg, restoring any prior
// snapshot. A missing snapshot yields an empty bank; a corrupt one is an
// error for the caller to surface.
func NewWire(cfg Config) (*Wire, error) {
	st := store.NewBankFileStore(cfg.Home)

	snap, ok, err := st.Load()
	if err != nil {
		return nil, err
	}

	var b *bank.Bank
	if ok {
		if b, err = bank.FromSnapshot(cfg.BankName, snap); err != nil {
			return nil, err
		}
	} else {
		b = bank.New(cfg.BankName)
	}

	return &Wire{Bank: b, Store: st}, nil
}
