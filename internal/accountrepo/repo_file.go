// Package accountrepo manages repository layer of accounts.
//
// The whole account table lives in one JSON document on disk. The repo is the
// sole writer of that file; every mutation marks the in-memory table dirty and
// Flush rewrites the document atomically.
package accountrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/rs/zerolog"
)

// RepoFile facilitates account repository layer logic over a flat file.
type RepoFile struct {
	path string

	mu    sync.Mutex
	table map[string]domain.Account
	dirty bool
}

// NewRepoFile returns an account RepoFile backed by the file at path.
// Call Load before any other method.
func NewRepoFile(path string) *RepoFile {
	return &RepoFile{
		path:  path,
		table: make(map[string]domain.Account),
	}
}

// InitIfMissing writes an empty account table when no file exists yet, so a
// fresh install can boot. An existing file, corrupt or not, is left alone:
// only Load decides whether it is usable.
func (r *RepoFile) InitIfMissing(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil || !os.IsNotExist(err) {
		return err
	}

	if err := os.WriteFile(r.path, []byte("{}\n"), 0o600); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return nil
}

// Load deserializes the full account table from disk.
//
// A missing or corrupt file yields domain.ErrStorageUnavailable rather than an
// empty table: starting empty would silently wipe every account on the next
// Flush.
func (r *RepoFile) Load(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		l.Error().Err(err).Str("path", r.path).Msg("read account table")
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	table := make(map[string]domain.Account)
	if err := json.Unmarshal(data, &table); err != nil {
		l.Error().Err(err).Str("path", r.path).Msg("decode account table")
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	r.table = table
	r.dirty = false

	return nil
}

// Flush atomically rewrites the account table file if there are unsaved
// changes. The document is written to a temp file in the same directory and
// renamed over the original so a concurrent reader never sees a torn file.
func (r *RepoFile) Flush(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.dirty {
		return nil
	}

	data, err := json.MarshalIndent(r.table, "", "  ")
	if err != nil {
		l.Error().Err(err).Send()
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".accounts-*.json")
	if err != nil {
		l.Error().Err(err).Send()
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		l.Error().Err(err).Send()

		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		l.Error().Err(err).Send()

		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		l.Error().Err(err).Send()

		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	r.dirty = false

	return nil
}

// Get returns a deep copy of the account for the given username.
func (r *RepoFile) Get(ctx context.Context, username string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.table[username]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a.Clone(), nil
}

// Exists reports whether an account with the given username is present.
// The match is exact and case sensitive.
func (r *RepoFile) Exists(ctx context.Context, username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.table[username]

	return ok
}

// Create adds the account to the table and returns it.
func (r *RepoFile) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.table[a.Username]; ok {
		return domain.Account{}, domain.ErrUsernameAlreadyExists
	}

	r.table[a.Username] = a.Clone()
	r.dirty = true

	return a, nil
}

// Update replaces the stored account and returns it.
func (r *RepoFile) Update(ctx context.Context, a domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.table[a.Username]; !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	r.table[a.Username] = a.Clone()
	r.dirty = true

	return a, nil
}

// List returns copies of all accounts ordered by username.
func (r *RepoFile) List(ctx context.Context) []domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]domain.Account, 0, len(r.table))
	for _, a := range r.table {
		accounts = append(accounts, a.Clone())
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Username < accounts[j].Username
	})

	return accounts
}
