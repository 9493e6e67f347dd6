package store

import (
	"fmt"
	"strings"

	"github.com/AlexZinkM/sui-wallet/internal/keys"
	"github.com/AlexZinkM/sui-wallet/internal/persistence"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Store keeps wallets indexed by address and by name.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	providers []persistence.Provider
	logger    *zap.Logger

	byAddress map[string]*Record
	byName    map[string]string // name -> address
	order     []string          // addresses in insertion order
	defaultID string            // address or name as given, "" = none
}

// New creates an empty store over the given providers, consulted in order
func New(providers []persistence.Provider, logger *zap.Logger) *Store {
	return &Store{
		providers: providers,
		logger:    logger.Named("store"),
		byAddress: make(map[string]*Record),
		byName:    make(map[string]string),
	}
}

// Load replaces the in-memory state with the merged provider snapshots.
// The first provider to declare an address wins. A failing provider does not
// prevent the others from loading; the combined error is returned.
func (s *Store) Load() error {
	s.byAddress = make(map[string]*Record)
	s.byName = make(map[string]string)
	s.order = nil
	s.defaultID = ""

	var errs error
	for _, p := range s.providers {
		// A missing writable provider is loaded anyway so that it gets created
		if p.IsReadOnly() && !p.Exists() {
			s.logger.Debug("provider not present, skipping", zap.String("provider", p.Name()))
			continue
		}

		snapshot, err := p.LoadWallets()
		if err != nil {
			s.logger.Warn("failed to load wallets", zap.String("provider", p.Name()), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		s.merge(p.Name(), snapshot)
	}

	if s.defaultID != "" && s.resolveExact(s.defaultID) == nil {
		s.logger.Warn("default wallet does not resolve, falling back", zap.String("default", s.defaultID))
		s.defaultID = ""
	}
	if s.defaultID == "" && len(s.order) > 0 {
		s.defaultID = s.order[0]
	}

	s.logger.Info("wallets loaded", zap.Int("count", len(s.order)), zap.String("default", s.defaultID))
	return errs
}

// merge adds the snapshot's wallets whose address is not yet present
func (s *Store) merge(source string, snapshot persistence.Snapshot) {
	for _, e := range snapshot.Wallets {
		addr, err := keys.NormalizeAddress(e.Address)
		if err != nil {
			s.logger.Warn("skipping wallet with malformed address",
				zap.String("provider", source), zap.String("address", e.Address))
			continue
		}
		if _, ok := s.byAddress[addr]; ok {
			s.logger.Debug("address already loaded from an earlier provider",
				zap.String("provider", source), zap.String("address", addr))
			continue
		}

		rec := &Record{
			Address:     addr,
			Name:        strings.TrimSpace(e.Name),
			Credentials: credentials(e.Mnemonic, e.PrivateKey),
		}
		if rec.Name == "" {
			rec.Name = shortName(addr)
		}
		s.attachKeypair(rec)

		s.byAddress[addr] = rec
		s.order = append(s.order, addr)
		if owner, taken := s.byName[rec.Name]; taken {
			s.logger.Warn("duplicate wallet name, reachable by address only",
				zap.String("name", rec.Name), zap.String("address", addr), zap.String("owner", owner))
		} else {
			s.byName[rec.Name] = addr
		}
	}

	if s.defaultID == "" {
		s.defaultID = strings.TrimSpace(snapshot.DefaultWallet)
	}
}

// Add inserts or replaces the wallet at address.
// Replacing keeps the wallet's position; persistence failures are logged only.
func (s *Store) Add(address, name string, creds *keys.Credentials) (*Record, error) {
	addr, err := keys.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = shortName(addr)
	}
	if owner, ok := s.byName[name]; ok && owner != addr {
		return nil, fmt.Errorf("%w: %q", ErrNameInUse, name)
	}

	rec := &Record{Address: addr, Name: name}
	if !creds.IsEmpty() {
		rec.Credentials = credentials(creds.Mnemonic, creds.PrivateKey)
	}
	s.attachKeypair(rec)

	if existing, ok := s.byAddress[addr]; ok {
		if s.byName[existing.Name] == addr {
			delete(s.byName, existing.Name)
		}
		if s.defaultID == existing.Name && existing.Name != name {
			s.defaultID = addr
		}
	} else {
		s.order = append(s.order, addr)
	}
	s.byAddress[addr] = rec
	s.byName[name] = addr

	if s.defaultID == "" {
		s.defaultID = addr
	}

	s.persist()
	return rec, nil
}

// Remove deletes the wallet matching identifier exactly (address or name).
// If it was the default, the first remaining wallet becomes default.
func (s *Store) Remove(identifier string) bool {
	rec := s.resolveExact(identifier)
	if rec == nil {
		return false
	}
	wasDefault := s.resolveExact(s.defaultID) == rec

	delete(s.byAddress, rec.Address)
	if s.byName[rec.Name] == rec.Address {
		delete(s.byName, rec.Name)
	}
	for i, addr := range s.order {
		if addr == rec.Address {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	if wasDefault {
		s.defaultID = ""
		if len(s.order) > 0 {
			s.defaultID = s.order[0]
		}
	}

	s.persist()
	return true
}

// Get resolves identifier, or the default wallet when identifier is empty.
// Returns nil when nothing matches.
func (s *Store) Get(identifier string, opts MatchOptions) *Record {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		identifier = s.defaultID
	}
	if identifier == "" {
		return nil
	}

	if rec := s.resolveExact(identifier); rec != nil {
		return rec
	}
	if !opts.AllowPartialMatch {
		return nil
	}

	matches := s.Search(identifier, SearchOptions{CaseSensitive: opts.CaseSensitive, Limit: 1})
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// SetDefault makes identifier the default wallet if it resolves to an existing record.
// The identifier is stored as given.
func (s *Store) SetDefault(identifier string) bool {
	identifier = strings.TrimSpace(identifier)
	if s.resolveExact(identifier) == nil {
		return false
	}
	s.defaultID = identifier
	s.persist()
	return true
}

// Search returns every wallet whose name or address contains query, in insertion order
func (s *Store) Search(query string, opts SearchOptions) []*Record {
	if !opts.CaseSensitive {
		query = strings.ToLower(query)
	}

	var out []*Record
	for _, addr := range s.order {
		rec := s.byAddress[addr]
		name, address := rec.Name, rec.Address
		if !opts.CaseSensitive {
			name, address = strings.ToLower(name), strings.ToLower(address)
		}

		if (!opts.SkipName && strings.Contains(name, query)) ||
			(!opts.SkipAddress && strings.Contains(address, query)) {
			out = append(out, rec)
			if opts.Limit > 0 && len(out) >= opts.Limit {
				break
			}
		}
	}
	return out
}

// List returns all wallets in insertion order
func (s *Store) List() []*Record {
	out := make([]*Record, 0, len(s.order))
	for _, addr := range s.order {
		out = append(out, s.byAddress[addr])
	}
	return out
}

// Len returns the number of wallets
func (s *Store) Len() int {
	return len(s.order)
}

// Default returns the default wallet identifier as stored, or ""
func (s *Store) Default() string {
	return s.defaultID
}

// IsDefault reports whether rec is the wallet the default identifier resolves to
func (s *Store) IsDefault(rec *Record) bool {
	return rec != nil && s.resolveExact(s.defaultID) == rec
}

// Writable reports whether at least one provider accepts writes
func (s *Store) Writable() bool {
	for _, p := range s.providers {
		if !p.IsReadOnly() {
			return true
		}
	}
	return false
}

// Snapshot returns the current state as a persistence snapshot
func (s *Store) Snapshot() persistence.Snapshot {
	snapshot := persistence.Snapshot{
		Wallets:       make([]persistence.Entry, 0, len(s.order)),
		DefaultWallet: s.defaultID,
	}
	for _, addr := range s.order {
		rec := s.byAddress[addr]
		e := persistence.Entry{Address: rec.Address, Name: rec.Name}
		if rec.Credentials != nil {
			e.PrivateKey = rec.Credentials.PrivateKey
			e.Mnemonic = rec.Credentials.Mnemonic
		}
		snapshot.Wallets = append(snapshot.Wallets, e)
	}
	return snapshot
}

// Save writes the current state to every writable provider.
// All providers are attempted; failures are combined.
func (s *Store) Save() error {
	snapshot := s.Snapshot()

	var errs error
	for _, p := range s.providers {
		if p.IsReadOnly() {
			continue
		}
		if err := p.SaveWallets(snapshot); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		}
	}
	return errs
}

// persist saves best-effort; the in-memory mutation stands either way
func (s *Store) persist() {
	if err := s.Save(); err != nil {
		s.logger.Warn("failed to persist wallets", zap.Error(err))
	}
}

// resolveExact looks identifier up as an address when 0x-prefixed, then as a name.
// Short display names such as "0x1111...2222" are 0x-prefixed but only resolve by name.
func (s *Store) resolveExact(identifier string) *Record {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil
	}

	if keys.IsAddressShaped(identifier) {
		if addr, err := keys.NormalizeAddress(identifier); err == nil {
			if rec, ok := s.byAddress[addr]; ok {
				return rec
			}
		}
	}

	addr, ok := s.byName[identifier]
	if !ok {
		return nil
	}
	return s.byAddress[addr]
}

// attachKeypair decodes the record's credentials. Failures leave the record without a keypair.
func (s *Store) attachKeypair(rec *Record) {
	if rec.Credentials.IsEmpty() {
		return
	}

	kp, err := keys.Decode(rec.Credentials)
	if err != nil {
		s.logger.Warn("failed to decode wallet credentials", zap.String("address", rec.Address), zap.Error(err))
		return
	}
	if kp.Address() != rec.Address {
		s.logger.Warn("credentials belong to a different address",
			zap.String("address", rec.Address), zap.String("derived", kp.Address()))
		return
	}
	rec.Keypair = kp
}

// credentials returns nil when both values are blank
func credentials(mnemonic, privateKey string) *keys.Credentials {
	c := &keys.Credentials{
		Mnemonic:   strings.TrimSpace(mnemonic),
		PrivateKey: strings.TrimSpace(privateKey),
	}
	if c.IsEmpty() {
		return nil
	}
	return c
}
