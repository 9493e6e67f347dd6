package store

import (
	"crypto/rand"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexZinkM/sui-wallet/internal/keys"
	"github.com/AlexZinkM/sui-wallet/internal/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type memProvider struct {
	name     string
	snapshot persistence.Snapshot
	readOnly bool
	missing  bool
	saveErr  error
	saves    int
}

func (m *memProvider) Name() string     { return m.name }
func (m *memProvider) Exists() bool     { return !m.missing }
func (m *memProvider) IsReadOnly() bool { return m.readOnly }

func (m *memProvider) LoadWallets() (persistence.Snapshot, error) {
	return m.snapshot, nil
}

func (m *memProvider) SaveWallets(snapshot persistence.Snapshot) error {
	if m.readOnly {
		return persistence.ErrReadOnly
	}
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.snapshot = snapshot
	return nil
}

func addr(hex string) string {
	return "0x" + strings.Repeat("0", 64-len(hex)) + hex
}

func newKey(t *testing.T, scheme keys.Scheme) (string, *keys.Credentials) {
	t.Helper()
	secret := make([]byte, 32)
	_, err := rand.Read(secret)
	require.NoError(t, err)

	encoded, err := keys.EncodePrivateKey(scheme, secret)
	require.NoError(t, err)
	kp, err := keys.FromSecret(scheme, secret)
	require.NoError(t, err)
	return kp.Address(), &keys.Credentials{PrivateKey: encoded}
}

func newStore(t *testing.T, providers ...persistence.Provider) *Store {
	t.Helper()
	s := New(providers, zaptest.NewLogger(t))
	require.NoError(t, s.Load())
	return s
}

func TestFirstProviderWins(t *testing.T) {
	first := &memProvider{name: "first", readOnly: true, snapshot: persistence.Snapshot{
		Wallets: []persistence.Entry{{Address: addr("a"), Name: "from-first"}},
	}}
	second := &memProvider{name: "second", snapshot: persistence.Snapshot{
		Wallets:       []persistence.Entry{{Address: "0xA", Name: "from-second"}, {Address: addr("b"), Name: "other"}},
		DefaultWallet: "other",
	}}

	s := newStore(t, first, second)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "from-first", s.Get(addr("a"), MatchOptions{}).Name)
	assert.Nil(t, s.Get("from-second", MatchOptions{}))

	// first provider declared no default, so the second's counts
	assert.Equal(t, "other", s.Default())
}

func TestLoadDefaultsToFirstLoaded(t *testing.T) {
	p := &memProvider{name: "p", snapshot: persistence.Snapshot{
		Wallets: []persistence.Entry{{Address: addr("2")}, {Address: addr("1")}},
	}}
	s := newStore(t, p)
	assert.Equal(t, addr("2"), s.Default())
}

func TestLoadRepairsUnresolvableDefault(t *testing.T) {
	p := &memProvider{name: "p", snapshot: persistence.Snapshot{
		Wallets:       []persistence.Entry{{Address: addr("1"), Name: "one"}},
		DefaultWallet: "ghost",
	}}
	s := newStore(t, p)
	assert.Equal(t, addr("1"), s.Default())
}

func TestLoadSkipsMalformedAndMissingReadOnly(t *testing.T) {
	absent := &memProvider{name: "absent", readOnly: true, missing: true, snapshot: persistence.Snapshot{
		Wallets: []persistence.Entry{{Address: addr("9")}},
	}}
	p := &memProvider{name: "p", snapshot: persistence.Snapshot{
		Wallets: []persistence.Entry{{Address: "not-an-address"}, {Address: addr("1")}},
	}}
	s := newStore(t, absent, p)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, addr("1"), s.List()[0].Address)
}

func TestAddNormalizesAndNames(t *testing.T) {
	p := &memProvider{name: "p"}
	s := newStore(t, p)

	rec, err := s.Add("0xABC", "", nil)
	require.NoError(t, err)
	assert.Equal(t, addr("abc"), rec.Address)
	assert.Equal(t, "0x0000...0abc", rec.Name)
	assert.Equal(t, rec.Address, s.Default(), "first wallet becomes default")
	assert.Equal(t, 1, p.saves)

	_, err = s.Add("xyz", "bad", nil)
	assert.ErrorIs(t, err, keys.ErrAddressFormatInvalid)
	assert.Equal(t, 1, s.Len())
}

func TestShortNameResolvesByName(t *testing.T) {
	p := &memProvider{name: "p"}
	s := newStore(t, p)
	first, err := s.Add(addr("1111"), "", nil)
	require.NoError(t, err)
	second, err := s.Add(addr("2222"), "", nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(second.Name, "0x"))

	assert.Same(t, second, s.Get(second.Name, MatchOptions{}))
	assert.True(t, s.SetDefault(second.Name))
	assert.Equal(t, second.Name, s.Default())
	assert.True(t, s.IsDefault(second))

	assert.True(t, s.Remove(second.Name))
	assert.Nil(t, s.Get(second.Name, MatchOptions{}))
	assert.Equal(t, first.Address, s.Default())

	// a malformed 0x identifier that is nobody's name still resolves to nothing
	assert.Nil(t, s.Get("0xnot...aname", MatchOptions{}))
	assert.False(t, s.Remove("0xnot...aname"))
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "0x1", shortName("0x1"))
	assert.Equal(t, "0x1234...cdef", shortName("0x123456789abcdef"))
}

func TestAddRejectsNameOwnedByOtherAddress(t *testing.T) {
	s := newStore(t, &memProvider{name: "p"})
	_, err := s.Add(addr("1"), "main", nil)
	require.NoError(t, err)

	_, err = s.Add(addr("2"), "main", nil)
	assert.ErrorIs(t, err, ErrNameInUse)

	// same address may keep or change its name
	rec, err := s.Add(addr("1"), "renamed", nil)
	require.NoError(t, err)
	assert.Equal(t, "renamed", rec.Name)
	assert.Nil(t, s.Get("main", MatchOptions{}))
	assert.Equal(t, 1, s.Len())
}

func TestAddOverwriteKeepsPositionAndDefault(t *testing.T) {
	s := newStore(t, &memProvider{name: "p"})
	_, err := s.Add(addr("1"), "one", nil)
	require.NoError(t, err)
	_, err = s.Add(addr("2"), "two", nil)
	require.NoError(t, err)
	require.True(t, s.SetDefault("one"))

	_, err = s.Add(addr("1"), "uno", nil)
	require.NoError(t, err)

	list := s.List()
	assert.Equal(t, addr("1"), list[0].Address)
	assert.Equal(t, "uno", list[0].Name)
	assert.Equal(t, addr("1"), s.Get("", MatchOptions{}).Address)
}

func TestAddDecodesCredentials(t *testing.T) {
	s := newStore(t, &memProvider{name: "p"})
	address, creds := newKey(t, keys.SchemeSecp256r1)

	rec, err := s.Add(address, "r1", creds)
	require.NoError(t, err)
	require.True(t, rec.CanSign())
	assert.Equal(t, keys.SchemeSecp256r1, rec.Keypair.Scheme())
}

func TestUndecodableCredentialsLoadWithoutKeypair(t *testing.T) {
	s := newStore(t, &memProvider{name: "p"})

	rec, err := s.Add(addr("1"), "broken", &keys.Credentials{PrivateKey: "!!!"})
	require.NoError(t, err)
	assert.False(t, rec.CanSign())
	assert.NotNil(t, rec.Credentials)

	// credentials for another identity are not attached
	_, creds := newKey(t, keys.SchemeEd25519)
	rec, err = s.Add(addr("2"), "mismatch", creds)
	require.NoError(t, err)
	assert.False(t, rec.CanSign())
}

func TestRemoveDefaultContinuity(t *testing.T) {
	s := newStore(t, &memProvider{name: "p"})
	for _, h := range []string{"1", "2", "3"} {
		_, err := s.Add(addr(h), "w"+h, nil)
		require.NoError(t, err)
	}
	require.True(t, s.SetDefault("w2"))

	assert.False(t, s.Remove("missing"))
	assert.True(t, s.Remove(addr("2")))
	assert.Equal(t, addr("1"), s.Default())
	assert.Nil(t, s.Get("w2", MatchOptions{}))

	assert.True(t, s.Remove("w1"))
	assert.Equal(t, addr("3"), s.Default())

	assert.True(t, s.Remove("0x3"))
	assert.Equal(t, "", s.Default())
	assert.Nil(t, s.Get("", MatchOptions{}))
}

func TestRemoveNonDefaultKeepsDefault(t *testing.T) {
	s := newStore(t, &memProvider{name: "p"})
	_, err := s.Add(addr("1"), "one", nil)
	require.NoError(t, err)
	_, err = s.Add(addr("2"), "two", nil)
	require.NoError(t, err)

	assert.True(t, s.Remove("two"))
	assert.Equal(t, addr("1"), s.Default())
}

func TestGetResolution(t *testing.T) {
	s := newStore(t, &memProvider{name: "p"})
	_, err := s.Add(addr("abc1"), "Trading", nil)
	require.NoError(t, err)
	_, err = s.Add(addr("def2"), "savings", nil)
	require.NoError(t, err)
	require.True(t, s.SetDefault("savings"))

	assert.Equal(t, addr("def2"), s.Get("", MatchOptions{}).Address, "default name needs one more hop")
	assert.Equal(t, addr("abc1"), s.Get("0xABC1", MatchOptions{}).Address)
	assert.Nil(t, s.Get("trad", MatchOptions{}))

	assert.Equal(t, "Trading", s.Get("trad", MatchOptions{AllowPartialMatch: true}).Name)
	assert.Nil(t, s.Get("trad", MatchOptions{AllowPartialMatch: true, CaseSensitive: true}))
	assert.Equal(t, "savings", s.Get("DEF2", MatchOptions{AllowPartialMatch: true}).Name)
	assert.Nil(t, s.Get("zzz", MatchOptions{AllowPartialMatch: true}))
}

func TestSetDefaultStoresIdentifierAsGiven(t *testing.T) {
	p := &memProvider{name: "p"}
	s := newStore(t, p)
	_, err := s.Add(addr("1"), "one", nil)
	require.NoError(t, err)

	assert.False(t, s.SetDefault("nope"))
	assert.Equal(t, addr("1"), s.Default())

	assert.True(t, s.SetDefault("one"))
	assert.Equal(t, "one", s.Default())
	assert.Equal(t, "one", p.snapshot.DefaultWallet)
}

func TestSearch(t *testing.T) {
	s := newStore(t, &memProvider{name: "p"})
	for _, w := range []struct{ hex, name string }{{"aa01", "alpha"}, {"bb02", "beta"}, {"cc03", "alphabet"}} {
		_, err := s.Add(addr(w.hex), w.name, nil)
		require.NoError(t, err)
	}

	names := func(recs []*Record) []string {
		var out []string
		for _, r := range recs {
			out = append(out, r.Name)
		}
		return out
	}

	assert.Equal(t, []string{"alpha", "alphabet"}, names(s.Search("ALPHA", SearchOptions{})))
	assert.Empty(t, s.Search("ALPHA", SearchOptions{CaseSensitive: true}))
	assert.Equal(t, []string{"alpha"}, names(s.Search("alpha", SearchOptions{Limit: 1})))
	assert.Equal(t, []string{"beta"}, names(s.Search("bb02", SearchOptions{})))
	assert.Empty(t, s.Search("bb02", SearchOptions{SkipAddress: true}))
	assert.Empty(t, s.Search("beta", SearchOptions{SkipName: true}))
}

func TestPersistenceIsBestEffort(t *testing.T) {
	failing := &memProvider{name: "failing", saveErr: errors.New("disk full")}
	ok := &memProvider{name: "ok"}
	env := &memProvider{name: "env", readOnly: true}
	s := newStore(t, failing, ok, env)

	rec, err := s.Add(addr("1"), "one", nil)
	require.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, 1, ok.saves)
	assert.Equal(t, 0, env.saves)

	saveErr := s.Save()
	require.Error(t, saveErr)
	assert.Contains(t, saveErr.Error(), "disk full")
}

func TestRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.yaml")
	file, err := persistence.NewFileProvider(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	s := newStore(t, file)
	ed, edCreds := newKey(t, keys.SchemeEd25519)
	k1, k1Creds := newKey(t, keys.SchemeSecp256k1)
	_, err = s.Add(ed, "ed", edCreds)
	require.NoError(t, err)
	_, err = s.Add(k1, "k1", k1Creds)
	require.NoError(t, err)
	_, err = s.Add(addr("77"), "watch", nil)
	require.NoError(t, err)
	require.True(t, s.SetDefault("k1"))

	reopened, err := persistence.NewFileProvider(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	fresh := newStore(t, reopened)

	assert.Equal(t, s.Snapshot(), fresh.Snapshot())
	assert.Equal(t, "k1", fresh.Default())
	assert.True(t, fresh.Get("ed", MatchOptions{}).CanSign())
	assert.True(t, fresh.Get("k1", MatchOptions{}).CanSign())
	assert.False(t, fresh.Get("watch", MatchOptions{}).CanSign())
}
