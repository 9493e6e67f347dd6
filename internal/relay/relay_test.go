package relay

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func openStore(t *testing.T, dir string) (*Store, *fakeClock) {
	t.Helper()
	s, err := Open(Options{Dir: dir, InMemory: dir == ""}, zaptest.NewLogger(t))
	require.NoError(t, err)

	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.now = clock.Now
	return s, clock
}

func TestTxDigestIsStable(t *testing.T) {
	a := TxDigest([]byte{1, 2, 3})
	assert.Equal(t, a, TxDigest([]byte{1, 2, 3}))
	assert.NotEqual(t, a, TxDigest([]byte{1, 2, 4}))
	assert.NotEmpty(t, a)
}

func TestPutGetDelete(t *testing.T) {
	s, _ := openStore(t, "")
	defer s.Close()

	tx, err := s.Put([]byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, TxDigest([]byte("payload")), tx.ID)

	got, err := s.Get(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got.Bytes)

	require.NoError(t, s.Delete(tx.ID))
	_, err = s.Get(tx.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete("never-existed"))

	_, err = s.Put(nil)
	assert.ErrorIs(t, err, ErrEmptyTransaction)
}

func TestSameBytesSameID(t *testing.T) {
	s, clock := openStore(t, "")
	defer s.Close()

	first, err := s.Put([]byte("payload"))
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := s.Put([]byte("payload"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.CreatedAt.After(first.CreatedAt))
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	s, clock := openStore(t, "")
	defer s.Close()

	old, err := s.Put([]byte("old"))
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	fresh, err := s.Put([]byte("fresh"))
	require.NoError(t, err)
	clock.Advance(11 * time.Minute)

	_, err = s.Get(old.ID)
	assert.ErrorIs(t, err, ErrNotFound, "expired entries are hidden before the sweep")

	n, err := s.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.Get(fresh.ID)
	assert.NoError(t, err)

	n, err = s.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, _ := openStore(t, dir)
	tx, err := s.Put([]byte("durable"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(Options{Dir: dir}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer reopened.Close()
	reopened.now = func() time.Time { return tx.CreatedAt.Add(time.Minute) }

	got, err := reopened.Get(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("durable"), got.Bytes)
}

func TestStartStop(t *testing.T) {
	s, err := Open(Options{InMemory: true, SweepInterval: time.Millisecond, Retention: time.Nanosecond}, zaptest.NewLogger(t))
	require.NoError(t, err)

	tx, err := s.Put([]byte("short lived"))
	require.NoError(t, err)

	s.Start()
	s.Start()
	require.Eventually(t, func() bool {
		err := s.db.View(func(txn *badger.Txn) error {
			_, err := txn.Get(txKey(tx.ID))
			return err
		})
		return errors.Is(err, badger.ErrKeyNotFound)
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()
	require.NoError(t, s.Close())
}

func TestServiceRegister(t *testing.T) {
	s, _ := openStore(t, "")
	defer s.Close()
	svc := NewService(s, "http://localhost:8080/")

	resp, err := svc.Register([]byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, TxDigest([]byte("payload")), resp.TxID)
	assert.Equal(t, "http://localhost:8080/tx/"+resp.TxID, resp.URL)

	png, err := base64.StdEncoding.DecodeString(resp.QR)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	again, err := svc.Register([]byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, resp.TxID, again.TxID)

	got, err := svc.Get(resp.TxID)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got.Bytes)
}
