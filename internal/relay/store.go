package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/AlexZinkM/sui-wallet/internal/model"

	badger "github.com/dgraph-io/badger/v2"
	"go.uber.org/zap"
)

const (
	DefaultRetention     = 30 * time.Minute
	DefaultSweepInterval = 5 * time.Minute

	keyPrefix = "tx/"
)

var (
	// ErrNotFound is returned for an unknown or expired transaction id
	ErrNotFound = errors.New("transaction not found")

	// ErrEmptyTransaction is returned when registering zero bytes
	ErrEmptyTransaction = errors.New("transaction bytes are empty")
)

type compatLogger struct {
	*zap.SugaredLogger
}

// for compatibility
func (logger *compatLogger) Warningf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Options configure the transaction store
type Options struct {
	// Dir is the badger directory; ignored when InMemory is set
	Dir      string
	InMemory bool

	// Retention is how long a transaction is kept after registration
	Retention time.Duration

	// SweepInterval is the period of the background sweep
	SweepInterval time.Duration
}

// Store keeps pending transactions on disk and sweeps expired ones
type Store struct {
	db        *badger.DB
	retention time.Duration
	interval  time.Duration
	logger    *zap.Logger
	now       func() time.Time

	lk      sync.Mutex
	started bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// Open opens (or creates) the transaction store
func Open(opts Options, logger *zap.Logger) (*Store, error) {
	if opts.Retention <= 0 {
		opts.Retention = DefaultRetention
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}

	if !opts.InMemory {
		if err := os.MkdirAll(opts.Dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create transaction store directory: %w", err)
		}
	}

	logger = logger.Named("relay-store")
	bopt := badger.DefaultOptions(opts.Dir).
		WithInMemory(opts.InMemory).
		WithLogger(&compatLogger{logger.Sugar()})
	if opts.InMemory {
		bopt.Dir, bopt.ValueDir = "", ""
	}

	db, err := badger.Open(bopt)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction store: %w", err)
	}

	return &Store{
		db:        db,
		retention: opts.Retention,
		interval:  opts.SweepInterval,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Put stores transaction bytes under their digest.
// Registering the same bytes again returns the same id and restarts its retention.
func (s *Store) Put(txBytes []byte) (*model.PendingTransaction, error) {
	if len(txBytes) == 0 {
		return nil, ErrEmptyTransaction
	}

	tx := &model.PendingTransaction{
		ID:        TxDigest(txBytes),
		Bytes:     append([]byte(nil), txBytes...),
		CreatedAt: s.now().UTC(),
	}
	val, err := json.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(txKey(tx.ID), val)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}
	return tx, nil
}

// Get returns the transaction registered under id.
// Expired entries not yet swept are reported as not found.
func (s *Store) Get(id string) (*model.PendingTransaction, error) {
	var tx model.PendingTransaction
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(txKey(id))
		switch err {
		case badger.ErrKeyNotFound:
			return ErrNotFound
		case nil:
		default:
			return err
		}

		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(val, &tx)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read transaction: %w", err)
	}

	if s.expired(&tx) {
		return nil, ErrNotFound
	}
	return &tx, nil
}

// Delete removes a transaction; deleting an unknown id is not an error
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(txKey(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// Sweep deletes every transaction older than the retention period and returns how many were removed
func (s *Store) Sweep() (int, error) {
	var expired [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var tx model.PendingTransaction
				if err := json.Unmarshal(val, &tx); err != nil {
					s.logger.Warn("dropping undecodable transaction", zap.ByteString("key", item.Key()), zap.Error(err))
					expired = append(expired, item.KeyCopy(nil))
					return nil
				}
				if s.expired(&tx) {
					expired = append(expired, item.KeyCopy(nil))
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan transactions: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, key := range expired {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired transactions: %w", err)
	}
	return len(expired), nil
}

// Start launches the periodic sweep. Calling it twice is a no-op.
func (s *Store) Start() {
	s.lk.Lock()
	defer s.lk.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.stop = make(chan struct{})

	s.wg.Add(1)
	go s.sweepLoop(s.stop)
}

// Stop ends the periodic sweep and waits for it to exit
func (s *Store) Stop() {
	s.lk.Lock()
	if !s.started {
		s.lk.Unlock()
		return
	}
	s.started = false
	close(s.stop)
	s.lk.Unlock()

	s.wg.Wait()
}

// Close stops the sweep and closes the database
func (s *Store) Close() error {
	s.Stop()
	return s.db.Close()
}

func (s *Store) sweepLoop(stop <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := s.Sweep()
			if err != nil {
				s.logger.Warn("sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				s.logger.Info("expired transactions removed", zap.Int("count", n))
			}
		case <-stop:
			return
		}
	}
}

func (s *Store) expired(tx *model.PendingTransaction) bool {
	return s.now().Sub(tx.CreatedAt) > s.retention
}

func txKey(id string) []byte {
	return []byte(keyPrefix + id)
}
