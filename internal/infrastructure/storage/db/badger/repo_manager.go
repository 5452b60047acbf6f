package dbbadger

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"

	"github.com/reeflabs/reef/internal/core/domain"
	"github.com/reeflabs/reef/internal/core/ports"
)

// repoManager holds the badgerhold store and the domain repositories
// implementations in a single data structure.
type repoManager struct {
	utxoRepository *utxoRepository
}

// NewRepoManager is the factory for creating a new badger implementation of
// the ports.RepoManager interface.
// It takes care of creating the db files on disk (or in-memory if no
// baseDbDir is provided - to be used only for testing purposes), and opening
// and closing the connection to them.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	var utxoDir string
	if len(baseDbDir) > 0 {
		utxoDir = filepath.Join(baseDbDir, "utxos")
	}

	utxoDb, err := createDb(utxoDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening utxo db: %w", err)
	}

	return &repoManager{
		utxoRepository: newUtxoRepository(utxoDb),
	}, nil
}

func (rm *repoManager) UtxoRepository() domain.UtxoRepository {
	return rm.utxoRepository
}

func (rm *repoManager) Reset() {
	rm.utxoRepository.reset()
}

func (rm *repoManager) Close() {
	rm.utxoRepository.close()
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(30 * time.Minute)

		go func() {
			for {
				<-ticker.C
				if err := db.Badger().RunValueLogGC(0.5); err != nil && err != badger.ErrNoRewrite {
					log.Warnf("garbage collector: %s", err)
				}
			}
		}()
	}

	return db, nil
}
