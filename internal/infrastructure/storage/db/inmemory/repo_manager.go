package inmemory

import (
	"github.com/reeflabs/reef/internal/core/domain"
	"github.com/reeflabs/reef/internal/core/ports"
)

// repoManager holds the in-memory domain repositories implementations in a
// single data structure.
type repoManager struct {
	utxoRepository *utxoRepository
}

// NewRepoManager is the factory for creating a new in-memory implementation
// of the ports.RepoManager interface.
func NewRepoManager() ports.RepoManager {
	return &repoManager{
		utxoRepository: newUtxoRepository(),
	}
}

func (rm *repoManager) UtxoRepository() domain.UtxoRepository {
	return rm.utxoRepository
}

func (rm *repoManager) Reset() {
	rm.utxoRepository.reset()
}

func (rm *repoManager) Close() {}
