package chain

import (
	"context"
	"errors"
)

var (
	// ErrTxNotFound reports that the chain has no record of the
	// transaction. It is a definitive answer, not a transient failure:
	// the stale-pending cleanup relies on this distinction to expire
	// rows instead of retrying them forever.
	ErrTxNotFound = errors.New("transaction not found on chain")

	ErrUnknownChain = errors.New("no reader configured for chain")
)

// TxReceipt is the subset of an EVM transaction receipt the tracker
// needs for reconciliation.
type TxReceipt struct {
	BlockNumber uint64
	Success     bool
}

// Reader exposes the chain state reads used by webhook ingestion and
// the reconciliation jobs.
type Reader interface {
	ChainID() int64
	Name() string
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash string) (*TxReceipt, error)
}

// Registry holds one Reader per configured chain. It is constructed
// once at startup and read-only afterwards.
type Registry struct {
	readers map[int64]Reader
}

func NewRegistry(readers ...Reader) *Registry {
	m := make(map[int64]Reader, len(readers))
	for _, r := range readers {
		m[r.ChainID()] = r
	}
	return &Registry{readers: m}
}

func (r *Registry) Get(chainID int64) (Reader, error) {
	reader, ok := r.readers[chainID]
	if !ok {
		return nil, ErrUnknownChain
	}
	return reader, nil
}

func (r *Registry) ChainIDs() []int64 {
	ids := make([]int64, 0, len(r.readers))
	for id := range r.readers {
		ids = append(ids, id)
	}
	return ids
}
