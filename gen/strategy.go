package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// ErrStrategyNotFound is reported when an operation-ID strategy name does
// not match any registered strategy.
var ErrStrategyNotFound = errors.New("gen: operation id strategy not found")

// Strategy derives a stable identifier for an operation document. The
// identifier ends up in generated code, so for unchanged inputs it must be
// equal across runs.
type Strategy interface {
	OperationID(name string, document []byte) string
}

// DefaultStrategy is the strategy used when none is named: a SHA-256 hash
// of the document content. This default is observable in generated output,
// which is why it is part of the public contract rather than an internal
// detail.
const DefaultStrategy = "sha256"

var (
	strategyMu sync.RWMutex
	strategies = map[string]func() Strategy{
		DefaultStrategy: func() Strategy { return contentHash{} },
		"sequential":    func() Strategy { return new(sequential) },
	}
)

// RegisterStrategy makes a Strategy constructor available under name,
// replacing any previous registration. It is the extension point for
// callers embedding the pipeline with their own ID scheme.
func RegisterStrategy(name string, f func() Strategy) {
	strategyMu.Lock()
	strategies[name] = f
	strategyMu.Unlock()
}

// ResolveStrategy returns a fresh Strategy for name. The empty name
// resolves to DefaultStrategy.
func ResolveStrategy(name string) (Strategy, error) {
	if name == "" {
		name = DefaultStrategy
	}

	strategyMu.RLock()
	f, ok := strategies[name]
	strategyMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStrategyNotFound, name)
	}

	return f(), nil
}

type contentHash struct{}

func (contentHash) OperationID(_ string, document []byte) string {
	sum := sha256.Sum256(document)
	return hex.EncodeToString(sum[:])
}

// sequential numbers operations in discovery order. Only stable while the
// document set itself is stable.
type sequential struct {
	n int
}

func (s *sequential) OperationID(name string, _ []byte) string {
	s.n++
	return name + "-" + strconv.Itoa(s.n)
}
