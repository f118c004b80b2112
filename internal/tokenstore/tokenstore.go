// Package tokenstore keeps the access token issued by the WebUE API between runs.
package tokenstore

import (
	"fmt"
	"strings"
	"sync"
)

// Store holds at most one access token. A missing token reads as "".
type Store interface {
	Close() error
	Token() (string, error)
	SaveToken(token string) error
	ClearToken() error
}

// Backend names accepted by NewStore.
const (
	TypeNone   = "none"
	TypeMemory = "memory"
	TypeBBolt  = "bbolt"
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))

	switch typ {
	case "", TypeNone, "disabled":
		return noopStore{}, nil
	case TypeMemory:
		return &memoryStore{}, nil
	case TypeBBolt:
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt token store requires a path")
		}
		return openBolt(path)
	default:
		return nil, fmt.Errorf("unsupported token store type %q", typ)
	}
}

type noopStore struct{}

func (noopStore) Close() error           { return nil }
func (noopStore) Token() (string, error) { return "", nil }
func (noopStore) SaveToken(string) error { return nil }
func (noopStore) ClearToken() error      { return nil }

type memoryStore struct {
	mu    sync.RWMutex
	token string
}

func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) Token() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *memoryStore) SaveToken(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) ClearToken() error { return m.SaveToken("") }
