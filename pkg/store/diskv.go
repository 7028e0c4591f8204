package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// stateKey is the single blob the whole tree is serialized under.
const stateKey = "lifeos.json"

// ErrNoState indicates no usable persisted tree exists. Callers map it (and
// any other load failure) to Store.Restore(nil).
var ErrNoState = errors.New("store: no persisted state")

// Persistence is the save/load contract for the full state tree.
type Persistence interface {
	Load(ctx context.Context) (*StateTree, error)
	Save(tree *StateTree) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config. A nil
// config falls back to LoadConfig.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads and decodes the persisted tree. Absent or undecodable data
// returns an error wrapping ErrNoState; there is no migration or versioning.
func (p *persistence) Load(_ context.Context) (*StateTree, error) {
	data, err := p.d.Read(stateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoState, err)
	}
	tree := &StateTree{}
	if err := json.Unmarshal(data, tree); err != nil {
		// Malformed trees are treated as absent, never surfaced as fatal.
		return nil, fmt.Errorf("%w: decode: %v", ErrNoState, err)
	}
	return tree, nil
}

// Save serializes the tree under the single state key.
func (p *persistence) Save(tree *StateTree) error {
	if tree == nil {
		return errors.New("store: nil tree")
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode state: %w", err)
	}
	if err := p.d.Write(stateKey, data); err != nil {
		return fmt.Errorf("store: write state: %w", err)
	}
	return nil
}
