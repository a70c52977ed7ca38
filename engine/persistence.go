package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/sapienskid/akshar-ime/context"
	"github.com/sapienskid/akshar-ime/dicttrie"
	"github.com/sapienskid/akshar-ime/fuzzy"
	"github.com/sapienskid/akshar-ime/wordstore"
)

// snapshotVersion is the persisted format header. Load refuses any other
// value, per the external guarantee that unknown versions are rejected
// rather than misinterpreted.
const snapshotVersion = 1

// ErrDecode wraps any failure to decode a snapshot: corrupt bytes, a
// truncated file, or an unsupported version header. Callers that see
// ErrDecode from Load are expected to proceed with an empty Engine; Open
// does this itself, logging the error instead of returning it.
var ErrDecode = errors.New("akshar-ime: failed to decode dictionary snapshot")

// snapshot is the on-disk shape of a saved dictionary: trie, context,
// fuzzy index, and word store, serialized as siblings rather than nested
// inside one another.
type snapshot struct {
	Version int
	Trie    dicttrie.Trie
	Context context.Model
	Fuzzy   fuzzy.Index
	Store   wordstore.Store
}

// Load reads and decodes path into e's in-memory state. On any I/O or
// decode failure, e is left unchanged and an error is returned; the
// caller (typically Open) is expected to fall back to an empty Engine
// rather than run with partially-applied state.
func (e *Engine) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("akshar-ime: read dictionary %q: %w", path, err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: unsupported snapshot version %d", ErrDecode, snap.Version)
	}

	e.trie = &snap.Trie
	e.ctx = &snap.Context
	e.fuzzyIdx = &snap.Fuzzy
	e.store = &snap.Store
	e.log.Info().Str("path", path).Str("op", "load").Int("bytes", len(data)).Msg("akshar-ime: loaded dictionary")
	return nil
}

// Save serializes e's current state and writes it to e.path: a temporary
// file in the same directory is written and flushed first, then renamed
// over the target, so a crash mid-write never corrupts the previous
// snapshot. A no-op if no path was ever set (fresh Engine from New,
// never Open'd).
func (e *Engine) Save() error {
	if e.path == "" {
		return nil
	}

	snap := snapshot{
		Version: snapshotVersion,
		Trie:    *e.trie,
		Context: *e.ctx,
		Fuzzy:   *e.fuzzyIdx,
		Store:   *e.store,
	}
	// Marshal through a pointer: the component types implement
	// msgpack.Marshaler on pointer receivers, which msgpack can only call
	// on addressable fields.
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("akshar-ime: encode dictionary: %w", err)
	}

	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("akshar-ime: create dictionary directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".akshar-ime-*.tmp")
	if err != nil {
		return fmt.Errorf("akshar-ime: create temp dictionary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("akshar-ime: write temp dictionary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("akshar-ime: flush temp dictionary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("akshar-ime: close temp dictionary file: %w", err)
	}
	if err := os.Rename(tmpPath, e.path); err != nil {
		return fmt.Errorf("akshar-ime: rename dictionary into place: %w", err)
	}

	e.log.Info().Str("path", e.path).Str("op", "save").Int("bytes", len(data)).Msg("akshar-ime: saved dictionary")
	return nil
}
