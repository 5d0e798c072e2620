package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"rtide/internal/source"
	"rtide/internal/tidy"
)

// Bump when the payload layout changes so stale entries self-invalidate.
const cacheSchemaVersion uint16 = 1

type cacheKey [32]byte

// Cache stores formatted output on disk keyed by a digest of the input
// content and the options that shaped it. A hit skips the whole pipeline.
// Thread-safe for concurrent workers.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema    uint16
	Formatted []byte
}

// OpenCache initializes the cache under the standard user cache location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Key digests the file content together with an options fingerprint.
func (c *Cache) Key(sf *source.File, opts tidy.Options) cacheKey {
	h := sha256.New()
	h.Write(sf.Hash[:])

	var fp [8]byte
	flags := byte(0)
	for i, on := range []bool{opts.Comment, opts.Blank, opts.Arrow, opts.BraceNewline} {
		if on {
			flags |= 1 << i
		}
	}
	fp[0] = flags
	indent, convErr := safecast.Conv[uint8](opts.Indent)
	if convErr != nil {
		indent = 0
	}
	fp[1] = indent
	width, convErr := safecast.Conv[uint16](opts.WidthCutoff)
	if convErr != nil {
		width = 0
	}
	binary.LittleEndian.PutUint16(fp[2:], width)
	binary.LittleEndian.PutUint16(fp[4:], cacheSchemaVersion)
	h.Write(fp[:])

	var key cacheKey
	h.Sum(key[:0])
	return key
}

func (c *Cache) pathFor(key cacheKey) string {
	return filepath.Join(c.dir, "fmt", hex.EncodeToString(key[:])+".mp")
}

// Get returns the cached formatted output for key, if present and valid.
func (c *Cache) Get(key cacheKey) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return payload.Formatted, true
}

// Put stores formatted output. Failures are swallowed: the cache is an
// optimization, never a correctness dependency.
func (c *Cache) Put(key cacheKey, formatted []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	payload := cachePayload{Schema: cacheSchemaVersion, Formatted: formatted}
	encErr := msgpack.NewEncoder(f).Encode(payload)
	closeErr := f.Close()
	if encErr != nil || closeErr != nil {
		_ = os.Remove(f.Name())
		return
	}
	// Atomic replacement.
	if err := os.Rename(f.Name(), p); err != nil {
		_ = os.Remove(f.Name())
	}
}

// Drop invalidates the whole cache.
func (c *Cache) Drop() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	err := os.RemoveAll(filepath.Join(c.dir, "fmt"))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
