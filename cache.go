package cubesolver

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"lukechampine.com/blake3"
)

const (
	cacheMagic   = "CSPT"
	cacheVersion = 1

	// magic + version + count + blake3-256 digest
	cacheHeaderSize = 4 + 2 + 8 + 32
)

// Cache persists distance tables on disk so repeated runs skip the build.
// Files are zstd-compressed with a digest over the raw table, and anything
// that fails validation is rebuilt from scratch.
type Cache struct {
	// Dir is the directory holding the table files. Empty disables
	// persistence entirely.
	Dir string

	// Logf, when set, receives progress and warning messages.
	Logf func(format string, args ...any)
}

// DefaultCacheDir returns the per-user table cache directory.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cubesolver: resolve cache dir: %w", err)
	}
	return filepath.Join(base, "cubesolver"), nil
}

func (c *Cache) logf(format string, args ...any) {
	if c != nil && c.Logf != nil {
		c.Logf(format, args...)
	}
}

// Path returns the file a table of the given name is stored at.
func (c *Cache) Path(name string) string {
	return filepath.Join(c.Dir, name+".dat")
}

// Clear removes all cached table files.
func (c *Cache) Clear() error {
	matches, err := filepath.Glob(filepath.Join(c.Dir, "*.dat"))
	if err != nil {
		return fmt.Errorf("cubesolver: clear cache: %w", err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("cubesolver: clear cache: %w", err)
		}
	}
	return nil
}

func (c *Cache) load(name string, size int) ([]uint8, error) {
	raw, err := os.ReadFile(c.Path(name))
	if err != nil {
		return nil, err
	}
	if len(raw) < cacheHeaderSize || string(raw[:4]) != cacheMagic {
		return nil, ErrCacheCorrupt
	}
	if binary.BigEndian.Uint16(raw[4:6]) != cacheVersion {
		return nil, ErrCacheVersion
	}
	if binary.BigEndian.Uint64(raw[6:14]) != uint64(size) {
		return nil, ErrCacheVersion
	}
	var digest [32]byte
	copy(digest[:], raw[14:cacheHeaderSize])

	dec, err := zstd.NewReader(bytes.NewReader(raw[cacheHeaderSize:]))
	if err != nil {
		return nil, ErrCacheCorrupt
	}
	defer dec.Close()
	data := make([]uint8, size)
	if _, err := readFull(dec, data); err != nil {
		return nil, ErrCacheCorrupt
	}
	if blake3.Sum256(data) != digest {
		return nil, ErrCacheCorrupt
	}
	return data, nil
}

func (c *Cache) store(name string, data []uint8) error {
	digest := blake3.Sum256(data)

	var buf bytes.Buffer
	buf.Grow(cacheHeaderSize + len(data)/4)
	buf.WriteString(cacheMagic)
	var hdr [10]byte
	binary.BigEndian.PutUint16(hdr[0:2], cacheVersion)
	binary.BigEndian.PutUint64(hdr[2:10], uint64(len(data)))
	buf.Write(hdr[:])
	buf.Write(digest[:])

	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	tmp := c.Path(name) + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.Path(name))
}

// loadOrBuild returns the named table from disk when a valid copy exists,
// otherwise builds it and persists the result. A cached table failing the
// verify check is rebuilt; a freshly built one failing it is an error,
// since the build is deterministic. Persistence failures are logged and
// ignored, the in-memory table is always usable.
func (c *Cache) loadOrBuild(name string, size int, build func() *DistanceTable, verify func(*DistanceTable) bool) (*DistanceTable, error) {
	if c != nil && c.Dir != "" {
		data, err := c.load(name, size)
		if err == nil {
			t := &DistanceTable{name: name, dist: data}
			if verify == nil || verify(t) {
				return t, nil
			}
			c.logf("cache: %s failed validation, rebuilding", name)
		} else if !os.IsNotExist(err) {
			c.logf("cache: %s unusable (%v), rebuilding", name, err)
		}
	}
	c.logf("building %s table (%d entries)", name, size)
	t := build()
	if verify != nil && !verify(t) {
		return nil, fmt.Errorf("cubesolver: built %s table failed validation", name)
	}
	if c != nil && c.Dir != "" {
		if err := c.store(name, t.dist); err != nil {
			c.logf("cache: persist %s failed: %v", name, err)
		}
	}
	return t, nil
}

// readFull reads the exact table size, failing when the stream holds more
// data than expected.
func readFull(dec *zstd.Decoder, data []uint8) (int, error) {
	n, err := io.ReadFull(dec, data)
	if err != nil {
		return n, err
	}
	var one [1]byte
	if r, _ := dec.Read(one[:]); r != 0 {
		return n, ErrCacheCorrupt
	}
	return n, nil
}
