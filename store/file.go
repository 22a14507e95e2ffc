package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileStore keeps every entry in a single file, rewritten on each Save.
// The codec is chosen from the file extension.
type FileStore struct {
	mu      sync.Mutex
	path    string
	codec   Codec
	entries map[string][]byte
	loaded  bool

	readFile func(string) ([]byte, error)
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:     path,
		codec:    CodecFor(path),
		readFile: os.ReadFile,
	}
}

func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Codec() Codec {
	return f.codec
}

func (f *FileStore) Load(key string, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ensureLoaded(); err != nil {
		return err
	}
	data, ok := f.entries[key]
	if !ok {
		return errors.Wrapf(ErrNotFound, "load %q from %s", key, f.path)
	}
	if err := f.codec.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode %q from %s", key, f.path)
	}
	return nil
}

func (f *FileStore) Save(key string, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// a corrupt file is replaced rather than blocking saves forever; any
	// other read failure leaves it untouched
	if err := f.ensureLoaded(); err != nil {
		if errors.Cause(err) != ErrCorrupt {
			return errors.Wrapf(err, "save %q", key)
		}
		f.entries = make(map[string][]byte)
		f.loaded = true
	}

	data, err := f.codec.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %q", key)
	}
	f.entries[key] = data
	return f.flush()
}

func (f *FileStore) ensureLoaded() error {
	if f.loaded {
		return nil
	}

	data, err := f.readFile(f.path)
	if os.IsNotExist(err) {
		f.entries = make(map[string][]byte)
		f.loaded = true
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "read %s", f.path)
	}

	entries, err := f.codec.DecodeEntries(data)
	if err != nil {
		return errors.Wrapf(ErrCorrupt, "parse %s: %v", f.path, err)
	}
	if entries == nil {
		entries = make(map[string][]byte)
	}
	f.entries = entries
	f.loaded = true
	return nil
}

func (f *FileStore) flush() error {
	data, err := f.codec.EncodeEntries(f.entries)
	if err != nil {
		return errors.Wrap(err, "encode entries")
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}
