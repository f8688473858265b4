package seedindex

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	metaKey    = []byte("meta")
	wordPrefix = []byte("w/")
)

// badgerLogger adapts a charm logger to badger.Logger.
type badgerLogger struct {
	l *log.Logger
}

var _ badger.Logger = (*badgerLogger)(nil)

func (b *badgerLogger) Errorf(msg string, items ...any)   { b.l.Errorf(msg, items...) }
func (b *badgerLogger) Warningf(msg string, items ...any) { b.l.Warnf(msg, items...) }
func (b *badgerLogger) Infof(msg string, items ...any)    { b.l.Debugf(msg, items...) }
func (b *badgerLogger) Debugf(msg string, items ...any)   { b.l.Debugf(msg, items...) }

func open(dir string, readOnly bool, logger *log.Logger) (*badger.DB, error) {
	if logger == nil {
		logger = log.Default()
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = &badgerLogger{l: logger.WithPrefix("badger")}
	opts.Compression = options.None
	opts.ReadOnly = readOnly
	return badger.Open(opts)
}

func wordKey(word []byte) []byte {
	k := make([]byte, 0, len(wordPrefix)+len(word))
	return append(append(k, wordPrefix...), word...)
}

// Save writes ix to the badger directory dir, replacing any index stored
// there before.
func Save(dir string, ix *Index, logger *log.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	db, err := open(dir, false, logger)
	if err != nil {
		return fmt.Errorf("open index %s: %w", dir, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.DropAll(); err != nil {
		return fmt.Errorf("clear index %s: %w", dir, err)
	}

	wb := db.NewWriteBatch()
	defer wb.Cancel()
	err = ix.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		v, err := msgpack.Marshal(item.([]Hit))
		if err != nil {
			return err
		}
		return wb.Set(wordKey(p), v)
	})
	if err != nil {
		return fmt.Errorf("write index %s: %w", dir, err)
	}
	mv, err := msgpack.Marshal(ix.meta)
	if err != nil {
		return err
	}
	if err := wb.Set(bytes.Clone(metaKey), mv); err != nil {
		return err
	}
	return wb.Flush()
}

// Load reads the index stored in dir. The directory is opened read-only and
// must already hold a badger store.
func Load(dir string, logger *log.Logger) (*Index, error) {
	if _, err := os.Stat(filepath.Join(dir, badger.ManifestFilename)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, dir)
		}
		return nil, err
	}
	db, err := open(dir, true, logger)
	if err != nil {
		return nil, fmt.Errorf("open index %s: %w", dir, err)
	}
	defer func() { _ = db.Close() }()

	var ix *Index
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrIndexNotFound, dir)
		}
		if err != nil {
			return err
		}
		var meta Meta
		if err := item.Value(func(v []byte) error { return msgpack.Unmarshal(v, &meta) }); err != nil {
			return fmt.Errorf("decode index meta: %w", err)
		}
		ix = newIndex(meta)

		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(wordPrefix); it.ValidForPrefix(wordPrefix); it.Next() {
			item := it.Item()
			word := bytes.TrimPrefix(item.KeyCopy(nil), wordPrefix)
			var hits []Hit
			if err := item.Value(func(v []byte) error { return msgpack.Unmarshal(v, &hits) }); err != nil {
				return fmt.Errorf("decode hits of %q: %w", word, err)
			}
			if len(word) != meta.WordSize {
				return fmt.Errorf("%w: stored word %q, index word size %d", ErrWordSizeMismatch, word, meta.WordSize)
			}
			ix.insert(word, hits)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ix, nil
}
