package book

import (
	"log"
	"math/rand"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// cache.go adds an optional BadgerDB-backed front index in front of
// Opener's linear scan, so repeated Move calls against the same played-SAN
// prefix (the common case: a GUI or CLI asking "what's the book move here"
// once per ply as a game progresses) don't re-scan every line in the book
// file. Grounded on hailam-chessplay/internal/storage/storage.go's
// badger.DB open/view/update wrapper (same DefaultOptions + nil logger
// setup); repurposed here from user-preference persistence to opening-book
// prefix caching, since this module has no user profile to store.
//
// The cache is a pure optimization: CachedOpener.Move falls back to
// Opener.continuations and backfills the entry on a miss, so a
// CachedOpener behaves identically to a plain Opener, just faster on
// repeat lookups.

const keySeparator = "\x1f"

// Cache fronts an Opener's line scan with a Badger-backed prefix index.
type Cache struct {
	db *badger.DB
}

// OpenCache opens (creating if necessary) a Badger database at dir for use
// as a book prefix cache.
func OpenCache(dir string) (*Cache, error) {
	log.Printf("[Book] opening cache at %s", dir)
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		log.Printf("[Book] failed to open cache at %s: %v", dir, err)
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func cacheKey(playedSAN []string) []byte {
	return []byte(strings.Join(playedSAN, keySeparator))
}

// lookup returns the cached candidate list for playedSAN, if present.
func (c *Cache) lookup(playedSAN []string) ([]string, bool) {
	var candidates []string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(playedSAN))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) == 0 {
				candidates = nil
				return nil
			}
			candidates = strings.Split(string(val), keySeparator)
			return nil
		})
	})
	if err != nil {
		return nil, false
	}
	return candidates, true
}

// store writes the candidate list for playedSAN into the cache.
func (c *Cache) store(playedSAN []string, candidates []string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(playedSAN), []byte(strings.Join(candidates, keySeparator)))
	})
}

// CachedOpener wraps an Opener with a Cache, checking the cache before
// falling back to a full line scan.
type CachedOpener struct {
	opener *Opener
	cache  *Cache
}

// NewCachedOpener pairs opener with cache. A nil cache makes Move behave
// exactly like opener.Move.
func NewCachedOpener(opener *Opener, cache *Cache) *CachedOpener {
	return &CachedOpener{opener: opener, cache: cache}
}

// Move returns a uniformly random SAN continuation for playedSAN, using
// the cache when available and backfilling it on a miss.
func (co *CachedOpener) Move(playedSAN []string) (string, bool) {
	if co.cache == nil {
		return co.opener.Move(playedSAN)
	}

	candidates, hit := co.cache.lookup(playedSAN)
	if !hit {
		candidates = co.opener.continuations(playedSAN)
		_ = co.cache.store(playedSAN, candidates)
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rand.Intn(len(candidates))], true
}
