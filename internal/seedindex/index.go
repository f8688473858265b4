package seedindex

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"

	"blastnh/internal/neighborhood"
)

// Hit is one query position whose neighborhood contains a word.
type Hit struct {
	QueryPos int `msgpack:"q"`
	Score    int `msgpack:"s"`
}

// Meta describes how an index was built.
type Meta struct {
	WordSize  int    `msgpack:"word_size"`
	Threshold int    `msgpack:"threshold"`
	Matrix    string `msgpack:"matrix"`
	QueryID   string `msgpack:"query_id"`
	QueryLen  int    `msgpack:"query_len"`
}

// SeedHit is an indexed word found in a subject sequence.
type SeedHit struct {
	QueryPos   int
	SubjectPos int
	Word       string
	Score      int
}

// Diagonal is SubjectPos - QueryPos; hits on one diagonal belong to the
// same ungapped alignment.
func (h SeedHit) Diagonal() int { return h.SubjectPos - h.QueryPos }

// Index maps neighbor words to query hits. It is read-only after Build or
// Load and safe for concurrent Lookup and Scan.
type Index struct {
	meta  Meta
	trie  *patricia.Trie
	words int
	hits  int
}

func newIndex(meta Meta) *Index {
	return &Index{meta: meta, trie: patricia.NewTrie()}
}

// Build indexes every neighbor of results. meta.WordSize must match the
// neighbor word length.
func Build(results []neighborhood.Result, meta Meta) (*Index, error) {
	ix := newIndex(meta)
	for _, r := range results {
		for _, n := range r.Neighbors {
			if len(n.Word) != meta.WordSize {
				return nil, fmt.Errorf("%w: word %q at query position %d, index word size %d",
					ErrWordSizeMismatch, n.Word, r.Pos, meta.WordSize)
			}
			ix.add([]byte(n.Word), Hit{QueryPos: r.Pos, Score: n.Score})
		}
	}
	return ix, nil
}

func (ix *Index) add(word []byte, h Hit) {
	key := patricia.Prefix(word)
	if item := ix.trie.Get(key); item != nil {
		ix.trie.Set(key, append(item.([]Hit), h))
	} else {
		ix.trie.Insert(key, []Hit{h})
		ix.words++
	}
	ix.hits++
}

// insert stores a complete hit list for word; used when loading.
func (ix *Index) insert(word []byte, hits []Hit) {
	if ix.trie.Insert(patricia.Prefix(word), hits) {
		ix.words++
		ix.hits += len(hits)
	}
}

// Meta returns the build parameters.
func (ix *Index) Meta() Meta { return ix.meta }

// WordSize returns the indexed word length.
func (ix *Index) WordSize() int { return ix.meta.WordSize }

// Len returns the number of distinct words.
func (ix *Index) Len() int { return ix.words }

// HitCount returns the number of (word, query position) entries.
func (ix *Index) HitCount() int { return ix.hits }

// Lookup returns the hits of word in ascending query position, or nil.
// The returned slice must not be modified.
func (ix *Index) Lookup(word []byte) []Hit {
	item := ix.trie.Get(patricia.Prefix(word))
	if item == nil {
		return nil
	}
	return item.([]Hit)
}

// Walk calls fn for every word starting with prefix, in lexicographic order.
func (ix *Index) Walk(prefix []byte, fn func(word []byte, hits []Hit) error) error {
	type entry struct {
		word []byte
		hits []Hit
	}
	var entries []entry
	collect := func(p patricia.Prefix, item patricia.Item) error {
		entries = append(entries, entry{word: bytes.Clone(p), hits: item.([]Hit)})
		return nil
	}
	var err error
	if len(prefix) == 0 {
		err = ix.trie.Visit(collect)
	} else {
		err = ix.trie.VisitSubtree(patricia.Prefix(prefix), collect)
	}
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return bytes.Compare(entries[i].word, entries[j].word) < 0 })
	for _, e := range entries {
		if err := fn(e.word, e.hits); err != nil {
			return err
		}
	}
	return nil
}

// Scan slides a window of the word size over subject and calls fn for every
// indexed word, in subject position order then query position order.
func (ix *Index) Scan(subject []byte, fn func(SeedHit) error) error {
	k := ix.meta.WordSize
	if k <= 0 {
		return nil
	}
	for i := 0; i+k <= len(subject); i++ {
		w := subject[i : i+k]
		hits := ix.Lookup(w)
		if len(hits) == 0 {
			continue
		}
		word := string(w)
		for _, h := range hits {
			if err := fn(SeedHit{QueryPos: h.QueryPos, SubjectPos: i, Word: word, Score: h.Score}); err != nil {
				return err
			}
		}
	}
	return nil
}
