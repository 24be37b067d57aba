package datastructure

import (
	"github.com/lintang-b-s/Contractorx/pkg/util"
)

const bitsPerWord = 32

// BitVector is a word-packed boolean vector. it either owns its words or is
// a read-only view over externally supplied memory (e.g. a mapped file);
// both variants expose the same read interface, only mutation differs.
type BitVector struct {
	words []Index
	size  int
	owned bool
}

func NewBitVector(size int, initial bool) *BitVector {
	words := make([]Index, (size+bitsPerWord-1)/bitsPerWord)
	if initial {
		for i := range words {
			words[i] = ^Index(0)
		}
	}
	return &BitVector{words: words, size: size, owned: true}
}

// BitVectorFromWords wraps externally supplied words as a read-only view.
// the caller keeps ownership of the backing memory.
func BitVectorFromWords(words []Index, size int) *BitVector {
	util.AssertPanic(len(words)*bitsPerWord >= size, "bit vector view too small for its size")
	return &BitVector{words: words, size: size, owned: false}
}

func (bv *BitVector) Size() int {
	return bv.size
}

func (bv *BitVector) IsOwned() bool {
	return bv.owned
}

func (bv *BitVector) Get(i Index) bool {
	return bv.words[i/bitsPerWord]&(1<<(i%bitsPerWord)) != 0
}

func (bv *BitVector) Set(i Index, value bool) {
	util.AssertPanic(bv.owned, "Set on a read-only bit vector view")
	if value {
		bv.words[i/bitsPerWord] |= 1 << (i % bitsPerWord)
	} else {
		bv.words[i/bitsPerWord] &^= 1 << (i % bitsPerWord)
	}
}

func (bv *BitVector) Count() int {
	count := 0
	for i := Index(0); i < Index(bv.size); i++ {
		if bv.Get(i) {
			count++
		}
	}
	return count
}

// Clone returns an owned copy, useful for turning a view into something
// mutable (e.g. before permuting it after a renumbering).
func (bv *BitVector) Clone() *BitVector {
	words := make([]Index, len(bv.words))
	copy(words, bv.words)
	return &BitVector{words: words, size: bv.size, owned: true}
}
