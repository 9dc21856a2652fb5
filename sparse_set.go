package rift

// SparseSet is an unordered set of uint32 values with O(1) insert, erase and
// membership, and contiguous iteration over its dense array. Erase swaps the
// last dense element into the vacated position, so iteration order is
// unspecified and unstable across mutations.
//
// The sparse array is left untouched by Clear and by Erase beyond the swap
// bookkeeping; membership is always decided by the dense/sparse handshake.
type SparseSet struct {
	dense  []uint32
	sparse []uint32
	n      int
}

// Len returns the number of values in the set.
func (s *SparseSet) Len() int {
	return s.n
}

// Empty reports whether the set has no values.
func (s *SparseSet) Empty() bool {
	return s.n == 0
}

// Contains reports whether v is in the set.
func (s *SparseSet) Contains(v uint32) bool {
	if int(v) >= len(s.sparse) {
		return false
	}
	i := s.sparse[v]
	return int(i) < s.n && s.dense[i] == v
}

// Insert adds v to the set. It panics if v is already present.
func (s *SparseSet) Insert(v uint32) {
	if s.Contains(v) {
		panic("rift: sparse set already contains the value")
	}
	if int(v) >= len(s.sparse) {
		grown := make([]uint32, v+1)
		copy(grown, s.sparse)
		s.sparse = grown
	}
	if s.n < len(s.dense) {
		s.dense[s.n] = v
	} else {
		s.dense = append(s.dense, v)
	}
	s.sparse[v] = uint32(s.n)
	s.n++
}

// Erase removes v from the set by swapping the last dense element into its
// position. It panics if v is not present.
func (s *SparseSet) Erase(v uint32) {
	if !s.Contains(v) {
		panic("rift: sparse set does not contain the value")
	}
	last := s.dense[s.n-1]
	s.dense[s.sparse[v]] = last
	s.sparse[last] = s.sparse[v]
	s.n--
}

// Clear removes every value in O(1). Capacity is retained.
func (s *SparseSet) Clear() {
	s.n = 0
}

// Dense returns the set's values as a contiguous slice. The slice aliases
// internal storage and is invalidated by any mutation.
func (s *SparseSet) Dense() []uint32 {
	return s.dense[:s.n]
}

// InsertAll inserts every value in vs.
func (s *SparseSet) InsertAll(vs []uint32) {
	for _, v := range vs {
		s.Insert(v)
	}
}

// EraseAll erases every value in vs.
func (s *SparseSet) EraseAll(vs []uint32) {
	for _, v := range vs {
		s.Erase(v)
	}
}

// ContainsAll reports whether every value in vs is in the set.
func (s *SparseSet) ContainsAll(vs []uint32) bool {
	for _, v := range vs {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}
