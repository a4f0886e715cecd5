package qoi

// index is the 64-entry running-pixel cache shared by the encoder and
// decoder. It is a value type so that zero-valued initialization gives
// the required "all zero pixels" starting state without an explicit
// constructor.
type index [indexSize]pixel

// lookup reports whether slot h(p) currently holds p.
func (idx *index) lookup(p pixel) bool {
	return idx[hash(p)].equal(p)
}

// at returns the pixel stored at the given 6-bit payload, without
// bounds-checking the payload against the tag mask: callers must mask
// the payload to 6 bits first.
func (idx *index) at(slot uint8) pixel {
	return idx[slot]
}

// store overwrites whatever occupied p's slot: every pixel emitted or
// consumed writes itself into index[h(p)], regardless of which chunk
// produced it.
func (idx *index) store(p pixel) {
	idx[hash(p)] = p
}
