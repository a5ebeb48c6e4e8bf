package xlsx

import "unsafe"

// arena hands out strings backed by large shared blocks, so a table of many
// short strings costs a few allocations instead of one per string.
type arena struct {
	alloc     []byte
	blockSize int
}

func newArena(sizeHint int) *arena {
	return &arena{blockSize: min(max(16*1024, sizeHint), 1024*1024)}
}

// toString copies b into the arena. The result stays valid after b is reused.
func (a *arena) toString(b []byte) string {
	n := len(b)
	if n == 0 {
		return ""
	}
	if cap(a.alloc)-len(a.alloc) < n {
		a.alloc = make([]byte, 0, max(a.blockSize, n))
	}
	pos := len(a.alloc)
	data := a.alloc[pos : pos+n : pos+n]
	a.alloc = a.alloc[:pos+n]
	copy(data, b)
	return unsafe.String(unsafe.SliceData(data), n)
}
