package session

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// Locks serializes writers of one session. Keys are hashed onto a fixed set
// of mutexes, so memory does not grow with the number of session IDs seen.
// The zero value is ready to use. Never hold two keys at once.
type Locks struct {
	stripes [lockStripes]sync.Mutex
}

func stripe(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % lockStripes)
}

// Lock acquires the mutex guarding key and returns its unlock func.
func (l *Locks) Lock(key string) func() {
	mu := &l.stripes[stripe(key)]
	mu.Lock()
	return mu.Unlock
}
