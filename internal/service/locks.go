package service

import (
	"fmt"
	"sync"
)

// recordLocks serializes read-merge-write cycles per record. Entries are
// reference counted and dropped when the last holder unlocks.
type recordLocks struct {
	mu    sync.Mutex
	locks map[string]*recordLock
}

type recordLock struct {
	sync.Mutex
	refs int
}

func newRecordLocks() *recordLocks {
	return &recordLocks{locks: make(map[string]*recordLock)}
}

// lock blocks until the record kind/id is free and returns its unlock func.
func (l *recordLocks) lock(kind string, id int64) func() {
	key := fmt.Sprintf("%s:%d", kind, id)

	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &recordLock{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

// size returns the number of records currently locked or waited on.
func (l *recordLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
