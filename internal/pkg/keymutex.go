package pkg

import "sync"

// KeyedMutex - a set of mutexes addressed by key. Entries are dropped once no goroutine holds or waits for them.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*refMutex),
	}
}

// Lock - blocks until the mutex for key is held and returns the function that releases it.
func (that *KeyedMutex) Lock(key string) func() {
	that.mu.Lock()
	lock, ok := that.locks[key]
	if !ok {
		lock = &refMutex{}
		that.locks[key] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		that.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, key)
		}
		that.mu.Unlock()
	}
}

// Len - the number of keys currently held or waited on.
func (that *KeyedMutex) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
