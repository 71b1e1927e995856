package service

import "sync"

// roomLocks — мьютекс на комнату; коммит и рассылка в комнату идут под ним.
type roomLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *roomLocks) lock(room string) func() {
	l.mu.Lock()
	m, ok := l.locks[room]
	if !ok {
		m = &sync.Mutex{}
		l.locks[room] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
