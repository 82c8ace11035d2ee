package application

import (
	"sync"

	"agendaviva/contexts/agenda/scheduling-service/domain/entities"
)

// BookingLock serializes the read-check-write sequence of event writes per
// (church, resource identity) pair. Without it two concurrent creates for
// the same slot can both observe "no conflict" and both be accepted.
type BookingLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewBookingLock() *BookingLock {
	return &BookingLock{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given church/resource pair and returns
// its unlock function.
func (l *BookingLock) Lock(churchID string, resourceID string) func() {
	key := churchID + "|" + entities.ResourceIdentity(resourceID)

	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
