package vote

import "sync"

// Lock is a per-item in-memory flag that keeps at most one vote operation in flight
// per item. It is local to the process and is not persisted.
type Lock struct {
	locked map[string]bool
	mu     sync.Mutex
}

// NewLock создает пустой Lock
func NewLock() *Lock {
	return &Lock{locked: make(map[string]bool)}
}

// IsLocked reports whether an operation on itemID is in flight.
func (l *Lock) IsLocked(itemID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.locked[itemID]
}

// Acquire marks itemID as locked.
func (l *Lock) Acquire(itemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locked[itemID] = true
}

// TryAcquire locks itemID and returns true, or returns false if it is already locked.
func (l *Lock) TryAcquire(itemID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locked[itemID] {
		return false
	}
	l.locked[itemID] = true
	return true
}

// Release clears the lock of itemID.
func (l *Lock) Release(itemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	// Удаляем ключ, чтобы map не росла с числом элементов
	delete(l.locked, itemID)
}
