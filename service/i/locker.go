package i

import "context"

// Locker serializes work on a shared resource across processes.
type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned func
	// releases the lock.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
