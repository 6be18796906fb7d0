package lock

import (
	"context"
	"sync"
	"sync/atomic"
)

// Resource serializes calls to external AI generators, one caller at a time.
var Resource = newResourceLock()

func InitResourceLock(ctx context.Context) {
	Resource = newResourceLock()

	go func() {
		<-ctx.Done()
		Resource.Stop()
	}()
}

type ResourceLock struct {
	mu        sync.Mutex
	cond      *sync.Cond
	holder    string
	waitCount int32
	stopCh    chan struct{}
	stopped   bool
}

func newResourceLock() *ResourceLock {
	lock := &ResourceLock{
		stopCh: make(chan struct{}),
	}
	lock.cond = sync.NewCond(&lock.mu)
	return lock
}

// Acquire returns false when the lock was stopped or ctx is done.
func (c *ResourceLock) Acquire(ctx context.Context, functionName string) bool {
	atomic.AddInt32(&c.waitCount, 1)
	defer atomic.AddInt32(&c.waitCount, -1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return false
	}

	for c.holder != "" && !c.stopped {
		select {
		case <-ctx.Done():
			return false
		default:
			c.cond.Wait()
		}
	}

	if c.stopped {
		return false
	}

	c.holder = functionName
	return true
}

func (c *ResourceLock) Release(functionName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.holder == functionName {
		c.holder = ""
		c.cond.Broadcast()
	}
}

// Stop wakes every waiter, all further Acquire calls fail.
func (c *ResourceLock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.stopped = true
	close(c.stopCh)
	c.cond.Broadcast()
}

func (c *ResourceLock) WaitCount() int {
	return int(atomic.LoadInt32(&c.waitCount))
}
