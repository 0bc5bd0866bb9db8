// Package parallel provides a small worker pool for dispatching
// independent grid computations, such as the per-slice distance
// transforms of a 3D stack. Each job owns a disjoint grid region, so
// the pool needs no locking beyond job distribution.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed round-robin from
// per-worker queues. Jobs are uniform in cost (one slice each), so no
// work stealing is needed.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int

	// queues holds one buffered channel per worker.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// New creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := workers * 2
	if queueSize < 4 {
		queueSize = 4
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	queue := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(queue)
			return
		case job := <-queue:
			if job != nil {
				job()
			}
		}
	}
}

// drain executes all remaining work in a queue.
func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			if job != nil {
				job()
			}
		default:
			return
		}
	}
}

// ExecuteAll distributes jobs across workers and waits for all of them
// to complete. If the pool is closed, this is a no-op.
func (p *Pool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 || !p.running.Load() {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(jobs))

	for i, fn := range jobs {
		job := fn
		wrapped := func() {
			defer completion.Done()
			job()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			// Pool is closing; run inline so the caller still
			// observes a fully computed result.
			wrapped()
		}
	}

	completion.Wait()
}

// Close stops the workers after draining their queues. Close is
// idempotent; ExecuteAll calls after Close are no-ops.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
