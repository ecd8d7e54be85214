// Package parallel provides the fixed-size worker pool that runs chunked
// copy work for blit.
//
// Blit chunks are uniform: every task copies about the same number of
// identical-length rows. The pool is therefore a single shared task channel
// drained by N goroutines. Per-worker queues and work stealing would buy
// nothing here.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// task pairs a work function with the batch join it reports to.
type task struct {
	fn   func()
	join *sync.WaitGroup
}

func (t task) run() {
	defer t.join.Done()
	t.fn()
}

// Pool is a fixed-size pool of worker goroutines.
//
// Thread safety: Pool is safe for concurrent use; ExecuteAll may be called
// from multiple goroutines at once, each call joining only its own batch.
type Pool struct {
	workers int
	tasks   chan task
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers and starts
// them. If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		// A couple of tasks of headroom per worker keeps submitters from
		// blocking while workers finish their current chunk.
		tasks: make(chan task, workers*2),
		done:  make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case t := <-p.tasks:
			t.run()
		case <-p.done:
			// Run whatever is still queued so no batch join is left hanging.
			for {
				select {
				case t := <-p.tasks:
					t.run()
				default:
					return
				}
			}
		}
	}
}

// ExecuteAll runs every function on the pool and returns once all of them
// have completed. If the pool has been closed, the work runs inline on the
// calling goroutine instead.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var join sync.WaitGroup
	join.Add(len(work))
	for _, fn := range work {
		select {
		case p.tasks <- task{fn: fn, join: &join}:
		case <-p.done:
			// Pool is closing; keep the batch moving on this goroutine.
			task{fn: fn, join: &join}.run()
		}
	}
	join.Wait()
}

// Close stops the workers after draining any queued work. It is safe to
// call multiple times. Work submitted after Close runs inline.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

var (
	sharedOnce sync.Once
	shared     *Pool
)

// Shared returns the process-wide pool used by blit's parallel copies,
// created on first use with GOMAXPROCS workers. It is never closed.
func Shared() *Pool {
	sharedOnce.Do(func() {
		shared = NewPool(0)
	})
	return shared
}
