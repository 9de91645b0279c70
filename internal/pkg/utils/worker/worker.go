package worker

import "sync/atomic"

// Task is a unit of work processed by the pool.
type Task func()

// Pool is a fixed set of workers consuming tasks round-robin. It keeps
// fire-and-forget work (audit event publication) off the request path.
type Pool struct {
	queues []chan Task
	stop   chan struct{}
	next   atomic.Uint64
}

func NewPool(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}

	pool := &Pool{
		queues: make([]chan Task, numWorkers),
		stop:   make(chan struct{}),
	}

	for i := range pool.queues {
		queue := make(chan Task, 16)
		pool.queues[i] = queue
		go pool.run(queue)
	}

	return pool
}

func (p *Pool) run(queue chan Task) {
	for {
		select {
		case task := <-queue:
			task()
		case <-p.stop:
			return
		}
	}
}

// Submit hands a task to the next worker. Blocks when that worker's queue is
// full.
func (p *Pool) Submit(task Task) {
	index := p.next.Add(1) % uint64(len(p.queues))
	p.queues[index] <- task
}

// Stop terminates all workers. Queued tasks that have not started are
// dropped.
func (p *Pool) Stop() {
	close(p.stop)
}
