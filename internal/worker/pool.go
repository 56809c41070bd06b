// Package worker runs jobs on a bounded pool of goroutines.
package worker

import (
	"context"
	"sort"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// JobFunc adapts a function to Job.
type JobFunc func(ctx context.Context) Result

// Execute calls f.
func (f JobFunc) Execute(ctx context.Context) Result { return f(ctx) }

type ticket struct {
	seq int
	job Job
}

type outcome struct {
	seq    int
	result Result
}

// Pool manages a pool of workers that execute jobs concurrently.
// Results are collected while jobs run, so Submit never waits on a reader.
type Pool struct {
	workers    int
	jobQueue   chan ticket
	results    chan outcome
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
	collected  chan struct{}
	collector  *ResultCollector

	mu   sync.Mutex
	next int
}

// NewPool creates a new worker pool with the specified number of workers.
// Cancelling ctx stops the workers; jobs not yet started are dropped.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:    workers,
		jobQueue:   make(chan ticket, workers*2),
		results:    make(chan outcome, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
		collected:  make(chan struct{}),
		collector:  NewResultCollector(),
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Start starts the worker pool
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go p.collect()
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case t, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := t.job.Execute(p.ctx)
			select {
			case p.results <- outcome{seq: t.seq, result: result}:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

func (p *Pool) collect() {
	defer close(p.collected)
	for o := range p.results {
		p.collector.add(o.seq, o.result)
	}
}

// Submit queues job for execution. It blocks while the queue is full and
// returns the context error once the pool is cancelled.
// Submit must not be called after Wait or Shutdown.
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	seq := p.next
	p.next++
	p.mu.Unlock()

	select {
	case <-p.ctx.Done():
		return p.ctx.Err()
	case p.jobQueue <- ticket{seq: seq, job: job}:
		return nil
	}
}

// Wait waits for all submitted jobs to complete and returns their results
// in submission order. Jobs dropped by cancellation have no result.
func (p *Pool) Wait() []Result {
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
	<-p.collected
	p.cancelFunc()
	return p.collector.Results()
}

// Shutdown shuts down the worker pool immediately
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
	<-p.collected
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}

// ResultCollector gathers results from concurrent workers.
type ResultCollector struct {
	mu      sync.Mutex
	results map[int]Result
}

// NewResultCollector creates a new result collector
func NewResultCollector() *ResultCollector {
	return &ResultCollector{results: make(map[int]Result)}
}

func (c *ResultCollector) add(seq int, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[seq] = result
}

// Results returns all collected results ordered by sequence number.
func (c *ResultCollector) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	seqs := make([]int, 0, len(c.results))
	for seq := range c.results {
		seqs = append(seqs, seq)
	}
	sort.Ints(seqs)

	out := make([]Result, 0, len(seqs))
	for _, seq := range seqs {
		out = append(out, c.results[seq])
	}
	return out
}
