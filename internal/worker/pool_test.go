package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResult implements Result
type mockResult struct {
	id  int
	err error
}

func (r *mockResult) GetError() error {
	return r.err
}

// mockJob implements Job
type mockJob struct {
	id        int
	duration  time.Duration
	shouldErr bool
	executed  *int32
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &mockResult{id: j.id, err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &mockResult{id: j.id, err: errors.New("job error")}
	}
	return &mockResult{id: j.id}
}

func TestNewPool(t *testing.T) {
	assert.Equal(t, 5, NewPool(context.Background(), 5).Workers())
	assert.Equal(t, 1, NewPool(context.Background(), 0).Workers())
	assert.Equal(t, 1, NewPool(context.Background(), -1).Workers())
}

func TestPoolOrderedResults(t *testing.T) {
	var executed int32
	p := NewPool(context.Background(), 4)
	p.Start()

	// Far more jobs than the queue holds; Submit must not deadlock.
	const jobs = 200
	for i := range jobs {
		// Later jobs finish first to scramble completion order.
		d := time.Duration(jobs-i) * 10 * time.Microsecond
		require.NoError(t, p.Submit(&mockJob{id: i, duration: d, shouldErr: i%7 == 0, executed: &executed}))
	}

	results := p.Wait()
	require.Len(t, results, jobs)
	assert.Equal(t, int32(jobs), atomic.LoadInt32(&executed))

	for i, r := range results {
		mr := r.(*mockResult)
		assert.Equal(t, i, mr.id)
		if i%7 == 0 {
			assert.Error(t, r.GetError())
		} else {
			assert.NoError(t, r.GetError())
		}
	}
}

func TestPoolJobFunc(t *testing.T) {
	p := NewPool(context.Background(), 2)
	p.Start()

	require.NoError(t, p.Submit(JobFunc(func(context.Context) Result { return &mockResult{id: 7} })))
	results := p.Wait()

	require.Len(t, results, 1)
	assert.Equal(t, 7, results[0].(*mockResult).id)
}

func TestPoolCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPool(ctx, 1)
	p.Start()

	require.NoError(t, p.Submit(&mockJob{id: 0, duration: time.Hour}))
	cancel()

	assert.Eventually(t, func() bool {
		return errors.Is(p.Submit(&mockJob{id: 1}), context.Canceled)
	}, time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		p.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return after cancellation")
	}
}

func TestPoolEmpty(t *testing.T) {
	p := NewPool(context.Background(), 3)
	p.Start()
	assert.Empty(t, p.Wait())
}
