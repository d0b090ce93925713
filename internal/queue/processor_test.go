package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockMailer records deliveries for testing.
type MockMailer struct {
	mu       sync.Mutex
	sent     []EmailJob
	failWith error
}

func (m *MockMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, EmailJob{To: to, Subject: subject, Body: body})
	return nil
}

func (m *MockMailer) Sent() []EmailJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmailJob, len(m.sent))
	copy(out, m.sent)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestProcessor_DeliversQueuedMail(t *testing.T) {
	q := NewMemoryQueue(10)
	m := &MockMailer{}
	p := NewProcessor(q, m, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer p.Stop()

	require.NoError(t, q.Enqueue(EmailJob{To: "user@example.com", Subject: "Password reset", Body: "token"}))

	waitFor(t, 2*time.Second, func() bool { return len(m.Sent()) == 1 })
	assert.Equal(t, "user@example.com", m.Sent()[0].To)
	assert.Equal(t, "Password reset", m.Sent()[0].Subject)
}

func TestProcessor_DropsAfterMaxRetries(t *testing.T) {
	q := NewMemoryQueue(10)
	m := &MockMailer{failWith: errors.New("smtp down")}
	p := NewProcessor(q, m, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	// A job already at the retry limit is dropped without re-enqueueing.
	require.NoError(t, q.Enqueue(EmailJob{To: "user@example.com", RetryCount: MaxRetries - 1}))

	waitFor(t, 2*time.Second, func() bool { return q.Len() == 0 })
	p.Stop()

	assert.Empty(t, m.Sent())
}

func TestProcessor_StopDrainsWorkers(t *testing.T) {
	q := NewMemoryQueue(10)
	m := &MockMailer{}
	p := NewProcessor(q, m, 3)

	p.Start(context.Background())
	p.Stop() // returns only after every worker exits

	assert.Equal(t, ErrQueueClosed, q.Enqueue(EmailJob{To: "late@example.com"}))
}
