package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartup_Success(t *testing.T) {
	called := 0
	l := NewLifecycle(func(ctx context.Context) error {
		called++
		return nil
	})

	l.Startup(context.Background())

	assert.Equal(t, 1, called)
}

func TestStartup_FailureIsSwallowed(t *testing.T) {
	l := NewLifecycle(func(ctx context.Context) error {
		return errors.New("index build failed")
	})

	// Must not panic or abort; the server keeps serving in degraded mode.
	l.Startup(context.Background())
}

func TestStartup_NilInit(t *testing.T) {
	l := NewLifecycle(nil)
	l.Startup(context.Background())
}

func TestClose_ExactlyOnce(t *testing.T) {
	closed := 0
	l := NewLifecycle(nil, Closer{
		Name: "mongodb",
		Close: func(ctx context.Context) error {
			closed++
			return nil
		},
	})

	l.Close(context.Background())
	l.Close(context.Background())
	l.Close(context.Background())

	assert.Equal(t, 1, closed)
}

func TestClose_ExactlyOnce_Concurrent(t *testing.T) {
	closed := 0
	l := NewLifecycle(nil, Closer{
		Name:  "mongodb",
		Close: func(ctx context.Context) error { closed++; return nil },
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Close(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, closed)
}

func TestClose_AfterFailedStartup(t *testing.T) {
	closed := 0
	l := NewLifecycle(
		func(ctx context.Context) error { return errors.New("boom") },
		Closer{
			Name:  "mongodb",
			Close: func(ctx context.Context) error { closed++; return nil },
		},
	)

	l.Startup(context.Background())
	l.Close(context.Background())

	assert.Equal(t, 1, closed)
}

func TestClose_ReverseOrder(t *testing.T) {
	var order []string
	step := func(name string) Closer {
		return Closer{Name: name, Close: func(ctx context.Context) error {
			order = append(order, name)
			return nil
		}}
	}

	l := NewLifecycle(nil, step("first"), step("second"), step("third"))
	l.Close(context.Background())

	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestClose_ContinuesPastFailingCloser(t *testing.T) {
	closed := 0
	l := NewLifecycle(nil,
		Closer{Name: "mongodb", Close: func(ctx context.Context) error { closed++; return nil }},
		Closer{Name: "broken", Close: func(ctx context.Context) error { return errors.New("boom") }},
	)

	l.Close(context.Background())

	assert.Equal(t, 1, closed)
}
