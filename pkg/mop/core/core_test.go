package core

import (
	"context"
	"testing"
	"time"

	"github.com/ib-77/mop/pkg/mop"
	"github.com/ib-77/mop/pkg/mop/guard"
)

func recoverFailure(t *testing.T, fn func()) error {
	t.Helper()

	var failure error
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			err, ok := r.(error)
			if !ok {
				t.Fatalf("Expected an error panic value, got %T: %v", r, r)
			}
			failure = err
		}()
		fn()
	}()
	return failure
}

func TestToChanManyMaybes_Order(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	var results []mop.Maybe[int]
	for m := range ToChanManyMaybes(ctx, []int{1, 2, 3}) {
		results = append(results, m)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 values, got %d", len(results))
	}
	for i, want := range []int{1, 2, 3} {
		if results[i] != mop.Some(want) {
			t.Errorf("Expected Some(%d) at %d, got %v", want, i, results[i])
		}
	}
}

func TestToChanManyMaybes_NilReferencesBecomeAbsent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	v := 5
	var results []mop.Maybe[*int]
	for m := range ToChanManyMaybes(ctx, []*int{&v, nil}) {
		results = append(results, m)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 values, got %d", len(results))
	}
	if results[0].IsNone() {
		t.Error("Expected the live pointer present")
	}
	if results[1].IsSome() {
		t.Error("Expected the nil pointer absent")
	}
}

func TestToChanFromArgsMaybes_OnSent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	sent := 0
	handlers := ToChanHandlers[int]{
		OnSent: func(ctx context.Context, input int) { sent++ },
	}

	count := 0
	for range ToChanFromArgsMaybes(ctx, handlers, 1, 2, 3) {
		count++
	}

	if count != 3 {
		t.Errorf("Expected 3 values, got %d", count)
	}
	if sent != 3 {
		t.Errorf("Expected 3 sent notifications, got %d", sent)
	}
}

func TestToChanFromArgsMaybes_OnStartFail(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var failedWith []int
	handlers := ToChanHandlers[int]{
		OnStartFail: func(ctx context.Context, input []int) { failedWith = input },
	}

	count := 0
	for range ToChanFromArgsMaybes(ctx, handlers, 1, 2, 3) {
		count++
	}

	if count != 0 {
		t.Errorf("Expected no values on a cancelled context, got %d", count)
	}
	if len(failedWith) != 3 {
		t.Errorf("Expected the start-fail handler to see all 3 values, got %v", failedWith)
	}
}

func TestToChan(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	ch := ToChan(ctx, 42)
	v, ok := <-ch
	if !ok || v != 42 {
		t.Errorf("Expected 42, got %v ok=%v", v, ok)
	}
	if _, ok := <-ch; ok {
		t.Error("Expected the channel closed after one value")
	}
}

func TestFromChanFirstOr(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	ch := make(chan int, 1)
	ch <- 7
	if got := FromChanFirstOr(ctx, ch, -1); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}

	closed := make(chan int)
	close(closed)
	if got := FromChanFirstOr(ctx, closed, -1); got != -1 {
		t.Errorf("Expected the fallback for a closed channel, got %d", got)
	}

	cancelled, stop := context.WithCancel(context.Background())
	stop()
	if got := FromChanFirstOr(cancelled, make(chan int), -1); got != -1 {
		t.Errorf("Expected the fallback on a cancelled context, got %d", got)
	}
}

func TestFromChanMany(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	ch <- "c"
	close(ch)

	got := FromChanMany(ctx, ch)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Expected [a b c], got %v", got)
	}
}

func TestWorkers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := Workers(ctx, 4); got != 4 {
		t.Errorf("Expected the fallback 4, got %d", got)
	}

	ctx = WithWorkers(ctx, 8)
	if got := Workers(ctx, 4); got != 8 {
		t.Errorf("Expected the stored 8, got %d", got)
	}
}

func TestWithWorkers_NonPositive(t *testing.T) {
	t.Parallel()

	err := recoverFailure(t, func() { WithWorkers(context.Background(), 0) })
	if !guard.IsContract(err) {
		t.Errorf("Expected a contract failure, got %v", err)
	}
}

func TestFlushRemainingEnabled(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if !FlushRemainingEnabled(ctx, true) {
		t.Error("Expected the fallback true")
	}
	if FlushRemainingEnabled(ctx, false) {
		t.Error("Expected the fallback false")
	}

	ctx = WithFlushRemaining(ctx, false)
	if FlushRemainingEnabled(ctx, true) {
		t.Error("Expected the stored false to win over the fallback")
	}
}
