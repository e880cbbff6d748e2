package triggers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

func TestArmRejectsPastInstant(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	h := New(func(context.Context, string, time.Time, types.TriggerPayload) {},
		WithClock(func() time.Time { return now }))
	defer h.Shutdown()

	err := h.Arm(ctx, AlarmKey(1), now, types.TriggerPayload{})
	is.True(err != nil)

	err = h.Arm(ctx, AlarmKey(1), now.Add(-time.Minute), types.TriggerPayload{})
	is.True(err != nil)
}

func TestArmDeniedWhenNotPermitted(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	h := New(func(context.Context, string, time.Time, types.TriggerPayload) {},
		WithPermissionCheck(func() bool { return false }))
	defer h.Shutdown()

	err := h.Arm(ctx, AlarmKey(1), time.Now().Add(time.Hour), types.TriggerPayload{})
	is.Equal(err, ErrSchedulingDenied)
}

func TestArmReplacesPendingTrigger(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var mu sync.Mutex
	fired := []string{}
	done := make(chan struct{})

	h := New(func(_ context.Context, key string, _ time.Time, _ types.TriggerPayload) {
		mu.Lock()
		fired = append(fired, key)
		mu.Unlock()
		close(done)
	})
	defer h.Shutdown()

	err := h.Arm(ctx, AlarmKey(7), time.Now().Add(time.Hour), types.TriggerPayload{})
	is.NoErr(err)

	// rearming the same key discards the hour long trigger
	err = h.Arm(ctx, AlarmKey(7), time.Now().Add(20*time.Millisecond), types.TriggerPayload{})
	is.NoErr(err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("trigger did not fire")
	}

	mu.Lock()
	defer mu.Unlock()
	is.Equal(len(fired), 1)
	is.Equal(fired[0], AlarmKey(7))
}

func TestStaleCallbackOfReplacedTriggerIsANoOp(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	fired := make(chan string, 2)
	h := New(func(_ context.Context, key string, _ time.Time, _ types.TriggerPayload) {
		fired <- key
	}).(*hub)
	defer h.Shutdown()

	first := time.Now().Add(time.Hour)
	second := time.Now().Add(2 * time.Hour)

	is.NoErr(h.Arm(ctx, AlarmKey(9), first, types.TriggerPayload{}))
	is.NoErr(h.Arm(ctx, AlarmKey(9), second, types.TriggerPayload{AlarmID: 9}))

	// a callback that left time.AfterFunc before the replace survives
	// Stop and runs late; it must neither fire nor disturb the replacement
	h.fireArmed(AlarmKey(9), 1, first, types.TriggerPayload{})

	select {
	case key := <-fired:
		t.Fatalf("superseded trigger %s fired anyway", key)
	default:
	}

	h.mu.Lock()
	_, stillArmed := h.armed[AlarmKey(9)]
	h.mu.Unlock()
	is.True(stillArmed)

	// the live generation still delivers
	h.fireArmed(AlarmKey(9), 2, second, types.TriggerPayload{AlarmID: 9})
	is.Equal(AlarmKey(9), <-fired)

	h.mu.Lock()
	_, stillArmed = h.armed[AlarmKey(9)]
	h.mu.Unlock()
	is.True(!stillArmed)
}

func TestStaleCallbackAfterDisarmIsANoOp(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	fired := make(chan string, 1)
	h := New(func(_ context.Context, key string, _ time.Time, _ types.TriggerPayload) {
		fired <- key
	}).(*hub)
	defer h.Shutdown()

	at := time.Now().Add(time.Hour)

	is.NoErr(h.Arm(ctx, SnoozeKey(9), at, types.TriggerPayload{}))
	is.NoErr(h.Disarm(ctx, SnoozeKey(9)))

	h.fireArmed(SnoozeKey(9), 1, at, types.TriggerPayload{})

	select {
	case key := <-fired:
		t.Fatalf("disarmed trigger %s fired anyway", key)
	default:
	}
}

func TestDisarmCancelsPendingTrigger(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	fired := make(chan string, 1)

	h := New(func(_ context.Context, key string, _ time.Time, _ types.TriggerPayload) {
		fired <- key
	})
	defer h.Shutdown()

	err := h.Arm(ctx, SnoozeKey(3), time.Now().Add(20*time.Millisecond), types.TriggerPayload{})
	is.NoErr(err)

	err = h.Disarm(ctx, SnoozeKey(3))
	is.NoErr(err)

	select {
	case key := <-fired:
		t.Fatalf("disarmed trigger %s fired anyway", key)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDisarmIsANoOpForUnknownKeys(t *testing.T) {
	is := is.New(t)

	h := New(func(context.Context, string, time.Time, types.TriggerPayload) {})
	defer h.Shutdown()

	is.NoErr(h.Disarm(context.Background(), AlarmKey(42)))
}

func TestKeyRoundTrip(t *testing.T) {
	is := is.New(t)

	kind, id, err := ParseKey(AlarmKey(17))
	is.NoErr(err)
	is.Equal(kind, KindAlarm)
	is.Equal(id, int64(17))

	kind, id, err = ParseKey(SnoozeKey(17))
	is.NoErr(err)
	is.Equal(kind, KindSnooze)
	is.Equal(id, int64(17))

	_, _, err = ParseKey("bogus")
	is.True(err != nil)

	_, _, err = ParseKey("alarm:notanumber")
	is.True(err != nil)
}
