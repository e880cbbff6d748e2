package triggers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/metrics"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

var (
	ErrPastTrigger      = errors.New("trigger instant is not in the future")
	ErrSchedulingDenied = errors.New("exact scheduling is not permitted")
)

// Scheduler arms and disarms one shot exact wake ups keyed by an opaque
// string. Arming a key that is already armed replaces the pending trigger.
//
//go:generate moq -rm -out scheduler_mock.go . Scheduler
type Scheduler interface {
	Arm(ctx context.Context, key string, at time.Time, payload types.TriggerPayload) error
	Disarm(ctx context.Context, key string) error
}

// FireFunc is invoked on the hub's timer goroutine when a trigger fires.
type FireFunc func(ctx context.Context, key string, firedAt time.Time, payload types.TriggerPayload)

const (
	KindAlarm  = "alarm"
	KindSnooze = "snooze"
)

// AlarmKey and SnoozeKey place primary and snooze triggers in distinct
// namespaces, so a snooze trigger can never collide with the primary
// schedule of any alarm id.
func AlarmKey(alarmID int64) string {
	return fmt.Sprintf("%s:%d", KindAlarm, alarmID)
}

func SnoozeKey(alarmID int64) string {
	return fmt.Sprintf("%s:%d", KindSnooze, alarmID)
}

func ParseKey(key string) (kind string, alarmID int64, err error) {
	kind, id, ok := strings.Cut(key, ":")
	if !ok || (kind != KindAlarm && kind != KindSnooze) {
		return "", 0, fmt.Errorf("malformed trigger key %q", key)
	}

	alarmID, err = strconv.ParseInt(id, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed trigger key %q: %w", key, err)
	}

	return kind, alarmID, nil
}

// armedTrigger pairs a pending timer with the generation it was armed
// under. A timer callback that has already left time.AfterFunc survives
// Stop, so the generation is what decides whether a firing still counts.
type armedTrigger struct {
	timer *time.Timer
	gen   uint64
}

type hub struct {
	mu     sync.Mutex
	gen    uint64
	armed  map[string]armedTrigger
	fire   FireFunc
	now    func() time.Time
	permit func() bool
}

type HubOption func(*hub)

// WithClock overrides the hub's time source.
func WithClock(now func() time.Time) HubOption {
	return func(h *hub) {
		h.now = now
	}
}

// WithPermissionCheck installs the gate consulted on every Arm. A gate
// returning false makes Arm fail with ErrSchedulingDenied.
func WithPermissionCheck(permit func() bool) HubOption {
	return func(h *hub) {
		h.permit = permit
	}
}

type Hub interface {
	Scheduler
	Shutdown()
}

func New(fire FireFunc, opts ...HubOption) Hub {
	h := &hub{
		armed:  map[string]armedTrigger{},
		fire:   fire,
		now:    func() time.Time { return time.Now() },
		permit: func() bool { return true },
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *hub) Arm(ctx context.Context, key string, at time.Time, payload types.TriggerPayload) error {
	if !h.permit() {
		return ErrSchedulingDenied
	}

	now := h.now()
	if !at.After(now) {
		return fmt.Errorf("%w: %s <= %s", ErrPastTrigger, at.Format(time.RFC3339), now.Format(time.RFC3339))
	}

	log := logging.GetFromContext(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.armed[key]; ok {
		t.timer.Stop()
		delete(h.armed, key)
		metrics.ArmedTriggers.Dec()
	}

	h.gen++
	gen := h.gen

	h.armed[key] = armedTrigger{
		gen: gen,
		timer: time.AfterFunc(at.Sub(now), func() {
			h.fireArmed(key, gen, at, payload)
		}),
	}
	metrics.ArmedTriggers.Inc()

	log.Debug("armed trigger", "key", key, "at", at.Format(time.RFC3339))

	return nil
}

func (h *hub) fireArmed(key string, gen uint64, at time.Time, payload types.TriggerPayload) {
	h.mu.Lock()
	current, ok := h.armed[key]
	if !ok || current.gen != gen {
		// replaced or disarmed after the timer had already gone off
		h.mu.Unlock()
		return
	}

	delete(h.armed, key)
	metrics.ArmedTriggers.Dec()
	h.mu.Unlock()

	h.fire(context.Background(), key, at, payload)
}

func (h *hub) Disarm(ctx context.Context, key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.armed[key]; ok {
		t.timer.Stop()
		delete(h.armed, key)
		metrics.ArmedTriggers.Dec()
	}

	return nil
}

func (h *hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for key, t := range h.armed {
		t.timer.Stop()
		delete(h.armed, key)
		metrics.ArmedTriggers.Dec()
	}
}
