package alarms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

func recurringAlarm(id int64) types.Alarm {
	alarm := types.Alarm{
		ID: id, Hour: 6, Minute: 0, Meridiem: types.MeridiemAM,
		Enabled: true, SnoozeMinutes: 5,
	}
	for i := range alarm.Weekdays {
		alarm.Weekdays[i] = true
	}
	return alarm
}

func TestTriggerHandlerRoutesOnKeyNamespace(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := &AlarmServiceMock{
		OnAlarmTriggeredFunc:  func(ctx context.Context, alarmID int64, firedAt time.Time, payload types.TriggerPayload) {},
		OnSnoozeTriggeredFunc: func(ctx context.Context, alarmID int64, firedAt time.Time, payload types.TriggerPayload) {},
	}

	handler := NewTriggerHandler(svc)
	handler(ctx, "alarm:12", testClock, types.TriggerPayload{AlarmID: 12})
	handler(ctx, "snooze:12", testClock, types.TriggerPayload{AlarmID: 12})
	handler(ctx, "bogus", testClock, types.TriggerPayload{})

	is.Equal(1, len(svc.OnAlarmTriggeredCalls()))
	is.Equal(int64(12), svc.OnAlarmTriggeredCalls()[0].AlarmID)
	is.Equal(1, len(svc.OnSnoozeTriggeredCalls()))
}

func TestRecurringAlarmRearmsOnFire(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	alarm := recurringAlarm(1)
	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return alarm, nil
		},
	}
	scheduler := noopScheduler()
	presenter := noopPresenter()

	svc := newTestService(s, scheduler, presenter, noopMessenger(), nil)

	firedAt := time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)
	svc.OnAlarmTriggered(ctx, 1, firedAt, alarm.Payload())

	is.Equal(1, len(presenter.PresentRingingCalls()))

	session, active := svc.ActiveSession(1)
	is.True(active)
	is.Equal(types.SessionRinging, session.State)

	// the next occurrence is strictly after the firing instant
	is.Equal(1, len(scheduler.ArmCalls()))
	is.Equal("alarm:1", scheduler.ArmCalls()[0].Key)
	is.Equal(time.Date(2025, 1, 2, 6, 0, 0, 0, time.UTC), scheduler.ArmCalls()[0].At)
}

func TestOneShotAlarmDisablesItselfOnFire(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	alarm := types.Alarm{
		ID: 2, Hour: 6, Minute: 0, Meridiem: types.MeridiemAM,
		Enabled: true,
	}
	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return alarm, nil
		},
		SetEnabledFunc: func(ctx context.Context, alarmID int64, enabled bool) error {
			return nil
		},
	}
	scheduler := noopScheduler()
	messenger := noopMessenger()

	svc := newTestService(s, scheduler, noopPresenter(), messenger, nil)

	svc.OnAlarmTriggered(ctx, 2, testClock, alarm.Payload())

	is.Equal(0, len(scheduler.ArmCalls()))
	is.Equal(1, len(s.SetEnabledCalls()))
	is.Equal(false, s.SetEnabledCalls()[0].Enabled)

	is.Equal(1, len(messenger.PublishOnTopicCalls()))
	is.Equal("alarms.alarmDisabled", messenger.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestFireOfDeletedAlarmResolvesSession(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return types.Alarm{}, storage.ErrNoRows
		},
	}
	presenter := noopPresenter()

	svc := newTestService(s, noopScheduler(), presenter, noopMessenger(), nil)

	svc.OnAlarmTriggered(ctx, 3, testClock, types.TriggerPayload{AlarmID: 3})

	// the snapshot is still presented, but no session survives
	is.Equal(1, len(presenter.PresentRingingCalls()))
	_, active := svc.ActiveSession(3)
	is.True(!active)
}

func TestFireOfDisabledAlarmDoesNotRearm(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	alarm := recurringAlarm(4)
	alarm.Enabled = false

	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return alarm, nil
		},
	}
	scheduler := noopScheduler()

	svc := newTestService(s, scheduler, noopPresenter(), noopMessenger(), nil)

	// the record was disabled after the firing was already in flight
	svc.OnAlarmTriggered(ctx, 4, testClock, alarm.Payload())

	is.Equal(0, len(scheduler.ArmCalls()))
	is.Equal(0, len(s.SetEnabledCalls()))

	_, active := svc.ActiveSession(4)
	is.True(!active)
}

func TestSnoozeArmsSecondaryTrigger(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	alarm := recurringAlarm(5)
	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return alarm, nil
		},
	}
	scheduler := noopScheduler()
	presenter := noopPresenter()
	messenger := noopMessenger()

	svc := newTestService(s, scheduler, presenter, messenger, nil)

	firedAt := testClock.Add(-time.Minute)
	svc.OnAlarmTriggered(ctx, 5, firedAt, alarm.Payload())

	deadline, err := svc.Snooze(ctx, 5)
	is.NoErr(err)
	is.Equal(firedAt.Add(5*time.Minute), deadline)

	calls := scheduler.ArmCalls()
	is.Equal("snooze:5", calls[len(calls)-1].Key)
	is.Equal(deadline, calls[len(calls)-1].At)

	session, active := svc.ActiveSession(5)
	is.True(active)
	is.Equal(types.SessionSnoozed, session.State)
	is.Equal(deadline, session.SnoozeDeadline)

	is.Equal(1, len(presenter.ClearPresentationCalls()))
}

func TestSnoozeDeadlineFallsBackToNow(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	alarm := recurringAlarm(5)
	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return alarm, nil
		},
	}
	scheduler := noopScheduler()

	svc := newTestService(s, scheduler, noopPresenter(), noopMessenger(), nil)

	// rang unattended for longer than the snooze duration
	firedAt := testClock.Add(-time.Hour)
	svc.OnAlarmTriggered(ctx, 5, firedAt, alarm.Payload())

	deadline, err := svc.Snooze(ctx, 5)
	is.NoErr(err)
	is.Equal(testClock.Add(5*time.Minute), deadline)
}

func TestSnoozeWithoutSession(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := newTestService(&AlarmStorageMock{}, noopScheduler(), noopPresenter(), noopMessenger(), nil)

	_, err := svc.Snooze(ctx, 9)
	is.True(errors.Is(err, ErrNoActiveSession))
}

func TestSnoozeTwiceReturnsNotRinging(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	alarm := recurringAlarm(5)
	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return alarm, nil
		},
	}

	svc := newTestService(s, noopScheduler(), noopPresenter(), noopMessenger(), nil)
	svc.OnAlarmTriggered(ctx, 5, testClock.Add(-time.Minute), alarm.Payload())

	_, err := svc.Snooze(ctx, 5)
	is.NoErr(err)

	_, err = svc.Snooze(ctx, 5)
	is.True(errors.Is(err, ErrNotRinging))
}

func TestSnoozeRequiresSnoozeMinutes(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	alarm := recurringAlarm(6)
	alarm.SnoozeMinutes = 0

	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return alarm, nil
		},
	}

	svc := newTestService(s, noopScheduler(), noopPresenter(), noopMessenger(), nil)
	svc.OnAlarmTriggered(ctx, 6, testClock, alarm.Payload())

	_, err := svc.Snooze(ctx, 6)
	is.True(errors.Is(err, ErrSnoozeNotEnabled))
}

func TestSnoozeFollowsArmTimeSnapshot(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	armed := recurringAlarm(7)
	edited := armed
	edited.SnoozeMinutes = 0

	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return edited, nil
		},
	}

	svc := newTestService(s, noopScheduler(), noopPresenter(), noopMessenger(), nil)
	svc.OnAlarmTriggered(ctx, 7, testClock.Add(-time.Minute), armed.Payload())

	// snoozing was enabled when the trigger was armed, so the edit first
	// takes effect on the next firing
	_, err := svc.Snooze(ctx, 7)
	is.NoErr(err)
}

func TestSnoozeFireRepresentsWithoutRearming(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	scheduler := noopScheduler()
	presenter := noopPresenter()

	svc := newTestService(&AlarmStorageMock{}, scheduler, presenter, noopMessenger(), nil)

	svc.OnSnoozeTriggered(ctx, 5, testClock, types.TriggerPayload{AlarmID: 5, SnoozeMinutes: 5})

	is.Equal(1, len(presenter.PresentRingingCalls()))
	is.Equal(0, len(scheduler.ArmCalls()))

	session, active := svc.ActiveSession(5)
	is.True(active)
	is.Equal(types.SessionRinging, session.State)
}

func TestDismissCancelsPendingSnooze(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	alarm := recurringAlarm(5)
	s := &AlarmStorageMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return alarm, nil
		},
	}
	scheduler := noopScheduler()
	presenter := noopPresenter()
	messenger := noopMessenger()

	svc := newTestService(s, scheduler, presenter, messenger, nil)

	svc.OnAlarmTriggered(ctx, 5, testClock.Add(-time.Minute), alarm.Payload())

	_, err := svc.Snooze(ctx, 5)
	is.NoErr(err)

	err = svc.Dismiss(ctx, 5)
	is.NoErr(err)

	_, active := svc.ActiveSession(5)
	is.True(!active)

	disarms := scheduler.DisarmCalls()
	is.Equal("snooze:5", disarms[len(disarms)-1].Key)

	published := messenger.PublishOnTopicCalls()
	is.Equal("alarms.alarmDismissed", published[len(published)-1].Message.TopicName())
}

func TestDismissWithoutSession(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := newTestService(&AlarmStorageMock{}, noopScheduler(), noopPresenter(), noopMessenger(), nil)

	err := svc.Dismiss(ctx, 9)
	is.True(errors.Is(err, ErrNoActiveSession))
}
