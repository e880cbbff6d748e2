package alarms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"

	"github.com/thequyenle/alarm-mgmt/internal/pkg/application/schedule"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/triggers"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

// wednesday, jan 1 2025, 06:00 UTC
var testClock = time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)

func newTestService(s AlarmStorage, scheduler triggers.Scheduler, presenter Presenter, messenger messaging.MsgContext, config *Config) *svc {
	service := New(s, scheduler, presenter, messenger, config).(*svc)
	service.now = func() time.Time { return testClock }
	return service
}

func noopScheduler() *triggers.SchedulerMock {
	return &triggers.SchedulerMock{
		ArmFunc: func(ctx context.Context, key string, at time.Time, payload types.TriggerPayload) error {
			return nil
		},
		DisarmFunc: func(ctx context.Context, key string) error {
			return nil
		},
	}
}

func noopPresenter() *PresenterMock {
	return &PresenterMock{
		PresentRingingFunc: func(ctx context.Context, alarmID int64, payload types.TriggerPayload) error {
			return nil
		},
		ClearPresentationFunc: func(ctx context.Context, alarmID int64) error {
			return nil
		},
		ReportSchedulingDeniedFunc: func(ctx context.Context, alarmID int64) error {
			return nil
		},
	}
}

func noopMessenger() *messaging.MsgContextMock {
	return &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}
}

func TestAddArmsEnabledAlarm(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		AddFunc: func(ctx context.Context, alarm types.Alarm) (types.Alarm, error) {
			alarm.ID = 1
			return alarm, nil
		},
	}
	scheduler := noopScheduler()

	svc := newTestService(s, scheduler, noopPresenter(), noopMessenger(), nil)

	added, err := svc.Add(ctx, types.Alarm{
		Hour: 7, Minute: 30, Meridiem: types.MeridiemAM,
		Enabled: true,
	})
	is.NoErr(err)
	is.Equal(int64(1), added.ID)

	is.Equal(1, len(scheduler.ArmCalls()))
	is.Equal("alarm:1", scheduler.ArmCalls()[0].Key)
	is.Equal(time.Date(2025, 1, 1, 7, 30, 0, 0, time.UTC), scheduler.ArmCalls()[0].At)
}

func TestAddDoesNotArmDisabledAlarm(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		AddFunc: func(ctx context.Context, alarm types.Alarm) (types.Alarm, error) {
			alarm.ID = 1
			return alarm, nil
		},
	}
	scheduler := noopScheduler()

	svc := newTestService(s, scheduler, noopPresenter(), noopMessenger(), nil)

	_, err := svc.Add(ctx, types.Alarm{
		Hour: 7, Minute: 30, Meridiem: types.MeridiemAM,
		Enabled: false,
	})
	is.NoErr(err)
	is.Equal(0, len(scheduler.ArmCalls()))
}

func TestAddRejectsInvalidTime(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := newTestService(&AlarmStorageMock{}, noopScheduler(), noopPresenter(), noopMessenger(), nil)

	_, err := svc.Add(ctx, types.Alarm{Hour: 0, Minute: 30, Meridiem: types.MeridiemAM})
	is.True(errors.Is(err, schedule.ErrInvalidTime))

	_, err = svc.Add(ctx, types.Alarm{Hour: 7, Minute: 30, Meridiem: "XM"})
	is.True(errors.Is(err, schedule.ErrInvalidTime))
}

func TestAddEnforcesAlarmLimit(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		QueryFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error) {
			return types.Collection[types.Alarm]{TotalCount: 10}, nil
		},
	}

	svc := newTestService(s, noopScheduler(), noopPresenter(), noopMessenger(), &Config{MaxAlarms: 10})

	_, err := svc.Add(ctx, types.Alarm{Hour: 7, Minute: 30, Meridiem: types.MeridiemAM})
	is.True(errors.Is(err, ErrTooManyAlarms))
}

func TestUpdateRearmsTrigger(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	stored := types.Alarm{
		ID: 3, Hour: 9, Minute: 0, Meridiem: types.MeridiemPM,
		Enabled: true,
	}

	s := &AlarmStorageMock{
		UpdateFunc: func(ctx context.Context, alarm types.Alarm) error {
			stored = alarm
			return nil
		},
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			return stored, nil
		},
	}
	scheduler := noopScheduler()

	svc := newTestService(s, scheduler, noopPresenter(), noopMessenger(), nil)

	updated, err := svc.Update(ctx, types.Alarm{
		ID: 3, Hour: 10, Minute: 15, Meridiem: types.MeridiemPM,
		Enabled: true,
	})
	is.NoErr(err)
	is.Equal(10, updated.Hour)

	is.Equal(1, len(scheduler.ArmCalls()))
	is.Equal("alarm:3", scheduler.ArmCalls()[0].Key)
	is.Equal(time.Date(2025, 1, 1, 22, 15, 0, 0, time.UTC), scheduler.ArmCalls()[0].At)
}

func TestUpdateOfUnknownAlarmReturnsNotFound(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		UpdateFunc: func(ctx context.Context, alarm types.Alarm) error {
			return storage.ErrNoRows
		},
	}

	svc := newTestService(s, noopScheduler(), noopPresenter(), noopMessenger(), nil)

	_, err := svc.Update(ctx, types.Alarm{ID: 42, Hour: 7, Minute: 0, Meridiem: types.MeridiemAM})
	is.True(errors.Is(err, ErrAlarmNotFound))
}

func TestDisableDisarmsBothTriggers(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		SetEnabledFunc: func(ctx context.Context, alarmID int64, enabled bool) error {
			return nil
		},
	}
	scheduler := noopScheduler()

	svc := newTestService(s, scheduler, noopPresenter(), noopMessenger(), nil)

	err := svc.SetEnabled(ctx, 4, false)
	is.NoErr(err)

	is.Equal(2, len(scheduler.DisarmCalls()))
	is.Equal("alarm:4", scheduler.DisarmCalls()[0].Key)
	is.Equal("snooze:4", scheduler.DisarmCalls()[1].Key)
}

func TestDisableClearsActiveSession(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		SetEnabledFunc: func(ctx context.Context, alarmID int64, enabled bool) error {
			return nil
		},
	}
	presenter := noopPresenter()

	svc := newTestService(s, noopScheduler(), presenter, noopMessenger(), nil)
	svc.sessions.Open(4, testClock, types.TriggerPayload{AlarmID: 4})

	err := svc.SetEnabled(ctx, 4, false)
	is.NoErr(err)

	_, active := svc.ActiveSession(4)
	is.True(!active)
	is.Equal(1, len(presenter.ClearPresentationCalls()))
}

func TestDeleteDisarmsTriggers(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		DeleteFunc: func(ctx context.Context, alarmID int64) error {
			return nil
		},
	}
	scheduler := noopScheduler()

	svc := newTestService(s, scheduler, noopPresenter(), noopMessenger(), nil)

	err := svc.Delete(ctx, 7)
	is.NoErr(err)
	is.Equal(2, len(scheduler.DisarmCalls()))
}

func TestRescheduleAllSkipsCorruptRecords(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		QueryFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error) {
			return types.Collection[types.Alarm]{
				Data: []types.Alarm{
					{ID: 1, Hour: 7, Minute: 0, Meridiem: types.MeridiemAM, Enabled: true},
					{ID: 2, Hour: 99, Minute: 0, Meridiem: types.MeridiemAM, Enabled: true},
					{ID: 3, Hour: 8, Minute: 30, Meridiem: types.MeridiemPM, Enabled: true},
				},
				Count:      3,
				TotalCount: 3,
			}, nil
		},
	}
	scheduler := noopScheduler()

	svc := newTestService(s, scheduler, noopPresenter(), noopMessenger(), nil)

	err := svc.RescheduleAll(ctx)
	is.NoErr(err)

	is.Equal(2, len(scheduler.ArmCalls()))
	is.Equal("alarm:1", scheduler.ArmCalls()[0].Key)
	is.Equal("alarm:3", scheduler.ArmCalls()[1].Key)
}

func TestSchedulingDenialIsReportedNotReturned(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlarmStorageMock{
		AddFunc: func(ctx context.Context, alarm types.Alarm) (types.Alarm, error) {
			alarm.ID = 1
			return alarm, nil
		},
	}
	scheduler := noopScheduler()
	scheduler.ArmFunc = func(ctx context.Context, key string, at time.Time, payload types.TriggerPayload) error {
		return triggers.ErrSchedulingDenied
	}
	presenter := noopPresenter()

	svc := newTestService(s, scheduler, presenter, noopMessenger(), nil)

	_, err := svc.Add(ctx, types.Alarm{
		Hour: 7, Minute: 30, Meridiem: types.MeridiemAM,
		Enabled: true,
	})
	is.NoErr(err)
	is.Equal(1, len(presenter.ReportSchedulingDeniedCalls()))
}
