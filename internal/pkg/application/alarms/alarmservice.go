package alarms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"

	"github.com/thequyenle/alarm-mgmt/internal/pkg/application/schedule"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/triggers"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

var (
	ErrAlarmNotFound    = fmt.Errorf("alarm not found")
	ErrTooManyAlarms    = fmt.Errorf("alarm limit reached")
	ErrNoActiveSession  = fmt.Errorf("no active ringing session")
	ErrNotRinging       = fmt.Errorf("alarm is not ringing")
	ErrSnoozeNotEnabled = fmt.Errorf("snoozing is not enabled for this alarm")
)

//go:generate moq -rm -out alarmservice_mock.go . AlarmService
type AlarmService interface {
	Get(ctx context.Context, offset, limit int) (types.Collection[types.Alarm], error)
	GetByID(ctx context.Context, alarmID int64) (types.Alarm, error)
	Add(ctx context.Context, alarm types.Alarm) (types.Alarm, error)
	Update(ctx context.Context, alarm types.Alarm) (types.Alarm, error)
	SetEnabled(ctx context.Context, alarmID int64, enabled bool) error
	Delete(ctx context.Context, alarmID int64) error

	Snooze(ctx context.Context, alarmID int64) (time.Time, error)
	Dismiss(ctx context.Context, alarmID int64) error
	ActiveSession(alarmID int64) (types.RingingSession, bool)

	OnAlarmTriggered(ctx context.Context, alarmID int64, firedAt time.Time, payload types.TriggerPayload)
	OnSnoozeTriggered(ctx context.Context, alarmID int64, firedAt time.Time, payload types.TriggerPayload)

	RescheduleAll(ctx context.Context) error

	DescribeWeekdays(days types.Weekdays) string
}

//go:generate moq -rm -out alarmstorage_mock.go . AlarmStorage
type AlarmStorage interface {
	GetByID(ctx context.Context, alarmID int64) (types.Alarm, error)
	Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error)
	Add(ctx context.Context, alarm types.Alarm) (types.Alarm, error)
	Update(ctx context.Context, alarm types.Alarm) error
	SetEnabled(ctx context.Context, alarmID int64, enabled bool) error
	Delete(ctx context.Context, alarmID int64) error
}

type alarmStorageImpl struct {
	s storage.Store
}

func (a alarmStorageImpl) GetByID(ctx context.Context, alarmID int64) (types.Alarm, error) {
	return a.s.GetAlarm(ctx, storage.WithAlarmID(alarmID))
}
func (a alarmStorageImpl) Query(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alarm], error) {
	return a.s.QueryAlarms(ctx, conditions...)
}
func (a alarmStorageImpl) Add(ctx context.Context, alarm types.Alarm) (types.Alarm, error) {
	return a.s.AddAlarm(ctx, alarm)
}
func (a alarmStorageImpl) Update(ctx context.Context, alarm types.Alarm) error {
	return a.s.UpdateAlarm(ctx, alarm)
}
func (a alarmStorageImpl) SetEnabled(ctx context.Context, alarmID int64, enabled bool) error {
	return a.s.SetAlarmEnabled(ctx, alarmID, enabled)
}
func (a alarmStorageImpl) Delete(ctx context.Context, alarmID int64) error {
	return a.s.DeleteAlarm(ctx, alarmID)
}

func NewStorage(s storage.Store) AlarmStorage {
	return &alarmStorageImpl{s: s}
}

type Config struct {
	DayLabels []string `yaml:"dayLabels"`
	MaxAlarms int      `yaml:"maxAlarms"`
}

func NewConfig(config io.ReadCloser) (*Config, error) {
	defer config.Close()

	b, err := io.ReadAll(config)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) dayLabels() [7]string {
	if c == nil || len(c.DayLabels) != 7 {
		return schedule.DefaultDayLabels
	}

	var labels [7]string
	copy(labels[:], c.DayLabels)
	return labels
}

type svc struct {
	storage   AlarmStorage
	scheduler triggers.Scheduler
	presenter Presenter
	messenger messaging.MsgContext
	config    *Config

	sessions *sessionRegistry
	locks    *alarmLocks

	now func() time.Time
}

func New(s AlarmStorage, scheduler triggers.Scheduler, presenter Presenter, messenger messaging.MsgContext, config *Config) AlarmService {
	return &svc{
		storage:   s,
		scheduler: scheduler,
		presenter: presenter,
		messenger: messenger,
		config:    config,
		sessions:  newSessionRegistry(),
		locks:     newAlarmLocks(),
		now:       func() time.Time { return time.Now() },
	}
}

func validate(alarm types.Alarm) error {
	_, _, err := schedule.To24Hour(alarm.Hour, alarm.Minute, alarm.Meridiem)
	if err != nil {
		return err
	}

	if alarm.SnoozeMinutes < 0 {
		return fmt.Errorf("%w: snooze minutes %d is negative", schedule.ErrInvalidTime, alarm.SnoozeMinutes)
	}

	return nil
}

func (s *svc) Get(ctx context.Context, offset, limit int) (types.Collection[types.Alarm], error) {
	alarms, err := s.storage.Query(ctx, storage.WithOffset(offset), storage.WithLimit(limit))
	if err != nil {
		return types.Collection[types.Alarm]{}, err
	}

	return alarms, nil
}

func (s *svc) GetByID(ctx context.Context, alarmID int64) (types.Alarm, error) {
	alarm, err := s.storage.GetByID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alarm{}, ErrAlarmNotFound
		}
		return types.Alarm{}, err
	}

	return alarm, nil
}

func (s *svc) Add(ctx context.Context, alarm types.Alarm) (types.Alarm, error) {
	err := validate(alarm)
	if err != nil {
		return types.Alarm{}, err
	}

	if s.config != nil && s.config.MaxAlarms > 0 {
		existing, err := s.storage.Query(ctx, storage.WithLimit(1))
		if err != nil {
			return types.Alarm{}, err
		}
		if existing.TotalCount >= uint64(s.config.MaxAlarms) {
			return types.Alarm{}, ErrTooManyAlarms
		}
	}

	added, err := s.storage.Add(ctx, alarm)
	if err != nil {
		return types.Alarm{}, err
	}

	if added.Enabled {
		unlock := s.locks.Lock(added.ID)
		err = s.scheduleAlarm(ctx, added)
		unlock()
		if err != nil {
			return types.Alarm{}, err
		}
	}

	return added, nil
}

func (s *svc) Update(ctx context.Context, alarm types.Alarm) (types.Alarm, error) {
	if alarm.ID == 0 {
		return types.Alarm{}, ErrAlarmNotFound
	}

	err := validate(alarm)
	if err != nil {
		return types.Alarm{}, err
	}

	unlock := s.locks.Lock(alarm.ID)
	defer unlock()

	err = s.storage.Update(ctx, alarm)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alarm{}, ErrAlarmNotFound
		}
		return types.Alarm{}, err
	}

	// the record changed, so any armed trigger is stale
	if alarm.Enabled {
		err = s.scheduleAlarm(ctx, alarm)
		if err != nil {
			return types.Alarm{}, err
		}
	} else {
		s.disarmAll(ctx, alarm.ID)
	}

	updated, err := s.storage.GetByID(ctx, alarm.ID)
	if err != nil {
		return types.Alarm{}, err
	}

	return updated, nil
}

func (s *svc) SetEnabled(ctx context.Context, alarmID int64, enabled bool) error {
	unlock := s.locks.Lock(alarmID)
	defer unlock()

	err := s.storage.SetEnabled(ctx, alarmID, enabled)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlarmNotFound
		}
		return err
	}

	if !enabled {
		s.disarmAll(ctx, alarmID)
		return nil
	}

	alarm, err := s.storage.GetByID(ctx, alarmID)
	if err != nil {
		return err
	}

	return s.scheduleAlarm(ctx, alarm)
}

func (s *svc) Delete(ctx context.Context, alarmID int64) error {
	unlock := s.locks.Lock(alarmID)
	defer unlock()

	s.disarmAll(ctx, alarmID)

	err := s.storage.Delete(ctx, alarmID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return ErrAlarmNotFound
		}
		return err
	}

	return nil
}

func (s *svc) ActiveSession(alarmID int64) (types.RingingSession, bool) {
	return s.sessions.Get(alarmID)
}

func (s *svc) RescheduleAll(ctx context.Context) error {
	log := logging.GetFromContext(ctx)

	enabled, err := s.storage.Query(ctx, storage.WithEnabled(true))
	if err != nil {
		return err
	}

	armed := 0

	for _, alarm := range enabled.Data {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := validate(alarm); err != nil {
			log.Error("skipping alarm with invalid time data", "alarm_id", alarm.ID, "err", err.Error())
			continue
		}

		unlock := s.locks.Lock(alarm.ID)
		err := s.scheduleAlarm(ctx, alarm)
		unlock()

		if err != nil {
			log.Error("could not reschedule alarm", "alarm_id", alarm.ID, "err", err.Error())
			continue
		}

		armed++
	}

	log.Info("rescheduled enabled alarms", "count", armed, "total", enabled.TotalCount)

	return nil
}

func (s *svc) DescribeWeekdays(days types.Weekdays) string {
	return schedule.DescribeWeekdays(days, s.config.dayLabels())
}

// scheduleAlarm computes the next occurrence and arms the primary trigger.
// A scheduling permission denial is reported, not returned: the alarm stays
// enabled but unarmed until permission is granted and a reschedule retried.
func (s *svc) scheduleAlarm(ctx context.Context, alarm types.Alarm) error {
	log := logging.GetFromContext(ctx)

	next, ok := schedule.NextOccurrence(alarm, s.now())
	if !ok {
		s.scheduler.Disarm(ctx, triggers.AlarmKey(alarm.ID))
		log.Warn("alarm has no future occurrence, leaving it disarmed", "alarm_id", alarm.ID)
		return nil
	}

	err := s.scheduler.Arm(ctx, triggers.AlarmKey(alarm.ID), next, alarm.Payload())
	if err != nil {
		if errors.Is(err, triggers.ErrSchedulingDenied) {
			log.Error("exact scheduling denied", "alarm_id", alarm.ID)
			s.presenter.ReportSchedulingDenied(ctx, alarm.ID)
			return nil
		}
		return err
	}

	return nil
}

func (s *svc) disarmAll(ctx context.Context, alarmID int64) {
	s.scheduler.Disarm(ctx, triggers.AlarmKey(alarmID))
	s.scheduler.Disarm(ctx, triggers.SnoozeKey(alarmID))

	if _, ok := s.sessions.Get(alarmID); ok {
		s.sessions.Resolve(alarmID)
		s.presenter.ClearPresentation(ctx, alarmID)
	}
}

func (s *svc) publish(ctx context.Context, msg messaging.TopicMessage) {
	err := s.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}
