package alarms

import (
	"context"
	"errors"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"

	"github.com/thequyenle/alarm-mgmt/internal/pkg/application/schedule"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/metrics"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/triggers"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

var tracer = otel.Tracer("alarm-mgmt/alarms")

// NewTriggerHandler routes fired triggers from the wake up hub into the
// service, keeping the service itself free of trigger key vocabulary.
func NewTriggerHandler(svc AlarmService) triggers.FireFunc {
	return func(ctx context.Context, key string, firedAt time.Time, payload types.TriggerPayload) {
		log := logging.GetFromContext(ctx)

		kind, alarmID, err := triggers.ParseKey(key)
		if err != nil {
			log.Error("dropping fired trigger", "key", key, "err", err.Error())
			return
		}

		switch kind {
		case triggers.KindAlarm:
			svc.OnAlarmTriggered(ctx, alarmID, firedAt, payload)
		case triggers.KindSnooze:
			svc.OnSnoozeTriggered(ctx, alarmID, firedAt, payload)
		}
	}
}

// OnAlarmTriggered handles the firing of a primary trigger. The payload is
// the snapshot captured at arm time; the continuation decision is made from
// the current record, which is authoritative and may have been edited since.
// No error escapes this handler: a scheduling or storage failure must never
// abort presentation of an alarm that is already ringing.
func (s *svc) OnAlarmTriggered(ctx context.Context, alarmID int64, firedAt time.Time, payload types.TriggerPayload) {
	var err error

	ctx, span := tracer.Start(ctx, "alarm-triggered")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	unlock := s.locks.Lock(alarmID)
	defer unlock()

	metrics.AlarmsFired.Inc()

	s.sessions.Open(alarmID, firedAt, payload)

	err = s.presenter.PresentRinging(ctx, alarmID, payload)
	if err != nil {
		log.Error("could not present ringing alarm", "alarm_id", alarmID, "err", err.Error())
	}

	alarm, err := s.storage.GetByID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			// deleted while armed
			s.sessions.Resolve(alarmID)
			err = nil
			return
		}
		log.Error("could not look up fired alarm", "alarm_id", alarmID, "err", err.Error())
		return
	}

	if !alarm.Enabled {
		// disabled while the firing was already in flight; nothing may
		// stay armed and the session does not survive
		s.sessions.Resolve(alarmID)
		return
	}

	if alarm.Weekdays.Any() {
		next, ok := schedule.NextOccurrence(alarm, firedAt)
		if !ok {
			log.Warn("recurring alarm has no future occurrence", "alarm_id", alarmID)
			return
		}

		err = s.scheduler.Arm(ctx, triggers.AlarmKey(alarmID), next, alarm.Payload())
		if err != nil {
			metrics.RearmFailures.Inc()
			if errors.Is(err, triggers.ErrSchedulingDenied) {
				s.presenter.ReportSchedulingDenied(ctx, alarmID)
			}
			log.Error("could not re-arm recurring alarm", "alarm_id", alarmID, "err", err.Error())
		}

		return
	}

	// one shot: fired once, turn itself off
	err = s.storage.SetEnabled(ctx, alarmID, false)
	if err != nil {
		log.Error("could not disable one shot alarm", "alarm_id", alarmID, "err", err.Error())
		return
	}

	s.publish(ctx, &types.AlarmDisabled{
		AlarmID:   alarmID,
		Timestamp: firedAt.UTC(),
	})
}

// OnSnoozeTriggered handles the firing of a snooze trigger. It only
// re-presents the ringing alarm: no occurrence is resolved and the
// record's enabled flag is left alone.
func (s *svc) OnSnoozeTriggered(ctx context.Context, alarmID int64, firedAt time.Time, payload types.TriggerPayload) {
	var err error

	ctx, span := tracer.Start(ctx, "snooze-triggered")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	unlock := s.locks.Lock(alarmID)
	defer unlock()

	metrics.AlarmsFired.Inc()

	s.sessions.Open(alarmID, firedAt, payload)

	err = s.presenter.PresentRinging(ctx, alarmID, payload)
	if err != nil {
		log.Error("could not present ringing alarm", "alarm_id", alarmID, "err", err.Error())
	}
}

// Snooze silences the current firing and arms a secondary trigger at the
// snooze deadline. The secondary trigger lives in its own key namespace, so
// it can never collide with the primary recurring schedule.
func (s *svc) Snooze(ctx context.Context, alarmID int64) (time.Time, error) {
	unlock := s.locks.Lock(alarmID)
	defer unlock()

	session, ok := s.sessions.Get(alarmID)
	if !ok {
		return time.Time{}, ErrNoActiveSession
	}

	if session.State != types.SessionRinging {
		return time.Time{}, ErrNotRinging
	}

	// snoozeability is judged against the snapshot captured at arm time,
	// like the rest of the firing; an edit made mid-ring applies from the
	// next firing
	if session.Payload.SnoozeMinutes <= 0 {
		return time.Time{}, ErrSnoozeNotEnabled
	}

	snoozeFor := time.Duration(session.Payload.SnoozeMinutes) * time.Minute

	deadline := session.FiredAt.Add(snoozeFor)
	if now := s.now(); !deadline.After(now) {
		// the alarm rang unattended for longer than the snooze duration
		deadline = now.Add(snoozeFor)
	}

	err := s.scheduler.Arm(ctx, triggers.SnoozeKey(alarmID), deadline, session.Payload)
	if err != nil {
		if errors.Is(err, triggers.ErrSchedulingDenied) {
			s.presenter.ReportSchedulingDenied(ctx, alarmID)
		}
		return time.Time{}, err
	}

	s.sessions.Snooze(alarmID, deadline)

	err = s.presenter.ClearPresentation(ctx, alarmID)
	if err != nil {
		logging.GetFromContext(ctx).Error("could not clear presentation", "alarm_id", alarmID, "err", err.Error())
	}

	metrics.AlarmsSnoozed.Inc()

	s.publish(ctx, &types.AlarmSnoozed{
		AlarmID:        alarmID,
		SnoozeDeadline: deadline.UTC(),
		Timestamp:      s.now().UTC(),
	})

	return deadline, nil
}

// Dismiss resolves the current firing, whether ringing or snoozed. Any
// pending snooze trigger is cancelled so it cannot fire spuriously later.
func (s *svc) Dismiss(ctx context.Context, alarmID int64) error {
	unlock := s.locks.Lock(alarmID)
	defer unlock()

	_, ok := s.sessions.Get(alarmID)
	if !ok {
		return ErrNoActiveSession
	}

	s.sessions.Resolve(alarmID)

	err := s.scheduler.Disarm(ctx, triggers.SnoozeKey(alarmID))
	if err != nil {
		logging.GetFromContext(ctx).Error("could not disarm snooze trigger", "alarm_id", alarmID, "err", err.Error())
	}

	err = s.presenter.ClearPresentation(ctx, alarmID)
	if err != nil {
		logging.GetFromContext(ctx).Error("could not clear presentation", "alarm_id", alarmID, "err", err.Error())
	}

	metrics.AlarmsDismissed.Inc()

	s.publish(ctx, &types.AlarmDismissed{
		AlarmID:   alarmID,
		Timestamp: s.now().UTC(),
	})

	return nil
}
