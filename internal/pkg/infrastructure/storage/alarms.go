package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

// presentationData is the payload kept opaque to the scheduling math. The
// columns hold what scheduling needs; everything else lives in the data blob.
func presentationData(alarm types.Alarm) string {
	b, _ := json.Marshal(alarm)

	var m map[string]any
	json.Unmarshal(b, &m)

	delete(m, "id")
	delete(m, "hour")
	delete(m, "minute")
	delete(m, "meridiem")
	delete(m, "weekdays")
	delete(m, "enabled")
	delete(m, "snoozeMinutes")
	delete(m, "createdAt")
	delete(m, "modifiedAt")

	b, _ = json.Marshal(m)

	return string(b)
}

func (s *Storage) AddAlarm(ctx context.Context, alarm types.Alarm) (types.Alarm, error) {
	weekdays, _ := json.Marshal(alarm.Weekdays)

	args := pgx.NamedArgs{
		"hour":           alarm.Hour,
		"minute":         alarm.Minute,
		"meridiem":       string(alarm.Meridiem),
		"weekdays":       string(weekdays),
		"enabled":        alarm.Enabled,
		"snooze_minutes": alarm.SnoozeMinutes,
		"data":           presentationData(alarm),
	}

	err := s.pool.QueryRow(ctx, `
		INSERT INTO alarms (hour, minute, meridiem, weekdays, enabled, snooze_minutes, data)
		VALUES (@hour, @minute, @meridiem, @weekdays, @enabled, @snooze_minutes, @data)
		RETURNING alarm_id, created_on, modified_on
	`, args).Scan(&alarm.ID, &alarm.CreatedAt, &alarm.ModifiedAt)
	if err != nil {
		return types.Alarm{}, fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	return alarm, nil
}

func (s *Storage) UpdateAlarm(ctx context.Context, alarm types.Alarm) error {
	if alarm.ID == 0 {
		return ErrNoID
	}

	weekdays, _ := json.Marshal(alarm.Weekdays)

	args := pgx.NamedArgs{
		"alarm_id":       alarm.ID,
		"hour":           alarm.Hour,
		"minute":         alarm.Minute,
		"meridiem":       string(alarm.Meridiem),
		"weekdays":       string(weekdays),
		"enabled":        alarm.Enabled,
		"snooze_minutes": alarm.SnoozeMinutes,
		"data":           presentationData(alarm),
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE alarms
		SET hour = @hour, minute = @minute, meridiem = @meridiem, weekdays = @weekdays,
		    enabled = @enabled, snooze_minutes = @snooze_minutes, data = @data,
		    modified_on = CURRENT_TIMESTAMP
		WHERE alarm_id = @alarm_id
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) SetAlarmEnabled(ctx context.Context, alarmID int64, enabled bool) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE alarms SET enabled = @enabled, modified_on = CURRENT_TIMESTAMP
		WHERE alarm_id = @alarm_id
	`, pgx.NamedArgs{"alarm_id": alarmID, "enabled": enabled})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) DeleteAlarm(ctx context.Context, alarmID int64) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM alarms WHERE alarm_id = @alarm_id
	`, pgx.NamedArgs{"alarm_id": alarmID})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetAlarm(ctx context.Context, conditions ...ConditionFunc) (types.Alarm, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var alarmID int64
	var hour, minute, snoozeMinutes int
	var meridiem string
	var enabled bool
	var weekdays, data json.RawMessage
	var createdOn, modifiedOn time.Time

	query := fmt.Sprintf(`
		SELECT alarm_id, hour, minute, meridiem, weekdays, enabled, snooze_minutes, data, created_on, modified_on
		FROM alarms
		WHERE %s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).
		Scan(&alarmID, &hour, &minute, &meridiem, &weekdays, &enabled, &snoozeMinutes, &data, &createdOn, &modifiedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alarm{}, ErrNoRows
		}
		return types.Alarm{}, err
	}

	var errs []error

	var alarm types.Alarm
	errs = append(errs, json.Unmarshal(data, &alarm))
	errs = append(errs, json.Unmarshal(weekdays, &alarm.Weekdays))

	alarm.ID = alarmID
	alarm.Hour = hour
	alarm.Minute = minute
	alarm.Meridiem = types.Meridiem(meridiem)
	alarm.Enabled = enabled
	alarm.SnoozeMinutes = snoozeMinutes
	alarm.CreatedAt = createdOn
	alarm.ModifiedAt = modifiedOn

	return alarm, errors.Join(errs...)
}

func (s *Storage) QueryAlarms(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alarm], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT alarm_id, hour, minute, meridiem, weekdays, enabled, snooze_minutes, data, created_on, modified_on, count(*) OVER () AS total
		FROM alarms
		WHERE %s
		ORDER BY %s %s
		%s;
	`, where, condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alarm]{}, err
	}

	var alarmID, total int64
	var hour, minute, snoozeMinutes int
	var meridiem string
	var enabled bool
	var weekdays, data json.RawMessage
	var createdOn, modifiedOn time.Time

	alarms := make([]types.Alarm, 0)

	_, err = pgx.ForEachRow(rows, []any{&alarmID, &hour, &minute, &meridiem, &weekdays, &enabled, &snoozeMinutes, &data, &createdOn, &modifiedOn, &total}, func() error {
		var alarm types.Alarm

		err := json.Unmarshal(data, &alarm)
		if err != nil {
			return err
		}
		err = json.Unmarshal(weekdays, &alarm.Weekdays)
		if err != nil {
			return err
		}

		alarm.ID = alarmID
		alarm.Hour = hour
		alarm.Minute = minute
		alarm.Meridiem = types.Meridiem(meridiem)
		alarm.Enabled = enabled
		alarm.SnoozeMinutes = snoozeMinutes
		alarm.CreatedAt = createdOn
		alarm.ModifiedAt = modifiedOn

		alarms = append(alarms, alarm)

		return nil
	})
	if err != nil {
		return types.Collection[types.Alarm]{}, err
	}

	return types.Collection[types.Alarm]{
		Data:       alarms,
		Count:      uint64(len(alarms)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}
