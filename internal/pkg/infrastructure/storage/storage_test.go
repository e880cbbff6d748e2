package storage

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

func testSetup(t *testing.T) (context.Context, Store) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func testAlarm() types.Alarm {
	return types.Alarm{
		Hour:          7,
		Minute:        30,
		Meridiem:      types.MeridiemAM,
		Weekdays:      types.Weekdays{false, true, true, true, true, true, false},
		Enabled:       true,
		SnoozeMinutes: 10,
		Label:         "work",
		Note:          "standup at eight",
		SoundType:     "default",
	}
}

func TestAddAlarmAssignsID(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	alarm, err := s.AddAlarm(ctx, testAlarm())
	is.NoErr(err)
	is.True(alarm.ID != 0)
	is.True(!alarm.CreatedAt.IsZero())
}

func TestGetAlarmRoundTrip(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	added, err := s.AddAlarm(ctx, testAlarm())
	is.NoErr(err)

	alarm, err := s.GetAlarm(ctx, WithAlarmID(added.ID))
	is.NoErr(err)
	is.Equal(alarm.Hour, 7)
	is.Equal(alarm.Meridiem, types.MeridiemAM)
	is.Equal(alarm.Weekdays, types.Weekdays{false, true, true, true, true, true, false})
	is.Equal(alarm.Label, "work")
	is.Equal(alarm.SnoozeMinutes, 10)
}

func TestQueryAlarmsWithEnabled(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	_, err := s.AddAlarm(ctx, testAlarm())
	is.NoErr(err)

	c, err := s.QueryAlarms(ctx, WithEnabled(true))
	is.NoErr(err)
	is.True(len(c.Data) > 0)

	for _, a := range c.Data {
		is.True(a.Enabled)
	}
}

func TestSetAlarmEnabled(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	added, err := s.AddAlarm(ctx, testAlarm())
	is.NoErr(err)

	err = s.SetAlarmEnabled(ctx, added.ID, false)
	is.NoErr(err)

	alarm, err := s.GetAlarm(ctx, WithAlarmID(added.ID))
	is.NoErr(err)
	is.True(!alarm.Enabled)
}

func TestDeleteAlarm(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)

	added, err := s.AddAlarm(ctx, testAlarm())
	is.NoErr(err)

	err = s.DeleteAlarm(ctx, added.ID)
	is.NoErr(err)

	_, err = s.GetAlarm(ctx, WithAlarmID(added.ID))
	is.Equal(err, ErrNoRows)

	err = s.DeleteAlarm(ctx, added.ID)
	is.Equal(err, ErrNoRows)
}

func TestConditionWhere(t *testing.T) {
	is := is.New(t)

	c := &Condition{}
	is.Equal(c.Where(), "TRUE")

	for _, f := range []ConditionFunc{WithAlarmID(3), WithEnabled(true)} {
		f(c)
	}

	is.Equal(c.Where(), "alarm_id = @alarm_id AND enabled = @enabled")

	args := c.NamedArgs()
	is.Equal(args["alarm_id"], int64(3))
	is.Equal(args["enabled"], true)
}
