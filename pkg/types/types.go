package types

import (
	"time"
)

type Meridiem string

const (
	MeridiemAM Meridiem = "AM"
	MeridiemPM Meridiem = "PM"
)

func (m Meridiem) Valid() bool {
	return m == MeridiemAM || m == MeridiemPM
}

// Weekdays is the weekly repeat mask, indexed Sunday=0..Saturday=6.
// The zero value (no day set) marks a one shot alarm.
type Weekdays [7]bool

func (w Weekdays) Any() bool {
	for _, b := range w {
		if b {
			return true
		}
	}
	return false
}

func (w Weekdays) Active(d time.Weekday) bool {
	return w[int(d)]
}

type Alarm struct {
	ID       int64    `json:"id"`
	Hour     int      `json:"hour"`
	Minute   int      `json:"minute"`
	Meridiem Meridiem `json:"meridiem"`

	Weekdays Weekdays `json:"weekdays"`
	Enabled  bool     `json:"enabled"`

	SnoozeMinutes int `json:"snoozeMinutes"`

	Label            string `json:"label,omitempty"`
	Note             string `json:"note,omitempty"`
	SoundType        string `json:"soundType,omitempty"`
	SoundURI         string `json:"soundURI,omitempty"`
	VibrationPattern string `json:"vibrationPattern,omitempty"`
	SilentMode       bool   `json:"silentMode"`

	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// TriggerPayload is the snapshot of an alarm that travels with an armed
// trigger. The dispatcher presents the snapshot, not a live record, so a
// firing behaves the same even if the alarm was edited after arming.
type TriggerPayload struct {
	AlarmID          int64    `json:"alarmID"`
	Label            string   `json:"label,omitempty"`
	Note             string   `json:"note,omitempty"`
	SoundType        string   `json:"soundType,omitempty"`
	SoundURI         string   `json:"soundURI,omitempty"`
	VibrationPattern string   `json:"vibrationPattern,omitempty"`
	SilentMode       bool     `json:"silentMode"`
	SnoozeMinutes    int      `json:"snoozeMinutes"`
	Meridiem         Meridiem `json:"meridiem"`
	Hour             int      `json:"hour"`
	Minute           int      `json:"minute"`
}

func (a Alarm) Payload() TriggerPayload {
	return TriggerPayload{
		AlarmID:          a.ID,
		Label:            a.Label,
		Note:             a.Note,
		SoundType:        a.SoundType,
		SoundURI:         a.SoundURI,
		VibrationPattern: a.VibrationPattern,
		SilentMode:       a.SilentMode,
		SnoozeMinutes:    a.SnoozeMinutes,
		Meridiem:         a.Meridiem,
		Hour:             a.Hour,
		Minute:           a.Minute,
	}
}

const (
	SessionRinging  = "ringing"
	SessionSnoozed  = "snoozed"
	SessionResolved = "resolved"
)

// RingingSession tracks the life of a single firing. It is transient and
// never persisted; a new fire event always opens a fresh session.
type RingingSession struct {
	AlarmID        int64          `json:"alarmID"`
	FiredAt        time.Time      `json:"firedAt"`
	State          string         `json:"state"`
	SnoozeDeadline time.Time      `json:"snoozeDeadline,omitempty"`
	Payload        TriggerPayload `json:"payload"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
