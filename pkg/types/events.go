package types

import (
	"encoding/json"
	"time"
)

type AlarmFired struct {
	EventID   string         `json:"eventID"`
	AlarmID   int64          `json:"alarmID"`
	Payload   TriggerPayload `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

func (a *AlarmFired) ContentType() string {
	return "application/json"
}
func (a *AlarmFired) TopicName() string {
	return "alarms.alarmFired"
}
func (a *AlarmFired) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmSnoozed struct {
	AlarmID        int64     `json:"alarmID"`
	SnoozeDeadline time.Time `json:"snoozeDeadline"`
	Timestamp      time.Time `json:"timestamp"`
}

func (a *AlarmSnoozed) ContentType() string {
	return "application/json"
}
func (a *AlarmSnoozed) TopicName() string {
	return "alarms.alarmSnoozed"
}
func (a *AlarmSnoozed) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlarmDismissed struct {
	AlarmID   int64     `json:"alarmID"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlarmDismissed) ContentType() string {
	return "application/json"
}
func (a *AlarmDismissed) TopicName() string {
	return "alarms.alarmDismissed"
}
func (a *AlarmDismissed) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

// AlarmDisabled is published when a one shot alarm has fired and turned
// itself off.
type AlarmDisabled struct {
	AlarmID   int64     `json:"alarmID"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *AlarmDisabled) ContentType() string {
	return "application/json"
}
func (a *AlarmDisabled) TopicName() string {
	return "alarms.alarmDisabled"
}
func (a *AlarmDisabled) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type PresentationCleared struct {
	AlarmID   int64     `json:"alarmID"`
	Timestamp time.Time `json:"timestamp"`
}

func (p *PresentationCleared) ContentType() string {
	return "application/json"
}
func (p *PresentationCleared) TopicName() string {
	return "alarms.presentationCleared"
}
func (p *PresentationCleared) Body() []byte {
	b, _ := json.Marshal(p)
	return b
}

type SchedulingDenied struct {
	AlarmID   int64     `json:"alarmID"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SchedulingDenied) ContentType() string {
	return "application/json"
}
func (s *SchedulingDenied) TopicName() string {
	return "alarms.schedulingDenied"
}
func (s *SchedulingDenied) Body() []byte {
	b, _ := json.Marshal(s)
	return b
}
