package api

import (
	"encoding/json"
	"time"

	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

type meta struct {
	TotalRecords uint64  `json:"totalRecords"`
	Offset       *uint64 `json:"offset,omitempty"`
	Limit        *uint64 `json:"limit,omitempty"`
	Count        uint64  `json:"count"`
}

type ApiResponse struct {
	Meta *meta `json:"meta,omitempty"`
	Data any   `json:"data"`
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

// alarmResponse is the outward representation of an alarm, the stored
// record plus the human readable repeat description.
type alarmResponse struct {
	types.Alarm
	WeekdaysText string `json:"weekdaysText"`
}

type snoozeResponse struct {
	AlarmID        int64     `json:"alarmID"`
	SnoozeDeadline time.Time `json:"snoozeDeadline"`
}
