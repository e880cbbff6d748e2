package alarms

import (
	"context"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"

	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

// Presenter is the outbound surface towards whatever renders a ringing
// alarm to the user. The default implementation publishes events on the
// message bus and lets the presentation layer subscribe to them.
//
//go:generate moq -rm -out presenter_mock.go . Presenter
type Presenter interface {
	PresentRinging(ctx context.Context, alarmID int64, payload types.TriggerPayload) error
	ClearPresentation(ctx context.Context, alarmID int64) error
	ReportSchedulingDenied(ctx context.Context, alarmID int64) error
}

type messagingPresenter struct {
	messenger messaging.MsgContext
}

func NewPresenter(messenger messaging.MsgContext) Presenter {
	return &messagingPresenter{messenger: messenger}
}

func (p *messagingPresenter) PresentRinging(ctx context.Context, alarmID int64, payload types.TriggerPayload) error {
	return p.messenger.PublishOnTopic(ctx, &types.AlarmFired{
		EventID:   uuid.NewString(),
		AlarmID:   alarmID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
}

func (p *messagingPresenter) ClearPresentation(ctx context.Context, alarmID int64) error {
	return p.messenger.PublishOnTopic(ctx, &types.PresentationCleared{
		AlarmID:   alarmID,
		Timestamp: time.Now().UTC(),
	})
}

func (p *messagingPresenter) ReportSchedulingDenied(ctx context.Context, alarmID int64) error {
	return p.messenger.PublishOnTopic(ctx, &types.SchedulingDenied{
		AlarmID:   alarmID,
		Timestamp: time.Now().UTC(),
	})
}
