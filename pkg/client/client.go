package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

var tracer = otel.Tracer("alarm-mgmt-client")

var ErrAlarmNotFound = fmt.Errorf("alarm not found")

// AlarmManagementClient is a thin typed wrapper around the alarm service
// http api, for other services that manage or trigger alarms remotely.
type AlarmManagementClient interface {
	Alarm(ctx context.Context, alarmID int64) (types.Alarm, error)
	Alarms(ctx context.Context, offset, limit int) ([]types.Alarm, error)
	CreateAlarm(ctx context.Context, alarm types.Alarm) (types.Alarm, error)
	DeleteAlarm(ctx context.Context, alarmID int64) error
	SnoozeAlarm(ctx context.Context, alarmID int64) (time.Time, error)
	DismissAlarm(ctx context.Context, alarmID int64) error
}

type almClient struct {
	url        string
	httpClient http.Client
}

func New(alarmMgmtUrl string) AlarmManagementClient {
	return &almClient{
		url: alarmMgmtUrl,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *almClient) Alarm(ctx context.Context, alarmID int64) (types.Alarm, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alarm")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var alarm types.Alarm

	url := fmt.Sprintf("%s/api/v0/alarms/%d", c.url, alarmID)
	err = c.get(ctx, url, &alarm)

	return alarm, err
}

func (c *almClient) Alarms(ctx context.Context, offset, limit int) ([]types.Alarm, error) {
	var err error
	ctx, span := tracer.Start(ctx, "query-alarms")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var envelope struct {
		Data []types.Alarm `json:"data"`
	}

	url := fmt.Sprintf("%s/api/v0/alarms?offset=%d&limit=%d", c.url, offset, limit)
	err = c.get(ctx, url, &envelope)

	return envelope.Data, err
}

func (c *almClient) CreateAlarm(ctx context.Context, alarm types.Alarm) (types.Alarm, error) {
	var err error
	ctx, span := tracer.Start(ctx, "create-alarm")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(alarm)
	if err != nil {
		return types.Alarm{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/v0/alarms", bytes.NewReader(body))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return types.Alarm{}, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to create alarm: %w", err)
		return types.Alarm{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("request failed with status code %d", resp.StatusCode)
		return types.Alarm{}, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return types.Alarm{}, err
	}

	var created types.Alarm
	err = json.Unmarshal(respBody, &created)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.Alarm{}, err
	}

	return created, nil
}

func (c *almClient) DeleteAlarm(ctx context.Context, alarmID int64) error {
	var err error
	ctx, span := tracer.Start(ctx, "delete-alarm")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	url := fmt.Sprintf("%s/api/v0/alarms/%d", c.url, alarmID)
	err = c.do(ctx, http.MethodDelete, url, http.StatusNoContent, nil)

	return err
}

func (c *almClient) SnoozeAlarm(ctx context.Context, alarmID int64) (time.Time, error) {
	var err error
	ctx, span := tracer.Start(ctx, "snooze-alarm")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var result struct {
		SnoozeDeadline time.Time `json:"snoozeDeadline"`
	}

	url := fmt.Sprintf("%s/api/v0/alarms/%d/snooze", c.url, alarmID)
	err = c.do(ctx, http.MethodPost, url, http.StatusOK, &result)

	return result.SnoozeDeadline, err
}

func (c *almClient) DismissAlarm(ctx context.Context, alarmID int64) error {
	var err error
	ctx, span := tracer.Start(ctx, "dismiss-alarm")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	url := fmt.Sprintf("%s/api/v0/alarms/%d/dismiss", c.url, alarmID)
	err = c.do(ctx, http.MethodPost, url, http.StatusNoContent, nil)

	return err
}

func (c *almClient) get(ctx context.Context, url string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to retrieve alarm information: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrAlarmNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(respBody, into)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}

func (c *almClient) do(ctx context.Context, method, url string, expected int, into any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrAlarmNotFound
	}
	if resp.StatusCode != expected {
		return fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	if into == nil {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	err = json.Unmarshal(respBody, into)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
