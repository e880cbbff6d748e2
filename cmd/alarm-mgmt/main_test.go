package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/thequyenle/alarm-mgmt/internal/pkg/application/alarms"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/router"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/presentation/api"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

func TestHealthEndpoint(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/health", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestThatGetUnknownAlarmReturns404(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/alarms/99", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestThatGetKnownAlarmReturns200(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, _ := testRequest(is, server, http.MethodGet, "/api/v0/alarms/1", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
}

func setupTest(t *testing.T) (*chi.Mux, *is.I) {
	is := is.New(t)

	svc := &alarms.AlarmServiceMock{
		GetByIDFunc: func(ctx context.Context, alarmID int64) (types.Alarm, error) {
			if alarmID != 1 {
				return types.Alarm{}, alarms.ErrAlarmNotFound
			}
			return types.Alarm{ID: 1, Hour: 7, Minute: 30, Meridiem: types.MeridiemAM}, nil
		},
		DescribeWeekdaysFunc: func(days types.Weekdays) string {
			return "Never"
		},
	}

	r := router.New("testService")
	_, err := api.RegisterHandlers(context.Background(), r, svc)
	is.NoErr(err)

	return r, is
}

func testRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	resp, _ := http.DefaultClient.Do(req)
	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}
