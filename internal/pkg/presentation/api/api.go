package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/thequyenle/alarm-mgmt/internal/pkg/application/alarms"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/application/schedule"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

var tracer = otel.Tracer("alarm-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc alarms.AlarmService) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/alarms", func(r chi.Router) {
			r.Get("/", queryAlarmsHandler(log, svc))
			r.Post("/", createAlarmHandler(log, svc))
			r.Get("/{alarmID}", getAlarmDetails(log, svc))
			r.Put("/{alarmID}", updateAlarmHandler(log, svc))
			r.Patch("/{alarmID}", patchAlarmHandler(log, svc))
			r.Delete("/{alarmID}", deleteAlarmHandler(log, svc))

			r.Get("/{alarmID}/session", getSessionHandler(log, svc))
			r.Post("/{alarmID}/snooze", snoozeAlarmHandler(log, svc))
			r.Post("/{alarmID}/dismiss", dismissAlarmHandler(log, svc))
		})
	})

	return router, nil
}

func toResponse(svc alarms.AlarmService, alarm types.Alarm) alarmResponse {
	return alarmResponse{
		Alarm:        alarm,
		WeekdaysText: svc.DescribeWeekdays(alarm.Weekdays),
	}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, alarms.ErrAlarmNotFound):
		return http.StatusNotFound
	case errors.Is(err, alarms.ErrNoActiveSession):
		return http.StatusNotFound
	case errors.Is(err, schedule.ErrInvalidTime):
		return http.StatusBadRequest
	case errors.Is(err, alarms.ErrNotRinging):
		return http.StatusBadRequest
	case errors.Is(err, alarms.ErrSnoozeNotEnabled):
		return http.StatusBadRequest
	case errors.Is(err, alarms.ErrTooManyAlarms):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func alarmIDFromRequest(r *http.Request, log *slog.Logger) (int64, *slog.Logger, error) {
	id := chi.URLParam(r, "alarmID")
	if id != "" {
		log = log.With(slog.String("alarm_id", id))
	}

	alarmID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, log, err
	}

	return alarmID, log, nil
}

func queryAlarmsHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alarms")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset := 0
		limit := 100

		if v := r.URL.Query().Get("offset"); v != "" {
			offset, err = strconv.Atoi(v)
			if err != nil || offset < 0 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			limit, err = strconv.Atoi(v)
			if err != nil || limit <= 0 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		collection, err := svc.Get(ctx, offset, limit)
		if err != nil {
			requestLogger.Error("unable to fetch alarms", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		data := make([]alarmResponse, 0, len(collection.Data))
		for _, alarm := range collection.Data {
			data = append(data, toResponse(svc, alarm))
		}

		response := ApiResponse{
			Meta: &meta{
				TotalRecords: collection.TotalCount,
				Offset:       &collection.Offset,
				Limit:        &collection.Limit,
				Count:        collection.Count,
			},
			Data: data,
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response.Byte())
	}
}

func createAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var alarm types.Alarm
		err = json.Unmarshal(body, &alarm)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		added, err := svc.Add(ctx, alarm)
		if err != nil {
			requestLogger.Error("unable to create alarm", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		b, _ := json.Marshal(toResponse(svc, added))

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func getAlarmDetails(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID, requestLogger, err := alarmIDFromRequest(r, requestLogger)
		if err != nil {
			requestLogger.Error("id is invalid", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		alarm, err := svc.GetByID(ctx, alarmID)
		if errors.Is(err, alarms.ErrAlarmNotFound) {
			requestLogger.Debug("alarm not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alarm", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(toResponse(svc, alarm))

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func updateAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID, requestLogger, err := alarmIDFromRequest(r, requestLogger)
		if err != nil {
			requestLogger.Error("id is invalid", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var alarm types.Alarm
		err = json.Unmarshal(body, &alarm)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		alarm.ID = alarmID

		updated, err := svc.Update(ctx, alarm)
		if err != nil {
			requestLogger.Error("unable to update alarm", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		b, _ := json.Marshal(toResponse(svc, updated))

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func patchAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID, requestLogger, err := alarmIDFromRequest(r, requestLogger)
		if err != nil {
			requestLogger.Error("id is invalid", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var fields struct {
			Enabled *bool `json:"enabled"`
		}
		err = json.Unmarshal(b, &fields)
		if err != nil || fields.Enabled == nil {
			requestLogger.Error("body does not contain an enabled flag")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.SetEnabled(ctx, alarmID, *fields.Enabled)
		if err != nil {
			requestLogger.Error("unable to update alarm", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func deleteAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID, requestLogger, err := alarmIDFromRequest(r, requestLogger)
		if err != nil {
			requestLogger.Error("id is invalid", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.Delete(ctx, alarmID)
		if err != nil {
			requestLogger.Error("unable to delete alarm", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getSessionHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		_, span := tracer.Start(r.Context(), "get-session")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, _, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, r.Context())

		alarmID, requestLogger, err := alarmIDFromRequest(r, requestLogger)
		if err != nil {
			requestLogger.Error("id is invalid", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		session, ok := svc.ActiveSession(alarmID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		b, _ := json.Marshal(session)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func snoozeAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "snooze-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID, requestLogger, err := alarmIDFromRequest(r, requestLogger)
		if err != nil {
			requestLogger.Error("id is invalid", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		deadline, err := svc.Snooze(ctx, alarmID)
		if err != nil {
			requestLogger.Error("unable to snooze alarm", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		b, _ := json.Marshal(snoozeResponse{
			AlarmID:        alarmID,
			SnoozeDeadline: deadline,
		})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func dismissAlarmHandler(log *slog.Logger, svc alarms.AlarmService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "dismiss-alarm")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alarmID, requestLogger, err := alarmIDFromRequest(r, requestLogger)
		if err != nil {
			requestLogger.Error("id is invalid", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.Dismiss(ctx, alarmID)
		if err != nil {
			requestLogger.Error("unable to dismiss alarm", "err", err.Error())
			w.WriteHeader(statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
