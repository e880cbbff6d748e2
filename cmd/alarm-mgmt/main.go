package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/thequyenle/alarm-mgmt/internal/pkg/application/alarms"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/router"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/storage"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/infrastructure/triggers"
	"github.com/thequyenle/alarm-mgmt/internal/pkg/presentation/api"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

const serviceName string = "alarm-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	controlPort
	enableTracing

	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",
		controlPort:   "8000",
		enableTracing: "true",

		configurationFile: "/opt/alarm-mgmt/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "alarms",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	alarmConfig := loadAlarmConfig(ctx, flags[configurationFile], logger)

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	messenger.Start()

	// the hub needs a fire func before the service exists, so the handler
	// is bound after construction
	var fire triggers.FireFunc
	hub := triggers.New(func(ctx context.Context, key string, firedAt time.Time, payload types.TriggerPayload) {
		fire(ctx, key, firedAt, payload)
	})

	presenter := alarms.NewPresenter(messenger)
	svc := alarms.New(alarms.NewStorage(s), hub, presenter, messenger, alarmConfig)
	fire = alarms.NewTriggerHandler(svc)

	// re-arm everything that survived the restart
	err = svc.RescheduleAll(ctx)
	exitIf(err, logger, "failed to reschedule alarms")

	apiRouter := router.New(serviceName, router.WithTracing(flags[enableTracing] == "true"))
	_, err = api.RegisterHandlers(ctx, apiRouter, svc)
	exitIf(err, logger, "failed to register handlers")

	controlMux := http.NewServeMux()
	controlMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	controlMux.Handle("/metrics", promhttp.Handler())

	apiServer := &http.Server{
		Addr:    net.JoinHostPort(flags[listenAddress], flags[servicePort]),
		Handler: apiRouter,
	}
	controlServer := &http.Server{
		Addr:    net.JoinHostPort(flags[listenAddress], flags[controlPort]),
		Handler: controlMux,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting api server", "address", apiServer.Addr)
		err := apiServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("starting control server", "address", controlServer.Addr)
		err := controlServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		apiServer.Shutdown(sctx)
		controlServer.Shutdown(sctx)

		return nil
	})

	err = g.Wait()
	if err != nil {
		logger.Error("server error", "err", err.Error())
	}

	hub.Shutdown()
	messenger.Close()
	s.Close()
}

func loadAlarmConfig(ctx context.Context, path string, logger *slog.Logger) *alarms.Config {
	f, err := os.Open(path)
	if err != nil {
		logger.Info("no configuration file found, using defaults", "path", path)
		return nil
	}

	cfg, err := alarms.NewConfig(f)
	exitIf(err, logger, "could not parse configuration file")

	return cfg
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[controlPort] = envOrDef(ctx, "CONTROL_PORT", flags[controlPort])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])
	flags[enableTracing] = envOrDef(ctx, "ENABLE_TRACING", flags[enableTracing])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "alarm service configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
