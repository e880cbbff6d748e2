package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrTooManyRows = errors.New("too many rows in result set")
	ErrQueryRow    = errors.New("could not execute query")
	ErrStoreFailed = errors.New("could not store data")
	ErrNoID        = errors.New("data contains no id")
)

//go:generate moq -rm -out storage_mock.go . Store
type Store interface {
	Initialize(ctx context.Context) error
	Close()

	AddAlarm(ctx context.Context, alarm types.Alarm) (types.Alarm, error)
	UpdateAlarm(ctx context.Context, alarm types.Alarm) error
	SetAlarmEnabled(ctx context.Context, alarmID int64, enabled bool) error
	DeleteAlarm(ctx context.Context, alarmID int64) error
	GetAlarm(ctx context.Context, conditions ...ConditionFunc) (types.Alarm, error)
	QueryAlarms(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alarm], error)
}

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.CreateTables(ctx)
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS alarms (
			alarm_id	BIGINT	GENERATED ALWAYS AS IDENTITY,
			hour		INT		NOT NULL,
			minute		INT		NOT NULL,
			meridiem	VARCHAR(2)	NOT NULL,
			weekdays	JSONB	NOT NULL,
			enabled		BOOLEAN	NOT NULL DEFAULT FALSE,
			snooze_minutes	INT	NOT NULL DEFAULT 0,
			data		JSONB	NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_alarms PRIMARY KEY (alarm_id)
		);

		CREATE INDEX IF NOT EXISTS alarms_enabled_idx ON alarms (enabled) WHERE enabled;
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
