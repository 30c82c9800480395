// Файл: internal/db/db.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver (локальный файл базы)

	"marketing/internal/constants"
)

// Поддерживаемые драйверы базы данных.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	// ErrNotFound возвращается, когда запрошенная запись отсутствует.
	ErrNotFound = errors.New("запись не найдена")
	// ErrTableNotAllowed возвращается при попытке удалить запись из таблицы вне белого списка.
	ErrTableNotAllowed = errors.New("удаление из этой таблицы запрещено")
)

// Store - хранилище данных дашборда поверх одного подключения database/sql.
// Каждая операция берет соединение из пула на время вызова и возвращает его на любом пути выхода.
type Store struct {
	sqlDB  *sql.DB
	driver string
	now    func() time.Time
}

// Option настраивает Store при открытии.
type Option func(*Store)

// WithClock подменяет источник текущего времени (дата заявок и новых записей рекламы).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open открывает базу данных и создает схему, если ее еще нет.
func Open(ctx context.Context, driver, dsn string, opts ...Option) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("неподдерживаемый драйвер базы данных: %q", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("строка подключения к базе данных не задана")
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	if driver == DriverSQLite {
		// Один писатель на файл базы.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ошибка проверки соединения с базой данных: %w", err)
	}

	s := &Store{sqlDB: sqlDB, driver: driver, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.EnsureSchema(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Printf("Успешное подключение к базе данных (%s).", driver)
	return s, nil
}

// Close закрывает соединение с базой данных. Безопасно вызывать на nil.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	if err := s.sqlDB.Close(); err != nil {
		return err
	}
	log.Println("Соединение с базой данных закрыто.")
	return nil
}

// Ping проверяет доступность базы данных.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		email TEXT,
		category TEXT,
		region TEXT,
		is_repeat_client INTEGER DEFAULT 0,
		source TEXT DEFAULT 'не указано',
		is_referral INTEGER DEFAULT 0,
		ad_channel TEXT DEFAULT 'не указано'
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		price TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER,
		service_id INTEGER,
		date TEXT,
		discount_applied REAL DEFAULT 0.0,
		final_price REAL DEFAULT 0.0,
		is_completed INTEGER DEFAULT 0,
		FOREIGN KEY(client_id) REFERENCES clients(id),
		FOREIGN KEY(service_id) REFERENCES services(id)
	)`,
	`CREATE TABLE IF NOT EXISTS ad_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		channel TEXT,
		spend REAL,
		revenue REAL,
		date TEXT
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		name TEXT,
		email TEXT,
		category TEXT,
		region TEXT,
		is_repeat_client BOOLEAN DEFAULT FALSE,
		source TEXT DEFAULT 'не указано',
		is_referral BOOLEAN DEFAULT FALSE,
		ad_channel TEXT DEFAULT 'не указано'
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id SERIAL PRIMARY KEY,
		title TEXT,
		price TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		client_id INTEGER REFERENCES clients(id),
		service_id INTEGER REFERENCES services(id),
		date TEXT,
		discount_applied DOUBLE PRECISION DEFAULT 0.0,
		final_price DOUBLE PRECISION DEFAULT 0.0,
		is_completed BOOLEAN DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS ad_stats (
		id SERIAL PRIMARY KEY,
		channel TEXT,
		spend DOUBLE PRECISION,
		revenue DOUBLE PRECISION,
		date TEXT
	)`,
}

// EnsureSchema создает таблицы clients, services, orders и ad_stats, если их нет.
// Идемпотентна: существующие таблицы и столбцы не изменяются.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := sqliteSchema
	if s.driver == DriverPostgres {
		statements = postgresSchema
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("EnsureSchema: ошибка создания таблиц: %v", err)
		return fmt.Errorf("ошибка создания таблиц: %w", err)
	}
	log.Println("Создание таблиц (если не существуют) завершено.")
	return nil
}

// withTx выполняет fn в транзакции. Откат выполняется при ошибке и при панике.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return nil
}

// today возвращает текущую дату в формате хранения.
func (s *Store) today() string {
	return s.now().Format(constants.DateLayout)
}
