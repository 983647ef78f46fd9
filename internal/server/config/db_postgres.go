// Package config содержит инициализацию подключения к базе данных сервера.
//
// Пакет выполняет:
//   - открытие соединения с PostgreSQL (через драйвер pgx);
//   - проверку доступности базы (Ping);
//   - запуск миграций (golang-migrate) при старте сервера.
//
// Глобального состояния нет: OpenDB возвращает готовый *sql.DB,
// который передаётся в репозитории при сборке приложения.
package config

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/acm-uic/acm-catalog/internal/shared/logger"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenDB открывает подключение к базе данных по настройкам из конфига,
// проверяет его доступность и (если включено) применяет миграции.
//
// Если миграции уже применены, ошибка migrate.ErrNoChange не считается ошибкой.
// Вызывающая сторона отвечает за закрытие соединения.
func OpenDB(cfg *Config, log *logger.HTTPLogger) (*sql.DB, error) {
	sugar := log.Logger.Sugar()

	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		sugar.Errorf("error to connect db: %v", err)
		return nil, err
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err = db.Ping(); err != nil {
		sugar.Errorf("error check db connection: %v", err)
		db.Close()
		return nil, err
	}

	if cfg.Migrations.Enabled {
		if err := runMigrations(db, cfg.Migrations.Path, log); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

// runMigrations применяет миграции из каталога cfg.Migrations.Path.
func runMigrations(db *sql.DB, path string, log *logger.HTTPLogger) error {
	sugar := log.Logger.Sugar()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		sugar.Errorf("error creating migration driver: %v", err)
		return err
	}

	// создаём миграции с выбранным драйвером
	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", path),
		"postgres", driver)
	if err != nil {
		sugar.Errorf("error creating migrations: %v", err)
		return err
	}

	// запускаем применение миграций
	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		sugar.Errorf("error applying migrations: %v", err)
		return err
	}

	sugar.Info("migrations applied successfully")
	return nil
}
