// @title           acm-catalog API
// @version         1.0
// @description     Catalog/rental web application backend.
// @description     Provides JWT-cookie authentication and the hardware rental catalog.

// @host      localhost:3000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа серверного приложения acm-catalog.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - инициализацию подключения к базе данных и управление его жизненным циклом;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - настройку и запуск сервера с заданными таймаутами;
//   - обработку системных сигналов завершения (SIGINT, SIGTERM, SIGQUIT);
//   - корректное (graceful) завершение работы сервера с таймаутом.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
// HTTP API сервера реализовано в пакете internal/server/api и документируется с помощью OpenAPI (Swagger).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/acm-uic/acm-catalog/internal/server/api"
	"github.com/acm-uic/acm-catalog/internal/server/config"
	"github.com/acm-uic/acm-catalog/internal/server/middleware"
	h "github.com/acm-uic/acm-catalog/internal/server/net/http"
	"github.com/acm-uic/acm-catalog/internal/server/repository"
	"github.com/acm-uic/acm-catalog/internal/server/service"
	"github.com/acm-uic/acm-catalog/internal/shared/logger"

	_ "github.com/acm-uic/acm-catalog/swagger/docs"
)

func main() {
	httpLogger := logger.NewHTTPLogger()
	sugar := httpLogger.Logger.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		sugar.Fatal(err)
	}
	cfg.ApplyEnvOverrides()

	// подключаем базу данных (store недоступен на старте — это fatal)
	db, err := config.OpenDB(cfg, httpLogger)
	if err != nil {
		sugar.Fatal(err)
	}
	// делаем отложенное закрытие бд
	defer db.Close()

	// создаём репы
	usersRepo := repository.NewUsersRepository(db)
	itemsRepo := repository.NewItemsRepository(db)
	// складываем в репозиторий
	repos := service.Repositories{
		Users: usersRepo,
		Items: itemsRepo,
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём гейт: проверка токена + резолв пользователя
	verifier := middleware.NewTokenVerifier(
		cfg.Auth.JWT.SigningKey,
		cfg.Auth.Cookie.Name,
		usersRepo,
	)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, verifier, cfg)
	// создаём роутер
	router := h.NewRouter(handler, httpLogger, cfg.CORS.AllowedOrigins)
	// создаём сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s", addr)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			ctx,
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}
