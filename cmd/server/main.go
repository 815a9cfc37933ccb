package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
	"volley-training/internal/bootstrap"
	"volley-training/internal/models/config"
	attendance_repo "volley-training/internal/repository/attendance"
	"volley-training/internal/repository/columns"
	drill_repo "volley-training/internal/repository/drill"
	player_repo "volley-training/internal/repository/player"
	result_repo "volley-training/internal/repository/result"
	schedule_repo "volley-training/internal/repository/schedule"
	session_repo "volley-training/internal/repository/session"
	"volley-training/internal/schema"
	analytics_service "volley-training/internal/service/analytics"
	drill_service "volley-training/internal/service/drill"
	player_service "volley-training/internal/service/player"
	recording_service "volley-training/internal/service/recording"
	session_service "volley-training/internal/service/session"
	"volley-training/internal/web"
	database "volley-training/pkg"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(
			loadConfig,
			database.NewLogger,
			openDatabase,

			columns.NewColumnInspector,
			schema.NewResolver,
			bootstrap.NewInitializer,

			player_repo.NewPlayerRepository,
			drill_repo.NewDrillRepository,
			session_repo.NewSessionRepository,
			schedule_repo.NewScheduleRepository,
			attendance_repo.NewAttendanceRepository,
			result_repo.NewResultRepository,

			player_service.NewPlayerService,
			drill_service.NewDrillService,
			session_service.NewSessionService,
			recording_service.NewRecordingService,
			analytics_service.NewAnalyticsService,

			func(i *bootstrap.Initializer) web.Resetter { return i },
			web.NewHandler,
		),
		fx.Invoke(initDatabase, runServer),
	).Run()
}

func loadConfig() (*config.Config, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return config.AppConfig, nil
}

func openDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

func initDatabase(initializer *bootstrap.Initializer, cfg *config.Config) error {
	return initializer.Init(cfg.Database.Seed)
}

func runServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, h *web.Handler, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			log.Info("http server started", zap.String("addr", srv.Addr), zap.String("env", cfg.Environment))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}
