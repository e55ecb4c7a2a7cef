// Command server runs the room booking HTTP API with graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roomly/booking-system/internal/api"
	"github.com/roomly/booking-system/internal/api/handler"
	"github.com/roomly/booking-system/internal/core/lock"
	"github.com/roomly/booking-system/internal/core/ports"
	"github.com/roomly/booking-system/internal/core/service"
	"github.com/roomly/booking-system/internal/infrastructure/config"
	"github.com/roomly/booking-system/internal/infrastructure/db/jsonfile"
	mongodb "github.com/roomly/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/roomly/booking-system/internal/infrastructure/db/redis"
	"github.com/roomly/booking-system/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Service: "booking-api",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		userRepo    ports.UserRepository
		roomRepo    ports.RoomRepository
		bookingRepo ports.BookingRepository
		readiness   = map[string]handler.Pinger{}
	)

	switch cfg.Storage {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connect failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		users := mongodb.NewUserRepository(db)
		rooms := mongodb.NewRoomRepository(db)
		bookings := mongodb.NewBookingRepository(db)
		for name, ensure := range map[string]func(context.Context) error{
			"users":    users.EnsureIndexes,
			"rooms":    rooms.EnsureIndexes,
			"bookings": bookings.EnsureIndexes,
		} {
			if err := ensure(ctx); err != nil {
				log.Warn().Err(err).Str("collection", name).Msg("failed to ensure indexes")
			}
		}
		userRepo, roomRepo, bookingRepo = users, rooms, bookings
		readiness["mongodb"] = handler.PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		})

	case config.DriverJSONFile:
		userRepo = jsonfile.NewUserRepository(cfg.DataDir)
		roomRepo = jsonfile.NewRoomRepository(cfg.DataDir)
		bookingRepo = jsonfile.NewBookingRepository(cfg.DataDir)
		readiness["datadir"] = handler.PingerFunc(func(context.Context) error {
			return os.MkdirAll(cfg.DataDir, 0o755)
		})
	}

	// Booking writes are serialized per roomId. The keyed mutex covers a
	// single process; the Redis lock extends that to multiple instances
	// sharing one MongoDB.
	var locker ports.Locker = lock.NewKeyedMutex()
	if cfg.Redis.LockEnabled {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer rdb.Close()
		locker = redisdb.NewRoomLock(rdb)
		readiness["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	e := api.NewRouter(api.Dependencies{
		Users:     service.NewUserService(userRepo, log),
		Rooms:     service.NewRoomService(roomRepo, log),
		Bookings:  service.NewBookingService(bookingRepo, roomRepo, userRepo, locker, log),
		Readiness: readiness,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("storage", cfg.Storage).
		Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
