// Command seed loads a small starter data set (two users, two rooms) into
// the configured storage backend. Running it twice is safe: records whose
// unique fields already exist are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/roomly/booking-system/internal/core/domain"
	"github.com/roomly/booking-system/internal/core/ports"
	"github.com/roomly/booking-system/internal/core/service"
	"github.com/roomly/booking-system/internal/infrastructure/config"
	"github.com/roomly/booking-system/internal/infrastructure/db/jsonfile"
	mongodb "github.com/roomly/booking-system/internal/infrastructure/db/mongo"
	"github.com/roomly/booking-system/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Service: "booking-seed", Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		userRepo ports.UserRepository
		roomRepo ports.RoomRepository
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
		defer func() { _ = client.Disconnect(context.Background()) }()
		userRepo = mongodb.NewUserRepository(db)
		roomRepo = mongodb.NewRoomRepository(db)
	case config.DriverJSONFile:
		userRepo = jsonfile.NewUserRepository(cfg.DataDir)
		roomRepo = jsonfile.NewRoomRepository(cfg.DataDir)
	}

	users := service.NewUserService(userRepo, log)
	rooms := service.NewRoomService(roomRepo, log)

	seedUsers := []ports.CreateUserInput{
		{Name: "Maria Santos", Email: "maria@email.com", Registration: "REG-001"},
		{Name: "Pedro Oliveira", Email: "pedro@email.com", Registration: "REG-002"},
	}
	seedRooms := []ports.CreateRoomInput{
		{Name: "Meeting Room A", Capacity: 8, Location: "1st floor", Features: []string{"whiteboard", "tv"}},
		{Name: "Auditorium", Capacity: 60, Location: "ground floor", Features: []string{"projector", "microphone"}},
	}

	created := 0
	for _, input := range seedUsers {
		if _, err := users.Create(ctx, input); err != nil {
			if isDuplicate(err) {
				log.Info().Str("email", input.Email).Msg("user already seeded")
				continue
			}
			log.Fatal().Err(err).Str("email", input.Email).Msg("seeding user failed")
		}
		created++
	}
	for _, input := range seedRooms {
		if _, err := rooms.Create(ctx, input); err != nil {
			if isDuplicate(err) {
				log.Info().Str("name", input.Name).Msg("room already seeded")
				continue
			}
			log.Fatal().Err(err).Str("name", input.Name).Msg("seeding room failed")
		}
		created++
	}

	log.Info().Int("created", created).Msg("seed finished")
}

func isDuplicate(err error) bool {
	var dup *domain.DuplicateFieldError
	return errors.As(err, &dup)
}
