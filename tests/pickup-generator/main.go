package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/DWARA-KESH/EpiCircleDemo/internal/config"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/entities"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/events"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/lifecycle"
	"github.com/DWARA-KESH/EpiCircleDemo/internal/pickupapi"
	"github.com/google/uuid"
)

var streets = []string{"MG Road", "Brigade Road", "Residency Road", "Church Street", "Lavelle Road"}

func randomPhone() string {
	return strconv.Itoa(6 + rand.IntN(4)) + fmt.Sprintf("%09d", rand.IntN(1_000_000_000))
}

func generateRandomPickup(now time.Time) entities.Pickup {
	date := now.AddDate(0, 0, 1+rand.IntN(7)).Format(time.DateOnly)
	street := streets[rand.IntN(len(streets))]
	return entities.Pickup{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Phone:       randomPhone(),
		Date:        date,
		DisplayDate: date,
		TimeSlot:    lifecycle.TimeSlots[rand.IntN(len(lifecycle.TimeSlots))],
		Address:     fmt.Sprintf("%d %s", 1+rand.IntN(200), street),
		Status:      entities.StatusPending,
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	api := pickupapi.NewClient(logger, config.PickupAPI{
		BaseURL: envOr("PICKUP_API_URL", "http://localhost:3000"),
		Timeout: 5 * time.Second,
	})

	publisher := events.NewPublisher(logger, config.Kafka{
		Brokers: []string{envOr("KAFKA_BROKERS", "localhost:9092")},
		Topic:   envOr("KAFKA_TOPIC", "pickup-events"),
		GroupID: "pickup-generator",
	})
	defer publisher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case now := <-ticker.C:
			p := generateRandomPickup(now)
			if err := api.Create(ctx, p); err != nil {
				log.Println("failed to create pickup:", err)
				continue
			}
			publisher.Publish(ctx, entities.PickupEvent{
				ID:       uuid.NewString(),
				PickupID: p.ID,
				To:       p.Status,
				Actor:    entities.RoleCustomer,
				At:       now,
			})
			log.Println("pickup generated", p.ID, p.Date, p.TimeSlot)
		case <-ctx.Done():
			return
		}
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
