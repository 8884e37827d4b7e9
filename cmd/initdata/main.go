// Command initdata seeds a database with demo accounts and a year of synthetic
// weather readings. Accounts go through the users service so passwords are hashed
// the same way the API does it; readings are written straight to the repository so
// their timestamps can lie in the past.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"weather-api/internal/clients/mongo"
	"weather-api/internal/config"
	"weather-api/internal/logger"
	"weather-api/internal/services/users"
	"weather-api/internal/services/weather"

	"github.com/brianvoe/gofakeit/v6"
)

const batchSize = 500

var (
	nStudents = flag.Int("students", 20, "How many student accounts to create")
	nReadings = flag.Int("readings", 5000, "How many weather readings to create")
	devices   = flag.String("devices", "Woodford_Sensor,Noosa_Sensor,Yandina_Sensor", "Comma separated device names")
	months    = flag.Int("months", 12, "Spread readings over this many past months")
	password  = flag.String("pass", "Password123", "Password for every seeded account")
	seed      = flag.Int64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
	fmt.Println("✔ done")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logg, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	client, err := mongo.Connect(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	usersRepo, err := mongo.NewUsersRepo(ctx, client.DB())
	if err != nil {
		return err
	}
	weatherRepo, err := mongo.NewWeatherRepo(ctx, client.DB())
	if err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	faker := gofakeit.New(*seed)

	fmt.Printf("Seeding %s on %s (seed=%d)\n", cfg.MongoDBName, cfg.MongoURI, *seed)

	svc := users.NewService(usersRepo, cfg, logg)
	if err := seedUsers(ctx, svc, faker); err != nil {
		return err
	}

	now := time.Now().UTC()
	readings := fakeReadings(faker, splitDevices(*devices), *nReadings, now.AddDate(0, -*months, 0), now)
	return insertReadings(ctx, weatherRepo, readings)
}

// seedUsers creates one admin, one teacher and the requested number of students.
// Accounts that already exist are left alone.
func seedUsers(ctx context.Context, svc *users.Service, faker *gofakeit.Faker) error {
	reqs := []users.CreateRequest{
		{Email: "admin@example.com", Password: *password, Role: string(users.RoleAdmin), FirstName: "Ada", LastName: "Admin"},
		{Email: "teacher@example.com", Password: *password, Role: string(users.RoleTeacher), FirstName: "Tom", LastName: "Teacher"},
	}
	for range *nStudents {
		reqs = append(reqs, users.CreateRequest{
			Email:     strings.ToLower(faker.Email()),
			Password:  *password,
			Role:      string(users.RoleStudent),
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
		})
	}

	created := 0
	for _, req := range reqs {
		if _, err := svc.Create(ctx, req); err != nil {
			if errors.Is(err, users.ErrDuplicate) {
				fmt.Printf("• %s exists\n", req.Email)
				continue
			}
			return fmt.Errorf("create %s: %w", req.Email, err)
		}
		created++
	}
	fmt.Printf("• created %d users\n", created)
	return nil
}

// fakeReadings spreads n plausible readings evenly across devices and randomly in [from, to).
func fakeReadings(faker *gofakeit.Faker, devices []string, n int, from, to time.Time) []*weather.Reading {
	rs := make([]*weather.Reading, 0, n)
	for i := range n {
		rs = append(rs, &weather.Reading{
			DeviceName:          devices[i%len(devices)],
			Time:                faker.DateRange(from, to).UTC().Truncate(time.Millisecond),
			Precipitation:       round(faker.Float64Range(0, 120), 3),
			Latitude:            round(faker.Float64Range(152.5, 153.2), 5),
			Longitude:           round(faker.Float64Range(-27.2, -26.3), 5),
			Temperature:         round(faker.Float64Range(-5, 45), 2),
			AtmosphericPressure: round(faker.Float64Range(120, 135), 2),
			MaxWindSpeed:        round(faker.Float64Range(0, 30), 2),
			SolarRadiation:      round(faker.Float64Range(0, 1200), 2),
			VaporPressure:       round(faker.Float64Range(0, 5), 2),
			Humidity:            round(faker.Float64Range(10, 100), 1),
			WindDirection:       round(faker.Float64Range(0, 360), 1),
		})
	}
	return rs
}

func insertReadings(ctx context.Context, repo *mongo.WeatherRepo, rs []*weather.Reading) error {
	for start := 0; start < len(rs); start += batchSize {
		end := min(start+batchSize, len(rs))
		if err := repo.CreateMany(ctx, rs[start:end]); err != nil {
			return fmt.Errorf("insert readings %d-%d: %w", start, end, err)
		}
		fmt.Printf("  … %d/%d readings\n", end, len(rs))
	}
	return nil
}

func splitDevices(s string) []string {
	var out []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		out = []string{"Woodford_Sensor"}
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
