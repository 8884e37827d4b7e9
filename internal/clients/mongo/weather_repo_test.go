//go:build !short

package mongo

import (
	"context"
	"math"
	"testing"
	"time"

	"weather-api/internal/entity"
	"weather-api/internal/services/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newTestReading(device string, at time.Time, temperature, precipitation float64) *weather.Reading {
	return &weather.Reading{
		ID:                  bson.NewObjectID(),
		DeviceName:          device,
		Time:                at.UTC().Truncate(time.Millisecond),
		Precipitation:       precipitation,
		Latitude:            152.77891,
		Longitude:           -26.95064,
		Temperature:         temperature,
		AtmosphericPressure: 128.02,
		MaxWindSpeed:        3.77,
		SolarRadiation:      290.5,
		VaporPressure:       1.72,
		Humidity:            71.9,
		WindDirection:       163.3,
	}
}

func newWeatherRepo(t *testing.T) *WeatherRepo {
	t.Helper()
	db, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	repo, err := NewWeatherRepo(context.Background(), db)
	require.NoError(t, err)
	return repo
}

func TestWeatherRepoCreateGetUpdateDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newWeatherRepo(t)

	r := newTestReading("Woodford_Sensor", time.Now(), 23.07, 0.085)
	require.NoError(t, repo.Create(ctx, r))

	found, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, found)

	updated, err := repo.Update(ctx, entity.Project(r.ID.Hex(), map[string]any{"humidity": 55.5}))
	require.NoError(t, err)
	assert.Equal(t, 55.5, updated.Humidity)
	assert.Equal(t, r.Temperature, updated.Temperature)

	_, err = repo.Update(ctx, entity.Project(bson.NewObjectID().Hex(), map[string]any{"humidity": 1.0}))
	assert.ErrorIs(t, err, weather.ErrNotFound)

	matched, modified, err := repo.UpdatePrecipitation(ctx, r.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	assert.Equal(t, int64(1), modified)

	matched, modified, err = repo.UpdatePrecipitation(ctx, r.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	assert.Zero(t, modified, "same value is matched but not modified")

	n, err := repo.Delete(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindByID(ctx, r.ID)
	assert.ErrorIs(t, err, weather.ErrNotFound)
}

func TestWeatherRepoPage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newWeatherRepo(t)

	batch := make([]*weather.Reading, 0, 25)
	for i := 0; i < 25; i++ {
		batch = append(batch, newTestReading("Noosa_Sensor", time.Now(), 20, float64(i)))
	}
	require.NoError(t, repo.CreateMany(ctx, batch))

	rs, total, err := repo.Page(ctx, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, rs, 5)
	assert.Equal(t, batch[20].ID, rs[0].ID)

	rs, total, err = repo.Page(ctx, math.MaxInt64, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Empty(t, rs)

	all, err := repo.List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 25)
}

func TestWeatherRepoTopPrecipitation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newWeatherRepo(t)
	now := time.Now().UTC()

	require.NoError(t, repo.CreateMany(ctx, []*weather.Reading{
		newTestReading("Woodford_Sensor", now.Add(-24*time.Hour), 20, 3),
		newTestReading("Woodford_Sensor", now.Add(-48*time.Hour), 20, 9),
		newTestReading("Woodford_Sensor", now.Add(-400*24*time.Hour), 20, 99),
		newTestReading("Noosa_Sensor", now.Add(-24*time.Hour), 20, 50),
	}))

	rs, err := repo.TopPrecipitation(ctx, weather.RainFilter{
		Device: "Woodford_Sensor",
		Since:  now.Add(-90 * 24 * time.Hour),
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, 9.0, rs[0].Precipitation)
	assert.Equal(t, 3.0, rs[1].Precipitation)

	rs, err = repo.TopPrecipitation(ctx, weather.RainFilter{
		Device:       "Woodford_Sensor",
		Since:        now.AddDate(0, -5, 0),
		IncludeSince: true,
		Limit:        1,
	})
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, 9.0, rs[0].Precipitation)
}

func TestWeatherRepoFirstInWindow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newWeatherRepo(t)
	day := time.Date(2022, 12, 5, 0, 0, 0, 0, time.UTC)

	early := newTestReading("Noosa_Sensor", day.Add(2*time.Hour), 18, 0)
	require.NoError(t, repo.CreateMany(ctx, []*weather.Reading{
		newTestReading("Noosa_Sensor", day.Add(14*time.Hour), 25, 0),
		early,
		newTestReading("Noosa_Sensor", day.Add(24*time.Hour), 30, 0),
	}))

	got, err := repo.FirstInWindow(ctx, "Noosa_Sensor", day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, early.ID, got.ID)

	_, err = repo.FirstInWindow(ctx, "Noosa_Sensor", day.Add(48*time.Hour), day.Add(72*time.Hour))
	assert.ErrorIs(t, err, weather.ErrNotFound)
}

func TestWeatherRepoMaxTemperatures(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newWeatherRepo(t)
	from := time.Date(2022, 6, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 12, 5, 0, 0, 0, 0, time.UTC)

	hotNoosa := newTestReading("Noosa_Sensor", from.Add(72*time.Hour), 38.2, 0)
	hotYandina := newTestReading("Yandina_Sensor", from.Add(96*time.Hour), 31, 0)
	require.NoError(t, repo.CreateMany(ctx, []*weather.Reading{
		newTestReading("Noosa_Sensor", from.Add(24*time.Hour), 20, 0),
		hotNoosa,
		hotYandina,
		newTestReading("Yandina_Sensor", to, 59, 0),
	}))

	rows, err := repo.MaxTemperatures(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, []weather.DeviceMaxTemperature{
		{DeviceName: "Noosa_Sensor", MaxTemperature: 38.2, Time: hotNoosa.Time},
		{DeviceName: "Yandina_Sensor", MaxTemperature: 31, Time: hotYandina.Time},
	}, rows)

	rows, err = repo.MaxTemperatures(ctx, to.Add(48*time.Hour), to.Add(72*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
