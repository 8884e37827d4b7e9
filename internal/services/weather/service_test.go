package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"weather-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// MockRepo is a mock implementation of Repository
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) List(ctx context.Context, limit int64) ([]*Reading, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Reading), args.Error(1)
}

func (m *MockRepo) Page(ctx context.Context, skip, limit int64) ([]*Reading, int64, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*Reading), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepo) TopPrecipitation(ctx context.Context, f RainFilter) ([]*Reading, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Reading), args.Error(1)
}

func (m *MockRepo) FirstInWindow(ctx context.Context, device string, from, to time.Time) (*Reading, error) {
	args := m.Called(ctx, device, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reading), args.Error(1)
}

func (m *MockRepo) MaxTemperatures(ctx context.Context, from, to time.Time) ([]DeviceMaxTemperature, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DeviceMaxTemperature), args.Error(1)
}

func (m *MockRepo) FindByID(ctx context.Context, id bson.ObjectID) (*Reading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reading), args.Error(1)
}

func (m *MockRepo) Create(ctx context.Context, r *Reading) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepo) CreateMany(ctx context.Context, rs []*Reading) error {
	args := m.Called(ctx, rs)
	return args.Error(0)
}

func (m *MockRepo) Update(ctx context.Context, projected map[string]any) (*Reading, error) {
	args := m.Called(ctx, projected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reading), args.Error(1)
}

func (m *MockRepo) UpdatePrecipitation(ctx context.Context, id bson.ObjectID, value float64) (int64, int64, error) {
	args := m.Called(ctx, id, value)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepo) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	return config.Config{
		PageSize:         10,
		ListLimit:        100,
		WoodfordDevice:   "Woodford_Sensor",
		RainWindowMonths: 5,
	}
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, testConfig(), silentLogger)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validCreate() CreateRequest {
	return CreateRequest{
		DeviceName:          "Woodford_Sensor",
		Precipitation:       f(0.085),
		Latitude:            f(152.77891),
		Longitude:           f(-26.95064),
		Temperature:         f(23.07),
		AtmosphericPressure: f(128.02),
		MaxWindSpeed:        f(3.77),
		SolarRadiation:      f(290.5),
		VaporPressure:       f(1.72),
		Humidity:            f(71.9),
		WindDirection:       f(163.3),
	}
}

func TestService_Page(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		total     int64
		wantSkip  int64
		wantPages int64
	}{
		{name: "first page", page: 0, total: 25, wantSkip: 0, wantPages: 3},
		{name: "third page", page: 2, total: 25, wantSkip: 20, wantPages: 3},
		{name: "exact multiple", page: 1, total: 20, wantSkip: 10, wantPages: 2},
		{name: "empty collection", page: 0, total: 0, wantSkip: 0, wantPages: 0},
		{name: "offset beyond int64 saturates", page: math.MaxInt64 / 5, total: 25, wantSkip: math.MaxInt64, wantPages: 3},
		{name: "largest exact offset", page: math.MaxInt64 / 10, total: 25, wantSkip: (math.MaxInt64 / 10) * 10, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepo)
			repo.On("Page", mock.Anything, tt.wantSkip, int64(10)).Return([]*Reading{}, tt.total, nil)

			res, err := newTestService(repo).Page(context.Background(), tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.page, res.Page)
			assert.Equal(t, tt.total, res.TotalCount)
			assert.Equal(t, tt.wantPages, res.TotalPages)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_MaxRainRecent(t *testing.T) {
	repo := new(MockRepo)
	want := RainFilter{
		Device: "Woodford_Sensor",
		Since:  fixedNow.Add(-3 * 30 * 24 * time.Hour),
		Limit:  10,
	}
	repo.On("TopPrecipitation", mock.Anything, want).Return([]*Reading{{DeviceName: "Woodford_Sensor"}}, nil)

	rs, err := newTestService(repo).MaxRainRecent(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, rs, 1)
	repo.AssertExpectations(t)
}

func TestService_MaxRainForDevice(t *testing.T) {
	id := bson.NewObjectID()
	at := fixedNow.Add(-48 * time.Hour)

	t.Run("projects the wettest reading", func(t *testing.T) {
		repo := new(MockRepo)
		want := RainFilter{
			Device:       "Noosa_Sensor",
			Since:        time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
			IncludeSince: true,
			Limit:        1,
		}
		repo.On("TopPrecipitation", mock.Anything, want).
			Return([]*Reading{{ID: id, DeviceName: "Noosa_Sensor", Precipitation: 12.4, Time: at, Temperature: 30}}, nil)

		peaks, err := newTestService(repo).MaxRainForDevice(context.Background(), "Noosa_Sensor")
		require.NoError(t, err)
		assert.Equal(t, []RainPeak{{ID: id.Hex(), DeviceName: "Noosa_Sensor", Precipitation: 12.4, Time: at}}, peaks)
	})

	t.Run("no readings", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("TopPrecipitation", mock.Anything, mock.Anything).Return([]*Reading{}, nil)

		_, err := newTestService(repo).MaxRainForDevice(context.Background(), "Ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_ReadingAt(t *testing.T) {
	day := time.Date(2022, 12, 5, 0, 0, 0, 0, time.UTC)

	t.Run("one day window", func(t *testing.T) {
		repo := new(MockRepo)
		id := bson.NewObjectID()
		repo.On("FirstInWindow", mock.Anything, "Noosa_Sensor", day, day.Add(24*time.Hour)).
			Return(&Reading{ID: id, DeviceName: "Noosa_Sensor", Temperature: 21, Humidity: 50}, nil)

		snap, err := newTestService(repo).ReadingAt(context.Background(), "Noosa_Sensor", "2022-12-05")
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), snap.ID)
		assert.Equal(t, 21.0, snap.Temperature)
	})

	t.Run("nothing that day", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("FirstInWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, ErrNotFound)

		_, err := newTestService(repo).ReadingAt(context.Background(), "Noosa_Sensor", "2022-12-05")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_MaxTemperature(t *testing.T) {
	from := time.Date(2022, 6, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 12, 5, 0, 0, 0, 0, time.UTC)

	t.Run("rows", func(t *testing.T) {
		repo := new(MockRepo)
		rows := []DeviceMaxTemperature{{DeviceName: "Noosa_Sensor", MaxTemperature: 38.2}}
		repo.On("MaxTemperatures", mock.Anything, from, to).Return(rows, nil)

		got, err := newTestService(repo).MaxTemperature(context.Background(), "2022-06-05", "2022-12-05")
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("empty", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("MaxTemperatures", mock.Anything, from, to).Return([]DeviceMaxTemperature{}, nil)

		_, err := newTestService(repo).MaxTemperature(context.Background(), "2022-06-05", "2022-12-05")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty range", func(t *testing.T) {
		repo := new(MockRepo)
		_, err := newTestService(repo).MaxTemperature(context.Background(), "2022-12-05", "2022-12-05")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestService_Create(t *testing.T) {
	t.Run("stamps server time", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*weather.Reading")).Return(nil)

		r, err := newTestService(repo).Create(context.Background(), validCreate())
		require.NoError(t, err)
		assert.False(t, r.ID.IsZero())
		assert.Equal(t, fixedNow, r.Time)
		assert.Equal(t, "Woodford_Sensor", r.DeviceName)
		assert.Equal(t, 23.07, r.Temperature)
		assert.Equal(t, 71.9, r.Humidity)
		assert.Equal(t, 0.085, r.Precipitation)
	})

	t.Run("implausible measurement", func(t *testing.T) {
		repo := new(MockRepo)
		req := validCreate()
		req.Temperature = f(60.01)

		_, err := newTestService(repo).Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidMeasurement)
		assert.EqualError(t, err, "Temperature cannot be greater than 60 degrees Celsius")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("boom"))

		_, err := newTestService(repo).Create(context.Background(), validCreate())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidMeasurement)
	})
}

func TestService_CreateMany(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(rs []*Reading) bool { return len(rs) == 2 })).Return(nil)

		rs, err := newTestService(repo).CreateMany(context.Background(), []CreateRequest{validCreate(), validCreate()})
		require.NoError(t, err)
		require.Len(t, rs, 2)
		assert.NotEqual(t, rs[0].ID, rs[1].ID)
	})

	t.Run("reports every rejected index", func(t *testing.T) {
		repo := new(MockRepo)
		hot, humid := validCreate(), validCreate()
		hot.Temperature = f(61)
		humid.Humidity = f(100.01)

		_, err := newTestService(repo).CreateMany(context.Background(), []CreateRequest{validCreate(), hot, validCreate(), humid})
		var be *BatchError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, []IndexedError{
			{Index: 1, Message: "Temperature cannot be greater than 60 degrees Celsius"},
			{Index: 3, Message: "Humidity cannot be greater than 100%"},
		}, be.Items)
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})
}

func TestUpdateRequest_Fields(t *testing.T) {
	req := UpdateRequest{ID: "x", Temperature: f(10), DeviceName: strPtr(" <i>Noosa</i>_Sensor ")}
	assert.Equal(t, map[string]any{"temperature": 10.0, "device_name": "Noosa _Sensor"}, req.Fields())
	assert.Empty(t, UpdateRequest{ID: "x"}.Fields())
}

func strPtr(s string) *string { return &s }

func TestService_Update(t *testing.T) {
	id := bson.NewObjectID()

	t.Run("projects supplied fields", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("Update", mock.Anything, map[string]any{"id": id.Hex(), "humidity": 55.5}).Return(&Reading{ID: id, Humidity: 55.5}, nil)

		r, err := newTestService(repo).Update(context.Background(), UpdateRequest{ID: id.Hex(), Humidity: f(55.5)})
		require.NoError(t, err)
		assert.Equal(t, 55.5, r.Humidity)
	})

	t.Run("implausible humidity", func(t *testing.T) {
		repo := new(MockRepo)
		_, err := newTestService(repo).Update(context.Background(), UpdateRequest{ID: id.Hex(), Humidity: f(101)})
		assert.ErrorIs(t, err, ErrInvalidMeasurement)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil, ErrNotFound)
		_, err := newTestService(repo).Update(context.Background(), UpdateRequest{ID: id.Hex(), Humidity: f(1)})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_UpdatePrecipitation(t *testing.T) {
	id := bson.NewObjectID()

	t.Run("matched", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("UpdatePrecipitation", mock.Anything, id, 50.0).Return(int64(1), int64(1), nil)

		n, err := newTestService(repo).UpdatePrecipitation(context.Background(), PrecipitationRequest{ID: id.Hex(), Precipitation: f(50)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("same value still found", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("UpdatePrecipitation", mock.Anything, id, 50.0).Return(int64(1), int64(0), nil)

		n, err := newTestService(repo).UpdatePrecipitation(context.Background(), PrecipitationRequest{ID: id.Hex(), Precipitation: f(50)})
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := new(MockRepo)
		repo.On("UpdatePrecipitation", mock.Anything, id, 50.0).Return(int64(0), int64(0), nil)

		_, err := newTestService(repo).UpdatePrecipitation(context.Background(), PrecipitationRequest{ID: id.Hex(), Precipitation: f(50)})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	id := bson.NewObjectID()
	repo := new(MockRepo)
	repo.On("Delete", mock.Anything, id).Return(int64(0), nil)

	_, err := newTestService(repo).Delete(context.Background(), id.Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = newTestService(repo).Delete(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrInvalidID)
}
