package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"weather-api/internal/config"
	"weather-api/internal/entity"
	"weather-api/internal/utils/sanitize"
	"weather-api/internal/utils/validate"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// rainMonth is the fixed month length of the rolling rainfall window.
const rainMonth = 30 * 24 * time.Hour

// Service handles weather readings business logic
type Service struct {
	repo   Repository
	config config.Config
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new weather service
func NewService(repo Repository, cfg config.Config, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
		log:    log,
		now:    storeNow,
	}
}

// CreateRequest represents a new reading. The ingestion time is set by the server.
type CreateRequest struct {
	DeviceName          string   `json:"device_name" validate:"required" example:"Woodford_Sensor"`
	Precipitation       *float64 `json:"precipitation" validate:"required,min=0,max=9999" example:"0.085"`
	Latitude            *float64 `json:"latitude" validate:"required,min=-180,max=180" example:"152.77891"`
	Longitude           *float64 `json:"longitude" validate:"required,min=-180,max=180" example:"-26.95064"`
	Temperature         *float64 `json:"temperature" validate:"required,min=-100,max=100" example:"23.07"`
	AtmosphericPressure *float64 `json:"atmospheric_pressure" validate:"required,min=80,max=135" example:"128.02"`
	MaxWindSpeed        *float64 `json:"max_wind_speed" validate:"required,min=0,max=135" example:"3.77"`
	SolarRadiation      *float64 `json:"solar_radiation" validate:"required,min=0,max=3500" example:"290.5"`
	VaporPressure       *float64 `json:"vapor_pressure" validate:"required,min=-1,max=10" example:"1.72"`
	Humidity            *float64 `json:"humidity" validate:"required,min=-10,max=999" example:"71.9"`
	WindDirection       *float64 `json:"wind_direction" validate:"required,min=0,max=360" example:"163.3"`
}

// UpdateRequest represents a partial update of a reading
type UpdateRequest struct {
	ID                  string   `json:"id" validate:"required,mongodb" example:"641a6bf00e2c74fca47ea4a1"`
	DeviceName          *string  `json:"device_name,omitempty" validate:"omitempty,min=1" example:"Woodford_Sensor"`
	Precipitation       *float64 `json:"precipitation,omitempty" validate:"omitempty,min=0,max=9999" example:"0.085"`
	Latitude            *float64 `json:"latitude,omitempty" validate:"omitempty,min=-180,max=180" example:"152.77891"`
	Longitude           *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180" example:"-26.95064"`
	Temperature         *float64 `json:"temperature,omitempty" validate:"omitempty,min=-100,max=100" example:"23.07"`
	AtmosphericPressure *float64 `json:"atmospheric_pressure,omitempty" validate:"omitempty,min=80,max=135" example:"128.02"`
	MaxWindSpeed        *float64 `json:"max_wind_speed,omitempty" validate:"omitempty,min=0,max=135" example:"3.77"`
	SolarRadiation      *float64 `json:"solar_radiation,omitempty" validate:"omitempty,min=0,max=3500" example:"290.5"`
	VaporPressure       *float64 `json:"vapor_pressure,omitempty" validate:"omitempty,min=-1,max=10" example:"1.72"`
	Humidity            *float64 `json:"humidity,omitempty" validate:"omitempty,min=-10,max=999" example:"71.9"`
	WindDirection       *float64 `json:"wind_direction,omitempty" validate:"omitempty,min=0,max=360" example:"163.3"`
}

// Fields returns the keys the client supplied, without the identifier.
func (r UpdateRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.DeviceName != nil {
		fields["device_name"] = sanitize.Name(*r.DeviceName)
	}
	for key, v := range map[string]*float64{
		"precipitation":        r.Precipitation,
		"latitude":             r.Latitude,
		"longitude":            r.Longitude,
		"temperature":          r.Temperature,
		"atmospheric_pressure": r.AtmosphericPressure,
		"max_wind_speed":       r.MaxWindSpeed,
		"solar_radiation":      r.SolarRadiation,
		"vapor_pressure":       r.VaporPressure,
		"humidity":             r.Humidity,
		"wind_direction":       r.WindDirection,
	} {
		if v != nil {
			fields[key] = *v
		}
	}
	return fields
}

// PrecipitationRequest sets the precipitation of one reading
type PrecipitationRequest struct {
	ID            string   `json:"id" validate:"required,mongodb" example:"641a6bf00e2c74fca47ea4a8"`
	Precipitation *float64 `json:"precipitation" validate:"required,min=0,max=9999" example:"50"`
}

// PageResult is one page of readings plus totals
type PageResult struct {
	Readings   []*Reading
	Page       int
	TotalCount int64
	TotalPages int64
}

// List returns readings, bounded by the configured list limit.
func (s *Service) List(ctx context.Context) ([]*Reading, error) {
	rs, err := s.repo.List(ctx, int64(s.config.ListLimit))
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	return rs, nil
}

// Page returns the 0-based page of readings ordered by id.
func (s *Service) Page(ctx context.Context, page int) (*PageResult, error) {
	if page < 0 {
		return nil, fmt.Errorf("page must not be negative: %d", page)
	}
	size := int64(s.config.PageSize)

	// pages past the int64 range saturate; the store returns no rows for them
	skip := int64(math.MaxInt64)
	if int64(page) <= math.MaxInt64/size {
		skip = int64(page) * size
	}

	rs, total, err := s.repo.Page(ctx, skip, size)
	if err != nil {
		return nil, fmt.Errorf("page readings: %w", err)
	}

	return &PageResult{
		Readings:   rs,
		Page:       page,
		TotalCount: total,
		TotalPages: (total + size - 1) / size,
	}, nil
}

// MaxRainRecent returns the ten wettest readings of the configured reference device over
// the last months*30 days.
func (s *Service) MaxRainRecent(ctx context.Context, months int) ([]*Reading, error) {
	rs, err := s.repo.TopPrecipitation(ctx, RainFilter{
		Device: s.config.WoodfordDevice,
		Since:  s.now().Add(-time.Duration(months) * rainMonth),
		Limit:  10,
	})
	if err != nil {
		return nil, fmt.Errorf("max rain: %w", err)
	}
	return rs, nil
}

// MaxRainForDevice returns the wettest reading of device over the last calendar months.
func (s *Service) MaxRainForDevice(ctx context.Context, device string) ([]RainPeak, error) {
	rs, err := s.repo.TopPrecipitation(ctx, RainFilter{
		Device:       device,
		Since:        s.now().AddDate(0, -s.config.RainWindowMonths, 0),
		IncludeSince: true,
		Limit:        1,
	})
	if err != nil {
		return nil, fmt.Errorf("max rain for %s: %w", device, err)
	}
	if len(rs) == 0 {
		return nil, ErrNotFound
	}

	peaks := make([]RainPeak, 0, len(rs))
	for _, r := range rs {
		peaks = append(peaks, RainPeak{
			ID:            r.ID.Hex(),
			DeviceName:    r.DeviceName,
			Precipitation: r.Precipitation,
			Time:          r.Time,
		})
	}
	return peaks, nil
}

// ReadingAt returns the first reading of device on the given UTC day (YYYY-MM-DD).
func (s *Service) ReadingAt(ctx context.Context, device, day string) (*Snapshot, error) {
	from, err := validate.ParseDate(day)
	if err != nil {
		return nil, err
	}

	r, err := s.repo.FirstInWindow(ctx, device, from, from.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		ID:                  r.ID.Hex(),
		DeviceName:          r.DeviceName,
		AtmosphericPressure: r.AtmosphericPressure,
		Precipitation:       r.Precipitation,
		SolarRadiation:      r.SolarRadiation,
		Temperature:         r.Temperature,
		Time:                r.Time,
	}, nil
}

// MaxTemperature reports the hottest reading per device within [start, end).
func (s *Service) MaxTemperature(ctx context.Context, start, end string) ([]DeviceMaxTemperature, error) {
	from, err := validate.ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := validate.ParseDate(end)
	if err != nil {
		return nil, err
	}
	if !to.After(from) {
		return nil, ErrInvalidDateRange
	}

	rows, err := s.repo.MaxTemperatures(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("max temperature: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

// Get returns a reading by id.
func (s *Service) Get(ctx context.Context, id string) (*Reading, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

// Create checks and stores one reading stamped with the ingestion time.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Reading, error) {
	if err := CheckMeasurements(req.Temperature, req.Humidity); err != nil {
		return nil, err
	}

	r := s.newReading(req)
	if err := s.repo.Create(ctx, r); err != nil {
		s.log.Error("failed to create weather reading", "error", err, "device", r.DeviceName)
		return nil, fmt.Errorf("create reading: %w", err)
	}
	return r, nil
}

// CreateMany checks every item first and stores none when any is rejected.
// The returned *BatchError lists each rejected index.
func (s *Service) CreateMany(ctx context.Context, reqs []CreateRequest) ([]*Reading, error) {
	var rejected []IndexedError
	rs := make([]*Reading, 0, len(reqs))
	for i, req := range reqs {
		if err := CheckMeasurements(req.Temperature, req.Humidity); err != nil {
			rejected = append(rejected, IndexedError{Index: i, Message: err.Error()})
			continue
		}
		rs = append(rs, s.newReading(req))
	}
	if len(rejected) > 0 {
		return nil, &BatchError{Items: rejected}
	}

	if err := s.repo.CreateMany(ctx, rs); err != nil {
		s.log.Error("failed to create weather readings", "error", err, "count", len(rs))
		return nil, fmt.Errorf("create readings: %w", err)
	}
	return rs, nil
}

// Update applies a partial update and returns the stored reading.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Reading, error) {
	if _, err := parseID(req.ID); err != nil {
		return nil, err
	}
	if err := CheckMeasurements(req.Temperature, req.Humidity); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, entity.Project(req.ID, req.Fields()))
}

// UpdatePrecipitation sets precipitation on one reading and returns the modified count.
func (s *Service) UpdatePrecipitation(ctx context.Context, req PrecipitationRequest) (int64, error) {
	oid, err := parseID(req.ID)
	if err != nil {
		return 0, err
	}
	if req.Precipitation == nil {
		return 0, errors.New("precipitation is required")
	}

	matched, modified, err := s.repo.UpdatePrecipitation(ctx, oid, *req.Precipitation)
	if err != nil {
		return 0, fmt.Errorf("update precipitation: %w", err)
	}
	if matched == 0 {
		return 0, ErrNotFound
	}
	return modified, nil
}

// Delete removes one reading and returns the deleted count.
func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return 0, fmt.Errorf("delete reading: %w", err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return n, nil
}

func (s *Service) newReading(req CreateRequest) *Reading {
	return &Reading{
		ID:                  bson.NewObjectID(),
		DeviceName:          sanitize.Name(req.DeviceName),
		Time:                s.now(),
		Precipitation:       deref(req.Precipitation),
		Latitude:            deref(req.Latitude),
		Longitude:           deref(req.Longitude),
		Temperature:         deref(req.Temperature),
		AtmosphericPressure: deref(req.AtmosphericPressure),
		MaxWindSpeed:        deref(req.MaxWindSpeed),
		SolarRadiation:      deref(req.SolarRadiation),
		VaporPressure:       deref(req.VaporPressure),
		Humidity:            deref(req.Humidity),
		WindDirection:       deref(req.WindDirection),
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// storeNow is the current UTC time at the store's millisecond precision, so a value
// returned from a write equals the one read back later.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
