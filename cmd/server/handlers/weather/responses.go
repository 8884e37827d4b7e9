package weather

import (
	"weather-api/cmd/server/handlers/handlerutil"
	"weather-api/internal/services/weather"
)

// ReadingsResponse carries a list of readings
type ReadingsResponse struct {
	handlerutil.Envelope
	Weather []*weather.Reading `json:"weather"`
}

// ReadingResponse carries one reading
type ReadingResponse struct {
	handlerutil.Envelope
	Weather *weather.Reading `json:"weather"`
}

// PageResponse carries one page of readings
type PageResponse struct {
	handlerutil.Envelope
	Weather    []*weather.Reading `json:"weather"`
	Page       int                `json:"page" example:"0"`
	TotalCount int64              `json:"total_count" example:"1204"`
	TotalPages int64              `json:"total_pages" example:"121"`
}

// RainPeakResponse carries the wettest reading of a device
type RainPeakResponse struct {
	handlerutil.Envelope
	Weather []weather.RainPeak `json:"weather"`
}

// SnapshotResponse carries the reading of a device on a given day
type SnapshotResponse struct {
	handlerutil.Envelope
	Weather *weather.Snapshot `json:"weather"`
}

// MaxTemperatureResponse carries the per-station maximum temperatures
type MaxTemperatureResponse struct {
	handlerutil.Envelope
	Results []weather.DeviceMaxTemperature `json:"results"`
}

// PrecipitationResponse reports a precipitation update
type PrecipitationResponse struct {
	handlerutil.Envelope
	ID       string `json:"id" example:"641a6bf00e2c74fca47ea4a8"`
	Modified int64  `json:"modified" example:"1"`
}

// DeletedResponse reports how many readings were removed
type DeletedResponse struct {
	handlerutil.Envelope
	Deleted int64 `json:"deleted" example:"1"`
}

// IDParams is the :id route parameter
type IDParams struct {
	ID string `params:"id" validate:"required,mongodb"`
}

// PageParams is the :page route parameter
type PageParams struct {
	Page int `params:"page" validate:"min=0"`
}

// MonthsParams is the :months route parameter
type MonthsParams struct {
	Months int `params:"months" validate:"min=1,max=1200"`
}

// DeviceParams is the :deviceName route parameter
type DeviceParams struct {
	DeviceName string `params:"deviceName" validate:"required"`
}

// SpaceTimeQuery selects one device on one UTC day
type SpaceTimeQuery struct {
	DeviceName string `query:"deviceName" validate:"required"`
	Date       string `query:"date" validate:"required,date"`
}

// RangeQuery is a [startDate, endDate) range of UTC days
type RangeQuery struct {
	StartDate string `query:"startDate" validate:"required,date"`
	EndDate   string `query:"endDate" validate:"required,date"`
}
