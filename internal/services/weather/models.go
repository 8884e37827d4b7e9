package weather

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Reading represents one measurement sample from a weather station
type Reading struct {
	ID                  bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"641a6bf00e2c74fca47ea4a8"`
	DeviceName          string        `bson:"device_name" json:"device_name" example:"Woodford_Sensor"`
	Time                time.Time     `bson:"time" json:"time" example:"2025-06-01T23:00:26.005Z"`
	Precipitation       float64       `bson:"precipitation" json:"precipitation" example:"0.085"`
	Latitude            float64       `bson:"latitude" json:"latitude" example:"152.77891"`
	Longitude           float64       `bson:"longitude" json:"longitude" example:"-26.95064"`
	Temperature         float64       `bson:"temperature" json:"temperature" example:"23.07"`
	AtmosphericPressure float64       `bson:"atmospheric_pressure" json:"atmospheric_pressure" example:"128.02"`
	MaxWindSpeed        float64       `bson:"max_wind_speed" json:"max_wind_speed" example:"3.77"`
	SolarRadiation      float64       `bson:"solar_radiation" json:"solar_radiation" example:"290.5"`
	VaporPressure       float64       `bson:"vapor_pressure" json:"vapor_pressure" example:"1.72"`
	Humidity            float64       `bson:"humidity" json:"humidity" example:"71.9"`
	WindDirection       float64       `bson:"wind_direction" json:"wind_direction" example:"163.3"`
}

// RainPeak is the projection returned by the per-device rainfall query
type RainPeak struct {
	ID            string    `json:"_id" example:"641a6bf00e2c74fca47ea4a8"`
	DeviceName    string    `json:"device_name" example:"Woodford_Sensor"`
	Precipitation float64   `json:"precipitation" example:"12.4"`
	Time          time.Time `json:"time" example:"2025-04-11T06:00:00Z"`
}

// Snapshot is the projection returned by the device/day query
type Snapshot struct {
	ID                  string    `json:"_id" example:"641a6bf00e2c74fca47ea4a8"`
	DeviceName          string    `json:"device_name" example:"Noosa_Sensor"`
	AtmosphericPressure float64   `json:"atmospheric_pressure" example:"128.02"`
	Precipitation       float64   `json:"precipitation" example:"0.085"`
	SolarRadiation      float64   `json:"solar_radiation" example:"290.5"`
	Temperature         float64   `json:"temperature" example:"23.07"`
	Time                time.Time `json:"time" example:"2022-12-05T10:00:00Z"`
}

// DeviceMaxTemperature is one row of the per-station maximum temperature report
type DeviceMaxTemperature struct {
	DeviceName     string    `bson:"_id" json:"device_name" example:"Yandina_Sensor"`
	MaxTemperature float64   `bson:"maxTemperature" json:"max_temperature" example:"38.2"`
	Time           time.Time `bson:"time" json:"time" example:"2022-11-18T03:00:00Z"`
}

// RainFilter selects readings of one device newer than Since, wettest first
type RainFilter struct {
	Device       string
	Since        time.Time
	IncludeSince bool
	Limit        int64
}
