package weather

import "fmt"

const (
	maxTemperature = 60.0
	minTemperature = -50.0
	maxHumidity    = 100.0
)

// MeasurementError carries a client-facing reason. It matches ErrInvalidMeasurement.
type MeasurementError struct {
	Reason string
}

func (e *MeasurementError) Error() string { return e.Reason }

// Is makes errors.Is(err, ErrInvalidMeasurement) hold.
func (e *MeasurementError) Is(target error) bool { return target == ErrInvalidMeasurement }

// IndexedError is one rejected item of a batch.
type IndexedError struct {
	Index   int    `json:"index" example:"2"`
	Message string `json:"message" example:"Humidity cannot be greater than 100%"`
}

// BatchError lists every rejected item of a batch. It matches ErrInvalidMeasurement.
type BatchError struct {
	Items []IndexedError
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d weather readings have invalid data", len(e.Items))
}

// Is makes errors.Is(err, ErrInvalidMeasurement) hold.
func (e *BatchError) Is(target error) bool { return target == ErrInvalidMeasurement }

// CheckMeasurements applies the physical plausibility rules on top of the schema ranges:
// humidity at most 100 and temperature within [-50, 60]. Absent values pass.
// Humidity is checked first.
func CheckMeasurements(temperature, humidity *float64) error {
	if humidity != nil && *humidity > maxHumidity {
		return &MeasurementError{Reason: "Humidity cannot be greater than 100%"}
	}
	if temperature != nil && *temperature > maxTemperature {
		return &MeasurementError{Reason: "Temperature cannot be greater than 60 degrees Celsius"}
	}
	if temperature != nil && *temperature < minTemperature {
		return &MeasurementError{Reason: "Temperature cannot be less than -50 degrees Celsius"}
	}
	return nil
}
