package weather

import "errors"

// ErrNotFound is returned when no reading matches, or an update or delete touched no rows.
var ErrNotFound = errors.New("weather reading not found")

// ErrInvalidMeasurement is matched by every measurement plausibility failure.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// ErrInvalidID is returned when an identifier is not a valid ObjectID.
var ErrInvalidID = errors.New("invalid weather reading id")

// ErrInvalidDateRange is returned when a range does not end after it starts.
var ErrInvalidDateRange = errors.New("end date must be after start date")
