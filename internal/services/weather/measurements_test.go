package weather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestCheckMeasurements(t *testing.T) {
	tests := []struct {
		name        string
		temperature *float64
		humidity    *float64
		wantReason  string
	}{
		{name: "typical", temperature: f(23.07), humidity: f(71.9)},
		{name: "upper temperature bound", temperature: f(60), humidity: f(10)},
		{name: "lower temperature bound", temperature: f(-50), humidity: f(10)},
		{name: "upper humidity bound", temperature: f(0), humidity: f(100)},
		{name: "absent values pass", temperature: nil, humidity: nil},
		{name: "too hot", temperature: f(60.01), humidity: f(10), wantReason: "Temperature cannot be greater than 60 degrees Celsius"},
		{name: "too cold", temperature: f(-50.01), humidity: f(10), wantReason: "Temperature cannot be less than -50 degrees Celsius"},
		{name: "too humid", temperature: f(20), humidity: f(100.01), wantReason: "Humidity cannot be greater than 100%"},
		{name: "humidity reported first", temperature: f(99), humidity: f(101), wantReason: "Humidity cannot be greater than 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMeasurements(tt.temperature, tt.humidity)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMeasurement))
			assert.Equal(t, tt.wantReason, err.Error())
		})
	}
}

func TestBatchError(t *testing.T) {
	err := error(&BatchError{Items: []IndexedError{{Index: 1, Message: "x"}, {Index: 3, Message: "y"}}})
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
	assert.Equal(t, "2 weather readings have invalid data", err.Error())

	var be *BatchError
	require.ErrorAs(t, err, &be)
	assert.Len(t, be.Items, 2)
}
