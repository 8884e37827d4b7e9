package weather

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the interface for weather reading storage.
// Update receives an entity projection whose "id" key selects the row.
type Repository interface {
	List(ctx context.Context, limit int64) ([]*Reading, error)
	Page(ctx context.Context, skip, limit int64) ([]*Reading, int64, error)
	TopPrecipitation(ctx context.Context, f RainFilter) ([]*Reading, error)
	FirstInWindow(ctx context.Context, device string, from, to time.Time) (*Reading, error)
	MaxTemperatures(ctx context.Context, from, to time.Time) ([]DeviceMaxTemperature, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*Reading, error)
	Create(ctx context.Context, r *Reading) error
	CreateMany(ctx context.Context, rs []*Reading) error
	Update(ctx context.Context, projected map[string]any) (*Reading, error)
	UpdatePrecipitation(ctx context.Context, id bson.ObjectID, value float64) (matched, modified int64, err error)
	Delete(ctx context.Context, id bson.ObjectID) (int64, error)
}
