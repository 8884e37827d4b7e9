package mongo

import (
	"context"
	"fmt"
	"time"

	"weather-api/internal/entity"
	"weather-api/internal/services/weather"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const weatherCollection = "weatherReadings"

// WeatherRepo implements the weather.Repository interface for MongoDB
type WeatherRepo struct {
	collection *mongo.Collection
}

// NewWeatherRepo creates a new weather repository and ensures its indexes.
func NewWeatherRepo(parentCtx context.Context, db *mongo.Database) (*WeatherRepo, error) {
	collection := db.Collection(weatherCollection)

	indexes := []mongo.IndexModel{
		// per-device time windows and rainfall rankings
		{Keys: bson.D{{Key: "device_name", Value: 1}, {Key: "time", Value: -1}}},
		// max-temperature report
		{Keys: bson.D{{Key: "time", Value: 1}}},
	}

	ctx, cancel := repoCtx(parentCtx)
	defer cancel()

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("create weather indexes: %w", err)
	}

	return &WeatherRepo{collection: collection}, nil
}

var byIDAsc = bson.D{{Key: "_id", Value: 1}}

// List returns up to limit readings ordered by id.
func (r *WeatherRepo) List(ctx context.Context, limit int64) ([]*weather.Reading, error) {
	return r.find(ctx, bson.D{}, options.Find().SetSort(byIDAsc).SetLimit(limit))
}

// Page returns limit readings after skip, ordered by id, and the collection size.
func (r *WeatherRepo) Page(ctx context.Context, skip, limit int64) ([]*weather.Reading, int64, error) {
	rs, err := r.find(ctx, bson.D{}, options.Find().SetSort(byIDAsc).SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	total, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, err
	}
	return rs, total, nil
}

// TopPrecipitation returns the wettest readings of one device newer than f.Since.
func (r *WeatherRepo) TopPrecipitation(ctx context.Context, f weather.RainFilter) ([]*weather.Reading, error) {
	op := "$gt"
	if f.IncludeSince {
		op = "$gte"
	}
	filter := bson.M{
		"device_name": f.Device,
		"time":        bson.M{op: f.Since},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "precipitation", Value: -1}}).
		SetLimit(f.Limit)

	return r.find(ctx, filter, opts)
}

// FirstInWindow returns the earliest reading of device with time in [from, to).
func (r *WeatherRepo) FirstInWindow(ctx context.Context, device string, from, to time.Time) (*weather.Reading, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	filter := bson.M{
		"device_name": device,
		"time":        bson.M{"$gte": from, "$lt": to},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "time", Value: 1}})

	var reading weather.Reading
	if err := r.collection.FindOne(ctx, filter, opts).Decode(&reading); err != nil {
		return nil, translateNotFound(err, weather.ErrNotFound)
	}
	return &reading, nil
}

// MaxTemperatures groups readings with time in [from, to) by device and keeps the
// hottest one of each, ordered by device name.
func (r *WeatherRepo) MaxTemperatures(ctx context.Context, from, to time.Time) ([]weather.DeviceMaxTemperature, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"time": bson.M{"$gte": from, "$lt": to}}}},
		{{Key: "$sort", Value: bson.D{{Key: "temperature", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$device_name"},
			{Key: "maxTemperature", Value: bson.M{"$first": "$temperature"}},
			{Key: "time", Value: bson.M{"$first": "$time"}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	out := make([]weather.DeviceMaxTemperature, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID finds a reading by id
func (r *WeatherRepo) FindByID(ctx context.Context, id bson.ObjectID) (*weather.Reading, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var reading weather.Reading
	if err := r.collection.FindOne(ctx, byID(id)).Decode(&reading); err != nil {
		return nil, translateNotFound(err, weather.ErrNotFound)
	}
	return &reading, nil
}

// Create inserts one reading
func (r *WeatherRepo) Create(ctx context.Context, reading *weather.Reading) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, reading)
	return err
}

// CreateMany inserts every reading in one ordered batch
func (r *WeatherRepo) CreateMany(ctx context.Context, rs []*weather.Reading) error {
	if len(rs) == 0 {
		return nil
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertMany(ctx, rs)
	return err
}

// Update applies a projected partial update and returns the reading after the change.
func (r *WeatherRepo) Update(ctx context.Context, projected map[string]any) (*weather.Reading, error) {
	id, fields := entity.Split(projected)
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, weather.ErrInvalidID
	}

	update := setUnset(fields)
	if len(update) == 0 {
		return r.FindByID(ctx, oid)
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var reading weather.Reading
	if err := r.collection.FindOneAndUpdate(ctx, byID(oid), update, opts).Decode(&reading); err != nil {
		return nil, translateNotFound(err, weather.ErrNotFound)
	}
	return &reading, nil
}

// UpdatePrecipitation sets precipitation on one reading.
func (r *WeatherRepo) UpdatePrecipitation(ctx context.Context, id bson.ObjectID, value float64) (int64, int64, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	res, err := r.collection.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"precipitation": value}})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Delete removes one reading and returns the deleted count.
func (r *WeatherRepo) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, byID(id))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *WeatherRepo) find(ctx context.Context, filter any, opts *options.FindOptionsBuilder) ([]*weather.Reading, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	out := make([]*weather.Reading, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ weather.Repository = (*WeatherRepo)(nil)
