package mongo

import (
	"context"
	"fmt"
	"time"

	"weather-api/internal/entity"
	"weather-api/internal/services/users"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const usersCollection = "users"

// UsersRepo implements the users.Repository interface for MongoDB
type UsersRepo struct {
	collection *mongo.Collection
}

// NewUsersRepo creates a new users repository and ensures its indexes.
// authenticationKey is sparse-unique: logged-out users have no key and never collide.
func NewUsersRepo(parentCtx context.Context, db *mongo.Database) (*UsersRepo, error) {
	collection := db.Collection(usersCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "authenticationKey", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "created", Value: 1}},
		},
	}

	ctx, cancel := repoCtx(parentCtx)
	defer cancel()

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("create users indexes: %w", err)
	}

	return &UsersRepo{collection: collection}, nil
}

// List returns up to limit users ordered by id.
func (r *UsersRepo) List(ctx context.Context, limit int64) ([]*users.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	out := make([]*users.User, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID finds a user by id
func (r *UsersRepo) FindByID(ctx context.Context, id bson.ObjectID) (*users.User, error) {
	return r.findOne(ctx, byID(id))
}

// FindByEmail finds a user by email address
func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByKey finds the user holding an authentication key
func (r *UsersRepo) FindByKey(ctx context.Context, key string) (*users.User, error) {
	if key == "" {
		return nil, users.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"authenticationKey": key})
}

func (r *UsersRepo) findOne(ctx context.Context, filter bson.M) (*users.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var user users.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translateNotFound(err, users.ErrUserNotFound)
	}
	return &user, nil
}

// Create inserts a new user
func (r *UsersRepo) Create(ctx context.Context, user *users.User) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return users.ErrDuplicate
		}
		return err
	}
	return nil
}

// Update applies a projected partial update and returns the user after the change.
func (r *UsersRepo) Update(ctx context.Context, projected map[string]any) (*users.User, error) {
	id, fields := entity.Split(projected)
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, users.ErrInvalidID
	}

	update := setUnset(fields)
	if len(update) == 0 {
		return r.FindByID(ctx, oid)
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user users.User
	err = r.collection.FindOneAndUpdate(ctx, byID(oid), update, opts).Decode(&user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, users.ErrDuplicate
		}
		return nil, translateNotFound(err, users.ErrUserNotFound)
	}
	return &user, nil
}

// UpdateRoleByCreated sets role on every user with created in [from, to).
func (r *UsersRepo) UpdateRoleByCreated(ctx context.Context, from, to time.Time, role users.Role) (int64, int64, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	filter := bson.M{"created": bson.M{"$gte": from, "$lt": to}}
	res, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// TouchLastQuery stamps lastQueryTime. A missing user is not an error.
func (r *UsersRepo) TouchLastQuery(ctx context.Context, id bson.ObjectID, at time.Time) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"lastQueryTime": at}})
	return err
}

// Delete removes one user and returns the deleted count.
func (r *UsersRepo) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	res, err := r.collection.DeleteOne(ctx, byID(id))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteMany removes every listed user and returns the deleted count.
func (r *UsersRepo) DeleteMany(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := repoCtx(ctx)
	defer cancel()

	res, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

var _ users.Repository = (*UsersRepo)(nil)
