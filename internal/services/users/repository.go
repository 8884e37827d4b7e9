package users

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the interface for user repository operations.
// Update receives an entity projection: the "id" key selects the row, keys with nil
// values are removed from the document and every other key is set.
type Repository interface {
	List(ctx context.Context, limit int64) ([]*User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByKey(ctx context.Context, key string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, projected map[string]any) (*User, error)
	UpdateRoleByCreated(ctx context.Context, from, to time.Time, role Role) (matched, modified int64, err error)
	TouchLastQuery(ctx context.Context, id bson.ObjectID, at time.Time) error
	Delete(ctx context.Context, id bson.ObjectID) (int64, error)
	DeleteMany(ctx context.Context, ids []bson.ObjectID) (int64, error)
}
