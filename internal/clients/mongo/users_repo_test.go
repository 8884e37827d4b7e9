//go:build !short

package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"weather-api/internal/entity"
	"weather-api/internal/services/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const msgExpectedNoError = "expected no error"

func newTestUser(email string, created time.Time) *users.User {
	return &users.User{
		ID:        bson.NewObjectID(),
		Email:     email,
		Password:  "hashedpassword",
		Role:      users.RoleStudent,
		FirstName: "Test",
		LastName:  "User",
		Created:   created.UTC().Truncate(time.Millisecond),
	}
}

func newUsersRepo(t *testing.T) *UsersRepo {
	t.Helper()
	db, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	repo, err := NewUsersRepo(context.Background(), db)
	require.NoError(t, err)
	return repo
}

func TestUsersRepoCreateAndFind(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newUsersRepo(t)

	user := newTestUser("test@example.com", time.Now())
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Create(ctx, newTestUser("test@example.com", time.Now()))
	assert.ErrorIs(t, err, users.ErrDuplicate, "expected duplicate error")

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err, msgExpectedNoError)
	assert.Equal(t, user, found)

	found, err = repo.FindByEmail(ctx, user.Email)
	require.NoError(t, err, msgExpectedNoError)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nonexistent@example.com")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUsersRepoKeyLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newUsersRepo(t)

	a := newTestUser("a@example.com", time.Now())
	b := newTestUser("b@example.com", time.Now())
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	updated, err := repo.Update(ctx, entity.Project(a.ID.Hex(), map[string]any{"authenticationKey": "key-a"}))
	require.NoError(t, err)
	require.NotNil(t, updated.AuthenticationKey)
	assert.Equal(t, "key-a", *updated.AuthenticationKey)

	found, err := repo.FindByKey(ctx, "key-a")
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)

	_, err = repo.Update(ctx, entity.Project(b.ID.Hex(), map[string]any{"authenticationKey": "key-a"}))
	assert.ErrorIs(t, err, users.ErrDuplicate, "keys are unique")

	// both users logged out: sparse index must allow two documents without a key
	_, err = repo.Update(ctx, entity.Project(a.ID.Hex(), map[string]any{"authenticationKey": nil}))
	require.NoError(t, err)
	_, err = repo.Update(ctx, entity.Project(b.ID.Hex(), map[string]any{"authenticationKey": nil}))
	require.NoError(t, err)

	_, err = repo.FindByKey(ctx, "key-a")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
	_, err = repo.FindByKey(ctx, "")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUsersRepoUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newUsersRepo(t)

	user := newTestUser("c@example.com", time.Now())
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.Update(ctx, entity.Project(user.ID.Hex(), map[string]any{"firstName": "Ada", "role": users.RoleTeacher}))
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, users.RoleTeacher, got.Role)
	assert.Equal(t, user.Email, got.Email)

	same, err := repo.Update(ctx, entity.Project(user.ID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, got, same)

	_, err = repo.Update(ctx, entity.Project(bson.NewObjectID().Hex(), map[string]any{"firstName": "x"}))
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	_, err = repo.Update(ctx, entity.Project("", map[string]any{"firstName": "x"}))
	assert.ErrorIs(t, err, users.ErrInvalidID)
}

func TestUsersRepoUpdateRoleByCreated(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newUsersRepo(t)

	day := func(d int) time.Time { return time.Date(2023, 5, d, 0, 0, 0, 0, time.UTC) }
	inside1 := newTestUser("in1@example.com", day(1))
	inside2 := newTestUser("in2@example.com", day(7).Add(23*time.Hour))
	outside := newTestUser("out@example.com", day(8))
	for _, u := range []*users.User{inside1, inside2, outside} {
		require.NoError(t, repo.Create(ctx, u))
	}

	matched, modified, err := repo.UpdateRoleByCreated(ctx, day(1), day(8), users.RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, int64(2), matched)
	assert.Equal(t, int64(2), modified)

	for _, u := range []*users.User{inside1, inside2} {
		got, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, users.RoleTeacher, got.Role)
	}
	got, err := repo.FindByID(ctx, outside.ID)
	require.NoError(t, err)
	assert.Equal(t, users.RoleStudent, got.Role)
}

func TestUsersRepoListTouchDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	repo := newUsersRepo(t)

	var ids []bson.ObjectID
	for _, email := range []string{"1@example.com", "2@example.com", "3@example.com"} {
		u := newTestUser(email, time.Now())
		require.NoError(t, repo.Create(ctx, u))
		ids = append(ids, u.ID)
	}

	list, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[0], list[0].ID)

	at := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.TouchLastQuery(ctx, ids[0], at))
	got, err := repo.FindByID(ctx, ids[0])
	require.NoError(t, err)
	require.NotNil(t, got.LastQueryTime)
	assert.True(t, at.Equal(*got.LastQueryTime))

	n, err := repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, ids[0])
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.DeleteMany(ctx, ids[1:])
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func setupTestDB(t *testing.T) (*mongo.Database, func()) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	// Allow override, useful on CI
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		t.Skip("MongoDB not available for testing:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		t.Skip("MongoDB ping failed:", err)
	}

	db := client.Database("test_weather_" + bson.NewObjectID().Hex())

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	}

	return db, cleanup
}
