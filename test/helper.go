//go:build e2e

package test

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weather-api/internal/clients/mongo"
	"weather-api/internal/config"
	"weather-api/internal/services/users"
)

const seedPassword = "Passw0rd123"

// randomPort asks the kernel for an unused TCP port.
func randomPort() (string, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port), nil
}

// seedUser stores an account with the given role straight into the database the
// server uses. Self registration only ever yields students.
func seedUser(t *testing.T, env *TestEnvironment, email string, role users.Role) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	cfg := config.Config{MongoURI: env.MongoURI, MongoDBName: e2eDBName, BcryptCost: 4, ListLimit: 100}
	log := slog.New(slog.DiscardHandler)

	client, err := mongo.Connect(ctx, cfg, log)
	require.NoError(t, err)
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo, err := mongo.NewUsersRepo(ctx, client.DB())
	require.NoError(t, err)

	_, err = users.NewService(repo, cfg, log).Create(ctx, users.CreateRequest{
		Email:     email,
		Password:  seedPassword,
		Role:      string(role),
		FirstName: "Seed",
		LastName:  string(role),
	})
	if errors.Is(err, users.ErrDuplicate) {
		return
	}
	require.NoError(t, err)
}
