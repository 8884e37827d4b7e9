//go:build e2e

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"weather-api/internal/config"
)

const (
	loginEndpoint    = "/users/login"
	logoutEndpoint   = "/users/logout"
	registerEndpoint = "/users/register"

	authHeader = "authenticationKey"
	e2eDBName  = "e2e"

	stderrTail = 64 * 1024
)

// TestEnvironment is one Mongo container plus one server process talking to it
type TestEnvironment struct {
	MongoURI string
	BaseURL  string
	Client   *http.Client
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	mu  sync.Mutex
	buf []byte
	max int
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.max; over > 0 {
		b.buf = b.buf[over:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}

// startMongo runs mongo:8.0 for the lifetime of the test and returns its URI.
func startMongo(ctx context.Context, t *testing.T) string {
	t.Helper()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:8.0",
			ExposedPorts: []string{"27017/tcp"},
			Env: map[string]string{
				"MONGO_INITDB_ROOT_USERNAME": "root",
				"MONGO_INITDB_ROOT_PASSWORD": "example",
			},
			WaitingFor: wait.ForExec([]string{"mongosh", "--quiet", "--eval", "db.adminCommand('ping')"}).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "start mongo container")
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	endpoint, err := c.PortEndpoint(ctx, "27017/tcp", "")
	require.NoError(t, err)
	return fmt.Sprintf("mongodb://root:example@%s/", endpoint)
}

// serverCommand prefers a prebuilt binary from BIN_SERVER and falls back to go run.
func serverCommand() *exec.Cmd {
	if bin := os.Getenv("BIN_SERVER"); bin != "" {
		return exec.Command(bin)
	}
	cmd := exec.Command("go", "run", "./cmd/server")
	cmd.Dir = "../"
	return cmd
}

// startServer launches the API against mongoURI on a free port and returns its base URL.
// The whole process group is killed when the test ends.
func startServer(t *testing.T, mongoURI string, extraEnv map[string]string) string {
	t.Helper()

	port, err := randomPort()
	require.NoError(t, err)

	stderr := &tailBuffer{max: stderrTail}
	cmd := serverCommand()
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdout = io.Discard
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		"MONGO_URI="+mongoURI,
		"MONGO_DB_NAME="+e2eDBName,
		"APP_PORT="+port,
		"LOG_LEVEL=info",
		"BCRYPT_COST=4",
	)
	for k, v := range extraEnv {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	require.NoError(t, cmd.Start(), "start server")
	t.Logf("server pid %d on :%s", cmd.Process.Pid, port)

	exited := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	t.Cleanup(func() {
		if pgid, err := syscall.Getpgid(cmd.Process.Pid); err == nil {
			_ = syscall.Kill(-pgid, syscall.SIGKILL)
		}
		select {
		case <-exited:
		case <-time.After(5 * time.Second):
			_ = cmd.Process.Kill()
		}
		if t.Failed() {
			t.Logf("server stderr:\n%s", stderr.String())
		}
	})

	baseURL := "http://localhost:" + port
	if err := waitHealthy(baseURL, exited, 30*time.Second); err != nil {
		t.Fatalf("%v\nserver stderr:\n%s", err, stderr.String())
	}
	return baseURL
}

// waitHealthy polls /healthz until it answers 200, the process exits or timeout passes.
func waitHealthy(baseURL string, exited <-chan struct{}, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.After(timeout)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	for {
		resp, err := client.Get(baseURL + "/healthz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-exited:
			return fmt.Errorf("server exited before becoming healthy")
		case <-deadline:
			return fmt.Errorf("server not healthy on %s after %s", baseURL, timeout)
		case <-tick.C:
		}
	}
}

// SetupTestEnvironment starts Mongo and the server with default settings
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	return SetupTestEnvironmentWithEnv(t, nil)
}

// SetupTestEnvironmentWithEnv starts Mongo and the server with extra environment variables
func SetupTestEnvironmentWithEnv(t *testing.T, extraEnv map[string]string) *TestEnvironment {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	mongoURI := startMongo(ctx, t)
	return &TestEnvironment{
		MongoURI: mongoURI,
		BaseURL:  startServer(t, mongoURI, extraEnv),
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// register creates a student account through the public endpoint.
func register(t *testing.T, c *http.Client, baseURL, email, password string) {
	t.Helper()
	status, _ := doJSON(t, c, http.MethodPost, baseURL+registerEndpoint, "", map[string]string{
		"email":     email,
		"password":  password,
		"firstName": "E2E",
		"lastName":  "Student",
	})
	require.Equal(t, http.StatusOK, status)
}

// login returns a fresh authentication key for the account.
func login(t *testing.T, c *http.Client, baseURL, email, password string) string {
	t.Helper()
	status, body := doJSON(t, c, http.MethodPost, baseURL+loginEndpoint, "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status, "login %s: %v", email, body)

	key, ok := body["authenticationKey"].(string)
	require.True(t, ok, "login response carries no key: %v", body)
	require.NotEmpty(t, key)
	return key
}

func loginExpect(t *testing.T, c *http.Client, baseURL, email, password string, want int) {
	t.Helper()
	status, _ := doJSON(t, c, http.MethodPost, baseURL+loginEndpoint, "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, want, status)
}

// doJSON sends body as JSON, attaching key as the authentication header when it is
// not empty, and decodes the JSON object that comes back.
func doJSON(t *testing.T, c *http.Client, method, url, key string, body any) (int, map[string]any) {
	t.Helper()

	var buf io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(authHeader, key)
	}

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Errorf("failed to close response body: %v", err)
		}
	}()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}
