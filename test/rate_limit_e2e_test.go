//go:build e2e

package test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestLoginRateLimitE2E(t *testing.T) {
	const maxPerMinute = 3 // small quota so we hit 429 quickly

	env := SetupTestEnvironmentWithEnv(t, map[string]string{
		"LOGIN_RATE_PER_MIN": fmt.Sprint(maxPerMinute),
	})

	const email = "ratelimit@example.com"
	register(t, env.Client, env.BaseURL, email, seedPassword)

	for i := 0; i < maxPerMinute; i++ {
		loginExpect(t, env.Client, env.BaseURL, email, seedPassword, http.StatusOK)
	}
	loginExpect(t, env.Client, env.BaseURL, email, seedPassword, http.StatusTooManyRequests)

	// other routes are not throttled
	status, _ := doJSON(t, env.Client, http.MethodGet, env.BaseURL+"/healthz", "", nil)
	if status != http.StatusOK {
		t.Fatalf("healthz after login throttling: got %d", status)
	}
}
