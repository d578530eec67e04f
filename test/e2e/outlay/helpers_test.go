package outlay_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/outlay-labs/outlay/pkg/outlaysdk"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for the expense API end-to-end
 * tests: container setup, signup/login flows, and assertions.
 */

const (
	testImageName = "outlay-api-test:latest"

	testUsername = "alice"
	testEmail    = "alice@example.com"
	testPassword = "CorrectHorse1!"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Outlay API Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Outlay API Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/outlay/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// setupAPIContainer starts the API in a container and returns the base URL.
// Rate limits are raised well above the defaults so rapid test requests
// don't trip them; the rate limit test brings its own container.
func setupAPIContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"OUTLAY_DATABASE_FILE": "/tmp/outlay.db",
			"OUTLAY_PEPPER_FILE":   "/tmp/pepper",
			"OUTLAY_ISSUER":        "outlay-api",
			"OUTLAY_TOKEN_SECRET":  "e2e-test-secret-0123456789abcdefghij",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",

			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupAPIContainerWithDefaultRateLimits starts the API with PRODUCTION
// rate limits, for testing that rate limiting actually works.
func setupAPIContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"OUTLAY_DATABASE_FILE": "/tmp/outlay.db",
			"OUTLAY_PEPPER_FILE":   "/tmp/pepper",
			"OUTLAY_ISSUER":        "outlay-api",
			"OUTLAY_TOKEN_SECRET":  "e2e-test-secret-0123456789abcdefghij",
			"ENV":                  "test",
			"LOG_LEVEL":            "info",
			"LOG_FORMAT":           "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// signupAndLogin registers the standard test user and returns an
// authenticated session.
func signupAndLogin(t *testing.T, client *outlaysdk.Client) *outlaysdk.Session {
	t.Helper()
	ctx := context.Background()

	user, err := client.Signup(ctx, testUsername, testEmail, testPassword)
	require.NoError(t, err, "Signup should succeed")
	require.NotEmpty(t, user.ID)

	session, err := client.Login(ctx, testUsername, testPassword)
	require.NoError(t, err, "Login should succeed")
	require.NotNil(t, session)

	return session
}

// assertAPIError verifies err is an *APIError with the expected code.
func assertAPIError(t *testing.T, err error, code string, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *outlaysdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, code, apiErr.Code, context)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *outlaysdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
