//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIEndpoint string
	Token       string
	Login       string
	BinaryPath  string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("GHAPI_TEST_API"),
		Token:       os.Getenv("GHAPI_TEST_TOKEN"),
		Login:       envOrDefault("GHAPI_TEST_LOGIN", "octocat"),
		BinaryPath:  getBinaryPath(),
		Verbose:     os.Getenv("GHAPI_VERBOSE") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

// getBinaryPath determines the path to the ghapi binary.
func getBinaryPath() string {
	if path := os.Getenv("GHAPI_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../ghapi", "./ghapi", "../ghapi"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "ghapi"
}

// SkipIfMissingConfig skips the test when no token or binary is available.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skip("GHAPI_TEST_TOKEN not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("ghapi binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the ghapi binary against an isolated config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a runner whose config file lives in a temp dir.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a ghapi command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a ghapi command with stdin input.
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	fullArgs := append([]string{"--config", runner.configFile, "--token", runner.config.Token}, args...)
	if runner.config.APIEndpoint != "" {
		fullArgs = append([]string{"--api", runner.config.APIEndpoint}, fullArgs...)
	}

	// #nosec G204 -- the binary path comes from the test environment
	cmd := exec.Command(runner.config.BinaryPath, fullArgs...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// Envelope is the JSON form of a result.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
}

// DecodeEnvelopes parses every JSON document in output.
func DecodeEnvelopes(t *testing.T, output string) []Envelope {
	t.Helper()

	var envelopes []Envelope

	decoder := json.NewDecoder(strings.NewReader(output))
	for decoder.More() {
		var envelope Envelope
		require.NoError(t, decoder.Decode(&envelope), "output is not JSON: %s", output)

		envelopes = append(envelopes, envelope)
	}

	return envelopes
}
