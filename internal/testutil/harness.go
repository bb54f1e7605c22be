package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/app"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/report"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/sim"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput  string
	Err        error
	App        *app.App
	Report     *report.Report
	ReportPath string
}

// RunValidation provides a standardized harness for running validation
// integration tests using a default background context. Passing no adapters
// selects the compiled-in simulation set.
func RunValidation(t *testing.T, files map[string]string, adapters ...sim.Adapter) *HarnessResult {
	t.Helper()
	return RunValidationWithContext(context.Background(), t, files, adapters...)
}

// RunValidationWithContext runs one full validation pipeline inside a
// temporary workspace with a specific context provided by the caller. The
// files map uses relative paths: manifests belong under "manifest/",
// reference documents anywhere else (commonly "data/").
func RunValidationWithContext(ctx context.Context, t *testing.T, files map[string]string, adapters ...sim.Adapter) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir, err := os.MkdirTemp("", ".tmp-validation-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	manifestDir := filepath.Join(tmpDir, "manifest")
	require.NoError(t, os.Mkdir(manifestDir, 0755))

	// 2. Write all workspace files. Relative paths in the map naturally
	//    create the subdirectory structure within the root tmpDir.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	reportPath := filepath.Join(tmpDir, "report.json")
	cfg, err := app.NewConfig(app.Config{
		ManifestPath: manifestDir,
		DataDir:      tmpDir,
		ReportPath:   reportPath,
		LogLevel:     "debug",
		LogFormat:    "text",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("PM_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.New(logBuffer, cfg, adapters...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("PM_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result := &HarnessResult{
		LogOutput:  logBuffer.String(),
		Err:        runErr,
		App:        testApp,
		ReportPath: reportPath,
	}

	// Parse the artifact back so assertions can work on the typed report.
	if raw, err := os.ReadFile(reportPath); err == nil {
		var rep report.Report
		require.NoError(t, json.Unmarshal(raw, &rep))
		result.Report = &rep
	}

	return result
}
