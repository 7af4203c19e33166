package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fraudguard/internal/types"
)

func writeRecord(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScoreCommand_Deterministic(t *testing.T) {
	binaryPath := getBinaryPath(t)

	recordPath := writeRecord(t, `{"title":"Data Entry","description":"gig!!","telecommuting":true,"industry":"marketing"}`)

	first, err := exec.Command(binaryPath, "score", "--in", recordPath).Output()
	require.NoError(t, err)
	second, err := exec.Command(binaryPath, "score", "--in", recordPath).Output()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "default scoring has no jitter")

	var result types.PredictionResult
	require.NoError(t, json.Unmarshal(first, &result))
	assert.Greater(t, result.RiskScore, 0.5)
	assert.InDelta(t, 0.85, result.Confidence, 1e-9)
	assert.NotEmpty(t, result.RiskFactors)
}

func TestScoreCommand_NoisySeedReproducible(t *testing.T) {
	binaryPath := getBinaryPath(t)

	recordPath := writeRecord(t, `{"title":"Data Entry","description":"gig!!"}`)

	first, err := exec.Command(binaryPath, "score", "--in", recordPath, "--noisy", "--seed", "42").Output()
	require.NoError(t, err)
	second, err := exec.Command(binaryPath, "score", "--in", recordPath, "--noisy", "--seed", "42").Output()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "same seed gives same jitter")
}

func TestScoreCommand_VerboseBox(t *testing.T) {
	binaryPath := getBinaryPath(t)

	recordPath := writeRecord(t, `{"title":"Data Entry","description":"gig!!"}`)

	output, err := exec.Command(binaryPath, "score", "--in", recordPath, "--verbose").CombinedOutput()

	require.NoError(t, err)
	assert.Contains(t, string(output), "PREDICTION")
	assert.Contains(t, string(output), "Risk Score")
}

func TestScoreCommand_MalformedJSON(t *testing.T) {
	binaryPath := getBinaryPath(t)

	recordPath := writeRecord(t, `{"title":`)

	output, err := exec.Command(binaryPath, "score", "--in", recordPath).CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to parse job record JSON")
}

func TestScoreCommand_MissingInFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "score").CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}
