// ABOUTME: Tests for the size command
// ABOUTME: Verifies sizing output formatting and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mfreeman/hydronic-sizer/cli/internal/client"
)

func TestFormatSizingHuman_Resolved(t *testing.T) {
	result := &client.SizingResult{
		StandardSize:    `36"`,
		PipeIDIn:        34.5,
		FlowGPM:         27296,
		VelocityFtS:     9.4,
		PressureDropPsi: 2.4,
		Resolved:        true,
	}

	output := formatSizingHuman(result)

	if !strings.Contains(output, `36"`) {
		t.Error("expected pipe size in output")
	}
	if !strings.Contains(output, "27296 GPM") {
		t.Error("expected flow in output")
	}
	if !strings.Contains(output, "resolved") {
		t.Error("expected resolved status in output")
	}
}

func TestFormatSizingHuman_Unresolved(t *testing.T) {
	result := &client.SizingResult{
		PipeIDIn: 52.3,
		Resolved: false,
	}

	output := formatSizingHuman(result)

	if !strings.Contains(output, "unresolved") {
		t.Error("expected unresolved status in output")
	}
	if !strings.Contains(output, "exceeds schedule") {
		t.Error("expected schedule note in output")
	}
}

func TestSizeCommand_MissingFlags(t *testing.T) {
	sizeLoadMW = 0
	sizeMassFlow = 0

	var buf bytes.Buffer
	exitCode := runSize(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "--load or --mass-flow") {
		t.Error("expected flag hint in output")
	}
}

func TestSizeCommand_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.SizingResult{
			StandardSize: `12"`,
			FlowGPM:      4500,
			Resolved:     true,
		})
	}))
	defer server.Close()

	apiURL = server.URL
	sizeLoadMW = 10
	defer func() {
		apiURL = ""
		sizeLoadMW = 0
	}()

	var buf bytes.Buffer
	exitCode := runSize(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), `12"`) {
		t.Error("expected pipe size in output")
	}
}

func TestSizeCommand_Unresolved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.SizingResult{
			PipeIDIn: 52.3,
			Resolved: false,
		})
	}))
	defer server.Close()

	apiURL = server.URL
	sizeLoadMW = 500
	defer func() {
		apiURL = ""
		sizeLoadMW = 0
	}()

	var buf bytes.Buffer
	exitCode := runSize(context.Background(), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1 for unresolved size, got %d", exitCode)
	}
}

func TestSizeCommand_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(client.ErrorResponse{Error: "unknown fluid type", Code: 400})
	}))
	defer server.Close()

	apiURL = server.URL
	sizeLoadMW = 10
	defer func() {
		apiURL = ""
		sizeLoadMW = 0
	}()

	var buf bytes.Buffer
	exitCode := runSize(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "unknown fluid type") {
		t.Error("expected backend error in output")
	}
}
