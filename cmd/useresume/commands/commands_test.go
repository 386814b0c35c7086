package commands

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestToolsCommand(t *testing.T) {
	out, err := execute(t, "", "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "create_resume")
	assert.Contains(t, out, "get_run_status")
	assert.Equal(t, 7, strings.Count(out, "credits"))

	withSchema, err := execute(t, "", "tools", "--schema")
	require.NoError(t, err)
	assert.Contains(t, withSchema, `"run_id"`)
}

func TestEncodeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.docx")
	require.NoError(t, os.WriteFile(path, []byte("docx bytes"), 0o600))

	out, err := execute(t, "", "encode", path)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "docx bytes", string(decoded))

	_, err = execute(t, "", "encode", filepath.Join(t.TempDir(), "notes.txt"))
	assert.Error(t, err)
}

func TestCallUnknownTool(t *testing.T) {
	_, err := execute(t, "", "call", "make_coffee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool "make_coffee"`)
}

// The dispatcher is a process-wide singleton, so every command that talks
// to the remote service is exercised in this one test.
func TestCallAndRunAgainstRemote(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/run/get/"):
			_, _ = io.WriteString(w, `{"success":true,"data":{"id":"run_7","status":"success","file_url":"https://cdn/f.pdf","created_at":1700000000000}}`)
		default:
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = io.WriteString(w, `{"error":"balance too low"}`)
		}
	}))
	defer srv.Close()
	t.Setenv("RESUME_API_KEY", "ur_cli_test_key_1")
	t.Setenv("RESUME_API_BASE_URL", srv.URL)

	out, err := execute(t, "", "run", "run_7")
	require.NoError(t, err)
	var env map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, "https://cdn/f.pdf", env["data"].(map[string]any)["file_url"])

	out, err = execute(t, `{"content":{"name":"Ada"}}`, "call", "create_resume", "--input", "-")
	assert.ErrorIs(t, err, errOperationFailed)
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, "Insufficient credits. balance too low", env["error"])

	out, err = execute(t, `{"parse_to":"markdown"}`, "call", "parse_resume", "-i", "-")
	assert.ErrorIs(t, err, errOperationFailed)
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, "validation_error", env["type"])

	assert.Equal(t, []string{"/run/get/run_7", "/resume/create"}, paths)
}
