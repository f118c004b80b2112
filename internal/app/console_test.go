package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/webue/webue-client/internal/config"
)

func newTestConsole(t *testing.T, handler http.HandlerFunc) *Console {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		APIURL:         srv.URL,
		RequestTimeout: 5 * time.Second,
		TokenStore:     "bbolt",
		TokenPath:      filepath.Join(t.TempDir(), "credentials.db"),
		ExportDir:      filepath.Join(t.TempDir(), "output"),
	}
	console, err := NewConsole(cfg, nil)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	t.Cleanup(func() { console.Close() })
	return console
}

// execute runs one command line against a fresh command tree.
func execute(console *Console, stdin io.Reader, args ...string) (string, error) {
	var out bytes.Buffer
	root := NewRootCommand(console)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLoginThenList(t *testing.T) {
	var listAuth string
	var loginBody map[string]string
	console := newTestConsole(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			_ = json.NewDecoder(r.Body).Decode(&loginBody)
			writeJSON(w, http.StatusOK, map[string]string{"token": "abc123"})
		case "/api/ue_profiles":
			listAuth = r.Header.Get("Authorization")
			writeJSON(w, http.StatusOK, []map[string]interface{}{
				{"supi": "imsi-208930000000001", "mcc": "208", "mnc": "93", "amf": "8000"},
			})
		default:
			http.NotFound(w, r)
		}
	})

	out, err := execute(console, strings.NewReader("s3cret\n"), "login", "admin", "--password-stdin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, "signed in as admin") {
		t.Fatalf("unexpected login output %q", out)
	}
	if loginBody["password"] != "s3cret" {
		t.Fatalf("expected password from stdin, got %#v", loginBody)
	}

	out, err = execute(console, nil, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.HasPrefix(out, "signed in (") {
		t.Fatalf("unexpected whoami output %q", out)
	}

	out, err = execute(console, nil, "profiles", "list")
	if err != nil {
		t.Fatalf("profiles list: %v", err)
	}
	if listAuth != "Bearer abc123" {
		t.Fatalf("expected stored token on list, got %q", listAuth)
	}
	for _, want := range []string{"SUPI", "imsi-208930000000001", "208-93"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLoginRequiresPasswordStdin(t *testing.T) {
	console := newTestConsole(t, func(http.ResponseWriter, *http.Request) {
		t.Fatalf("no request expected")
	})

	if _, err := execute(console, nil, "login", "admin"); err == nil {
		t.Fatalf("expected error without --password-stdin")
	}
	if _, err := execute(console, strings.NewReader("\n"), "login", "admin", "--password-stdin"); err == nil {
		t.Fatalf("expected error for empty password")
	}
	if _, err := execute(console, strings.NewReader("pw\n"), "login", "admin", "secret", "--password-stdin"); err == nil {
		t.Fatalf("expected error for positional password")
	}
}

func TestLogoutDropsHeader(t *testing.T) {
	var present bool
	console := newTestConsole(t, func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		writeJSON(w, http.StatusOK, []interface{}{})
	})
	if err := console.store.SaveToken("abc123"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	if _, err := execute(console, nil, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := execute(console, nil, "profiles", "list"); err != nil {
		t.Fatalf("profiles list: %v", err)
	}
	if present {
		t.Fatalf("expected no Authorization header after logout")
	}
}

func TestUnauthorizedSuggestsLogin(t *testing.T) {
	console := newTestConsole(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
	})

	_, err := execute(console, nil, "profiles", "list")
	if err == nil {
		t.Fatalf("expected error on 401")
	}
	if !strings.Contains(err.Error(), "webuectl login") {
		t.Fatalf("expected login hint, got %q", err.Error())
	}
}

func TestUpdateProfileFromFile(t *testing.T) {
	var got map[string]interface{}
	console := newTestConsole(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/ue_profiles/imsi-1" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]string{"message": "UE Profile updated successfully"})
	})
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("amf: \"8000\"\nimei: \"356938035643803\"\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out, err := execute(console, nil, "profiles", "update", "imsi-1", "-f", path)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out != "updated imsi-1\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if got["supi"] != "imsi-1" || got["amf"] != "8000" || got["imei"] != "356938035643803" {
		t.Fatalf("unexpected body %#v", got)
	}
}

func TestUpdateProfileRequiresFile(t *testing.T) {
	console := newTestConsole(t, func(http.ResponseWriter, *http.Request) {
		t.Fatalf("no request expected")
	})
	if _, err := execute(console, nil, "profiles", "update", "imsi-1"); err == nil {
		t.Fatalf("expected error without -f")
	}
}

func TestExportProfiles(t *testing.T) {
	console := newTestConsole(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]string{{"supi": "imsi-1"}, {"supi": "imsi-2"}})
	})
	dir := filepath.Join(t.TempDir(), "yaml")

	out, err := execute(console, nil, "profiles", "export", "--dir", dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, supi := range []string{"imsi-1", "imsi-2"} {
		if _, err := os.Stat(filepath.Join(dir, "ue_profile_"+supi+".yaml")); err != nil {
			t.Fatalf("expected export for %s: %v", supi, err)
		}
	}
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected two written paths, got:\n%s", out)
	}
}

func TestGenerateProfiles(t *testing.T) {
	console := newTestConsole(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ue_profiles/generate" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "UE Profiles generated and saved successfully",
			"profiles": []map[string]string{{"supi": "imsi-1"}},
		})
	})
	path := filepath.Join(t.TempDir(), "generate.yaml")
	if err := os.WriteFile(path, []byte("num_ues: 1\nplmnid:\n  mcc: \"208\"\n  mnc: \"93\"\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out, err := execute(console, nil, "profiles", "generate", "-f", path)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "(1 profiles)") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestArgumentErrors(t *testing.T) {
	console := newTestConsole(t, func(http.ResponseWriter, *http.Request) {
		t.Fatalf("no request expected")
	})
	cases := [][]string{
		{"bogus"},
		{"profiles", "delete"},
		{"profiles", "generate"},
		{"whoami", "extra"},
	}
	for _, args := range cases {
		if _, err := execute(console, nil, args...); err == nil {
			t.Fatalf("args %v: expected error", args)
		}
	}
}
