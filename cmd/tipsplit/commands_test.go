package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/tipsplit/internal/config"
	"github.com/muurk/tipsplit/internal/discovery"
	"github.com/muurk/tipsplit/internal/form"
	"github.com/muurk/tipsplit/internal/server"
	"github.com/muurk/tipsplit/internal/ui"
)

// runCLI executes the root command with args and returns its output
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func viewFor(t *testing.T, bill, tip, people string) form.View {
	t.Helper()
	state, err := form.NewStateFromInputs(bill, tip, people)
	if err != nil {
		t.Fatalf("NewStateFromInputs() error = %v", err)
	}
	return form.NewView(state)
}

func TestWriteCalcFormats(t *testing.T) {
	view := viewFor(t, "142.55", "15", "5")

	tests := []struct {
		format string
		want   []string
	}{
		{"detailed", []string{"Tip Split", "$142.55", "15%", "$4.28", "$32.79"}},
		{"compact", []string{"tip $4.28  total $32.79  per person"}},
		{"json", []string{`"tip_per_person": "$4.28"`, `"tip_mode": "preset"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out bytes.Buffer
			printer := ui.NewPrinter(&out).WithWidth(72)
			if err := writeCalc(&out, printer, tt.format, view); err != nil {
				t.Fatalf("writeCalc() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestWriteCalcUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := writeCalc(&out, ui.NewPrinter(&out), "yaml", viewFor(t, "10", "", "1"))
	if err == nil {
		t.Error("writeCalc(yaml) error = nil, want error")
	}
}

func TestCalcCommand(t *testing.T) {
	out, err := runCLI(t, "calc", "--bill", "60", "--tip", "22.5", "--people", "3", "--format", "json")
	if err != nil {
		t.Fatalf("calc error = %v", err)
	}

	var view form.View
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("output is not a JSON view: %v\n%s", err, out)
	}
	if view.TipMode != "custom" || view.CustomTip != "22.5" {
		t.Errorf("tip = %s %q, want custom 22.5", view.TipMode, view.CustomTip)
	}
	// 60 * 0.225 / 3 = 4.5; (60 + 13.5) / 3 = 24.5
	if view.TipPerPerson != "$4.50" || view.TotalPerPerson != "$24.50" {
		t.Errorf("split = %s / %s, want $4.50 / $24.50", view.TipPerPerson, view.TotalPerPerson)
	}
}

func TestCalcCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr func(error) bool
	}{
		{
			name:    "letters in bill",
			args:    []string{"calc", "--bill", "12a", "--tip", "", "--people", "1", "--format", "compact"},
			wantErr: form.IsInputError,
		},
		{
			name:    "leading zero people",
			args:    []string{"calc", "--bill", "12", "--tip", "", "--people", "05", "--format", "compact"},
			wantErr: form.IsInputError,
		},
		{
			name:    "zero people",
			args:    []string{"calc", "--bill", "12", "--tip", "10", "--people", "0", "--format", "compact"},
			wantErr: func(err error) bool { return errors.Is(err, errZeroPeople) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if err == nil || !tt.wantErr(err) {
				t.Errorf("calc error = %v", err)
			}
		})
	}
}

func TestServerConfigPrecedence(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 9000
	cfg.Server.Advertise = true
	cfg.Logging.Level = "warn"

	t.Run("file values without flags", func(t *testing.T) {
		got := serverConfig(cfg, serveFlags{})
		want := &server.Config{Host: "0.0.0.0", Port: 9000, Advertise: true, LogLevel: "warn"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("serverConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("flags override file", func(t *testing.T) {
		port := 7000
		advertise := false
		name := "patio"
		got := serverConfig(cfg, serveFlags{port: &port, advertise: &advertise, name: &name})
		want := &server.Config{Host: "0.0.0.0", Port: 7000, Advertise: false, InstanceName: "patio", LogLevel: "warn"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("serverConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		got := serverConfig(config.NewConfig(), serveFlags{})
		if got.Port != config.DefaultPort || got.Advertise || got.Host != "" {
			t.Errorf("serverConfig() = %+v, want defaults", got)
		}
	})
}

func TestConfigPathCommand(t *testing.T) {
	out, err := runCLI(t, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "config.yaml") {
		t.Errorf("config path = %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "tipsplit ") {
		t.Errorf("version output = %q", out)
	}
}

func TestProbeInstance(t *testing.T) {
	srv, err := server.New(&server.Config{})
	if err != nil {
		t.Fatalf("server.New() error = %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	host, portStr, _ := net.SplitHostPort(strings.TrimPrefix(ts.URL, "http://"))
	port, _ := strconv.Atoi(portStr)
	inst := &discovery.Instance{
		Name:     "test",
		IP:       host,
		Port:     port,
		Metadata: map[string]string{"version": "advertised"},
	}

	ver, status := probeInstance(context.Background(), inst)
	if status != "online" {
		t.Errorf("status = %q, want online", status)
	}
	if ver == "advertised" {
		t.Error("version should come from the server, not the TXT record")
	}

	ts.Close()
	ver, status = probeInstance(context.Background(), inst)
	if status == "online" {
		t.Error("closed server reported online")
	}
	if ver != "advertised" {
		t.Errorf("version = %q, want advertised fallback", ver)
	}
}

func TestProbeInstanceUnhealthy(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/healthz":
			_, _ = w.Write([]byte("starting"))
		case "/version":
			_, _ = w.Write([]byte(`{"version":"live"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	host, portStr, _ := net.SplitHostPort(strings.TrimPrefix(ts.URL, "http://"))
	port, _ := strconv.Atoi(portStr)
	inst := &discovery.Instance{
		Name:     "test",
		IP:       host,
		Port:     port,
		Metadata: map[string]string{"version": "advertised"},
	}

	ver, status := probeInstance(context.Background(), inst)
	if status != "bad response" {
		t.Errorf("status = %q, want bad response", status)
	}
	if ver != "advertised" {
		t.Errorf("version = %q, want advertised fallback", ver)
	}
}
