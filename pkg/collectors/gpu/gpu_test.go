package gpu

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/collectors"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

var _ collectors.Collector = (*Collector)(nil)

const sampleQuery = `0, NVIDIA GeForce RTX 3080, 45
1, NVIDIA Tesla V100, 52
`

func newTestCollector(cfg Config, fn RunFunc) *Collector {
	return New(cfg,
		WithRunFunc(fn),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func staticRun(out string, err error) RunFunc {
	return func(context.Context, string, ...string) ([]byte, error) {
		return []byte(out), err
	}
}

func TestDefaults(t *testing.T) {
	c := New(Config{})
	if c.Name() != "gpu" {
		t.Errorf("Name() = %q, want %q", c.Name(), "gpu")
	}
	if c.Interval() != 10*time.Second {
		t.Errorf("Interval() = %v, want 10s", c.Interval())
	}
	if c.cfg.Command != "nvidia-smi" {
		t.Errorf("Command = %q, want nvidia-smi", c.cfg.Command)
	}
	if !c.Healthy() {
		t.Error("new collector should be healthy")
	}
}

func TestCollectRunsQuery(t *testing.T) {
	var gotName string
	var gotArgs []string
	c := newTestCollector(Config{Command: "/opt/bin/nvidia-smi"}, func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return []byte(sampleQuery), nil
	})

	got, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if gotName != "/opt/bin/nvidia-smi" {
		t.Errorf("command = %q, want /opt/bin/nvidia-smi", gotName)
	}
	if !slices.Contains(gotArgs, "--format=csv,noheader,nounits") {
		t.Errorf("args = %v, want csv format flag", gotArgs)
	}

	want := []collectors.Reading{
		{Sensor: "gpu0", Value: 45, Unit: temperature.Celsius},
		{Sensor: "gpu1", Value: 52, Unit: temperature.Celsius},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQuerySkipsUnavailable(t *testing.T) {
	out := "0, NVIDIA A100, [N/A]\n1, Quadro, with, commas, 61\nnot csv\n\n"

	readings, skipped := parseQuery(out)
	if len(readings) != 1 || readings[0].Sensor != "gpu1" || readings[0].Value != 61 {
		t.Errorf("readings = %+v, want only gpu1 at 61", readings)
	}
	if len(skipped) != 2 {
		t.Errorf("skipped = %q, want 2 lines", skipped)
	}
}

func TestCollectCommandFailure(t *testing.T) {
	runErr := errors.New(`exec: "nvidia-smi": executable file not found in $PATH`)
	c := newTestCollector(DefaultConfig(), staticRun("", runErr))

	_, err := c.Collect(context.Background())
	if !errors.Is(err, runErr) {
		t.Errorf("Collect error = %v, want wrapping %v", err, runErr)
	}
	if c.Healthy() {
		t.Error("collector should be unhealthy after a failed run")
	}
}

func TestCollectNoGPUs(t *testing.T) {
	c := newTestCollector(DefaultConfig(), staticRun("0, NVIDIA A100, [N/A]\n", nil))

	_, err := c.Collect(context.Background())
	if !errors.Is(err, ErrNoGPUs) {
		t.Errorf("Collect error = %v, want ErrNoGPUs", err)
	}
	if c.Healthy() {
		t.Error("collector should be unhealthy with no readings")
	}
}

func TestCollectRecoversHealth(t *testing.T) {
	fail := true
	c := newTestCollector(DefaultConfig(), func(context.Context, string, ...string) ([]byte, error) {
		if fail {
			return nil, errors.New("transient")
		}
		return []byte(sampleQuery), nil
	})

	_, _ = c.Collect(context.Background())
	if c.Healthy() {
		t.Fatal("expected unhealthy after failure")
	}
	fail = false
	if _, err := c.Collect(context.Background()); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !c.Healthy() {
		t.Error("expected healthy after a successful run")
	}
}
