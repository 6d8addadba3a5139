package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/cruise/config"
)

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// Nil manager is a no-op
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteMilestone(Milestone{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestOutputManager_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error = %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteTelemetry(WindowStats{SimTimeSec: float64(i * 10), Money: int64(i * 100), Ships: i}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteMilestone(Milestone{Type: MilestoneFirstShip, SimTime: 1.5, Value: 1, Description: "Launched"}); err != nil {
		t.Fatal(err)
	}
	if err := om.WritePerf(PerfStats{}, 10); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, filepath.Join(dir, "telemetry.csv"))
	if len(lines) != 4 {
		t.Fatalf("telemetry.csv has %d lines, want header + 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "sim_time,money,passengers,reputation,ships,income") {
		t.Errorf("telemetry header = %q", lines[0])
	}
	if strings.Contains(lines[0], "WindowStartSec") {
		t.Error("skipped column exported")
	}
	if !strings.HasPrefix(lines[3], "30,300,") {
		t.Errorf("last row = %q", lines[3])
	}

	lines = readLines(t, filepath.Join(dir, "milestones.csv"))
	if len(lines) != 2 || lines[0] != "type,sim_time,value,description" || lines[1] != "first_ship,1.5,1,Launched" {
		t.Errorf("milestones.csv = %q", lines)
	}

	lines = readLines(t, filepath.Join(dir, "perf.csv"))
	if len(lines) != 2 {
		t.Errorf("perf.csv has %d lines, want 2", len(lines))
	}
	wantPerf := "sim_time,frames,frame_mean_us,frame_p95_us,frame_max_us,loop_hz,income_ticks,income_mean_us," +
		"commands_pct,autopilot_pct,broadcast_pct,telemetry_pct"
	if lines[0] != wantPerf {
		t.Errorf("perf header = %q, want %q", lines[0], wantPerf)
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot does not load: %v", err)
	}
}
