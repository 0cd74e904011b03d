package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runRoot executes the root command with args and returns stdout and stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("expected version %s in output, got %q", version, out)
	}

	out, _, err = runRoot(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got["version"] != version {
		t.Errorf("version = %q, want %q", got["version"], version)
	}
}

func TestKernelCmdJSON(t *testing.T) {
	out, _, err := runRoot(t, "kernel", "--a", "1", "--n", "-2", "--trim-ratio", "50", "--length", "10", "--values", "--json")
	if err != nil {
		t.Fatalf("kernel failed: %v", err)
	}

	var report kernelReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if report.Length != 7 || report.RawLength != 10 || !report.Truncated {
		t.Errorf("unexpected report %+v", report)
	}
	if len(report.Values) != 7 || report.Values[1] != 0.25 {
		t.Errorf("values = %v", report.Values)
	}
}

func TestKernelCmdTable(t *testing.T) {
	out, stderr, err := runRoot(t, "kernel", "--a", "2", "--n", "1", "--trim-ratio", "1e6", "--length", "5")
	if err != nil {
		t.Fatalf("kernel failed: %v", err)
	}
	if !strings.Contains(out, "Threshold") || !strings.Contains(out, "false") {
		t.Errorf("unexpected table %q", out)
	}
	if !strings.Contains(stderr, "kernel built") {
		t.Errorf("expected info log on stderr, got %q", stderr)
	}
}

func TestEvalCmdUnitScenario(t *testing.T) {
	for _, method := range []string{"fft", "discrete"} {
		t.Run(method, func(t *testing.T) {
			out, _, err := runRoot(t, "eval", "--a", "1", "--n", "0", "--c", "0", "--trim-ratio", "1e6",
				"--length", "5", "--probe", "ones", "--method", method, "--json")
			if err != nil {
				t.Fatalf("eval failed: %v", err)
			}

			var report evalReport
			if err := json.Unmarshal([]byte(out), &report); err != nil {
				t.Fatalf("invalid JSON %q: %v", out, err)
			}
			if report.Method != method {
				t.Errorf("method = %s, want %s", report.Method, method)
			}
			want := []float64{1, 2, 3, 4, 5}
			if len(report.Output) != len(want) {
				t.Fatalf("output = %v, want %v", report.Output, want)
			}
			for i := range want {
				if d := report.Output[i] - want[i]; d > 1e-9 || d < -1e-9 {
					t.Fatalf("output = %v, want %v", report.Output, want)
				}
			}
		})
	}
}

func TestEvalCmdInvalidMethod(t *testing.T) {
	_, _, err := runRoot(t, "eval", "--method", "median")
	if err == nil || !strings.Contains(err.Error(), "median") {
		t.Fatalf("expected invalid method error, got %v", err)
	}
}

func TestEvalCmdInvalidTrimRatio(t *testing.T) {
	_, _, err := runRoot(t, "eval", "--trim-ratio", "1")
	if err == nil || !strings.Contains(err.Error(), "trim_ratio") {
		t.Fatalf("expected trim ratio error, got %v", err)
	}
}

func TestEvalCmdConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "run.yaml")
	content := `
params:
  a: 3
  n: 0
  c: 1
  trim_ratio: 1000
length: 4
probe: impulse
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	// Flags override the file.
	out, _, err := runRoot(t, "eval", "--config", configPath, "--c", "0", "--json")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	var report evalReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if report.Probe != "impulse" || len(report.Output) != 4 {
		t.Fatalf("unexpected report %+v", report)
	}
	for i, v := range report.Output {
		if d := v - 3; d > 1e-9 || d < -1e-9 {
			t.Fatalf("output[%d] = %v, want 3 (impulse response of a flat kernel)", i, v)
		}
	}
}

func TestCompareCmd(t *testing.T) {
	out, _, err := runRoot(t, "compare", "--length", "300", "--n", "-0.8", "--trim-ratio", "500", "--probe", "step", "--json")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	var report compareReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if !report.Agree || report.KernelLength < 1 || report.KernelLength > 300 {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestEvalCmdNoiseProbe(t *testing.T) {
	out1, _, err := runRoot(t, "eval", "--probe", "noise", "--seed", "7", "--length", "32", "--json")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	out2, _, err := runRoot(t, "eval", "--probe", "noise", "--seed", "7", "--length", "32", "--method", "discrete", "--json")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	var fft, discrete evalReport
	if err := json.Unmarshal([]byte(out1), &fft); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(out2), &discrete); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for i := range fft.Input {
		if fft.Input[i] != discrete.Input[i] {
			t.Fatalf("seeded noise differs at %d", i)
		}
		if d := fft.Output[i] - discrete.Output[i]; d > 1e-9 || d < -1e-9 {
			t.Fatalf("methods differ at %d: %v vs %v", i, fft.Output[i], discrete.Output[i])
		}
	}
}

func TestEvalCmdUnknownProbe(t *testing.T) {
	_, _, err := runRoot(t, "eval", "--probe", "chirp")
	if err == nil || !strings.Contains(err.Error(), "chirp") {
		t.Fatalf("expected unknown probe error, got %v", err)
	}
}

func TestKernelCmdJSONOverflow(t *testing.T) {
	out, _, err := runRoot(t, "kernel", "--n", "200", "--length", "100", "--values", "--json")
	if err != nil {
		t.Fatalf("kernel failed: %v", err)
	}

	var report map[string]any
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if report["peak"] != "+Inf" || report["area"] != "+Inf" {
		t.Errorf("peak = %v, area = %v, want +Inf", report["peak"], report["area"])
	}
	values, ok := report["values"].([]any)
	if !ok || len(values) != 100 || values[99] != "+Inf" {
		t.Errorf("values tail = %v", report["values"])
	}
}

func TestEvalCmdJSONNonFinite(t *testing.T) {
	out, _, err := runRoot(t, "eval", "--n", "200", "--length", "100", "--probe", "ones", "--json")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if !json.Valid([]byte(out)) || !strings.Contains(out, `"+Inf"`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLogLevelCaseInsensitive(t *testing.T) {
	_, stderr, err := runRoot(t, "kernel", "--log-level", "DEBUG")
	if err != nil {
		t.Fatalf("kernel failed: %v", err)
	}
	if !strings.Contains(stderr, "configuration resolved") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}

func TestMaxDiffsPerSample(t *testing.T) {
	want := []float64{1e12, 1e-3, 0, math.NaN(), math.Inf(1)}
	got := []float64{1e12, 1e-3 * (1 + 1e-5), 0, math.NaN(), math.Inf(1)}

	maxAbs, maxRel := maxDiffs(got, want)
	if math.Abs(maxRel-1e-5) > 1e-9 {
		t.Errorf("maxRel = %v, want 1e-5", maxRel)
	}
	if maxAbs > 1e-7 {
		t.Errorf("maxAbs = %v, want about 1e-8", maxAbs)
	}
}
