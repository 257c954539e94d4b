// SPDX-License-Identifier: MIT
// Package bench_test contains unit tests for the case table and the driver.
package bench_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/linbench/bench"
	"github.com/katalvlaran/linbench/matrix"
	"github.com/katalvlaran/linbench/report"
	"github.com/katalvlaran/linbench/timing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// countingClock advances by step on every reading and counts readings.
type countingClock struct {
	now   time.Duration
	step  time.Duration
	reads int
}

func (c *countingClock) Now() time.Duration {
	c.reads++
	c.now += c.step
	return c.now
}

// fastHarness keeps batched runs short on the real clock.
func fastHarness() *timing.Harness {
	return timing.New(timing.WithThreshold(1e-4))
}

// gemmBuilder is a minimal C += A·B case on the reference kernel.
func gemmBuilder(n int, _ bench.Fill, _ *rand.Rand) (timing.Op, error) {
	a, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	b, _ := matrix.NewSquare(n)
	c, _ := matrix.NewSquare(n)

	return func() error { return matrix.MulAdd(c, a, b) }, nil
}

func lines(t *testing.T, s string) []string {
	t.Helper()
	var out []string
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	require.NoError(t, sc.Err())

	return out
}

func TestRunGemmPrintsHeaderAndOneLinePerSize(t *testing.T) {
	var buf bytes.Buffer
	suite := bench.Suite{Name: "test", Cases: []bench.Case{
		{Name: bench.CaseGemm, Fill: bench.FillZero, Build: gemmBuilder},
	}}
	d := bench.New(bench.WithSizes(32, 64), bench.WithOutput(&buf), bench.WithHarness(fastHarness()))

	res, err := d.Run(context.Background(), suite)
	require.NoError(t, err)

	got := lines(t, buf.String())
	require.Len(t, got, 3)
	require.Equal(t, "gemm", got[0])
	for _, l := range got[1:] {
		v, perr := report.ParseDuration(l)
		require.NoError(t, perr, "line %q", l)
		require.Greater(t, v, 0.0)
	}

	require.Len(t, res, 1)
	require.Equal(t, bench.CaseGemm, res[0].Case)
	require.Equal(t, []int{32, 64}, res[0].Sizes)
	require.Len(t, res[0].Seconds, 2)
}

func TestRunWarmupUsesConfiguredCount(t *testing.T) {
	for _, warmup := range []int{0, 1, bench.DefaultWarmup} {
		clk := &countingClock{step: time.Second}
		d := bench.New(
			bench.WithWarmup(warmup),
			bench.WithOutput(&bytes.Buffer{}),
			bench.WithHarness(timing.New(timing.WithClock(clk))),
		)
		_, err := d.Run(context.Background(), bench.Suite{Name: "empty"})
		require.NoError(t, err)
		require.Equal(t, 2*warmup, clk.reads, "warmup=%d", warmup)
	}
}

func TestRunPassesFillAndSizeToBuilder(t *testing.T) {
	type call struct {
		n    int
		fill bench.Fill
	}
	var calls []call
	build := func(n int, fill bench.Fill, rnd *rand.Rand) (timing.Op, error) {
		require.NotNil(t, rnd)
		calls = append(calls, call{n, fill})
		return func() error { return nil }, nil
	}
	suite := bench.Suite{Cases: []bench.Case{
		{Name: "a", Fill: bench.FillIdentity, Build: build},
		{Name: "b", Fill: bench.FillRandom, Build: build},
	}}
	d := bench.New(bench.WithSizes(3, 5), bench.WithOutput(&bytes.Buffer{}), bench.WithHarness(fastHarness()))

	_, err := d.Run(context.Background(), suite)
	require.NoError(t, err)
	require.Equal(t, []call{
		{3, bench.FillIdentity}, {5, bench.FillIdentity},
		{3, bench.FillRandom}, {5, bench.FillRandom},
	}, calls)
}

func TestRunStopsOnOpError(t *testing.T) {
	boom := errors.New("boom")
	var buf bytes.Buffer
	suite := bench.Suite{Cases: []bench.Case{
		{Name: "ok", Build: gemmBuilder},
		{Name: "bad", Build: func(int, bench.Fill, *rand.Rand) (timing.Op, error) {
			return func() error { return boom }, nil
		}},
		{Name: "never", Build: gemmBuilder},
	}}
	d := bench.New(bench.WithSizes(4), bench.WithOutput(&buf), bench.WithHarness(fastHarness()))

	res, err := d.Run(context.Background(), suite)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "bad n=4")
	require.Len(t, res, 2)
	require.Empty(t, res[1].Seconds)

	out := lines(t, buf.String())
	require.Equal(t, []string{"ok", out[1], "bad"}, out, "the failing case header is flushed")
}

func TestRunStopsOnBuildError(t *testing.T) {
	suite := bench.Suite{Cases: []bench.Case{
		{Name: "bad", Build: func(n int, _ bench.Fill, _ *rand.Rand) (timing.Op, error) {
			_, err := matrix.NewSquare(-n)
			return nil, err
		}},
	}}
	d := bench.New(bench.WithSizes(2), bench.WithOutput(&bytes.Buffer{}))

	_, err := d.Run(context.Background(), suite)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRunRejectsMissingBuilder(t *testing.T) {
	d := bench.New(bench.WithOutput(&bytes.Buffer{}))
	_, err := d.Run(context.Background(), bench.Suite{Cases: []bench.Case{{Name: "x"}}})
	require.ErrorIs(t, err, bench.ErrNoBuilder)
}

func TestRunHonoursCancellationBetweenSizes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	built := 0
	suite := bench.Suite{Cases: []bench.Case{
		{Name: "c", Build: func(int, bench.Fill, *rand.Rand) (timing.Op, error) {
			built++
			cancel()
			return func() error { return nil }, nil
		}},
	}}
	d := bench.New(bench.WithSizes(1, 2, 3), bench.WithOutput(&buf), bench.WithHarness(fastHarness()))

	res, err := d.Run(ctx, suite)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, built)
	require.Len(t, res, 1)
	require.Equal(t, []int{1}, res[0].Sizes)
	require.Len(t, lines(t, buf.String()), 2)
}

func TestRunLogsMeasurements(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	suite := bench.Suite{Name: "s", Cases: []bench.Case{{Name: bench.CaseGemm, Build: gemmBuilder}}}
	d := bench.New(
		bench.WithSizes(8),
		bench.WithOutput(&bytes.Buffer{}),
		bench.WithLogger(logger),
		bench.WithHarness(fastHarness()),
	)

	_, err := d.Run(context.Background(), suite)
	require.NoError(t, err)
	require.Contains(t, logs.String(), `"case":"gemm"`)
	require.Contains(t, logs.String(), `"n":8`)
	require.Contains(t, logs.String(), "benchmark finished")
}

func TestCasesTableOrderAndFills(t *testing.T) {
	cases := bench.Cases(bench.Builders{Trsm: gemmBuilder})
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Name
	}
	require.Equal(t, []string{
		"gemm", "trsm", "triangular inverse", "cholesky decomposition",
		"lu partial piv", "lu full piv", "qr", "col piv qr", "inverse",
	}, names)

	require.Equal(t, bench.FillZero, cases[0].Fill)
	require.Equal(t, bench.FillIdentity, cases[3].Fill)
	for _, c := range cases[4:] {
		require.Equal(t, bench.FillRandom, c.Fill, c.Name)
	}
	require.NotNil(t, cases[1].Build)
	require.NotNil(t, cases[2].Build, "triangular inverse reuses the trsm builder")
}

func TestSuiteOnlyKeepsTableOrder(t *testing.T) {
	s := bench.Suite{Name: "s", Cases: bench.Cases(bench.Builders{})}
	got := s.Only(bench.CaseInverse, bench.CaseGemm, "missing")
	require.Equal(t, "s", got.Name)
	require.Len(t, got.Cases, 2)
	require.Equal(t, bench.CaseGemm, got.Cases[0].Name)
	require.Equal(t, bench.CaseInverse, got.Cases[1].Name)
}

func TestFillString(t *testing.T) {
	require.Equal(t, "zero", bench.FillZero.String())
	require.Equal(t, "identity", bench.FillIdentity.String())
	require.Equal(t, "random", bench.FillRandom.String())
	require.Equal(t, "Fill(9)", bench.Fill(9).String())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { bench.WithSizes() })
	require.Panics(t, func() { bench.WithSizes(32, 0) })
	require.Panics(t, func() { bench.WithWarmup(-1) })
	require.Panics(t, func() { bench.WithOutput(nil) })
	require.Panics(t, func() { bench.WithHarness(nil) })
}

func TestDefaultSizes(t *testing.T) {
	require.Equal(t, []int{32, 64, 96, 128, 192, 256, 384, 512, 640, 768, 896, 1024}, bench.New().Sizes())
}

func TestCPUFeaturesAndEnvironmentBanner(t *testing.T) {
	_ = bench.CPUFeatures()

	var logs bytes.Buffer
	bench.LogEnvironment(zerolog.New(&logs))
	require.Contains(t, logs.String(), `"message":"environment"`)
	require.Contains(t, logs.String(), `"arch":`)
}

func TestNewConsoleLoggerOnPlainFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()

	log := bench.NewConsoleLogger(f)
	log.Debug().Msg("hidden")
	log.Info().Str("k", "v").Msg("shown")

	raw, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	require.Contains(t, string(raw), "shown")
	require.Contains(t, string(raw), "k=v")
	require.NotContains(t, string(raw), "hidden")
	require.NotContains(t, string(raw), "\x1b[", "no colour on a non-terminal")
}

func TestRunTagsLogsWithRunID(t *testing.T) {
	var logs bytes.Buffer
	d := bench.New(bench.WithWarmup(0), bench.WithOutput(&bytes.Buffer{}), bench.WithLogger(zerolog.New(&logs)))

	for i := 0; i < 2; i++ {
		_, err := d.Run(context.Background(), bench.Suite{Name: "s"})
		require.NoError(t, err)
	}

	var ids []string
	for _, l := range lines(t, logs.String()) {
		var ev struct {
			Run string `json:"run"`
		}
		require.NoError(t, json.Unmarshal([]byte(l), &ev))
		_, err := uuid.Parse(ev.Run)
		require.NoError(t, err, "run id %q", ev.Run)
		ids = append(ids, ev.Run)
	}
	require.Len(t, ids, 4)
	require.Equal(t, ids[0], ids[1])
	require.NotEqual(t, ids[0], ids[2], "each Run gets its own id")
}
