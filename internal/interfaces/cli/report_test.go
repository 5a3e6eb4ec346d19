package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/baseball-stats/internal/config"
	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
	"github.com/riskibarqy/baseball-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	improved    batting.BattingAverageDifference
	improvedOK  bool
	slugging    float64
	sluggingErr error
	crowns      map[int]batting.TripleCrownResult
	crownErr    error
}

func (f fakeStats) MostImprovedBattingAverage(context.Context, int, int) (batting.BattingAverageDifference, bool, error) {
	return f.improved, f.improvedOK, nil
}

func (f fakeStats) AverageSluggingPercentage(context.Context, string, int) (float64, error) {
	return f.slugging, f.sluggingErr
}

func (f fakeStats) TripleCrownWinner(_ context.Context, year int) (batting.TripleCrownResult, error) {
	if f.crownErr != nil {
		return batting.TripleCrownResult{}, f.crownErr
	}
	return f.crowns[year], nil
}

func defaultReportConfig() config.ReportConfig {
	return config.ReportConfig{
		ImprovedFromYear: 2009,
		ImprovedToYear:   2010,
		SluggingTeam:     "OAK",
		SluggingYear:     2007,
		CrownYears:       []int{2011, 2012},
	}
}

func TestReporter_RenderText(t *testing.T) {
	t.Parallel()

	stats := fakeStats{
		improved:   batting.BattingAverageDifference{PlayerID: "hamiljo03", Difference: 0.091},
		improvedOK: true,
		slugging:   0.401,
		crowns: map[int]batting.TripleCrownResult{
			2011: batting.NoTripleCrownWinner(),
			2012: batting.TripleCrownWinners("cabremi01"),
		},
	}

	report, err := NewReporter(stats, defaultReportConfig(), nil).Build(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, config.OutputText))

	want := "Most improved batting average (2009 to 2010)\n" +
		"hamiljo03 +0.091\n" +
		"Slugging percentage for OAK during 2007\n" +
		"0.401\n" +
		"Triple crown winner for 2011\n" +
		"(No winner)\n" +
		"Triple crown winner for 2012\n" +
		"cabremi01\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_RenderJSON(t *testing.T) {
	t.Parallel()

	stats := fakeStats{
		slugging: 0.5,
		crowns: map[int]batting.TripleCrownResult{
			2012: batting.TripleCrownWinners("cabremi01"),
		},
	}

	report, err := NewReporter(stats, defaultReportConfig(), nil).Build(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, config.OutputJSON))

	var decoded map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))

	improved := decoded["most_improved"].(map[string]any)
	assert.Nil(t, improved["player_id"])

	crowns := decoded["triple_crowns"].([]any)
	require.Len(t, crowns, 2)
	assert.Nil(t, crowns[0].(map[string]any)["winners"])
	assert.Equal(t, []any{"cabremi01"}, crowns[1].(map[string]any)["winners"])

	slugging := decoded["slugging"].(map[string]any)
	assert.InDelta(t, 0.5, slugging["average"], 1e-9)
}

func TestReporter_EmptySluggingIsReported(t *testing.T) {
	t.Parallel()

	stats := fakeStats{
		sluggingErr: fmt.Errorf("%w: no slugging percentage", usecase.ErrEmptyResultSet),
	}

	report, err := NewReporter(stats, defaultReportConfig(), nil).Build(context.Background())
	require.NoError(t, err)
	assert.Nil(t, report.Slugging.Average)
	assert.Equal(t, "emptyResultSet", report.Slugging.Reason)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, config.OutputText))
	assert.Contains(t, buf.String(), "Slugging percentage for OAK during 2007\nn/a\n")
	assert.Contains(t, buf.String(), "Most improved batting average (2009 to 2010)\n(No winner)\n")
}

func TestReporter_DependencyFailureAborts(t *testing.T) {
	t.Parallel()

	failure := fmt.Errorf("%w: load player seasons: boom", usecase.ErrDependencyUnavailable)
	stats := fakeStats{crownErr: failure}

	_, err := NewReporter(stats, defaultReportConfig(), nil).Build(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestReporter_SeedSeasons(t *testing.T) {
	t.Parallel()

	svc := usecase.NewStatsService(memory.NewSeasonRepository(memory.SeedSeasons()), nil)
	report, err := NewReporter(svc, defaultReportConfig(), nil).Build(context.Background())
	require.NoError(t, err)

	require.NotNil(t, report.MostImproved.PlayerID)
	assert.Equal(t, "hamiljo03", *report.MostImproved.PlayerID)
	require.Len(t, report.TripleCrowns, 2)
	assert.Nil(t, report.TripleCrowns[0].Winners)
	assert.Equal(t, []string{"cabremi01"}, report.TripleCrowns[1].Winners)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Report{}, "xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "invalid input", err: fmt.Errorf("wrap: %w", usecase.ErrInvalidInput), want: ExitInvalidArgs},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, want: ExitFailure},
		{name: "unknown", err: errors.New("boom"), want: ExitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("want exit code %d, got %d", tc.want, got)
			}
		})
	}
}
