package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/baseball-stats/internal/config"
)

func TestNewStats_MemorySource(t *testing.T) {
	stats, err := NewStats(context.Background(), config.Config{DataSource: config.DataSourceMemory}, nil)
	if err != nil {
		t.Fatalf("new stats: %v", err)
	}
	defer stats.Close()

	result, err := stats.Service.TripleCrownWinner(context.Background(), 2012)
	if err != nil {
		t.Fatalf("triple crown: %v", err)
	}
	if result.String() != "cabremi01" {
		t.Fatalf("unexpected 2012 winner: %s", result)
	}
}

func TestNewStats_CSVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batting.csv")
	data := "playerID,yearID,league,teamID,G,AB,R,H,2B,3B,HR,RBI,SB,CS\r" +
		"suzukic01,2007,AL,SEA,161,678,111,238,22,7,6,68,37,8\r" +
		"crispco01,2007,AL,OAK,145,526,85,141,28,3,6,60,28,6\r"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := config.Config{
		DataSource:          config.DataSourceCSV,
		BattingFile:         path,
		BattingRowSeparator: "\r",
	}
	stats, err := NewStats(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new stats: %v", err)
	}
	defer stats.Close()

	got, err := stats.Service.AverageSluggingPercentage(context.Background(), "OAK", 2007)
	if err != nil {
		t.Fatalf("average slugging: %v", err)
	}
	// (104 + 2*28 + 3*3 + 4*6) / 526
	if got != 0.367 {
		t.Fatalf("unexpected slugging percentage: %v", got)
	}
}

func TestNewStats_UnsupportedSource(t *testing.T) {
	if _, err := NewStats(context.Background(), config.Config{DataSource: "mongo"}, nil); err == nil {
		t.Fatalf("expected error for unsupported data source")
	}
}
