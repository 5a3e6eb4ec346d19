package battingcsv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
)

const carriageReturnData = "playerID,yearID,league,teamID,G,AB,R,H,2B,3B,HR,RBI,SB,CS\r" +
	"aardsda01,2012,AL,NYA,1,,,,,,,,,\r" +
	"cabremi01,2012,AL,DET,161,622,109,205,40,0,44,139,4,1\r" +
	"poseybu01,2012,NL,SFN,148,530,78,178,39,1,24,103,1,1\r"

func TestParse_CarriageReturnRows(t *testing.T) {
	seasons, err := Parse(context.Background(), strings.NewReader(carriageReturnData), "\r")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(seasons) != 3 {
		t.Fatalf("expected 3 seasons, got %d", len(seasons))
	}

	cabrera := seasons[1]
	if cabrera.PlayerID != "cabremi01" || cabrera.Year != 2012 || cabrera.League != "AL" || cabrera.Team != "DET" {
		t.Fatalf("unexpected identity: %+v", cabrera)
	}
	if *cabrera.AtBats != 622 || *cabrera.Hits != 205 || *cabrera.Doubles != 40 || *cabrera.HomeRuns != 44 || *cabrera.RBI != 139 {
		t.Fatalf("unexpected counts: %+v", cabrera)
	}
}

func TestParse_EmptyCellsAreAbsent(t *testing.T) {
	seasons, err := Parse(context.Background(), strings.NewReader(carriageReturnData), "\r")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	reliever := seasons[0]
	if reliever.AtBats != nil || reliever.Hits != nil || reliever.RBI != nil {
		t.Fatalf("expected absent counts, got %+v", reliever)
	}
	if _, ok := reliever.BattingAverage(); ok {
		t.Fatalf("expected absent batting average")
	}
}

func TestParse_NewlineRowsAndCRLF(t *testing.T) {
	lf := strings.ReplaceAll(carriageReturnData, "\r", "\n")
	seasons, err := Parse(context.Background(), strings.NewReader(lf), "\n")
	if err != nil {
		t.Fatalf("parse newline data: %v", err)
	}
	if len(seasons) != 3 {
		t.Fatalf("expected 3 seasons, got %d", len(seasons))
	}

	crlf := strings.ReplaceAll(carriageReturnData, "\r", "\r\n")
	seasons, err = Parse(context.Background(), strings.NewReader(crlf), "\r")
	if err != nil {
		t.Fatalf("parse crlf data: %v", err)
	}
	if len(seasons) != 3 {
		t.Fatalf("expected 3 seasons, got %d", len(seasons))
	}
}

func TestParse_InvalidRow(t *testing.T) {
	data := "playerID,yearID,HR\rbadrow01,2012,many\r"
	_, err := Parse(context.Background(), strings.NewReader(data), "\r")
	if !errors.Is(err, batting.ErrInvalidRow) {
		t.Fatalf("expected ErrInvalidRow, got %v", err)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	seasons, err := Parse(context.Background(), strings.NewReader(""), "\r")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(seasons) != 0 {
		t.Fatalf("expected no seasons, got %d", len(seasons))
	}
}

func TestReader_ListSeasons(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Batting-07-12.csv")
	if err := os.WriteFile(path, []byte(carriageReturnData), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	seasons, err := NewReader(path, "", nil).ListSeasons(context.Background())
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 3 {
		t.Fatalf("expected 3 seasons, got %d", len(seasons))
	}

	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.csv"), "", nil).ListSeasons(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
