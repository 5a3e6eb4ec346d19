package battingcsv

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/baseball-stats/internal/domain/batting"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
)

// DefaultRowSeparator matches the Lahman batting export, which ends rows with
// a bare carriage return.
const DefaultRowSeparator = "\r"

// Reader loads player seasons from a batting CSV file with a header row.
type Reader struct {
	path   string
	rowSep string
	logger *logging.Logger
}

func NewReader(path, rowSep string, logger *logging.Logger) *Reader {
	if rowSep == "" {
		rowSep = DefaultRowSeparator
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Reader{path: path, rowSep: rowSep, logger: logger}
}

func (r *Reader) ListSeasons(ctx context.Context) ([]batting.PlayerSeason, error) {
	if strings.TrimSpace(r.path) == "" {
		return nil, crerr.New("batting file path is required")
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, crerr.Wrapf(err, "open batting file %q", r.path)
	}
	defer f.Close()

	seasons, err := Parse(ctx, f, r.rowSep)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse batting file %q", r.path)
	}

	r.logger.InfoContext(ctx, "batting file loaded", "path", r.path, "seasons", len(seasons))
	return seasons, nil
}

// Parse reads header-keyed rows separated by rowSep. Header names are
// lower-cased so "playerID" and "2B" match the batting column names.
func Parse(ctx context.Context, in io.Reader, rowSep string) ([]batting.PlayerSeason, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, crerr.Wrap(err, "read batting data")
	}

	content := strings.TrimPrefix(string(raw), "\ufeff")
	if rowSep != "" && rowSep != "\n" {
		content = strings.ReplaceAll(content, rowSep, "\n")
	}

	cr := csv.NewReader(strings.NewReader(content))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, crerr.Wrap(err, "read header")
	}
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}

	seasons := make([]batting.PlayerSeason, 0, 1024)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Wrap(err, "read record")
		}
		line, _ := cr.FieldPos(0)

		row := make(map[string]string, len(columns))
		for i, value := range record {
			if i >= len(columns) {
				break
			}
			row[columns[i]] = value
		}

		season, err := batting.FromRow(row)
		if err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}
		if err := season.Validate(); err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}
		seasons = append(seasons, season)
	}

	return seasons, nil
}
