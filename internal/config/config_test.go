package config

import (
	"testing"

	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("BATTING_ROW_SEP", "")
	t.Setenv("OUTPUT_FORMAT", "")
	t.Setenv("REPORT_CROWN_YEARS", "")
	t.Setenv("BATTING_FILE", "")
	t.Setenv("APP_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataSource != DataSourceCSV {
		t.Fatalf("unexpected default data source: %q", cfg.DataSource)
	}
	if cfg.BattingFile != "./data/Batting-07-12.csv" {
		t.Fatalf("unexpected default batting file: %q", cfg.BattingFile)
	}
	if cfg.BattingRowSeparator != "\r" {
		t.Fatalf("unexpected default row separator: %q", cfg.BattingRowSeparator)
	}
	if cfg.OutputFormat != OutputText {
		t.Fatalf("unexpected default output format: %q", cfg.OutputFormat)
	}
	if cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("unexpected dev log format: %q", cfg.LogFormat)
	}

	report := cfg.Report
	if report.ImprovedFromYear != 2009 || report.ImprovedToYear != 2010 {
		t.Fatalf("unexpected improved years: %d -> %d", report.ImprovedFromYear, report.ImprovedToYear)
	}
	if report.SluggingTeam != "OAK" || report.SluggingYear != 2007 {
		t.Fatalf("unexpected slugging literals: %s %d", report.SluggingTeam, report.SluggingYear)
	}
	if len(report.CrownYears) != 2 || report.CrownYears[0] != 2011 || report.CrownYears[1] != 2012 {
		t.Fatalf("unexpected crown years: %+v", report.CrownYears)
	}
}

func TestLoad_ProdDefaultsToJSONLogs(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("expected json logs in prod, got %q", cfg.LogFormat)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=https://token@api.uptrace.dev?grpc=4317")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DataSourceValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown DATA_SOURCE")
		}
	})

	t.Run("postgres source", func(t *testing.T) {
		t.Setenv("DATA_SOURCE", "Postgres")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DataSource != DataSourcePostgres {
			t.Fatalf("unexpected data source: %q", cfg.DataSource)
		}
	})
}

func TestLoad_OutputFormatValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("OUTPUT_FORMAT", "yaml")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported OUTPUT_FORMAT")
	}
}

func TestLoad_ReportLiterals(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("REPORT_SLUGGING_TEAM", " NYA ")
	t.Setenv("REPORT_SLUGGING_YEAR", "2010")
	t.Setenv("REPORT_CROWN_YEARS", " 2008, ,2012 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Report.SluggingTeam != "NYA" || cfg.Report.SluggingYear != 2010 {
		t.Fatalf("unexpected slugging literals: %+v", cfg.Report)
	}
	if len(cfg.Report.CrownYears) != 2 || cfg.Report.CrownYears[0] != 2008 {
		t.Fatalf("unexpected crown years: %+v", cfg.Report.CrownYears)
	}

	t.Run("invalid crown year", func(t *testing.T) {
		t.Setenv("REPORT_CROWN_YEARS", "2011,twenty-twelve")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid REPORT_CROWN_YEARS")
		}
	})
}

func TestLoad_ImportBatchSize(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("IMPORT_BATCH_SIZE", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for IMPORT_BATCH_SIZE=0")
	}
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestParseRowSeparator(t *testing.T) {
	cases := map[string]string{
		`\r`:   "\r",
		"CR":   "\r",
		`\n`:   "\n",
		"crlf": "\r\n",
		";":    ";",
	}
	for raw, want := range cases {
		got, err := parseRowSeparator(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %q, got %q", raw, want, got)
		}
	}

	if _, err := parseRowSeparator(`\`); err == nil {
		t.Fatalf("expected error for dangling escape")
	}
}
