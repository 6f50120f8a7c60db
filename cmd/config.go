package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"ecom-report/internal/dialect"

	"github.com/spf13/viper"
)

// Settings is the resolved pipeline configuration
// (flag > env > config file > default, via viper).
type Settings struct {
	Driver  string
	DSN     string
	DataDir string
	SQLFile string
	Output  string
	Style   string
}

func GetSettings() Settings {
	return Settings{
		Driver:  viper.GetString("database.driver"),
		DSN:     viper.GetString("database.dsn"),
		DataDir: viper.GetString("load.data_dir"),
		SQLFile: viper.GetString("report.sql_file"),
		Output:  viper.GetString("report.output"),
		Style:   viper.GetString("report.style"),
	}
}

// IsSqlite reports whether the DSN is a plain database file.
func (s Settings) IsSqlite() bool {
	return s.Driver == "sqlite3"
}

// openDatabase opens and pings the configured database. For sqlite the
// parent directory is created first when create is set.
func openDatabase(s Settings, create bool) (*sql.DB, dialect.Dialect, error) {
	if s.IsSqlite() && create {
		if dir := filepath.Dir(s.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("failed to create database folder %s: %w", dir, err)
			}
		}
	}

	d := dialect.GetDialect(s.Driver)
	db, err := sql.Open(d.Driver(), s.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return db, d, nil
}
