package db

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
)

//go:embed scripts/*.sql
var bootstrapScripts embed.FS

// BootstrapDB executes all embedded .sql files against the provided database, in alphabetical
// order by filename. If no files are found, an error is returned.
func BootstrapDB(DB *sql.DB, logger *slog.Logger) error {
	foundSQLFile := false
	scripts, err := bootstrapScripts.ReadDir("scripts")
	if err != nil {
		return err
	}
	for _, finfo := range scripts {
		if finfo.IsDir() {
			continue
		}
		foundSQLFile = true

		script, err := bootstrapScripts.ReadFile("scripts/" + finfo.Name())
		if err != nil {
			return err
		}
		_, err = DB.Exec(string(script))
		if err != nil {
			return fmt.Errorf("could not execute bootstrap script %s: %w", finfo.Name(), err)
		}
		logger.Debug("executed bootstrap script", slog.String("script", finfo.Name()))
	}
	if !foundSQLFile {
		return fmt.Errorf("could not find any *.sql files in schema folder scripts")
	}
	return nil
}
