// Package database handles database connections for the audit report archive.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, sets pool limits and pings the
// database within the configured timeout.
//
// # Schema Inspection
//
// MissingColumns compares a table's live columns with the columns a model
// expects, so the archive can report a drifted schema after migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Archive disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "audit_records", "id", "mode")
package database
