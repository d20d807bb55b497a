// Package history archives exported audit reports in the database.
//
// Every report uploaded by the audit feature is recorded with its counters,
// its manifest source and the bucket key of the full report. The feature is
// only loaded when a database connection is available.
//
//   - GET /history: archived reports, newest first (?limit=N).
//   - GET /history/:id: one archived report.
package history
