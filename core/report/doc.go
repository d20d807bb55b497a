// Package report turns a session snapshot into an exportable audit report.
//
// Reports carry the counters, the scanned, extra and missing lists and the
// manifest column selection, encoded as JSON or YAML. They are uploaded to the
// bucket under Config.Prefix and archived by the history feature.
package report
