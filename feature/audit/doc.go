// Package audit exposes a reconciliation session over HTTP.
//
// The Service owns one reconcile.Session together with the manifest table
// it was loaded from, so the serial and part columns can be re-selected
// without uploading the file again. Requests are applied one at a time.
//
// # Endpoints
//
//   - POST /audit/mode: start a new session in audit or quick capture mode.
//   - POST /audit/manifest: upload an XLSX/CSV manifest (columns guessed unless given).
//   - PUT /audit/manifest/columns: re-select the serial/part columns.
//   - POST /audit/manifest/storage, GET /audit/manifests: manifests kept in the bucket.
//   - POST /audit/scan: record a scanned or typed value.
//   - GET /audit, GET /audit/missing, POST /audit/missing/next: session view and work queue.
//   - GET /audit/missing/all, GET /audit/scanned: newline separated lists for copying.
//   - POST /audit/export: upload a JSON/YAML report and archive it.
//
// # Errors
//
// Unreadable manifests answer 422, unknown columns and modes 400, and
// manifest operations outside audit mode 409. A failed request never
// changes the session.
package audit
