// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the bucket
// holding manifests and audit reports can be mocked in tests (see
// core/storage/mocks). Both AWS S3 and self-hosted MinIO are supported.
//
// # Bucket
//
// Bucket scopes the client to one bucket and adds the operations the
// application needs:
//   - Ensure: creates the bucket and the manifest/report folders if missing.
//   - Put: uploads a manifest or a report.
//   - Get: downloads a manifest with a size cap.
//   - List: lists manifests or reports under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	bucket := storage.NewBucket(client, cfg.Storage.Bucket)
//	objects, err := bucket.List(ctx, "manifests/")
package storage
