// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface so catalog CSVs
// can be read from, and reconciliation reports written to, either AWS S3 or a
// self-hosted MinIO instance. The interface is mocked in core/storage/mocks.
//
// # Helpers
//
//   - ReadObject: downloads an object, ErrObjectNotFound for a missing key.
//   - WriteObject: uploads a byte slice with a content type.
//   - ObjectExists: StatObject based presence check.
//   - ListKeys: recursive listing under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "catalog/interfaces.csv")
package storage
