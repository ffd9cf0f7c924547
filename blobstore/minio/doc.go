// Package minio provides a MinIO implementation of blobstore.Store for
// self-hosted S3-compatible object storage.
package minio
