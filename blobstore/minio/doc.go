// Package minio implements blobstore.Store on MinIO and other
// S3-compatible object stores.
//
//	client, err := minio.New(endpoint, &minio.Options{Creds: creds})
//	if err != nil { ... }
//	store := miniostore.NewStore(client, "annotations", "dictionaries/")
package minio
