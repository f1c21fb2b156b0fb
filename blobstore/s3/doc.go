// Package s3 implements blobstore.Store on Amazon S3, so that the
// encode-side and decode-side processes of the dictionary codec can share
// snapshots through a bucket.
//
//	store, err := s3.NewFromDefaultConfig(ctx, "my-bucket", "dictionaries/")
//	if err != nil { ... }
//	err = dict.SaveToStore(ctx, store, "uniprot-2026-08.dict")
package s3
