package docstore

import (
	"context"
	"io"
)

// Bucket names mirror the hosted storage buckets of the product.
const (
	BucketProfilePictures = "user-profile-pictures"
	BucketBizDocuments    = "biz-documents"
	BucketAiResponseDocs  = "ai-response-docs"
)

// Store is a path-addressed blob store with public URLs.
type Store interface {
	Upload(ctx context.Context, bucket, path string, r io.Reader) error
	Download(ctx context.Context, bucket, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, bucket, path string) error
	PublicURL(bucket, path string) string
}
