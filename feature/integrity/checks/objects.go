package checks

import (
	"context"

	"interface-reconciler/core/storage"
)

// CheckObjects returns the keys that do not exist in the bucket. Empty keys are ignored.
func CheckObjects(ctx context.Context, client storage.Client, bucket string, keys []string) ([]string, error) {
	if err := requireBucket(ctx, client, bucket); err != nil {
		return nil, err
	}

	missing := []string{}
	for _, key := range keys {
		if key == "" {
			continue
		}
		exists, err := storage.ObjectExists(ctx, client, bucket, key)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, key)
		}
	}
	return missing, nil
}
