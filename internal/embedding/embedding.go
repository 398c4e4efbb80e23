// Package embedding turns text into the packed float32 vectors the
// similarity engine compares: providers call out to an embeddings API,
// pooling helpers collapse chunk vectors into one document vector, and the
// codec packs vectors for BLOB storage.
package embedding

import "context"

// Provider generates vector embeddings for text.
type Provider interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
	Dimensions() int
}
