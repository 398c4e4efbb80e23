package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semql/internal/embedding"
)

func TestHybridSearchRanksBySimilarity(t *testing.T) {
	d := openTestDB(t)
	provider := newVocabProvider("cat", "dog", "bird")
	docs := NewDocumentStore(d, provider)
	ctx := context.Background()

	for _, doc := range []struct{ source, content string }{
		{"cats.txt", "cat cat cat"},
		{"dogs.txt", "dog dog dog"},
		{"mixed.txt", "cat dog"},
	} {
		_, _, err := docs.Add(ctx, doc.source, doc.content)
		require.NoError(t, err)
	}

	searcher := NewHybridSearcher(d, provider, 0.7, 0.3)
	results, err := searcher.Search(ctx, "cat", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, "cats.txt", results[0].Source)
	// The pure-dog document has zero similarity and no keyword match.
	for _, r := range results {
		assert.NotEqual(t, "dogs.txt", r.Source)
	}
}

// synonymProvider maps cat/feline onto one axis and dog onto another, so a
// query can be semantically close to a document it shares no keyword with.
type synonymProvider struct{}

func (synonymProvider) Model() string   { return "synonym" }
func (synonymProvider) Dimensions() int { return 2 }

func (synonymProvider) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v := make([]float32, 2)
		for _, w := range strings.Fields(strings.ToLower(text)) {
			switch w {
			case "cat", "feline":
				v[0]++
			case "dog":
				v[1]++
			}
		}
		out[i] = embedding.NormalizeL2(v)
	}
	return out, nil
}

func TestHybridSearchVectorLegFindsSynonyms(t *testing.T) {
	d := openTestDB(t)
	docs := NewDocumentStore(d, synonymProvider{})
	ctx := context.Background()

	_, _, err := docs.Add(ctx, "cats.txt", "cat cat")
	require.NoError(t, err)
	_, _, err = docs.Add(ctx, "dogs.txt", "dog dog")
	require.NoError(t, err)

	// "feline" never appears in any document, so FTS5 finds nothing; only
	// the per-row cosine_similarity ranking can surface cats.txt.
	searcher := NewHybridSearcher(d, synonymProvider{}, 1.0, 0.0)
	results, err := searcher.Search(ctx, "feline", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "cats.txt", results[0].Source)
	assert.Greater(t, results[0].Score, float32(0))
}

func TestSearchFTSOnlyMode(t *testing.T) {
	d := openTestDB(t)
	docs := NewDocumentStore(d, nil)
	ctx := context.Background()

	_, _, err := docs.Add(ctx, "notes.txt", "sqlite write-ahead logging")
	require.NoError(t, err)
	_, _, err = docs.Add(ctx, "other.txt", "unrelated text about gardening")
	require.NoError(t, err)

	searcher := NewHybridSearcher(d, nil, 0.7, 0.3)
	results, err := searcher.Search(ctx, "logging", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "notes.txt", results[0].Source)
}

func TestEscapeFTS5Query(t *testing.T) {
	assert.Equal(t, `"what" "is" "wal?"`, escapeFTS5Query("what is wal?"))
	assert.Equal(t, `"a""b"`, escapeFTS5Query(`a"b`))
	assert.Equal(t, "", escapeFTS5Query(""))
}
