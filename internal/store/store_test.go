package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semql/internal/db"
	"semql/internal/embedding"
)

// vocabProvider embeds text as a normalized bag of known words, one axis per
// word. Deterministic and collision-free for test vocabularies.
type vocabProvider struct {
	axes map[string]int
	dim  int
}

func newVocabProvider(words ...string) *vocabProvider {
	axes := make(map[string]int, len(words))
	for i, w := range words {
		axes[w] = i
	}
	return &vocabProvider{axes: axes, dim: len(words)}
}

func (p *vocabProvider) Model() string   { return "vocab" }
func (p *vocabProvider) Dimensions() int { return p.dim }

func (p *vocabProvider) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v := make([]float32, p.dim)
		for _, w := range strings.Fields(strings.ToLower(text)) {
			if ax, ok := p.axes[strings.Trim(w, ".,!?")]; ok {
				v[ax]++
			}
		}
		out[i] = embedding.NormalizeL2(v)
	}
	return out, nil
}

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, d.Migrate())
	return d
}

func TestDocumentStoreAddAndDedupe(t *testing.T) {
	d := openTestDB(t)
	s := NewDocumentStore(d, newVocabProvider("cat", "dog"))
	ctx := context.Background()

	id1, added, err := s.Add(ctx, "a.txt", "the cat sat")
	require.NoError(t, err)
	assert.True(t, added)

	id2, added, err := s.Add(ctx, "b.txt", "the cat sat")
	require.NoError(t, err)
	assert.False(t, added, "same content must not be re-indexed")
	assert.Equal(t, id1, id2)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, s.Delete(ctx, id1))
	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestDocumentStoreKeywordOnly(t *testing.T) {
	d := openTestDB(t)
	s := NewDocumentStore(d, nil)
	ctx := context.Background()

	id, added, err := s.Add(ctx, "a.txt", "no embedder configured")
	require.NoError(t, err)
	require.True(t, added)

	var emb []byte
	err = d.Conn().QueryRow(`SELECT embedding FROM documents WHERE id = ?`, id).Scan(&emb)
	require.NoError(t, err)
	assert.Empty(t, emb)
}

func TestSplitChunks(t *testing.T) {
	content := "first paragraph\n\nsecond paragraph\n\nthird"
	chunks := splitChunks(content, 1000)
	assert.Equal(t, []string{content}, chunks, "small paragraphs merge into one chunk")

	chunks = splitChunks(content, 20)
	assert.Equal(t, []string{"first paragraph", "second paragraph", "third"}, chunks)

	assert.Equal(t, []string{"   "}, splitChunks("   ", 10), "whitespace-only content still yields a chunk")
}
