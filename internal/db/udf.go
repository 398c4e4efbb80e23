package db

import (
	"database/sql/driver"
	"fmt"

	"modernc.org/sqlite"

	"semql/internal/vecsim"
)

// cosine_similarity(a BLOB, b BLOB) -> REAL
//
// Registered once at process startup, before any connection is opened, and
// available on every connection thereafter. Deterministic, so SQLite may
// cache and reorder calls freely.
func init() {
	sqlite.MustRegisterDeterministicScalarFunction("cosine_similarity", 2, cosineSimilarity)
}

func cosineSimilarity(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, err := blobArg(args[0])
	if err != nil {
		return nil, err
	}
	b, err := blobArg(args[1])
	if err != nil {
		return nil, err
	}

	score, null, err := vecsim.Cosine(a, b)
	if err != nil {
		// Misaligned payloads abort the statement; truncating them would
		// rank rows on garbage.
		return nil, err
	}
	if null {
		return nil, nil
	}
	return score, nil
}

// blobArg accepts the argument classes SQLite can hand a scalar function for
// a vector payload. NULL stays nil so the engine can signal a null result.
func blobArg(v driver.Value) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return x, nil
	case string:
		return []byte(x), nil
	default:
		return nil, fmt.Errorf("cosine_similarity: want BLOB argument, got %T", v)
	}
}
