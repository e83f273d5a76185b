package folio_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/folio"
)

func TestUse_Caching(t *testing.T) {
	folio.Reset()

	m1, err := folio.Use(folio.KeyLatexEncoding, folio.Copy)
	require.NoError(t, err)
	m2, err := folio.Use(folio.KeyLatexEncoding, folio.Copy)
	require.NoError(t, err)

	assert.Same(t, m1, m2)
}

func TestUse_DistinctOwnership(t *testing.T) {
	folio.Reset()

	copyMw, err := folio.Use(folio.KeyLatexDecoding, folio.Copy)
	require.NoError(t, err)
	inPlace, err := folio.Use(folio.KeyLatexDecoding, folio.InPlace)
	require.NoError(t, err)

	assert.NotSame(t, copyMw, inPlace)
	assert.Equal(t, folio.Copy, copyMw.(*folio.LatexDecoding).Ownership())
	assert.Equal(t, folio.InPlace, inPlace.(*folio.LatexDecoding).Ownership())
}

func TestUse_Errors(t *testing.T) {
	folio.Reset()

	_, err := folio.Use("rot13", folio.Copy)
	assert.ErrorIs(t, err, folio.ErrUnknownMiddleware)

	_, err = folio.Use(folio.KeyLatexEncoding, "shared")
	assert.ErrorIs(t, err, folio.ErrInvalidOwnership)
}

func TestReset(t *testing.T) {
	m1, _ := folio.Use(folio.KeyLatexEncoding, folio.Copy)

	folio.Reset()

	m2, _ := folio.Use(folio.KeyLatexEncoding, folio.Copy)
	assert.NotSame(t, m1, m2)
}

func TestRegister(t *testing.T) {
	folio.Reset()

	calls := 0
	folio.Register("upper", func(own folio.Ownership) (folio.BlockMiddleware, error) {
		calls++
		return folio.NewFieldWalker("upper", folio.TransformerFunc(func(s string) (string, error) {
			return strings.ToUpper(s), nil
		}), own)
	})

	m, err := folio.Use("upper", folio.Copy)
	require.NoError(t, err)
	_, err = folio.Use("upper", folio.Copy)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	out, err := m.TransformString(context.Background(), &folio.String{Key: "s", Value: folio.Text("abc")}, nil)
	require.NoError(t, err)
	assert.Equal(t, folio.Text("ABC"), out.(*folio.String).Value)

	// Re-registering drops the cached instance.
	failing := errors.New("disabled")
	folio.Register("upper", func(folio.Ownership) (folio.BlockMiddleware, error) {
		return nil, failing
	})
	_, err = folio.Use("upper", folio.Copy)
	assert.ErrorIs(t, err, failing)
}
