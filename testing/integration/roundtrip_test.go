package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/folio"
	"github.com/zoobzio/folio/bson"
	"github.com/zoobzio/folio/json"
	"github.com/zoobzio/folio/msgpack"
	foliotest "github.com/zoobzio/folio/testing"
	"github.com/zoobzio/folio/xml"
	"github.com/zoobzio/folio/yaml"
)

var codecs = map[string]folio.Codec{
	"json":    json.New(),
	"xml":     xml.New(),
	"yaml":    yaml.New(),
	"msgpack": msgpack.New(),
	"bson":    bson.New(),
}

// TestEncodeSnapshotDecode encodes a library, persists it with every codec,
// reads it back and decodes it to the original text.
func TestEncodeSnapshotDecode(t *testing.T) {
	ctx := context.Background()
	folio.Reset()

	enc, err := folio.Use(folio.KeyLatexEncoding, folio.Copy)
	require.NoError(t, err)
	dec, err := folio.Use(folio.KeyLatexDecoding, folio.Copy)
	require.NoError(t, err)

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			lib := foliotest.SampleLibrary()

			encoded, err := folio.Apply(ctx, lib, enc, folio.WithWorkers(4))
			require.NoError(t, err)
			assert.Equal(t, foliotest.SampleLibrary(), lib, "copy ownership must not touch the input")

			title, ok := encoded.Entries()[0].Get("title")
			require.True(t, ok)
			assert.Equal(t, folio.Text(`Caf\'e culture in Z\"urich`), title.Value)

			data, err := folio.Marshal(c, encoded)
			require.NoError(t, err)

			restored, err := folio.Unmarshal(c, data)
			require.NoError(t, err)
			assert.Equal(t, encoded, restored)

			decoded, err := folio.Apply(ctx, restored, dec, folio.WithWorkers(4))
			require.NoError(t, err)
			assert.Equal(t, foliotest.SampleLibrary(), decoded)
		})
	}
}

func TestEncodedValues(t *testing.T) {
	enc, err := folio.NewLatexEncoding(folio.InPlace)
	require.NoError(t, err)

	lib, err := folio.Apply(context.Background(), foliotest.SampleLibrary(), enc)
	require.NoError(t, err)

	entries := lib.Entries()
	require.Len(t, entries, 2)

	journal, _ := entries[0].Get("journal")
	assert.Equal(t, folio.Text(`{\O}konomi \& Samfund`), journal.Value)

	author, _ := entries[0].Get("author")
	assert.Equal(t, &folio.NameParts{
		First: []string{`Jos\'e`},
		Last:  []string{`Garc\'ia`},
		Von:   []string{"de"},
	}, author.Value)

	title, _ := entries[1].Get("title")
	assert.Equal(t, folio.Text(`Notes on 50\% of cases`), title.Value)

	note, _ := entries[1].Get("note")
	assert.Equal(t, folio.Text("Energy: $E=mc^2$ is famous"), note.Value)

	url, _ := entries[1].Get("url")
	assert.Equal(t, folio.Text(`\url{https://example.org/a%20b}`), url.Value)
}

func TestIsolatedFailureSurvivesSnapshot(t *testing.T) {
	ctx := context.Background()
	var rec foliotest.DiagnosticRecorder

	w, err := folio.NewFieldWalker("upper", foliotest.FailOn("$"), folio.Copy, folio.WithDiagnostics(rec.Record))
	require.NoError(t, err)

	out, err := folio.Apply(ctx, foliotest.SampleLibrary(), w, folio.IsolateFailures())
	require.NoError(t, err)

	failed := out.FailedBlocks()
	require.Len(t, failed, 1)
	assert.Equal(t, "upper", failed[0].Middleware)
	assert.ErrorIs(t, failed[0].Err, folio.ErrMalformedMarkup)

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			data, err := folio.Marshal(c, out)
			require.NoError(t, err)

			restored, err := folio.Unmarshal(c, data)
			require.NoError(t, err)

			rf := restored.FailedBlocks()
			require.Len(t, rf, 1)
			assert.Equal(t, "upper", rf[0].Middleware)
			assert.Equal(t, failed[0].Err.Error(), rf[0].Err.Error())
			assert.Equal(t, failed[0].Block, rf[0].Block)
		})
	}
}
