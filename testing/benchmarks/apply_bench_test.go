package benchmarks

import (
	"context"
	"fmt"
	"testing"

	"github.com/zoobzio/folio"
	"github.com/zoobzio/folio/json"
	foliotest "github.com/zoobzio/folio/testing"
)

// largeLibrary repeats the sample entries n times under distinct keys.
func largeLibrary(n int) *folio.Library {
	sample := foliotest.SampleLibrary()
	lib := folio.NewLibrary()
	for i := 0; i < n; i++ {
		for _, e := range sample.Entries() {
			c := e.Clone()
			c.Key = fmt.Sprintf("%s-%d", e.Key, i)
			lib.Add(c)
		}
	}
	return lib
}

func BenchmarkApply_Encode_Sequential(b *testing.B) {
	enc, _ := folio.NewLatexEncoding(folio.Copy)
	lib := largeLibrary(500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = folio.Apply(context.Background(), lib, enc)
	}
}

func BenchmarkApply_Encode_Parallel(b *testing.B) {
	enc, _ := folio.NewLatexEncoding(folio.Copy)
	lib := largeLibrary(500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = folio.Apply(context.Background(), lib, enc, folio.WithWorkers(8))
	}
}

func BenchmarkApply_Decode(b *testing.B) {
	enc, _ := folio.NewLatexEncoding(folio.Copy)
	dec, _ := folio.NewLatexDecoding(folio.Copy)
	encoded, _ := folio.Apply(context.Background(), largeLibrary(500), enc)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = folio.Apply(context.Background(), encoded, dec, folio.WithWorkers(8))
	}
}

func BenchmarkSnapshot_JSON(b *testing.B) {
	c := json.New()
	lib := largeLibrary(500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data, _ := folio.Marshal(c, lib)
		_, _ = folio.Unmarshal(c, data)
	}
}
