//go:build bench

package markup

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkLex_UnterminatedMarkers(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 14, 1 << 18} {
		input := "k" + strings.Repeat(";;x", n)

		b.Run(fmt.Sprintf("markers_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Lex(input)
			}
		})
	}
}

func BenchmarkNormalize_UnterminatedMarkers(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 14, 1 << 18} {
		input := "k" + strings.Repeat(";;x", n)

		b.Run(fmt.Sprintf("markers_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Normalize(input)
			}
		})
	}
}
