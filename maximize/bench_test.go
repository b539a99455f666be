package maximize_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/beamgrid/builder"
	"github.com/katalvlaran/beamgrid/maximize"
)

// BenchmarkMaxCoverage compares pool widths on a 110×110 random layout.
func BenchmarkMaxCoverage(b *testing.B) {
	g, err := builder.Random(110, 110, builder.WithSeed(42), builder.WithDensity(0.1))
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}
	for _, w := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = maximize.MaxCoverage(context.Background(), g, maximize.WithWorkers(w))
			}
		})
	}
}
