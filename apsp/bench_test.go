package apsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/orbitgraph/apsp"
	"github.com/katalvlaran/orbitgraph/builder"
	"github.com/katalvlaran/orbitgraph/pointcloud"
)

func benchCompute(b *testing.B, n int, density float64) {
	src := pointcloud.NewSource(pointcloud.WithSeed(1))
	res, err := builder.Build(n, density, src, pointcloud.Galaxy, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	e := apsp.NewEngine(res.Graph)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = e.Compute(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompute_100(b *testing.B) { benchCompute(b, 100, 0.5) }
func BenchmarkCompute_500(b *testing.B) { benchCompute(b, 500, 0.01) }
