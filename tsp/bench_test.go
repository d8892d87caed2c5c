package tsp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tsp2opt/tsp"
)

func BenchmarkBuildDistanceMatrix(b *testing.B) {
	pts := randomPoints(500, seedDet)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.BuildDistanceMatrix(pts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{50, 200, 500} {
		m := mustMatrix(b, randomPoints(n, seedDet))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := tsp.Solve(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
