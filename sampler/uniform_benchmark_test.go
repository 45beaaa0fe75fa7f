// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"
)

func UniformBenchmark(b *testing.B, s Uniform, size uint64, toSample int) {
	err := s.Initialize(size)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Sample(toSample)
	}
}

func BenchmarkUniform(b *testing.B) {
	sizes := []uint64{
		10_000,
		100_000,
		1_000_000,
	}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d ids", size), func(b *testing.B) {
			UniformBenchmark(b, NewUniform(), size, int(size))
		})
	}
}

func BenchmarkRangePoolDraw(b *testing.B) {
	p, err := NewRangePool(uint64(b.N))
	if err != nil {
		b.Fatal(err)
	}
	source := NewSource(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Draw(source.Uint64())
	}
}
