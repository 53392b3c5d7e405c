package minivec

import (
	"fmt"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
)

func BenchmarkPush(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				v := New[int64]()
				for i := range n {
					v.Push(int64(i))
				}
				v.Free()
			}
		})
	}
}

func BenchmarkPushAligned(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		v, err := WithAlignment[float32](0, CacheLineAlignment)
		if err != nil {
			b.Fatal(err)
		}
		for i := range 1024 {
			v.Push(float32(i))
		}
		v.Free()
	}
}

func BenchmarkRetain(b *testing.B) {
	src := make([]int, 4096)
	for i := range src {
		src[i] = i
	}

	b.ReportAllocs()
	for b.Loop() {
		v := vecOf(src...)
		v.Retain(func(x int) bool { return x%3 != 0 })
	}
}

func BenchmarkRemoveIndices(b *testing.B) {
	src := make([]int, 4096)
	bm := roaring.New()
	for i := range src {
		src[i] = i
		if i%7 == 0 {
			bm.Add(uint32(i))
		}
	}

	b.ReportAllocs()
	for b.Loop() {
		v := vecOf(src...)
		v.RemoveIndices(bm)
	}
}

func BenchmarkSplice(b *testing.B) {
	replacement := make([]int, 64)

	b.ReportAllocs()
	for b.Loop() {
		v := Repeat(0, 1024)
		s, err := v.Splice(100, 110, func(yield func(int) bool) {
			for _, x := range replacement {
				if !yield(x) {
					return
				}
			}
		})
		if err != nil {
			b.Fatal(err)
		}
		s.Close()
	}
}
