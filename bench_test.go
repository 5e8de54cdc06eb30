package bigdouble

import (
	"math"
	"math/big"
	"testing"
)

var (
	BenchBigFloatResult *big.Float
	BenchBoolResult     bool
	BenchDoubleResult   Double
	BenchFloatResult    float64
	BenchIntResult      int

	BenchDouble1, BenchDouble2 = New(1.2345, 12093), New(9.8765, 12089)
	BenchFloat1, BenchFloat2   = 1.2345e93, 9.8765e89
)

func BenchmarkFloat64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchFloat1 + BenchFloat2
	}
}

func BenchmarkFloat64Pow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = math.Pow(BenchFloat1, 1.5)
	}
}

func BenchmarkBigFloatAdd(b *testing.B) {
	f1, f2 := bigFromDouble(BenchDouble1), bigFromDouble(BenchDouble2)
	for i := 0; i < b.N; i++ {
		BenchBigFloatResult = new(big.Float).Add(f1, f2)
	}
}

func BenchmarkBigFloatMul(b *testing.B) {
	f1, f2 := bigFromDouble(BenchDouble1), bigFromDouble(BenchDouble2)
	for i := 0; i < b.N; i++ {
		BenchBigFloatResult = new(big.Float).Mul(f1, f2)
	}
}

func BenchmarkDoubleNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = New(12345.678, 100)
	}
}

func BenchmarkDoubleAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble1.Add(BenchDouble2)
	}
}

func BenchmarkDoubleAddAbsorbed(b *testing.B) {
	small := New(1, 0)
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble1.Add(small)
	}
}

func BenchmarkDoubleMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble1.Mul(BenchDouble2)
	}
}

func BenchmarkDoubleQuo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble1.Quo(BenchDouble2)
	}
}

func BenchmarkDoubleCmp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchIntResult = BenchDouble1.Cmp(BenchDouble2)
	}
}

func BenchmarkDoubleEqual(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchDouble1.Equal(BenchDouble2)
	}
}

func BenchmarkDoubleLog10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchDouble1.Log10()
	}
}

func BenchmarkDoublePowFast(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble1.Pow(2)
	}
}

func BenchmarkDoublePowLogarithmic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble1.Pow(1.5)
	}
}

func BenchmarkDoubleSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDoubleResult = BenchDouble1.Sqrt()
	}
}
