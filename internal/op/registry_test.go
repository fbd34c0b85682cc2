package op

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/spindle-la/spindle/internal/status"
	"github.com/spindle-la/spindle/internal/types"
)

// Oracle tables are written independently of the registry construction code:
// expected values are literal, not recomputed through the op functions.

func TestCatalogSize(t *testing.T) {
	r := NewRegistry()
	if got := len(r.Keys()); got != 113 {
		t.Errorf("catalog has %d keys, want 113", got)
	}
}

func TestLookup(t *testing.T) {
	r := NewRegistry()
	o, err := r.Lookup("plus_iii")
	if err != nil {
		t.Fatalf("Lookup(plus_iii): %v", err)
	}
	if o != Op(r.PlusInt) {
		t.Error("Lookup(plus_iii) must return the catalog instance")
	}

	if _, err := r.Lookup("plus_xyz"); !errors.Is(err, status.ErrNotSupported) {
		t.Errorf("Lookup miss: err = %v, want ErrNotSupported", err)
	}
}

func TestCatalogFieldsIndexedByKey(t *testing.T) {
	r := NewRegistry()

	// A typed catalog field and the key table must hold the same instance
	// for every variant and domain.
	fields := map[string]Op{
		"identity_ii":           r.IdentityInt,
		"ainv_uu":               r.AinvUint,
		"sqrt_ff":               r.SqrtFloat,
		"plus_iii":              r.PlusInt,
		"min_non_max_iii":       r.MinNonMaxInt,
		"select_min_weight_uuu": r.SelectMinWeightUint,
		"eqzero_i":              r.EqZeroInt,
		"eq_minf_f":             r.EqMinfFloat,
		"nq_max_u":              r.NqMaxUint,
	}
	for key, field := range fields {
		got, err := r.Lookup(key)
		if err != nil {
			t.Errorf("Lookup(%s): %v", key, err)
			continue
		}
		if got != field {
			t.Errorf("Lookup(%s) and the catalog field disagree", key)
		}
	}
}

func TestAddConcurrentWithLookup(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o, err := MakeUnaryInt(fmt.Sprintf("custom%d", i), "return a;",
				func(a int32) int32 { return a })
			if err != nil {
				t.Errorf("MakeUnaryInt: %v", err)
				return
			}
			if err := r.Add(o); err != nil {
				t.Errorf("Add: %v", err)
			}
			if _, err := r.Lookup("plus_iii"); err != nil {
				t.Errorf("Lookup during Add: %v", err)
			}
			r.Keys()
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		key := fmt.Sprintf("custom%d_ii", i)
		if _, err := r.Lookup(key); err != nil {
			t.Errorf("Lookup(%s) after concurrent Add: %v", key, err)
		}
	}
}

func TestAddCustomOp(t *testing.T) {
	r := NewRegistry()
	custom, err := MakeBinaryInt("clamp_add", "return min(a + b, 100);",
		func(a, b int32) int32 { return min(a+b, 100) })
	if err != nil {
		t.Fatalf("MakeBinaryInt: %v", err)
	}
	if err := r.Add(custom); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := r.Lookup("clamp_add_iii")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != Op(custom) {
		t.Error("Lookup must return the added op")
	}

	if err := r.Add(nil); !errors.Is(err, status.ErrInvalidArgument) {
		t.Errorf("Add(nil): err = %v, want ErrInvalidArgument", err)
	}
}

func TestUnaryIntOracles(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		op   *Unary[int32]
		in   int32
		want int32
	}{
		{r.IdentityInt, 7, 7},
		{r.IdentityInt, math.MinInt32, math.MinInt32},
		{r.AinvInt, 5, -5},
		{r.AinvInt, -5, 5},
		{r.MinvInt, 2, 0},
		{r.MinvInt, 1, 1},
		{r.LnotInt, 0, 1},
		{r.LnotInt, 3, 0},
		{r.LnotInt, -3, 0},
		{r.UoneInt, 99, 1},
		{r.AbsInt, -4, 4},
		{r.AbsInt, 4, 4},
		{r.AbsInt, 0, 0},
		{r.BnotInt, 0, -1},
		{r.BnotInt, -1, 0},
	}
	for _, tt := range tests {
		if got := tt.op.Fn()(tt.in); got != tt.want {
			t.Errorf("%s(%d) = %d, want %d", tt.op.Name(), tt.in, got, tt.want)
		}
	}
}

func TestUnaryUintOracles(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		op   *Unary[uint32]
		in   uint32
		want uint32
	}{
		{r.IdentityUint, 7, 7},
		{r.IdentityUint, math.MaxUint32, math.MaxUint32},
		{r.AinvUint, 1, math.MaxUint32},
		{r.AinvUint, 0, 0},
		{r.MinvUint, 2, 0},
		{r.MinvUint, 1, 1},
		{r.LnotUint, 0, 1},
		{r.LnotUint, 3, 0},
		{r.UoneUint, 0, 1},
		{r.AbsUint, 12, 12},
		{r.BnotUint, 0, math.MaxUint32},
		{r.BnotUint, math.MaxUint32, 0},
	}
	for _, tt := range tests {
		if got := tt.op.Fn()(tt.in); got != tt.want {
			t.Errorf("%s(%d) = %d, want %d", tt.op.Name(), tt.in, got, tt.want)
		}
	}
}

func almostEqual(a, b float32) bool {
	if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		return a == b
	}
	return math.Abs(float64(a-b)) < 1e-6
}

func TestUnaryFloatOracles(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		op   *Unary[float32]
		in   float32
		want float32
	}{
		{r.IdentityFloat, 1.5, 1.5},
		{r.AinvFloat, 2.5, -2.5},
		{r.MinvFloat, 4, 0.25},
		{r.MinvFloat, 0, float32(math.Inf(1))},
		{r.LnotFloat, 0, 1},
		{r.LnotFloat, 2, 0},
		{r.UoneFloat, -9, 1},
		{r.AbsFloat, -1.25, 1.25},
		{r.SqrtFloat, 9, 3},
		{r.LogFloat, 1, 0},
		{r.ExpFloat, 0, 1},
		{r.SinFloat, 0, 0},
		{r.CosFloat, 0, 1},
		{r.TanFloat, 0, 0},
		{r.AsinFloat, 1, float32(math.Pi / 2)},
		{r.AcosFloat, 1, 0},
		{r.AtanFloat, 0, 0},
		{r.CeilFloat, 1.2, 2},
		{r.FloorFloat, 1.8, 1},
		{r.RoundFloat, 2.5, 3},
		{r.RoundFloat, -2.5, -3},
		{r.TruncFloat, -1.7, -1},
	}
	for _, tt := range tests {
		if got := tt.op.Fn()(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("%s(%v) = %v, want %v", tt.op.Name(), tt.in, got, tt.want)
		}
	}
}

func TestBinaryIntOracles(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		op   *Binary[int32]
		a, b int32
		want int32
	}{
		{r.PlusInt, 2, 3, 5},
		{r.PlusInt, -2, 3, 1},
		{r.MinusInt, 2, 3, -1},
		{r.MultInt, -4, 3, -12},
		{r.DivInt, 7, 2, 3},
		{r.DivInt, -7, 2, -3},
		{r.MinusPow2Int, 5, 2, 9},
		{r.MinusPow2Int, 2, 5, 9},
		{r.FirstInt, 1, 2, 1},
		{r.SecondInt, 1, 2, 2},
		{r.BoneInt, 8, 9, 1},
		{r.MinInt, 3, -3, -3},
		{r.MaxInt, 3, -3, 3},
		{r.LorInt, 0, 0, 0},
		{r.LorInt, 0, 5, 1},
		{r.LorInt, -1, 0, 1},
		{r.LandInt, 1, 0, 0},
		{r.LandInt, 2, 3, 1},
		{r.BorInt, 0b1010, 0b0101, 0b1111},
		{r.BandInt, 0b1100, 0b1010, 0b1000},
		{r.BxorInt, 0b1100, 0b1010, 0b0110},
	}
	for _, tt := range tests {
		if got := tt.op.Fn()(tt.a, tt.b); got != tt.want {
			t.Errorf("%s(%d, %d) = %d, want %d", tt.op.Name(), tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBinaryUintOracles(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		op   *Binary[uint32]
		a, b uint32
		want uint32
	}{
		{r.PlusUint, 2, 3, 5},
		{r.PlusUint, math.MaxUint32, 1, 0},
		{r.MinusUint, 2, 3, math.MaxUint32},
		{r.MultUint, 4, 3, 12},
		{r.DivUint, 7, 2, 3},
		{r.MinusPow2Uint, 5, 2, 9},
		{r.FirstUint, 1, 2, 1},
		{r.SecondUint, 1, 2, 2},
		{r.BoneUint, 8, 9, 1},
		{r.MinUint, 3, 9, 3},
		{r.MaxUint, 3, 9, 9},
		{r.LorUint, 0, 0, 0},
		{r.LorUint, 0, 5, 1},
		{r.LandUint, 1, 0, 0},
		{r.LandUint, 2, 3, 1},
		{r.BorUint, 0b1010, 0b0101, 0b1111},
		{r.BandUint, 0b1100, 0b1010, 0b1000},
		{r.BxorUint, 0b1100, 0b1010, 0b0110},
	}
	for _, tt := range tests {
		if got := tt.op.Fn()(tt.a, tt.b); got != tt.want {
			t.Errorf("%s(%d, %d) = %d, want %d", tt.op.Name(), tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBinaryFloatOracles(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		op   *Binary[float32]
		a, b float32
		want float32
	}{
		{r.PlusFloat, 1.5, 2.5, 4},
		{r.MinusFloat, 1.5, 2.5, -1},
		{r.MultFloat, 1.5, 2, 3},
		{r.DivFloat, 1, 4, 0.25},
		{r.MinusPow2Float, 3, 1, 4},
		{r.FirstFloat, 1, 2, 1},
		{r.SecondFloat, 1, 2, 2},
		{r.BoneFloat, 8, 9, 1},
		{r.MinFloat, -1.5, 1.5, -1.5},
		{r.MaxFloat, -1.5, 1.5, 1.5},
		{r.LorFloat, 0, 0, 0},
		{r.LorFloat, 0.5, 0, 1},
		{r.LandFloat, 0.5, 0, 0},
		{r.LandFloat, 0.5, 0.5, 1},
	}
	for _, tt := range tests {
		if got := tt.op.Fn()(tt.a, tt.b); !almostEqual(got, tt.want) {
			t.Errorf("%s(%v, %v) = %v, want %v", tt.op.Name(), tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSentinelPropagation(t *testing.T) {
	r := NewRegistry()
	const sentinel = types.SentinelInt

	inputs := []int32{0, 1, -1, 17, sentinel, math.MinInt32}
	for _, x := range inputs {
		if got := r.MinNonMaxInt.Fn()(sentinel, x); got != sentinel {
			t.Errorf("min_non_max(sentinel, %d) = %d, want sentinel", x, got)
		}
		if got := r.MinNonMaxInt.Fn()(x, sentinel); got != sentinel {
			t.Errorf("min_non_max(%d, sentinel) = %d, want sentinel", x, got)
		}
		if got := r.FirstNonMaxInt.Fn()(x, sentinel); got != sentinel {
			t.Errorf("first_non_max(%d, sentinel) = %d, want sentinel", x, got)
		}
		if got := r.FirstNonMaxInt.Fn()(sentinel, x); got != sentinel {
			t.Errorf("first_non_max(sentinel, %d) = %d, want sentinel", x, got)
		}
		if got := r.ConstMaxInt.Fn()(x, x); got != sentinel {
			t.Errorf("const_max(%d, %d) = %d, want sentinel", x, x, got)
		}
	}

	// Ordinary arithmetic away from the sentinel.
	if got := r.MinNonMaxInt.Fn()(4, 9); got != 4 {
		t.Errorf("min_non_max(4, 9) = %d, want 4", got)
	}
	if got := r.FirstNonMaxInt.Fn()(4, 9); got != 4 {
		t.Errorf("first_non_max(4, 9) = %d, want 4", got)
	}
}

func TestSecondMaxAndMinNonZero(t *testing.T) {
	r := NewRegistry()
	const sentinel = types.SentinelInt

	if got := r.SecondMaxInt.Fn()(sentinel, 7); got != 7 {
		t.Errorf("second_max(sentinel, 7) = %d, want 7", got)
	}
	if got := r.SecondMaxInt.Fn()(3, 7); got != 3 {
		t.Errorf("second_max(3, 7) = %d, want 3", got)
	}

	if got := r.MinNonZeroInt.Fn()(0, 7); got != 7 {
		t.Errorf("min_non_zero(0, 7) = %d, want 7", got)
	}
	if got := r.MinNonZeroInt.Fn()(9, 7); got != 7 {
		t.Errorf("min_non_zero(9, 7) = %d, want 7", got)
	}
	if got := r.MinNonZeroInt.Fn()(5, 7); got != 5 {
		t.Errorf("min_non_zero(5, 7) = %d, want 5", got)
	}
}

func TestFirstIfSndMax(t *testing.T) {
	r := NewRegistry()
	const sentinel = types.SentinelInt

	if got := r.FirstIfSndMaxInt.Fn()(42, sentinel); got != 42 {
		t.Errorf("first_if_snd_max(42, sentinel) = %d, want 42", got)
	}
	if got := r.FirstIfSndMaxInt.Fn()(42, 1); got != sentinel {
		t.Errorf("first_if_snd_max(42, 1) = %d, want sentinel", got)
	}
}

func TestFstMinusOne(t *testing.T) {
	r := NewRegistry()
	const sentinel = types.SentinelInt

	if got := r.FstMinusOneInt.Fn()(sentinel, sentinel); got != sentinel {
		t.Errorf("fst_minus_one(sentinel, sentinel) = %d, want sentinel", got)
	}
	if got := r.FstMinusOneInt.Fn()(5, sentinel); got != 4 {
		t.Errorf("fst_minus_one(5, sentinel) = %d, want 4", got)
	}
	if got := r.FstMinusOneInt.Fn()(sentinel, 5); got != sentinel-1 {
		t.Errorf("fst_minus_one(sentinel, 5) = %d, want %d", got, sentinel-1)
	}
	if got := r.FstMinusOneInt.Fn()(5, 9); got != 4 {
		t.Errorf("fst_minus_one(5, 9) = %d, want 4", got)
	}
}

func TestSelectZeroOracles(t *testing.T) {
	r := NewRegistry()
	intCases := []struct {
		op   *Select[int32]
		in   int32
		want bool
	}{
		{r.EqZeroInt, 0, true},
		{r.EqZeroInt, 5, false},
		{r.EqZeroInt, -5, false},
		{r.NqZeroInt, 0, false},
		{r.NqZeroInt, 5, true},
		{r.GtZeroInt, 1, true},
		{r.GtZeroInt, 0, false},
		{r.GtZeroInt, -1, false},
		{r.GeZeroInt, 0, true},
		{r.GeZeroInt, -1, false},
		{r.LtZeroInt, -1, true},
		{r.LtZeroInt, 0, false},
		{r.LeZeroInt, 0, true},
		{r.LeZeroInt, 1, false},
		{r.AlwaysInt, math.MinInt32, true},
		{r.NeverInt, math.MaxInt32, false},
	}
	for _, tt := range intCases {
		if got := tt.op.Fn()(tt.in); got != tt.want {
			t.Errorf("%s(%d) = %v, want %v", tt.op.Name(), tt.in, got, tt.want)
		}
	}

	uintCases := []struct {
		op   *Select[uint32]
		in   uint32
		want bool
	}{
		{r.EqZeroUint, 0, true},
		{r.EqZeroUint, 5, false},
		{r.GeZeroUint, 0, true},
		{r.GeZeroUint, math.MaxUint32, true},
		{r.LtZeroUint, 0, false},
		{r.LtZeroUint, math.MaxUint32, false},
		{r.LeZeroUint, 0, true},
		{r.LeZeroUint, 1, false},
		{r.AlwaysUint, 0, true},
		{r.NeverUint, 0, false},
	}
	for _, tt := range uintCases {
		if got := tt.op.Fn()(tt.in); got != tt.want {
			t.Errorf("%s(%d) = %v, want %v", tt.op.Name(), tt.in, got, tt.want)
		}
	}
}

func TestSelectSentinelOracles(t *testing.T) {
	r := NewRegistry()

	if !r.EqMaxInt.Fn()(types.SentinelInt) {
		t.Error("eq_max(int sentinel) = false, want true")
	}
	if r.EqMaxInt.Fn()(0) {
		t.Error("eq_max(0) = true, want false")
	}
	if r.NqMaxInt.Fn()(types.SentinelInt) {
		t.Error("nq_max(int sentinel) = true, want false")
	}
	if !r.NqMaxInt.Fn()(0) {
		t.Error("nq_max(0) = false, want true")
	}

	if !r.EqMaxUint.Fn()(types.SentinelUint) {
		t.Error("eq_max(uint sentinel) = false, want true")
	}
	if r.EqMaxUint.Fn()(0) {
		t.Error("eq_max(0) = true, want false")
	}
	if !r.NqMaxUint.Fn()(0) {
		t.Error("nq_max(0) = false, want true")
	}

	if !r.EqMinfFloat.Fn()(types.SentinelFloat()) {
		t.Error("eq_minf(-Inf) = false, want true")
	}
	if r.EqMinfFloat.Fn()(float32(math.Inf(1))) {
		t.Error("eq_minf(+Inf) = true, want false")
	}
	if r.EqMinfFloat.Fn()(0) {
		t.Error("eq_minf(0) = true, want false")
	}
}
