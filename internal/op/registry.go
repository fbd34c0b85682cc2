package op

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/spindle-la/spindle/internal/status"
	"github.com/spindle-la/spindle/internal/types"
)

// Registry is the catalog of built-in operations. It is constructed once at
// process start via NewRegistry and passed by reference to every consumer;
// there is no hidden package-level catalog. Every operation in it is
// immutable; the key table is guarded, so Add may run concurrently with
// lookups.
type Registry struct {
	// Unary, all domains.
	IdentityInt   *Unary[int32]
	IdentityUint  *Unary[uint32]
	IdentityFloat *Unary[float32]
	AinvInt       *Unary[int32]
	AinvUint      *Unary[uint32]
	AinvFloat     *Unary[float32]
	MinvInt       *Unary[int32]
	MinvUint      *Unary[uint32]
	MinvFloat     *Unary[float32]
	LnotInt       *Unary[int32]
	LnotUint      *Unary[uint32]
	LnotFloat     *Unary[float32]
	UoneInt       *Unary[int32]
	UoneUint      *Unary[uint32]
	UoneFloat     *Unary[float32]
	AbsInt        *Unary[int32]
	AbsUint       *Unary[uint32]
	AbsFloat      *Unary[float32]

	// Unary, integer domains only.
	BnotInt  *Unary[int32]
	BnotUint *Unary[uint32]

	// Unary, float only.
	SqrtFloat  *Unary[float32]
	LogFloat   *Unary[float32]
	ExpFloat   *Unary[float32]
	SinFloat   *Unary[float32]
	CosFloat   *Unary[float32]
	TanFloat   *Unary[float32]
	AsinFloat  *Unary[float32]
	AcosFloat  *Unary[float32]
	AtanFloat  *Unary[float32]
	CeilFloat  *Unary[float32]
	FloorFloat *Unary[float32]
	RoundFloat *Unary[float32]
	TruncFloat *Unary[float32]

	// Binary, all domains.
	PlusInt        *Binary[int32]
	PlusUint       *Binary[uint32]
	PlusFloat      *Binary[float32]
	MinusInt       *Binary[int32]
	MinusUint      *Binary[uint32]
	MinusFloat     *Binary[float32]
	MultInt        *Binary[int32]
	MultUint       *Binary[uint32]
	MultFloat      *Binary[float32]
	DivInt         *Binary[int32]
	DivUint        *Binary[uint32]
	DivFloat       *Binary[float32]
	MinusPow2Int   *Binary[int32]
	MinusPow2Uint  *Binary[uint32]
	MinusPow2Float *Binary[float32]
	FirstInt       *Binary[int32]
	FirstUint      *Binary[uint32]
	FirstFloat     *Binary[float32]
	SecondInt      *Binary[int32]
	SecondUint     *Binary[uint32]
	SecondFloat    *Binary[float32]
	BoneInt        *Binary[int32]
	BoneUint       *Binary[uint32]
	BoneFloat      *Binary[float32]
	MinInt         *Binary[int32]
	MinUint        *Binary[uint32]
	MinFloat       *Binary[float32]
	MaxInt         *Binary[int32]
	MaxUint        *Binary[uint32]
	MaxFloat       *Binary[float32]
	LorInt         *Binary[int32]
	LorUint        *Binary[uint32]
	LorFloat       *Binary[float32]
	LandInt        *Binary[int32]
	LandUint       *Binary[uint32]
	LandFloat      *Binary[float32]

	// Binary, integer domains only.
	BorInt   *Binary[int32]
	BorUint  *Binary[uint32]
	BandInt  *Binary[int32]
	BandUint *Binary[uint32]
	BxorInt  *Binary[int32]
	BxorUint *Binary[uint32]

	// Binary graph-algorithm operators. Integer kernels treat the maximum
	// representable value as "no value" / infinity and propagate it instead
	// of doing ordinary arithmetic on it.
	FirstNonMaxInt   *Binary[int32]
	MinNonMaxInt     *Binary[int32]
	ConstMaxInt      *Binary[int32]
	SecondMaxInt     *Binary[int32]
	MinNonZeroInt    *Binary[int32]
	FirstIfSndMaxInt *Binary[int32]
	FstMinusOneInt   *Binary[int32]

	// Binary bit-packed weighted-value operators on uint32 words:
	// an 11-bit weight in the high bits, a 21-bit value in the low bits.
	SelectMinWeightUint *Binary[uint32]
	ConstructPairUint   *Binary[uint32]

	// Select, all domains.
	EqZeroInt   *Select[int32]
	EqZeroUint  *Select[uint32]
	EqZeroFloat *Select[float32]
	NqZeroInt   *Select[int32]
	NqZeroUint  *Select[uint32]
	NqZeroFloat *Select[float32]
	GtZeroInt   *Select[int32]
	GtZeroUint  *Select[uint32]
	GtZeroFloat *Select[float32]
	GeZeroInt   *Select[int32]
	GeZeroUint  *Select[uint32]
	GeZeroFloat *Select[float32]
	LtZeroInt   *Select[int32]
	LtZeroUint  *Select[uint32]
	LtZeroFloat *Select[float32]
	LeZeroInt   *Select[int32]
	LeZeroUint  *Select[uint32]
	LeZeroFloat *Select[float32]
	AlwaysInt   *Select[int32]
	AlwaysUint  *Select[uint32]
	AlwaysFloat *Select[float32]
	NeverInt    *Select[int32]
	NeverUint   *Select[uint32]
	NeverFloat  *Select[float32]

	// Select sentinel predicates.
	EqMinfFloat *Select[float32]
	EqMaxInt    *Select[int32]
	EqMaxUint   *Select[uint32]
	NqMaxInt    *Select[int32]
	NqMaxUint   *Select[uint32]

	mu    sync.RWMutex
	byKey map[string]Op
}

// must unwraps a factory result during catalog construction. Built-in
// construction cannot fail (names are non-empty literals), so errors are
// programming mistakes and panic.
func must[O Op](o O, err error) O {
	if err != nil {
		panic(fmt.Sprintf("op: building built-in catalog: %v", err))
	}
	return o
}

// index records a freshly built operation in the key lookup table. It runs
// during construction, before the registry is shared, so it takes no lock.
func index[O Op](r *Registry, o O) O {
	r.byKey[o.Key()] = o
	return o
}

// NewRegistry builds the complete built-in catalog. Call it once at process
// start, before any lookup or use.
func NewRegistry() *Registry {
	r := &Registry{byKey: make(map[string]Op, 128)}
	r.registerUnary()
	r.registerBinary()
	r.registerSelect()
	return r
}

// Lookup resolves an operation by its canonical key.
func (r *Registry) Lookup(key string) (Op, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byKey[key]
	if !ok {
		return nil, status.NotSupportedf("op %q", key)
	}
	return o, nil
}

// Add registers a custom operation by key. A key equal to an existing entry
// replaces it; whether two independently built operations may share a key is
// the caller's responsibility.
func (r *Registry) Add(o Op) error {
	if o == nil {
		return status.InvalidArgumentf("nil op")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[o.Key()] = o
	return nil
}

// Keys returns all registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) registerUnary() {
	r.IdentityInt = index(r, must(MakeUnaryInt("identity", "return a;",
		func(a int32) int32 { return a })))
	r.IdentityUint = index(r, must(MakeUnaryUint("identity", "return a;",
		func(a uint32) uint32 { return a })))
	r.IdentityFloat = index(r, must(MakeUnaryFloat("identity", "return a;",
		func(a float32) float32 { return a })))

	r.AinvInt = index(r, must(MakeUnaryInt("ainv", "return -a;",
		func(a int32) int32 { return -a })))
	r.AinvUint = index(r, must(MakeUnaryUint("ainv", "return 0u - a;",
		func(a uint32) uint32 { return -a })))
	r.AinvFloat = index(r, must(MakeUnaryFloat("ainv", "return -a;",
		func(a float32) float32 { return -a })))

	r.MinvInt = index(r, must(MakeUnaryInt("minv", "return 1 / a;",
		func(a int32) int32 { return 1 / a })))
	r.MinvUint = index(r, must(MakeUnaryUint("minv", "return 1u / a;",
		func(a uint32) uint32 { return 1 / a })))
	r.MinvFloat = index(r, must(MakeUnaryFloat("minv", "return 1.0 / a;",
		func(a float32) float32 { return 1.0 / a })))

	r.LnotInt = index(r, must(MakeUnaryInt("lnot", "return select(0, 1, a == 0);",
		func(a int32) int32 {
			if a == 0 {
				return 1
			}
			return 0
		})))
	r.LnotUint = index(r, must(MakeUnaryUint("lnot", "return select(0u, 1u, a == 0u);",
		func(a uint32) uint32 {
			if a == 0 {
				return 1
			}
			return 0
		})))
	r.LnotFloat = index(r, must(MakeUnaryFloat("lnot", "return select(0.0, 1.0, a == 0.0);",
		func(a float32) float32 {
			if a == 0 {
				return 1
			}
			return 0
		})))

	r.UoneInt = index(r, must(MakeUnaryInt("uone", "return 1;",
		func(int32) int32 { return 1 })))
	r.UoneUint = index(r, must(MakeUnaryUint("uone", "return 1u;",
		func(uint32) uint32 { return 1 })))
	r.UoneFloat = index(r, must(MakeUnaryFloat("uone", "return 1.0;",
		func(float32) float32 { return 1 })))

	r.AbsInt = index(r, must(MakeUnaryInt("abs", "return abs(a);",
		func(a int32) int32 {
			if a < 0 {
				return -a
			}
			return a
		})))
	r.AbsUint = index(r, must(MakeUnaryUint("abs", "return a;",
		func(a uint32) uint32 { return a })))
	r.AbsFloat = index(r, must(MakeUnaryFloat("abs", "return abs(a);",
		func(a float32) float32 {
			return float32(math.Abs(float64(a)))
		})))

	r.BnotInt = index(r, must(MakeUnaryInt("bnot", "return ~a;",
		func(a int32) int32 { return ^a })))
	r.BnotUint = index(r, must(MakeUnaryUint("bnot", "return ~a;",
		func(a uint32) uint32 { return ^a })))

	r.SqrtFloat = index(r, must(MakeUnaryFloat("sqrt", "return sqrt(a);",
		func(a float32) float32 { return float32(math.Sqrt(float64(a))) })))
	r.LogFloat = index(r, must(MakeUnaryFloat("log", "return log(a);",
		func(a float32) float32 { return float32(math.Log(float64(a))) })))
	r.ExpFloat = index(r, must(MakeUnaryFloat("exp", "return exp(a);",
		func(a float32) float32 { return float32(math.Exp(float64(a))) })))
	r.SinFloat = index(r, must(MakeUnaryFloat("sin", "return sin(a);",
		func(a float32) float32 { return float32(math.Sin(float64(a))) })))
	r.CosFloat = index(r, must(MakeUnaryFloat("cos", "return cos(a);",
		func(a float32) float32 { return float32(math.Cos(float64(a))) })))
	r.TanFloat = index(r, must(MakeUnaryFloat("tan", "return tan(a);",
		func(a float32) float32 { return float32(math.Tan(float64(a))) })))
	r.AsinFloat = index(r, must(MakeUnaryFloat("asin", "return asin(a);",
		func(a float32) float32 { return float32(math.Asin(float64(a))) })))
	r.AcosFloat = index(r, must(MakeUnaryFloat("acos", "return acos(a);",
		func(a float32) float32 { return float32(math.Acos(float64(a))) })))
	r.AtanFloat = index(r, must(MakeUnaryFloat("atan", "return atan(a);",
		func(a float32) float32 { return float32(math.Atan(float64(a))) })))
	r.CeilFloat = index(r, must(MakeUnaryFloat("ceil", "return ceil(a);",
		func(a float32) float32 { return float32(math.Ceil(float64(a))) })))
	r.FloorFloat = index(r, must(MakeUnaryFloat("floor", "return floor(a);",
		func(a float32) float32 { return float32(math.Floor(float64(a))) })))
	r.RoundFloat = index(r, must(MakeUnaryFloat("round", "return round(a);",
		func(a float32) float32 { return float32(math.Round(float64(a))) })))
	r.TruncFloat = index(r, must(MakeUnaryFloat("trunc", "return trunc(a);",
		func(a float32) float32 { return float32(math.Trunc(float64(a))) })))
}

func (r *Registry) registerBinary() {
	r.PlusInt = index(r, must(MakeBinaryInt("plus", "return a + b;",
		func(a, b int32) int32 { return a + b })))
	r.PlusUint = index(r, must(MakeBinaryUint("plus", "return a + b;",
		func(a, b uint32) uint32 { return a + b })))
	r.PlusFloat = index(r, must(MakeBinaryFloat("plus", "return a + b;",
		func(a, b float32) float32 { return a + b })))

	r.MinusInt = index(r, must(MakeBinaryInt("minus", "return a - b;",
		func(a, b int32) int32 { return a - b })))
	r.MinusUint = index(r, must(MakeBinaryUint("minus", "return a - b;",
		func(a, b uint32) uint32 { return a - b })))
	r.MinusFloat = index(r, must(MakeBinaryFloat("minus", "return a - b;",
		func(a, b float32) float32 { return a - b })))

	r.MultInt = index(r, must(MakeBinaryInt("mult", "return a * b;",
		func(a, b int32) int32 { return a * b })))
	r.MultUint = index(r, must(MakeBinaryUint("mult", "return a * b;",
		func(a, b uint32) uint32 { return a * b })))
	r.MultFloat = index(r, must(MakeBinaryFloat("mult", "return a * b;",
		func(a, b float32) float32 { return a * b })))

	r.DivInt = index(r, must(MakeBinaryInt("div", "return a / b;",
		func(a, b int32) int32 { return a / b })))
	r.DivUint = index(r, must(MakeBinaryUint("div", "return a / b;",
		func(a, b uint32) uint32 { return a / b })))
	r.DivFloat = index(r, must(MakeBinaryFloat("div", "return a / b;",
		func(a, b float32) float32 { return a / b })))

	r.MinusPow2Int = index(r, must(MakeBinaryInt("minus_pow2", "return (a - b) * (a - b);",
		func(a, b int32) int32 { return (a - b) * (a - b) })))
	r.MinusPow2Uint = index(r, must(MakeBinaryUint("minus_pow2", "return (a - b) * (a - b);",
		func(a, b uint32) uint32 { return (a - b) * (a - b) })))
	r.MinusPow2Float = index(r, must(MakeBinaryFloat("minus_pow2", "return (a - b) * (a - b);",
		func(a, b float32) float32 { return (a - b) * (a - b) })))

	r.FirstInt = index(r, must(MakeBinaryInt("first", "return a;",
		func(a, _ int32) int32 { return a })))
	r.FirstUint = index(r, must(MakeBinaryUint("first", "return a;",
		func(a, _ uint32) uint32 { return a })))
	r.FirstFloat = index(r, must(MakeBinaryFloat("first", "return a;",
		func(a, _ float32) float32 { return a })))

	r.SecondInt = index(r, must(MakeBinaryInt("second", "return b;",
		func(_, b int32) int32 { return b })))
	r.SecondUint = index(r, must(MakeBinaryUint("second", "return b;",
		func(_, b uint32) uint32 { return b })))
	r.SecondFloat = index(r, must(MakeBinaryFloat("second", "return b;",
		func(_, b float32) float32 { return b })))

	r.BoneInt = index(r, must(MakeBinaryInt("bone", "return 1;",
		func(int32, int32) int32 { return 1 })))
	r.BoneUint = index(r, must(MakeBinaryUint("bone", "return 1u;",
		func(uint32, uint32) uint32 { return 1 })))
	r.BoneFloat = index(r, must(MakeBinaryFloat("bone", "return 1.0;",
		func(float32, float32) float32 { return 1 })))

	r.MinInt = index(r, must(MakeBinaryInt("min", "return min(a, b);",
		func(a, b int32) int32 { return min(a, b) })))
	r.MinUint = index(r, must(MakeBinaryUint("min", "return min(a, b);",
		func(a, b uint32) uint32 { return min(a, b) })))
	r.MinFloat = index(r, must(MakeBinaryFloat("min", "return min(a, b);",
		func(a, b float32) float32 { return min(a, b) })))

	r.MaxInt = index(r, must(MakeBinaryInt("max", "return max(a, b);",
		func(a, b int32) int32 { return max(a, b) })))
	r.MaxUint = index(r, must(MakeBinaryUint("max", "return max(a, b);",
		func(a, b uint32) uint32 { return max(a, b) })))
	r.MaxFloat = index(r, must(MakeBinaryFloat("max", "return max(a, b);",
		func(a, b float32) float32 { return max(a, b) })))

	r.LorInt = index(r, must(MakeBinaryInt("lor", "return select(0, 1, (a != 0) || (b != 0));",
		func(a, b int32) int32 {
			if a != 0 || b != 0 {
				return 1
			}
			return 0
		})))
	r.LorUint = index(r, must(MakeBinaryUint("lor", "return select(0u, 1u, (a != 0u) || (b != 0u));",
		func(a, b uint32) uint32 {
			if a != 0 || b != 0 {
				return 1
			}
			return 0
		})))
	r.LorFloat = index(r, must(MakeBinaryFloat("lor", "return select(0.0, 1.0, (a != 0.0) || (b != 0.0));",
		func(a, b float32) float32 {
			if a != 0 || b != 0 {
				return 1
			}
			return 0
		})))

	r.LandInt = index(r, must(MakeBinaryInt("land", "return select(0, 1, (a != 0) && (b != 0));",
		func(a, b int32) int32 {
			if a != 0 && b != 0 {
				return 1
			}
			return 0
		})))
	r.LandUint = index(r, must(MakeBinaryUint("land", "return select(0u, 1u, (a != 0u) && (b != 0u));",
		func(a, b uint32) uint32 {
			if a != 0 && b != 0 {
				return 1
			}
			return 0
		})))
	r.LandFloat = index(r, must(MakeBinaryFloat("land", "return select(0.0, 1.0, (a != 0.0) && (b != 0.0));",
		func(a, b float32) float32 {
			if a != 0 && b != 0 {
				return 1
			}
			return 0
		})))

	r.BorInt = index(r, must(MakeBinaryInt("bor", "return a | b;",
		func(a, b int32) int32 { return a | b })))
	r.BorUint = index(r, must(MakeBinaryUint("bor", "return a | b;",
		func(a, b uint32) uint32 { return a | b })))
	r.BandInt = index(r, must(MakeBinaryInt("band", "return a & b;",
		func(a, b int32) int32 { return a & b })))
	r.BandUint = index(r, must(MakeBinaryUint("band", "return a & b;",
		func(a, b uint32) uint32 { return a & b })))
	r.BxorInt = index(r, must(MakeBinaryInt("bxor", "return a ^ b;",
		func(a, b int32) int32 { return a ^ b })))
	r.BxorUint = index(r, must(MakeBinaryUint("bxor", "return a ^ b;",
		func(a, b uint32) uint32 { return a ^ b })))

	r.FirstNonMaxInt = index(r, must(MakeBinaryInt("first_non_max",
		`if (a == 2147483647 || b == 2147483647) {
    return 2147483647;
}
return a;`,
		func(a, b int32) int32 {
			if a == types.SentinelInt || b == types.SentinelInt {
				return types.SentinelInt
			}
			return a
		})))
	r.MinNonMaxInt = index(r, must(MakeBinaryInt("min_non_max",
		`if (a == 2147483647 || b == 2147483647) {
    return 2147483647;
}
return min(a, b);`,
		func(a, b int32) int32 {
			if a == types.SentinelInt || b == types.SentinelInt {
				return types.SentinelInt
			}
			return min(a, b)
		})))
	r.ConstMaxInt = index(r, must(MakeBinaryInt("const_max", "return 2147483647;",
		func(int32, int32) int32 { return types.SentinelInt })))
	r.SecondMaxInt = index(r, must(MakeBinaryInt("second_max",
		`if (a == 2147483647) {
    return b;
}
return a;`,
		func(a, b int32) int32 {
			if a == types.SentinelInt {
				return b
			}
			return a
		})))
	r.MinNonZeroInt = index(r, must(MakeBinaryInt("min_non_zero",
		`if (a == 0) {
    return b;
}
return min(a, b);`,
		func(a, b int32) int32 {
			if a == 0 {
				return b
			}
			return min(a, b)
		})))
	r.FirstIfSndMaxInt = index(r, must(MakeBinaryInt("first_if_snd_max",
		`if (b == 2147483647) {
    return a;
}
return 2147483647;`,
		func(a, b int32) int32 {
			if b == types.SentinelInt {
				return a
			}
			return types.SentinelInt
		})))
	r.FstMinusOneInt = index(r, must(MakeBinaryInt("fst_minus_one",
		`if (a == 2147483647 && b == 2147483647) {
    return 2147483647;
}
return a - 1;`,
		func(a, b int32) int32 {
			if a == types.SentinelInt && b == types.SentinelInt {
				return types.SentinelInt
			}
			return a - 1
		})))

	// 11 bits of weight in the high end of the word, 21 bits of value below.
	r.SelectMinWeightUint = index(r, must(MakeBinaryUint("select_min_weight",
		`let weight_a = a >> 21u;
let weight_b = b >> 21u;
let value_a = a & 0x1FFFFFu;
let value_b = b & 0x1FFFFFu;
if (weight_a <= weight_b) {
    return (weight_a << 21u) + value_a;
}
return (weight_b << 21u) + value_b;`,
		func(a, b uint32) uint32 {
			weightA, valueA := UnpackWeighted(a)
			weightB, valueB := UnpackWeighted(b)
			if weightA <= weightB {
				return PackWeighted(weightA, valueA)
			}
			return PackWeighted(weightB, valueB)
		})))
	r.ConstructPairUint = index(r, must(MakeBinaryUint("construct_pair",
		`let weight_b = b >> 21u;
let value_a = a & 0x1FFFFFu;
return (weight_b << 21u) + value_a;`,
		func(a, b uint32) uint32 {
			weightB, _ := UnpackWeighted(b)
			_, valueA := UnpackWeighted(a)
			return PackWeighted(weightB, valueA)
		})))
}

func (r *Registry) registerSelect() {
	r.EqZeroInt = index(r, must(MakeSelectInt("eqzero", "return a == 0;",
		func(a int32) bool { return a == 0 })))
	r.EqZeroUint = index(r, must(MakeSelectUint("eqzero", "return a == 0u;",
		func(a uint32) bool { return a == 0 })))
	r.EqZeroFloat = index(r, must(MakeSelectFloat("eqzero", "return a == 0.0;",
		func(a float32) bool { return a == 0 })))

	r.NqZeroInt = index(r, must(MakeSelectInt("nqzero", "return a != 0;",
		func(a int32) bool { return a != 0 })))
	r.NqZeroUint = index(r, must(MakeSelectUint("nqzero", "return a != 0u;",
		func(a uint32) bool { return a != 0 })))
	r.NqZeroFloat = index(r, must(MakeSelectFloat("nqzero", "return a != 0.0;",
		func(a float32) bool { return a != 0 })))

	r.GtZeroInt = index(r, must(MakeSelectInt("gtzero", "return a > 0;",
		func(a int32) bool { return a > 0 })))
	r.GtZeroUint = index(r, must(MakeSelectUint("gtzero", "return a > 0u;",
		func(a uint32) bool { return a > 0 })))
	r.GtZeroFloat = index(r, must(MakeSelectFloat("gtzero", "return a > 0.0;",
		func(a float32) bool { return a > 0 })))

	r.GeZeroInt = index(r, must(MakeSelectInt("gezero", "return a >= 0;",
		func(a int32) bool { return a >= 0 })))
	r.GeZeroUint = index(r, must(MakeSelectUint("gezero", "return a >= 0u;",
		func(uint32) bool { return true })))
	r.GeZeroFloat = index(r, must(MakeSelectFloat("gezero", "return a >= 0.0;",
		func(a float32) bool { return a >= 0 })))

	r.LtZeroInt = index(r, must(MakeSelectInt("ltzero", "return a < 0;",
		func(a int32) bool { return a < 0 })))
	r.LtZeroUint = index(r, must(MakeSelectUint("ltzero", "return a < 0u;",
		func(uint32) bool { return false })))
	r.LtZeroFloat = index(r, must(MakeSelectFloat("ltzero", "return a < 0.0;",
		func(a float32) bool { return a < 0 })))

	r.LeZeroInt = index(r, must(MakeSelectInt("lezero", "return a <= 0;",
		func(a int32) bool { return a <= 0 })))
	r.LeZeroUint = index(r, must(MakeSelectUint("lezero", "return a <= 0u;",
		func(a uint32) bool { return a == 0 })))
	r.LeZeroFloat = index(r, must(MakeSelectFloat("lezero", "return a <= 0.0;",
		func(a float32) bool { return a <= 0 })))

	r.AlwaysInt = index(r, must(MakeSelectInt("always", "return true;",
		func(int32) bool { return true })))
	r.AlwaysUint = index(r, must(MakeSelectUint("always", "return true;",
		func(uint32) bool { return true })))
	r.AlwaysFloat = index(r, must(MakeSelectFloat("always", "return true;",
		func(float32) bool { return true })))

	r.NeverInt = index(r, must(MakeSelectInt("never", "return false;",
		func(int32) bool { return false })))
	r.NeverUint = index(r, must(MakeSelectUint("never", "return false;",
		func(uint32) bool { return false })))
	r.NeverFloat = index(r, must(MakeSelectFloat("never", "return false;",
		func(float32) bool { return false })))

	r.EqMinfFloat = index(r, must(MakeSelectFloat("eq_minf",
		"return a == bitcast<f32>(0xff800000u);",
		func(a float32) bool { return a == types.SentinelFloat() })))
	r.EqMaxInt = index(r, must(MakeSelectInt("eq_max", "return a == 2147483647;",
		func(a int32) bool { return a == types.SentinelInt })))
	r.EqMaxUint = index(r, must(MakeSelectUint("eq_max", "return a == 4294967295u;",
		func(a uint32) bool { return a == types.SentinelUint })))
	r.NqMaxInt = index(r, must(MakeSelectInt("nq_max", "return a != 2147483647;",
		func(a int32) bool { return a != types.SentinelInt })))
	r.NqMaxUint = index(r, must(MakeSelectUint("nq_max", "return a != 4294967295u;",
		func(a uint32) bool { return a != types.SentinelUint })))
}
