package op

import "testing"

func TestPackRoundTrip(t *testing.T) {
	// All weights; value boundaries and a sampled sweep across the field,
	// since the full cross product is 2^32 combinations.
	values := []uint32{0, 1, 2, 1<<21 - 2, 1<<21 - 1}
	for v := uint32(0); v < 1<<21; v += 4093 {
		values = append(values, v)
	}

	for weight := uint32(0); weight <= WeightedWeightMax; weight++ {
		for _, value := range values {
			w, v := UnpackWeighted(PackWeighted(weight, value))
			if w != weight || v != value {
				t.Fatalf("unpack(pack(%d, %d)) = (%d, %d)", weight, value, w, v)
			}
		}
	}
}

func TestPackMasksValue(t *testing.T) {
	// A value wider than 21 bits must not leak into the weight field.
	word := PackWeighted(3, 1<<21|5)
	w, v := UnpackWeighted(word)
	if w != 3 || v != 5 {
		t.Errorf("pack with oversized value = (%d, %d), want (3, 5)", w, v)
	}
}

func TestSelectMinWeight(t *testing.T) {
	r := NewRegistry()
	fn := r.SelectMinWeightUint.Fn()

	tests := []struct {
		name string
		a, b uint32
		want uint32
	}{
		{"a lighter", PackWeighted(1, 100), PackWeighted(2, 200), PackWeighted(1, 100)},
		{"b lighter", PackWeighted(7, 100), PackWeighted(2, 200), PackWeighted(2, 200)},
		{"tie favors a", PackWeighted(4, 100), PackWeighted(4, 200), PackWeighted(4, 100)},
		{"zero weights", PackWeighted(0, 9), PackWeighted(0, 8), PackWeighted(0, 9)},
		{"max weight", PackWeighted(WeightedWeightMax, 1), PackWeighted(0, 2), PackWeighted(0, 2)},
	}
	for _, tt := range tests {
		if got := fn(tt.a, tt.b); got != tt.want {
			wGot, vGot := UnpackWeighted(got)
			wWant, vWant := UnpackWeighted(tt.want)
			t.Errorf("%s: select_min_weight = (%d, %d), want (%d, %d)", tt.name, wGot, vGot, wWant, vWant)
		}
	}
}

func TestConstructPair(t *testing.T) {
	r := NewRegistry()
	fn := r.ConstructPairUint.Fn()

	a := PackWeighted(5, 1234)
	b := PackWeighted(9, 4321)
	w, v := UnpackWeighted(fn(a, b))
	if w != 9 {
		t.Errorf("construct_pair weight = %d, want weight(b) = 9", w)
	}
	if v != 1234 {
		t.Errorf("construct_pair value = %d, want value(a) = 1234", v)
	}
}
