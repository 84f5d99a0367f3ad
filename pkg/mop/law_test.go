package mop

import (
	"math/rand/v2"
	"testing"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randMaybe returns an absent value about half the time.
func randMaybe(rng *rand.Rand) Maybe[int] {
	if rng.IntN(2) == 0 {
		return None[int]()
	}
	return Some(randInt(rng))
}

// evenTriple keeps even inputs tripled and drops odd ones.
func evenTriple(x int) Maybe[int] {
	if x%2 == 0 {
		return Some(x * 3)
	}
	return None[int]()
}

// nonMultipleShift drops multiples of three and shifts the rest.
func nonMultipleShift(x int) Maybe[int] {
	if x%3 == 0 {
		return None[int]()
	}
	return Some(x - 7)
}

// --- Group 1: Monad Laws ---

// TestPropertyBindLeftIdentity: Bind(Some(a), f) ≡ f(a)
func TestPropertyBindLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		left := Bind(Some(a), evenTriple)
		right := evenTriple(a)
		if left != right {
			t.Fatalf("left identity: %v != %v (a=%d)", left, right, a)
		}
	}
}

// TestPropertyBindRightIdentity: Bind(m, Some) ≡ m
func TestPropertyBindRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randMaybe(rng)
		left := Bind(m, Some[int])
		if left != m {
			t.Fatalf("right identity: %v != %v", left, m)
		}
	}
}

// TestPropertyBindAssociativity: Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
func TestPropertyBindAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randMaybe(rng)
		left := Bind(Bind(m, evenTriple), nonMultipleShift)
		right := Bind(m, func(x int) Maybe[int] {
			return Bind(evenTriple(x), nonMultipleShift)
		})
		if left != right {
			t.Fatalf("associativity: %v != %v (m=%v)", left, right, m)
		}
	}
}

// --- Group 2: Functor Laws ---

// TestPropertyMapIdentity: Map(m, id) ≡ m
func TestPropertyMapIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randMaybe(rng)
		left := Map(m, func(x int) int { return x })
		if left != m {
			t.Fatalf("functor identity: %v != %v", left, m)
		}
	}
}

// TestPropertyMapComposition: Map(m, f∘g) ≡ Map(Map(m, g), f)
func TestPropertyMapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x * 2 }
	g := func(x int) int { return x + 3 }
	fg := func(x int) int { return f(g(x)) }
	for range propertyN {
		m := randMaybe(rng)
		left := Map(m, fg)
		right := Map(Map(m, g), f)
		if left != right {
			t.Fatalf("functor composition: %v != %v (m=%v)", left, right, m)
		}
	}
}

// --- Group 3: Absence Propagation ---

// TestPropertyAbsencePropagation: every combinator maps None to None.
func TestPropertyAbsencePropagation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := None[int]()
		if got := Bind(n, evenTriple); got != None[int]() {
			t.Fatalf("bind should propagate absence, got %v", got)
		}
		if got := Map(n, func(x int) int { return x + 1 }); got != None[int]() {
			t.Fatalf("map should propagate absence, got %v", got)
		}
		other := randMaybe(rng)
		if got := Combine(n, other, func(a, b int) int { return a + b }); got != None[int]() {
			t.Fatalf("combine should propagate absence, got %v (other=%v)", got, other)
		}
		if got := And(n, other); got != None[int]() {
			t.Fatalf("and should propagate absence, got %v (other=%v)", got, other)
		}
	}
}

// --- Group 4: Coherence ---

// TestPropertyFlattenCoherence: Flatten(Map(m, f)) ≡ Bind(m, f)
func TestPropertyFlattenCoherence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randMaybe(rng)
		left := Flatten(Map(m, evenTriple))
		right := Bind(m, evenTriple)
		if left != right {
			t.Fatalf("flatten coherence: %v != %v (m=%v)", left, right, m)
		}
	}
}

// TestPropertyCombineCoherence: Combine(a, b, f) ≡ Bind(a, func(x) Map(b, func(y) f(x, y)))
func TestPropertyCombineCoherence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	add := func(x, y int) int { return x + y }
	for range propertyN {
		a := randMaybe(rng)
		b := randMaybe(rng)
		left := Combine(a, b, add)
		right := Bind(a, func(x int) Maybe[int] {
			return Map(b, func(y int) int { return add(x, y) })
		})
		if left != right {
			t.Fatalf("combine coherence: %v != %v (a=%v b=%v)", left, right, a, b)
		}
	}
}

// TestPropertyAndCoherence: And(a, b) ≡ Bind(a, func(_) b)
func TestPropertyAndCoherence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randMaybe(rng)
		b := randMaybe(rng)
		left := And(a, b)
		right := Bind(a, func(int) Maybe[int] { return b })
		if left != right {
			t.Fatalf("and coherence: %v != %v (a=%v b=%v)", left, right, a, b)
		}
	}
}

// TestPropertyMatchCoherence: Match(m, id, const d) ≡ m.GetOr(d)
func TestPropertyMatchCoherence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randMaybe(rng)
		d := randInt(rng)
		left := Match(m,
			func(v int) int { return v },
			func() int { return d })
		right := m.GetOr(d)
		if left != right {
			t.Fatalf("match coherence: %d != %d (m=%v d=%d)", left, right, m, d)
		}
	}
}

// --- Group 5: Filter Laws ---

// TestPropertyFilterConjunction: m.Filter(p).Filter(q) ≡ m.Filter(p ∧ q)
func TestPropertyFilterConjunction(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	p := func(x int) bool { return x%2 == 0 }
	q := func(x int) bool { return x > 0 }
	for range propertyN {
		m := randMaybe(rng)
		left := m.Filter(p).Filter(q)
		right := m.Filter(func(x int) bool { return p(x) && q(x) })
		if left != right {
			t.Fatalf("filter conjunction: %v != %v (m=%v)", left, right, m)
		}
	}
}

// TestPropertyFilterTrueIdentity: m.Filter(const true) ≡ m
func TestPropertyFilterTrueIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randMaybe(rng)
		left := m.Filter(func(int) bool { return true })
		if left != m {
			t.Fatalf("filter identity: %v != %v", left, m)
		}
	}
}

// --- Group 6: Or Laws ---

// TestPropertyOrIdentity: None.Or(m) ≡ m and m.Or(None) ≡ m
func TestPropertyOrIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randMaybe(rng)
		if got := None[int]().Or(m); got != m {
			t.Fatalf("or left identity: %v != %v", got, m)
		}
		if got := m.Or(None[int]()); got != m {
			t.Fatalf("or right identity: %v != %v", got, m)
		}
	}
}

// TestPropertyOrAssociativity: a.Or(b).Or(c) ≡ a.Or(b.Or(c))
func TestPropertyOrAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randMaybe(rng)
		b := randMaybe(rng)
		c := randMaybe(rng)
		left := a.Or(b).Or(c)
		right := a.Or(b.Or(c))
		if left != right {
			t.Fatalf("or associativity: %v != %v (a=%v b=%v c=%v)", left, right, a, b, c)
		}
	}
}

// --- Group 7: Round Trips ---

// TestPropertyPtrRoundTrip: FromPtr(m.ToPtr()) ≡ m
func TestPropertyPtrRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randMaybe(rng)
		if got := FromPtr(m.ToPtr()); got != m {
			t.Fatalf("ptr round trip: %v != %v", got, m)
		}
	}
}

// TestPropertyOkRoundTrip: FromOk(m.Get()) ≡ m
func TestPropertyOkRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		m := randMaybe(rng)
		if got := FromOk(m.Get()); got != m {
			t.Fatalf("ok round trip: %v != %v", got, m)
		}
	}
}
