// Package monoid provides a minimal monoid abstraction and a few stock
// instances.
//
// A Monoid pairs an identity constructor with an associative Append:
//
//	Append(Empty(), x) == x
//	Append(x, Empty()) == x
//	Append(Append(x, y), z) == Append(x, Append(y, z))
//
// Implementations are free to mutate their left operand; Concat and FoldMap
// always start from a fresh Empty(), so caller-owned inputs are only ever
// passed as right operands.
package monoid

// Monoid defines an algebraic structure with identity and associative append.
type Monoid[A any] struct {
	Empty  func() A
	Append func(A, A) A
}

// Concat combines values left to right using the monoid.
// With no values it returns m.Empty().
func Concat[A any](m Monoid[A], xs ...A) A {
	result := m.Empty()
	for _, x := range xs {
		result = m.Append(result, x)
	}
	return result
}

// FoldMap maps and then folds in one pass.
func FoldMap[A, B any](xs []A, m Monoid[B], f func(A) B) B {
	result := m.Empty()
	for _, x := range xs {
		result = m.Append(result, f(x))
	}
	return result
}

// Number is the set of types Sum and Product accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds numbers, with zero as identity.
func Sum[N Number]() Monoid[N] {
	return Monoid[N]{
		Empty:  func() N { return 0 },
		Append: func(a, b N) N { return a + b },
	}
}

// Product multiplies numbers, with one as identity.
func Product[N Number]() Monoid[N] {
	return Monoid[N]{
		Empty:  func() N { return 1 },
		Append: func(a, b N) N { return a * b },
	}
}

// Join concatenates strings with sep between non-empty operands.
// The empty string is the identity, so empty inputs are absorbed.
func Join(sep string) Monoid[string] {
	return Monoid[string]{
		Empty: func() string { return "" },
		Append: func(a, b string) string {
			switch {
			case a == "":
				return b
			case b == "":
				return a
			default:
				return a + sep + b
			}
		},
	}
}
