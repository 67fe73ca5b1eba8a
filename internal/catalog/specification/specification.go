package specification

// Specification selects the candidates that satisfy it
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// Func adapts a predicate to a Specification.
type Func[T any] func(candidate T) bool

// IsSatisfiedBy calls f
func (f Func[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}

// And is satisfied when every spec is. An empty And is satisfied by anything.
func And[T any](specs ...Specification[T]) Specification[T] {
	return &andSpecification[T]{specs: specs}
}

// Or is satisfied when at least one spec is
func Or[T any](specs ...Specification[T]) Specification[T] {
	return &orSpecification[T]{specs: specs}
}

// Not negates spec
func Not[T any](spec Specification[T]) Specification[T] {
	return &notSpecification[T]{spec: spec}
}

// Filter returns the candidates satisfying spec, in their original order.
func Filter[T any](candidates []T, spec Specification[T]) []T {
	matched := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if spec.IsSatisfiedBy(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

type andSpecification[T any] struct {
	specs []Specification[T]
}

func (s *andSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}

type orSpecification[T any] struct {
	specs []Specification[T]
}

func (s *orSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(candidate) {
			return true
		}
	}
	return false
}

type notSpecification[T any] struct {
	spec Specification[T]
}

func (s *notSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return !s.spec.IsSatisfiedBy(candidate)
}
