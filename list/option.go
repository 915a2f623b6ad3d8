package list

// Option is a nullable value, used by the container siblings for safe head
// access. Package seqs itself reports absence through (value, ok) returns
// and does not consume Option; it is kept here for symmetry with the other
// containers of the ecosystem.
type Option[T any] struct {
	val T
	ok  bool
}

// Some creates an option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, ok: true}
}

// None creates an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the held value. The boolean is false for an empty option.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.ok
}

// OrElse returns the held value, or def for an empty option.
func (o Option[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.val
}

// HeadOption returns the first item of a list as an option.
func HeadOption[T any](l *List[T]) Option[T] {
	if v, ok := l.Head(); ok {
		return Some(v)
	}
	return None[T]()
}
