// ABOUTME: Generic owning wrapper for native resource handles
// ABOUTME: Invokes the bound deleter exactly once on release
package handle

// Deleter releases the native resource behind a handle value.
type Deleter[T comparable] func(T)

// Owned is a single-owner wrapper around one native handle value.
//
// The zero value of T means "no resource": releasing an empty wrapper is a
// no-op. Owned values must not be copied; ownership moves only through
// Transfer.
type Owned[T comparable] struct {
	value   T
	release Deleter[T]
}

// Own takes ownership of value unconditionally, including the zero value
// (for example the nil result of a failed create call).
func Own[T comparable](value T, release Deleter[T]) *Owned[T] {
	return &Owned[T]{value: value, release: release}
}

// Get returns the underlying handle value for passing into library calls.
func (o *Owned[T]) Get() T {
	return o.value
}

// Valid reports whether the wrapper currently holds a non-zero handle.
func (o *Owned[T]) Valid() bool {
	var zero T
	return o.value != zero
}

// Release invokes the bound deleter if a non-zero handle is held, then
// marks the wrapper empty. Later calls are no-ops. Pair with defer at the
// point of ownership:
//
//	dev := handle.Own(create(), destroy)
//	defer dev.Release()
func (o *Owned[T]) Release() {
	if !o.Valid() {
		return
	}
	value := o.value
	var zero T
	o.value = zero
	if o.release != nil {
		o.release(value)
	}
}

// Transfer moves ownership into a new wrapper and empties the receiver, so
// a later Release on the source is a no-op.
func (o *Owned[T]) Transfer() *Owned[T] {
	moved := &Owned[T]{value: o.value, release: o.release}
	var zero T
	o.value = zero
	return moved
}
