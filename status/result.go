/*
Copyright 2026 Polyglot Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package status

// Result holds either a value of type T or a failure Status, never both.
// It is the library's exception-free channel for fallible operations: the
// producer returns a Result, the consumer checks Ok before reading.
//
// The zero value of Result is a failed container carrying Unknown, so a
// Result that was never assigned reads as a failure rather than as a zero
// value of T.
type Result[T any] struct {
	value T
	st    *Status
	ok    bool
}

// Ok wraps a successfully produced value in a Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err wraps a failure Status in a Result. Passing a nil or OK status is a
// misuse of the constructor; the Result then carries Unknown so that it
// still reads as a failure.
func Err[T any](st *Status) Result[T] {
	if st.Ok() {
		st = Unknown
	}
	return Result[T]{st: st}
}

// ErrCode wraps a bare failure code in a Result with no message.
func ErrCode[T any](code Code) Result[T] {
	if code == CodeOK {
		return Err[T](nil)
	}
	return Result[T]{st: &Status{code: code}}
}

// Ok reports whether the Result holds a value.
func (r Result[T]) Ok() bool {
	return r.ok
}

// MustValue returns the held value. Calling it on a failed Result is a
// contract violation and panics; callers must check Ok first. This is
// deliberate: silently substituting a default would mask programmer errors.
func (r Result[T]) MustValue() T {
	if !r.ok {
		panic("status: MustValue called on failed Result: " + r.Status().Error())
	}
	return r.value
}

// Status returns the failure Status of the Result, or the canonical OK
// status when the Result holds a value.
func (r Result[T]) Status() *Status {
	if r.ok {
		return OK
	}
	if r.st == nil {
		return Unknown
	}
	return r.st
}

// Get returns the held value and whether it is present. It is the
// early-return form: callers bind the value and bail out when the second
// return is false.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// ValueOr returns the held value, or fallback when the Result is a failure.
func (r Result[T]) ValueOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// Map converts a Result of A into a Result of B through conv. A failed
// Result propagates its Status unchanged and conv is never invoked.
func Map[A, B any](r Result[A], conv func(A) B) Result[B] {
	if !r.ok {
		return Result[B]{st: r.st}
	}
	return Ok(conv(r.value))
}
