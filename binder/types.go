package binder

import "errors"

var (
	ErrKeyAlreadyExists  = errors.New("binder: key already exists")
	ErrKeyNotFound       = errors.New("binder: key not found")
	ErrEmptyBinder       = errors.New("binder: binder is empty")
	ErrResourceExhausted = errors.New("binder: resource exhausted")
)

// ref is a stable arena slot reference. Slots are never moved within one
// snapshot, so a ref held by the key index stays valid across insertions and
// removals until the snapshot is cloned.
type ref int32

const noRef = ref(-1)

// reserveHook is a test seam for simulating storage exhaustion. When set, it
// is consulted before any arena growth or index insertion; a non-nil return
// aborts the operation before anything is mutated.
var reserveHook func(n int) error

func reserve(n int) error {
	if reserveHook != nil {
		return reserveHook(n)
	}
	return nil
}
