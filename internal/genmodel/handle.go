package genmodel

import (
	"errors"
	"sync"
)

// ErrModelLoad means the generation model could not be initialized.
// It is fatal for the whole batch: every file depends on the same handle.
var ErrModelLoad = errors.New("generation model failed to load")

// Handle is a lazily-initialized shared reference to the model
// capability. Exactly one caller runs the initializer; concurrent callers
// block until it finishes and then share the read-only result.
type Handle struct {
	once sync.Once
	open func() (Capability, error)
	cap  Capability
	err  error
}

// NewHandle wraps an initializer. The initializer is not invoked until
// the first Get call.
func NewHandle(open func() (Capability, error)) *Handle {
	return &Handle{open: open}
}

// Get returns the shared capability, initializing it on first use.
// An initialization error is sticky and returned on every call.
func (h *Handle) Get() (Capability, error) {
	h.once.Do(func() {
		h.cap, h.err = h.open()
	})
	return h.cap, h.err
}
