// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

// Errs takes in errors and returns the first non-nil error that was added.
// Additional errors added after the first one are ignored, so that a long
// chain of fallible operations can be attempted with every error checked,
// without the earliest failure being clobbered by later no-op calls.
type Errs struct {
	Err error
}

// Errored returns true iff Err is non-nil.
func (errs *Errs) Errored() bool { return errs.Err != nil }

// Add remembers the first non-nil error passed to it across every call.
func (errs *Errs) Add(errors ...error) {
	if errs.Err != nil {
		return
	}
	for _, err := range errors {
		if err != nil {
			errs.Err = err
			return
		}
	}
}
