package edgelist_test

import "github.com/pkg/errors"

// errorsCause unwraps pkg/errors wrappers down to the root cause.
func errorsCause(err error) error { return errors.Cause(err) }
