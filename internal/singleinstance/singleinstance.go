// Package singleinstance ensures only one instance of the app runs at a
// time, using an OS level mutex.
package singleinstance

import (
	"time"

	"github.com/juju/mutex/v2"
)

type systemClock struct{}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Acquire obtains the machine wide lock for the given name. It fails with
// [mutex.ErrTimeout] when another instance already holds it. The lock is
// held until released or the process exits.
func Acquire(name string) (mutex.Releaser, error) {
	return mutex.Acquire(mutex.Spec{
		Name:    name,
		Clock:   systemClock{},
		Delay:   100 * time.Millisecond,
		Timeout: 500 * time.Millisecond,
	})
}
