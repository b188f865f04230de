package attendance

import "errors"

var (
	ErrUnknownPerson = errors.New("attendance references an unknown worker or helper")
)
