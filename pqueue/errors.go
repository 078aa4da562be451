package pqueue

import "errors"

// Sentinel errors carried by the panics of DecreaseKey.
var (
	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = errors.New("pqueue: new key is greater than current key")

	// ErrIndexOutOfRange indicates DecreaseKey received a position outside [0, Len()).
	ErrIndexOutOfRange = errors.New("pqueue: index out of range")
)
