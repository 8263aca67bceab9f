package session

import (
	"fmt"
)

// Mode selects the direction of a session
type Mode int

const (
	// Encode converts raw bytes into Base64 text
	Encode Mode = iota
	// Decode converts Base64 text into raw bytes
	Decode
)

func (m Mode) String() string {
	switch m {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ChunkSize returns the default number of bytes read from the input in one go
func (m Mode) ChunkSize() int {
	if m == Decode {
		return decodeChunkSize
	}
	return encodeChunkSize
}

// State is the lifecycle stage of a session
type State int

const (
	StateOpen State = iota
	StateReading
	StateProcessing
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateOpen:       "open",
	StateReading:    "reading",
	StateProcessing: "processing",
	StateDone:       "done",
	StateFailed:     "failed",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal returns true if no further transitions are possible
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
