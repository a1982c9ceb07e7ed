package wire

import "errors"

// ErrShort means there were not enough bytes left to decode the next
// field; the caller should discard the frame.
var ErrShort = errors.New("wire: frame too short")

// ErrMalformed means the bytes were long enough but internally
// inconsistent (e.g. a radiotap it_len that leaves no 802.11 data).
var ErrMalformed = errors.New("wire: malformed frame")
