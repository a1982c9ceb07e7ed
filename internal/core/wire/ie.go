package wire

// Information element IDs used by this codec.
const (
	IESSID        uint8 = 0
	IERates       uint8 = 1
	IEDSParamSet  uint8 = 3
)

// IE is a single decoded (id, data) information element; data aliases the
// input slice, no copy.
type IE struct {
	ID   uint8
	Data []byte
}

// FindIE walks a concatenation of information elements looking for the
// first one with the given id. It stops and reports "not found" as soon
// as the remaining bytes can no longer hold a well-formed IE, exactly as
// a short/malformed IE area silently ends the search rather than erroring
// out to the caller.
func FindIE(data []byte, id uint8) (IE, bool) {
	rem := data
	for len(rem) > 0 {
		if len(rem) < 2 {
			return IE{}, false
		}
		ieID, ieLen := rem[0], int(rem[1])
		rem = rem[2:]

		if len(rem) < ieLen {
			return IE{}, false
		}

		if ieID == id {
			return IE{ID: ieID, Data: rem[:ieLen]}, true
		}

		rem = rem[ieLen:]
	}
	return IE{}, false
}

// EmitIE appends one packed (id, len, data) information element to buf.
func EmitIE(buf []byte, id uint8, data []byte) []byte {
	buf = append(buf, id, uint8(len(data)))
	buf = append(buf, data...)
	return buf
}
