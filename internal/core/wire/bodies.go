package wire

import "encoding/binary"

// BeaconBodyLen and friends are the fixed sizes of each typed management-frame
// body, before any information elements.
const (
	BeaconBodyLen    = 12 // timestamp(8) + interval(2) + caps(2)
	AuthBodyLen      = 6  // algorithm(2) + seq(2) + status(2)
	AssocReqBodyLen  = 4  // caps(2) + listen interval(2)
	AssocRespBodyLen = 6  // caps(2) + status(2) + aid(2)
)

// BeaconBody is shared by beacons and probe responses.
type BeaconBody struct {
	Timestamp    uint64
	Interval     uint16
	Capabilities uint16
}

// ParseBeaconBody decodes the fixed beacon/probe-response body from the
// front of data and returns it with the remaining IE bytes.
func ParseBeaconBody(data []byte) (BeaconBody, []byte, error) {
	if len(data) < BeaconBodyLen {
		return BeaconBody{}, nil, ErrShort
	}
	b := BeaconBody{
		Timestamp:    binary.LittleEndian.Uint64(data[0:8]),
		Interval:     binary.LittleEndian.Uint16(data[8:10]),
		Capabilities: binary.LittleEndian.Uint16(data[10:12]),
	}
	return b, data[BeaconBodyLen:], nil
}

// EmitBeaconBody appends the fixed beacon/probe-response body to buf.
func EmitBeaconBody(buf []byte, b BeaconBody) []byte {
	var raw [BeaconBodyLen]byte
	binary.LittleEndian.PutUint64(raw[0:8], b.Timestamp)
	binary.LittleEndian.PutUint16(raw[8:10], b.Interval)
	binary.LittleEndian.PutUint16(raw[10:12], b.Capabilities)
	return append(buf, raw[:]...)
}

// AuthBody is the fixed body of an authentication frame.
type AuthBody struct {
	Algorithm uint16
	Sequence  uint16
	Status    uint16
}

// ParseAuthBody decodes an authentication body.
func ParseAuthBody(data []byte) (AuthBody, []byte, error) {
	if len(data) < AuthBodyLen {
		return AuthBody{}, nil, ErrShort
	}
	a := AuthBody{
		Algorithm: binary.LittleEndian.Uint16(data[0:2]),
		Sequence:  binary.LittleEndian.Uint16(data[2:4]),
		Status:    binary.LittleEndian.Uint16(data[4:6]),
	}
	return a, data[AuthBodyLen:], nil
}

// EmitAuthBody appends an authentication body to buf.
func EmitAuthBody(buf []byte, a AuthBody) []byte {
	var raw [AuthBodyLen]byte
	binary.LittleEndian.PutUint16(raw[0:2], a.Algorithm)
	binary.LittleEndian.PutUint16(raw[2:4], a.Sequence)
	binary.LittleEndian.PutUint16(raw[4:6], a.Status)
	return append(buf, raw[:]...)
}

// AssocReqBody is the fixed body of an association request.
type AssocReqBody struct {
	Capabilities   uint16
	ListenInterval uint16
}

// ParseAssocReqBody decodes an association-request body.
func ParseAssocReqBody(data []byte) (AssocReqBody, []byte, error) {
	if len(data) < AssocReqBodyLen {
		return AssocReqBody{}, nil, ErrShort
	}
	a := AssocReqBody{
		Capabilities:   binary.LittleEndian.Uint16(data[0:2]),
		ListenInterval: binary.LittleEndian.Uint16(data[2:4]),
	}
	return a, data[AssocReqBodyLen:], nil
}

// EmitAssocReqBody appends an association-request body to buf.
func EmitAssocReqBody(buf []byte, a AssocReqBody) []byte {
	var raw [AssocReqBodyLen]byte
	binary.LittleEndian.PutUint16(raw[0:2], a.Capabilities)
	binary.LittleEndian.PutUint16(raw[2:4], a.ListenInterval)
	return append(buf, raw[:]...)
}

// AssocRespBody is the fixed body of an association response.
type AssocRespBody struct {
	Capabilities  uint16
	Status        uint16
	AssociationID uint16
}

// ParseAssocRespBody decodes an association-response body.
func ParseAssocRespBody(data []byte) (AssocRespBody, []byte, error) {
	if len(data) < AssocRespBodyLen {
		return AssocRespBody{}, nil, ErrShort
	}
	a := AssocRespBody{
		Capabilities:  binary.LittleEndian.Uint16(data[0:2]),
		Status:        binary.LittleEndian.Uint16(data[2:4]),
		AssociationID: binary.LittleEndian.Uint16(data[4:6]),
	}
	return a, data[AssocRespBodyLen:], nil
}

// EmitAssocRespBody appends an association-response body to buf.
func EmitAssocRespBody(buf []byte, a AssocRespBody) []byte {
	var raw [AssocRespBodyLen]byte
	binary.LittleEndian.PutUint16(raw[0:2], a.Capabilities)
	binary.LittleEndian.PutUint16(raw[2:4], a.Status)
	binary.LittleEndian.PutUint16(raw[4:6], a.AssociationID)
	return append(buf, raw[:]...)
}
