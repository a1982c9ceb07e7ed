package wire

import (
	"encoding/binary"

	"github.com/jfdrake/fakeap/internal/core/domain"
)

// Dot11HeaderLen is the fixed size of the 802.11 MAC header this codec
// understands: frame-control(2) + duration(2) + addr1/2/3(6 each) +
// seq-control(2).
const Dot11HeaderLen = 24

// Frame types (bits 2-3 of the first frame-control byte).
const (
	TypeManagement uint8 = 0
	TypeControl    uint8 = 1
	TypeData       uint8 = 2
)

// Management subtypes used by this codec.
const (
	SubtypeAssocReq  uint8 = 0
	SubtypeAssocResp uint8 = 1
	SubtypeProbeReq  uint8 = 4
	SubtypeProbeResp uint8 = 5
	SubtypeBeacon    uint8 = 8
	SubtypeAuth      uint8 = 11
)

// FlagRetry is bit 3 of the frame-control flags byte.
const FlagRetry uint8 = 1 << 3

// Dot11Header is the decoded 24-byte 802.11 MAC header.
type Dot11Header struct {
	Version  uint8
	Type     uint8
	Subtype  uint8
	Flags    uint8
	Duration uint16
	Addr1    domain.MAC // destination
	Addr2    domain.MAC // source
	Addr3    domain.MAC // BSSID
	Seq      uint16
	Frag     uint8
}

// Retry reports whether the Retry control-flag bit is set.
func (h Dot11Header) Retry() bool {
	return h.Flags&FlagRetry != 0
}

// ParseDot11 decodes the fixed 24-byte MAC header from the front of data
// and returns it along with whatever bytes follow (the frame body).
func ParseDot11(data []byte) (Dot11Header, []byte, error) {
	if len(data) < Dot11HeaderLen {
		return Dot11Header{}, nil, ErrShort
	}

	b0 := data[0]
	seqCtrl := binary.LittleEndian.Uint16(data[22:24])

	h := Dot11Header{
		Version:  b0 & 0x03,
		Type:     (b0 >> 2) & 0x03,
		Subtype:  (b0 >> 4) & 0x0f,
		Flags:    data[1],
		Duration: binary.LittleEndian.Uint16(data[2:4]),
		Frag:     uint8(seqCtrl & 0x0f),
		Seq:      seqCtrl >> 4,
	}
	copy(h.Addr1[:], data[4:10])
	copy(h.Addr2[:], data[10:16])
	copy(h.Addr3[:], data[16:22])

	return h, data[Dot11HeaderLen:], nil
}

// EmitDot11 appends a 24-byte 802.11 MAC header to buf: protocol version
// 0, fragment 0, duration 0, control flags 0, the given type/subtype and
// addresses, and the given sequence number.
func EmitDot11(buf []byte, typ, subtype uint8, dst, src, bssid domain.MAC, seq uint16) []byte {
	var hdr [Dot11HeaderLen]byte
	hdr[0] = (typ&0x03)<<2 | (subtype&0x0f)<<4
	hdr[1] = 0 // control flags
	binary.LittleEndian.PutUint16(hdr[2:4], 0)
	copy(hdr[4:10], dst[:])
	copy(hdr[10:16], src[:])
	copy(hdr[16:22], bssid[:])
	binary.LittleEndian.PutUint16(hdr[22:24], seq<<4) // frag=0

	return append(buf, hdr[:]...)
}

// SetRetryFlag flips the Retry bit in an already-serialized frame built
// by EmitRadioTap+EmitDot11. It walks the radiotap header to find where
// the 802.11 control-flags byte lives rather than assuming a fixed
// offset, so it keeps working if the radiotap length ever changes.
func SetRetryFlag(frame []byte) error {
	_, body, err := ParseRadioTap(frame)
	if err != nil {
		return err
	}
	if len(body) < 2 {
		return ErrShort
	}
	flagsOffset := len(frame) - len(body) + 1
	frame[flagsOffset] |= FlagRetry
	return nil
}
