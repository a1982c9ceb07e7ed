package wire

import "encoding/binary"

// radiotapRateBit is the presence-bitmap bit for the Rate field
// (IEEE80211_RADIOTAP_RATE in the BSD radiotap headers).
const radiotapRateBit = 1 << 2

// radiotapHeaderLen is the fixed 8-byte leading portion of a radiotap
// header: version(1) + pad(1) + length(2) + present(4).
const radiotapHeaderLen = 8

// RadioTapRate2Mbps is 2 Mb/s expressed in radiotap's 500 kb/s units.
const RadioTapRate2Mbps = 0x04

// RadioTap is the minimal decoded view of an inbound radiotap header.
type RadioTap struct {
	Version uint8
	Pad     uint8
	Length  uint16
	Present uint32
}

// ParseRadioTap validates and skips a radiotap header, returning the
// decoded header and the 802.11 bytes that follow it.
//
// It requires at least 8 bytes for the fixed header, and requires that
// the buffer be strictly longer than it_len so at least one byte of
// 802.11 data remains.
func ParseRadioTap(data []byte) (RadioTap, []byte, error) {
	if len(data) < radiotapHeaderLen {
		return RadioTap{}, nil, ErrShort
	}

	rt := RadioTap{
		Version: data[0],
		Pad:     data[1],
		Length:  binary.LittleEndian.Uint16(data[2:4]),
		Present: binary.LittleEndian.Uint32(data[4:8]),
	}

	if len(data) <= int(rt.Length) {
		return RadioTap{}, nil, ErrMalformed
	}

	return rt, data[rt.Length:], nil
}

// EmitRadioTap appends a minimal 9-byte radiotap header advertising only
// the Rate field, at the given rate (in 500 kb/s units), to buf.
func EmitRadioTap(buf []byte, rate uint8) []byte {
	var hdr [radiotapHeaderLen]byte
	hdr[0] = 0 // version
	hdr[1] = 0 // pad
	binary.LittleEndian.PutUint16(hdr[2:4], radiotapHeaderLen+1)
	binary.LittleEndian.PutUint32(hdr[4:8], radiotapRateBit)

	buf = append(buf, hdr[:]...)
	buf = append(buf, rate)
	return buf
}
