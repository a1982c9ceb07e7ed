// Package frame assembles complete radiotap+802.11 injection buffers for
// the four response frames this fake AP ever sends: beacon, probe
// response, authentication response and association response.
package frame

import (
	"github.com/jfdrake/fakeap/internal/core/domain"
	"github.com/jfdrake/fakeap/internal/core/wire"
)

// SupportedRates is the fixed 8-byte rate set advertised in beacons,
// probe responses and association responses (6, 9, 12, 18, 24, 36, 48 and
// 54 Mb/s, each byte in 500 kb/s units -- the exact bytes jfap.c always
// sent).
var SupportedRates = []byte{0x0c, 0x12, 0x18, 0x24, 0x30, 0x48, 0x60, 0x6c}

const beaconInterval = 500

// Beacon builds a beacon frame addressed to the broadcast address. It is
// never tracked by the retransmission cache.
func Beacon(cfg *domain.Config, seq uint16) []byte {
	return buildBeaconLike(cfg, domain.MAC(domain.Broadcast), wire.SubtypeBeacon, seq)
}

// ProbeResponse builds a probe response addressed to dst. Callers are
// responsible for depositing the result into the retransmission cache.
func ProbeResponse(cfg *domain.Config, dst domain.MAC, seq uint16) []byte {
	return buildBeaconLike(cfg, dst, wire.SubtypeProbeResp, seq)
}

func buildBeaconLike(cfg *domain.Config, dst domain.MAC, subtype uint8, seq uint16) []byte {
	var buf []byte
	buf = wire.EmitRadioTap(buf, wire.RadioTapRate2Mbps)
	buf = wire.EmitDot11(buf, wire.TypeManagement, subtype, dst, cfg.BSSID, cfg.BSSID, seq)
	buf = wire.EmitBeaconBody(buf, wire.BeaconBody{
		Timestamp:    0,
		Interval:     beaconInterval,
		Capabilities: 1, // ESS only
	})
	buf = wire.EmitIE(buf, wire.IESSID, cfg.SSID)
	buf = wire.EmitIE(buf, wire.IERates, SupportedRates)
	buf = wire.EmitIE(buf, wire.IEDSParamSet, []byte{byte(cfg.Channel)})
	return buf
}

// AuthResponse builds an open-system authentication response (algorithm
// 0, sequence 2, status success) addressed to dst.
func AuthResponse(cfg *domain.Config, dst domain.MAC, seq uint16) []byte {
	var buf []byte
	buf = wire.EmitRadioTap(buf, wire.RadioTapRate2Mbps)
	buf = wire.EmitDot11(buf, wire.TypeManagement, wire.SubtypeAuth, dst, cfg.BSSID, cfg.BSSID, seq)
	buf = wire.EmitAuthBody(buf, wire.AuthBody{Algorithm: 0, Sequence: 2, Status: 0})
	return buf
}

// AssocResponse builds an association response (status success,
// association ID 1, rates IE only -- no SSID IE) addressed to dst.
func AssocResponse(cfg *domain.Config, dst domain.MAC, seq uint16) []byte {
	var buf []byte
	buf = wire.EmitRadioTap(buf, wire.RadioTapRate2Mbps)
	buf = wire.EmitDot11(buf, wire.TypeManagement, wire.SubtypeAssocResp, dst, cfg.BSSID, cfg.BSSID, seq)
	buf = wire.EmitAssocRespBody(buf, wire.AssocRespBody{Capabilities: 1, Status: 0, AssociationID: 1})
	buf = wire.EmitIE(buf, wire.IERates, SupportedRates)
	return buf
}
