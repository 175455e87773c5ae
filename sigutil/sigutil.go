// Package sigutil content-addresses canonical hint signatures.
//
// The identity cache keys on the digest rather than the raw signature
// string: equal signatures yield equal CIDs, and the CID doubles as a
// compact, stable identifier for diagnostics.
package sigutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// SigCID returns a CIDv1 string using the "raw" multicodec and a sha2-256
// multihash over the signature bytes.
func SigCID(sig string) string {
	c, err := SigCIDBytes([]byte(sig))
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length, this should be unreachable.
		return ""
	}
	return c.String()
}

// SigCIDBytes returns a CIDv1 (raw + sha2-256) derived from data.
func SigCIDBytes(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
