// Package trace renders a compact debug snapshot of a CircuitScope's
// enforced constraints: the scope label, constraint indices and per-side
// term counts are bit-packed with icza/bitio, and the whole buffer is
// compressed with consensys/compress/lzss — the same pairing gnark's own
// MPC/setup artifacts use before they are logged or written to disk.
package trace

import (
	"bytes"
	"encoding/base32"

	"github.com/consensys/compress/lzss"
	"github.com/icza/bitio"
	"golang.org/x/crypto/blake2b"
)

// dictionary is the shared LZSS dictionary for every trace dump. A fixed,
// all-zero dictionary is sufficient here: dumps are small, ad hoc debug
// artifacts, not a long-lived compressed archive format.
var dictionary = make([]byte, 16)

// ConstraintRecord is the minimal per-constraint shape trace needs: how
// many terms each side of A*B=C carries. It is defined independently of
// circuit.Constraint to avoid an import cycle (circuit imports trace for
// debug dumps and scope fingerprints).
type ConstraintRecord struct {
	ATerms, BTerms, CTerms int
}

// Dump renders the constraints at the given indices (already filtered by
// caller to one scope) into an LZSS-compressed byte stream: a 16-bit label
// length and the label bytes, a 32-bit record count, then per record a
// 32-bit constraint index and three 16-bit A/B/C term counts.
func Dump(scopeLabel string, indices []uint32, records []ConstraintRecord) ([]byte, error) {
	var buf bytes.Buffer

	bw := bitio.NewWriter(&buf)
	if err := bw.WriteBits(uint64(len(scopeLabel)), 16); err != nil {
		return nil, err
	}
	for _, b := range []byte(scopeLabel) {
		if err := bw.WriteBits(uint64(b), 8); err != nil {
			return nil, err
		}
	}
	if err := bw.WriteBits(uint64(len(records)), 32); err != nil {
		return nil, err
	}
	for i, r := range records {
		idx := uint64(0)
		if i < len(indices) {
			idx = uint64(indices[i])
		}
		if err := bw.WriteBits(idx, 32); err != nil {
			return nil, err
		}
		if err := bw.WriteBits(uint64(r.ATerms), 16); err != nil {
			return nil, err
		}
		if err := bw.WriteBits(uint64(r.BTerms), 16); err != nil {
			return nil, err
		}
		if err := bw.WriteBits(uint64(r.CTerms), 16); err != nil {
			return nil, err
		}
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}

	compressor, err := lzss.NewCompressor(dictionary)
	if err != nil {
		return nil, err
	}
	return compressor.Compress(buf.Bytes())
}

// Decompress reverses Dump's LZSS framing back into its raw bit-packed
// form; callers that only need the scope label and record count can stop
// there rather than re-parsing the bitio stream.
func Decompress(dump []byte) ([]byte, error) {
	return lzss.Decompress(dump, dictionary)
}

// Fingerprint hashes a dotted scope path into a short, stable, base32
// debug tag (blake2b with a 7-byte digest) so deeply nested scopes can be
// tagged in debug output without printing the whole path.
func Fingerprint(path string) string {
	h, _ := blake2b.New(7, nil) // 7 bytes -> 12-char base32 tag, no padding.
	_, _ = h.Write([]byte(path))
	sum := h.Sum(nil)
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum)
}
