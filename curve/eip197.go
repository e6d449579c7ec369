package curve

import "math/big"

// eip197WordSize is the width of each big-endian integer in the EIP-197
// precompile encoding.
const eip197WordSize = 32

// EncodeEIP197 packs pairs into the byte layout the Ethereum BN254 pairing
// precompile (EIP-197) expects: each pair contributes 192 bytes,
// A.x, A.y, B.x[1], B.x[0], B.y[1], B.y[0], each a 32-byte big-endian
// integer. Note the G2 coordinates are encoded imaginary-part first.
func EncodeEIP197(pairs []Pair) []byte {
	out := make([]byte, 0, len(pairs)*192)
	for _, pr := range pairs {
		ax, ay := pr.G1.XY()
		bx0, bx1, by0, by1 := pr.G2.Coordinates()
		out = append(out, put32(ax)...)
		out = append(out, put32(ay)...)
		out = append(out, put32(bx1)...)
		out = append(out, put32(bx0)...)
		out = append(out, put32(by1)...)
		out = append(out, put32(by0)...)
	}
	return out
}

// DecodeEIP197 unpacks bytes produced by EncodeEIP197 back into pairs,
// validating each point against the curve and subgroup.
func DecodeEIP197(data []byte) ([]Pair, error) {
	if len(data)%192 != 0 {
		return nil, ErrNotOnCurve
	}
	n := len(data) / 192
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		chunk := data[i*192 : (i+1)*192]
		ax := get32(chunk[0:32])
		ay := get32(chunk[32:64])
		bx1 := get32(chunk[64:96])
		bx0 := get32(chunk[96:128])
		by1 := get32(chunk[128:160])
		by0 := get32(chunk[160:192])

		g1, err := NewG1Point(ax, ay)
		if err != nil {
			return nil, err
		}
		g2, err := NewG2Point(bx0, bx1, by0, by1)
		if err != nil {
			return nil, err
		}
		pairs[i] = Pair{G1: g1, G2: g2}
	}
	return pairs, nil
}

func put32(v *big.Int) []byte {
	var buf [eip197WordSize]byte
	v.FillBytes(buf[:])
	return buf[:]
}

func get32(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
