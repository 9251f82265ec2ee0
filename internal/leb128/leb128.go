// Package leb128 implements the variable-length integer encodings used
// throughout the WebAssembly binary format: unsigned LEB128 for sizes and
// indices, signed LEB128 for immediates such as i32.const/i64.const.
package leb128

import "math/big"

// EncodeUint32 encodes v as unsigned LEB128. This is the fast path used for
// every size, index, and count in the binary format, all of which fit in 32
// bits in any module this library can represent.
func EncodeUint32(v uint32) []byte {
	// Up to 5 groups of 7 bits cover the full 32-bit range.
	ret := make([]byte, 0, 5)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			ret = append(ret, b|0x80)
		} else {
			ret = append(ret, b)
			return ret
		}
	}
}

// EncodeUint64 encodes v as unsigned LEB128, for values that may exceed 32
// bits (large memory offsets, i64 type indices in very large modules).
func EncodeUint64(v uint64) []byte {
	ret := make([]byte, 0, 10)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			ret = append(ret, b|0x80)
		} else {
			ret = append(ret, b)
			return ret
		}
	}
}

// EncodeUintBig encodes an arbitrary-precision non-negative integer as
// unsigned LEB128. Negative input panics with errNegative; callers at the
// public API boundary translate this into InvalidValueError.
func EncodeUintBig(v *big.Int) []byte {
	if v.Sign() < 0 {
		panic(errNegative)
	}
	if v.IsUint64() {
		return EncodeUint64(v.Uint64())
	}

	n := new(big.Int).Set(v)
	mask := big.NewInt(0x7f)
	ret := make([]byte, 0, 8)
	for {
		group := new(big.Int).And(n, mask)
		n.Rsh(n, 7)
		b := byte(group.Uint64())
		if n.Sign() != 0 {
			ret = append(ret, b|0x80)
		} else {
			ret = append(ret, b)
			return ret
		}
	}
}

// errNegative is the panic value EncodeUintBig raises for negative input;
// it is recovered and reported as InvalidValueError at the package boundary
// that knows about the offending mnemonic.
var errNegative = negativeValueError{}

type negativeValueError struct{}

func (negativeValueError) Error() string { return "leb128: negative value for unsigned encoding" }

// IsNegativeValueError reports whether err (typically recovered from a
// panic) is the sentinel EncodeUintBig raises for negative unsigned input.
func IsNegativeValueError(err any) bool {
	_, ok := err.(negativeValueError)
	return ok
}

// EncodeInt32 encodes v as signed LEB128. This always fits in 5 bytes, so it
// never needs the arbitrary-precision fallback.
func EncodeInt32(v int32) []byte {
	return encodeInt64Groups(int64(v), 5)
}

// EncodeInt64 encodes v as signed LEB128, falling back to nothing special:
// the native int64 path already fits every value the spec allows in the fast
// path (up to 10 groups of 7 bits), so unlike EncodeUintBig's bounded/big
// split, EncodeInt64 alone needs no big.Int fallback for 64-bit immediates.
func EncodeInt64(v int64) []byte {
	return encodeInt64Groups(v, 10)
}

func encodeInt64Groups(v int64, maxGroups int) []byte {
	ret := make([]byte, 0, maxGroups)
	for {
		b := byte(v & 0x7f)
		v >>= 7 // arithmetic shift: preserves sign
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			ret = append(ret, b)
			return ret
		}
		ret = append(ret, b|0x80)
	}
}

// EncodeIntBig encodes an arbitrary-precision signed integer as signed
// LEB128. Used for i64.const immediates and type indices wide enough to
// exceed int64, and for any i32.const/i64.const value a caller supplies as a
// *big.Int rather than a machine integer.
func EncodeIntBig(v *big.Int) []byte {
	if v.IsInt64() {
		return EncodeInt64(v.Int64())
	}

	n := new(big.Int).Set(v)
	ret := make([]byte, 0, 16)
	for {
		// group = low 7 bits of n's two's-complement representation.
		group := new(big.Int).And(n, big.NewInt(0x7f))
		b := byte(group.Uint64())
		n.Rsh(n, 7) // big.Int.Rsh on a negative receiver is arithmetic.
		signBitSet := b&0x40 != 0
		isDone := (n.Sign() == 0 && !signBitSet) || (n.Cmp(big.NewInt(-1)) == 0 && signBitSet)
		if isDone {
			ret = append(ret, b)
			return ret
		}
		ret = append(ret, b|0x80)
	}
}
