// Package binary is the core of this library: the opcode table, the
// per-instruction immediates emitter, the section emitters, and the module
// encoder that ties them together into a complete WebAssembly binary.
package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// Opcode is the numeric identifier of an instruction, up to 20 bits: one
// raw byte for the unprefixed core set, or a raw prefix byte (0xFB GC, 0xFC
// bulk-memory/saturating-conversions, 0xFD SIMD, 0xFE threads/atomics)
// followed by a sub-opcode.
type Opcode = uint32

const (
	prefixGC     = 0xFB
	prefixMisc   = 0xFC
	prefixSIMD   = 0xFD
	prefixAtomic = 0xFE
)

// op2 packs a prefix byte and an 8-bit sub-opcode.
func op2(prefix, sub byte) Opcode { return Opcode(prefix)<<8 | Opcode(sub) }

// op3 packs a prefix byte and a wider (9-12 bit) sub-opcode, used by the
// handful of SIMD/relaxed-SIMD mnemonics whose sub-opcode exceeds 0xFF.
func op3(prefix byte, sub uint16) Opcode { return Opcode(prefix)<<12 | Opcode(sub) }

// opcodeTable maps every mnemonic the op package exposes to its Opcode.
// Populated once at init from the per-family tables in opcodes_*.go.
var opcodeTable = map[string]Opcode{}

// encodedCache holds the pre-encoded opcode bytes for every mnemonic,
// computed once at init so the instruction emitter can copy a cached array
// rather than re-deriving it per instruction.
var encodedCache = map[string][]byte{}

func register(tables ...map[string]Opcode) {
	for _, t := range tables {
		for mnemonic, code := range t {
			opcodeTable[mnemonic] = code
			encodedCache[mnemonic] = mustEncodeOpcode(code)
		}
	}
}

func init() {
	register(
		controlOpcodes,
		parametricOpcodes,
		variableOpcodes,
		numericOpcodes,
		memoryOpcodes,
		referenceOpcodes,
		gcOpcodes,
		tableOpcodes,
		bulkMemoryOpcodes,
		simdOpcodes,
		atomicOpcodes,
	)
}

// EncodeOpcodeValue encodes a raw opcode value to its byte form:
//
//	n ≤ 0xFF:      one raw byte
//	n ≤ 0xFFFF:    a raw prefix byte (n>>8), then unsigned LEB128 of n&0xFF
//	n ≤ 0xFFFFF:   a raw prefix byte (n>>12), then unsigned LEB128 of n&0xFFF
//
// The prefix byte is always written raw (never run through LEB128 itself):
// real WebAssembly decoders read exactly one byte to recognise 0xFB/0xFC/
// 0xFD/0xFE before switching to varuint32 decoding of the sub-opcode, so
// only the sub-opcode half is a genuine LEB128 group.
func EncodeOpcodeValue(n Opcode) ([]byte, error) {
	switch {
	case n <= 0xFF:
		return []byte{byte(n)}, nil
	case n <= 0xFFFF:
		ret := []byte{byte(n >> 8)}
		return append(ret, leb128.EncodeUint32(n&0xFF)...), nil
	case n <= 0xFFFFF:
		ret := []byte{byte(n >> 12)}
		return append(ret, leb128.EncodeUint32(n&0xFFF)...), nil
	default:
		return nil, &wasm.InvalidValueError{Mnemonic: "<opcode>", Reason: "opcode exceeds 20 bits"}
	}
}

func mustEncodeOpcode(n Opcode) []byte {
	b, err := EncodeOpcodeValue(n)
	if err != nil {
		panic(err)
	}
	return b
}

// lookupOpcode returns the cached encoded bytes for mnemonic, or nil if the
// mnemonic is not in the table. An unregistered mnemonic can reach the
// encoder through op.Op or a hand-built Instruction; emitInstruction reports
// it as a MalformedInputError.
func lookupOpcode(mnemonic string) []byte {
	return encodedCache[mnemonic]
}

// OpcodeTable returns a fresh copy of the mnemonic -> numeric opcode map,
// exposed publicly via the root package for callers that want to inspect or
// report on the instruction set rather than encode with it.
func OpcodeTable() map[string]Opcode {
	out := make(map[string]Opcode, len(opcodeTable))
	for k, v := range opcodeTable {
		out[k] = v
	}
	return out
}
