// Copyright 2018 Digital Luddite.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i8080

// OperandKind says how an instruction's trailing bytes should be read and
// printed: not at all, as an immediate value (#), or as an address ($).
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandImmediate
	OperandAddress
)

// OpCode describes one of the 256 instruction encodings: the opcode byte,
// the total instruction length in bytes (opcode plus operands), the
// mnemonic used by the disassembler, the operand kind, and the semantic
// action. Handlers are shared per instruction family and receive the
// opcode byte so register and condition fields can be decoded inside.
type OpCode struct {
	Code     byte
	Length   int
	Mnemonic string
	Kind     OperandKind

	handler func(*Machine, byte, []byte) error
}

// opcodes is the instruction decode table, indexed by the opcode byte.
// Encodings the 8080 leaves undefined are length-1 UNKNOWNs that log a
// warning and carry on.
var opcodes = [256]OpCode{
	{0x00, 1, "NOP", OperandNone, (*Machine).nop},
	{0x01, 3, "LXI B", OperandImmediate, (*Machine).lxi},
	{0x02, 1, "STAX B", OperandNone, (*Machine).stax},
	{0x03, 1, "INX B", OperandNone, (*Machine).inx},
	{0x04, 1, "INR B", OperandNone, (*Machine).inr},
	{0x05, 1, "DCR B", OperandNone, (*Machine).dcr},
	{0x06, 2, "MVI B", OperandImmediate, (*Machine).mvi},
	{0x07, 1, "RLC", OperandNone, (*Machine).rlc},
	{0x08, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0x09, 1, "DAD B", OperandNone, (*Machine).dad},
	{0x0A, 1, "LDAX B", OperandNone, (*Machine).ldax},
	{0x0B, 1, "DCX B", OperandNone, (*Machine).dcx},
	{0x0C, 1, "INR C", OperandNone, (*Machine).inr},
	{0x0D, 1, "DCR C", OperandNone, (*Machine).dcr},
	{0x0E, 2, "MVI C", OperandImmediate, (*Machine).mvi},
	{0x0F, 1, "RRC", OperandNone, (*Machine).rrc},
	{0x10, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0x11, 3, "LXI D", OperandImmediate, (*Machine).lxi},
	{0x12, 1, "STAX D", OperandNone, (*Machine).stax},
	{0x13, 1, "INX D", OperandNone, (*Machine).inx},
	{0x14, 1, "INR D", OperandNone, (*Machine).inr},
	{0x15, 1, "DCR D", OperandNone, (*Machine).dcr},
	{0x16, 2, "MVI D", OperandImmediate, (*Machine).mvi},
	{0x17, 1, "RAL", OperandNone, (*Machine).ral},
	{0x18, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0x19, 1, "DAD D", OperandNone, (*Machine).dad},
	{0x1A, 1, "LDAX D", OperandNone, (*Machine).ldax},
	{0x1B, 1, "DCX D", OperandNone, (*Machine).dcx},
	{0x1C, 1, "INR E", OperandNone, (*Machine).inr},
	{0x1D, 1, "DCR E", OperandNone, (*Machine).dcr},
	{0x1E, 2, "MVI E", OperandImmediate, (*Machine).mvi},
	{0x1F, 1, "RAR", OperandNone, (*Machine).rar},
	{0x20, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0x21, 3, "LXI H", OperandImmediate, (*Machine).lxi},
	{0x22, 3, "SHLD", OperandAddress, (*Machine).shld},
	{0x23, 1, "INX H", OperandNone, (*Machine).inx},
	{0x24, 1, "INR H", OperandNone, (*Machine).inr},
	{0x25, 1, "DCR H", OperandNone, (*Machine).dcr},
	{0x26, 2, "MVI H", OperandImmediate, (*Machine).mvi},
	{0x27, 1, "DAA", OperandNone, (*Machine).unhandled},
	{0x28, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0x29, 1, "DAD H", OperandNone, (*Machine).dad},
	{0x2A, 3, "LHLD", OperandAddress, (*Machine).lhld},
	{0x2B, 1, "DCX H", OperandNone, (*Machine).dcx},
	{0x2C, 1, "INR L", OperandNone, (*Machine).inr},
	{0x2D, 1, "DCR L", OperandNone, (*Machine).dcr},
	{0x2E, 2, "MVI L", OperandImmediate, (*Machine).mvi},
	{0x2F, 1, "CMA", OperandNone, (*Machine).cma},
	{0x30, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0x31, 3, "LXI SP", OperandImmediate, (*Machine).lxi},
	{0x32, 3, "STA", OperandAddress, (*Machine).sta},
	{0x33, 1, "INX SP", OperandNone, (*Machine).inx},
	{0x34, 1, "INR M", OperandNone, (*Machine).inr},
	{0x35, 1, "DCR M", OperandNone, (*Machine).dcr},
	{0x36, 2, "MVI M", OperandImmediate, (*Machine).mvi},
	{0x37, 1, "STC", OperandNone, (*Machine).stc},
	{0x38, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0x39, 1, "DAD SP", OperandNone, (*Machine).dad},
	{0x3A, 3, "LDA", OperandAddress, (*Machine).lda},
	{0x3B, 1, "DCX SP", OperandNone, (*Machine).dcx},
	{0x3C, 1, "INR A", OperandNone, (*Machine).inr},
	{0x3D, 1, "DCR A", OperandNone, (*Machine).dcr},
	{0x3E, 2, "MVI A", OperandImmediate, (*Machine).mvi},
	{0x3F, 1, "CMC", OperandNone, (*Machine).cmc},
	{0x40, 1, "MOV B,B", OperandNone, (*Machine).mov},
	{0x41, 1, "MOV B,C", OperandNone, (*Machine).mov},
	{0x42, 1, "MOV B,D", OperandNone, (*Machine).mov},
	{0x43, 1, "MOV B,E", OperandNone, (*Machine).mov},
	{0x44, 1, "MOV B,H", OperandNone, (*Machine).mov},
	{0x45, 1, "MOV B,L", OperandNone, (*Machine).mov},
	{0x46, 1, "MOV B,M", OperandNone, (*Machine).mov},
	{0x47, 1, "MOV B,A", OperandNone, (*Machine).mov},
	{0x48, 1, "MOV C,B", OperandNone, (*Machine).mov},
	{0x49, 1, "MOV C,C", OperandNone, (*Machine).mov},
	{0x4A, 1, "MOV C,D", OperandNone, (*Machine).mov},
	{0x4B, 1, "MOV C,E", OperandNone, (*Machine).mov},
	{0x4C, 1, "MOV C,H", OperandNone, (*Machine).mov},
	{0x4D, 1, "MOV C,L", OperandNone, (*Machine).mov},
	{0x4E, 1, "MOV C,M", OperandNone, (*Machine).mov},
	{0x4F, 1, "MOV C,A", OperandNone, (*Machine).mov},
	{0x50, 1, "MOV D,B", OperandNone, (*Machine).mov},
	{0x51, 1, "MOV D,C", OperandNone, (*Machine).mov},
	{0x52, 1, "MOV D,D", OperandNone, (*Machine).mov},
	{0x53, 1, "MOV D,E", OperandNone, (*Machine).mov},
	{0x54, 1, "MOV D,H", OperandNone, (*Machine).mov},
	{0x55, 1, "MOV D,L", OperandNone, (*Machine).mov},
	{0x56, 1, "MOV D,M", OperandNone, (*Machine).mov},
	{0x57, 1, "MOV D,A", OperandNone, (*Machine).mov},
	{0x58, 1, "MOV E,B", OperandNone, (*Machine).mov},
	{0x59, 1, "MOV E,C", OperandNone, (*Machine).mov},
	{0x5A, 1, "MOV E,D", OperandNone, (*Machine).mov},
	{0x5B, 1, "MOV E,E", OperandNone, (*Machine).mov},
	{0x5C, 1, "MOV E,H", OperandNone, (*Machine).mov},
	{0x5D, 1, "MOV E,L", OperandNone, (*Machine).mov},
	{0x5E, 1, "MOV E,M", OperandNone, (*Machine).mov},
	{0x5F, 1, "MOV E,A", OperandNone, (*Machine).mov},
	{0x60, 1, "MOV H,B", OperandNone, (*Machine).mov},
	{0x61, 1, "MOV H,C", OperandNone, (*Machine).mov},
	{0x62, 1, "MOV H,D", OperandNone, (*Machine).mov},
	{0x63, 1, "MOV H,E", OperandNone, (*Machine).mov},
	{0x64, 1, "MOV H,H", OperandNone, (*Machine).mov},
	{0x65, 1, "MOV H,L", OperandNone, (*Machine).mov},
	{0x66, 1, "MOV H,M", OperandNone, (*Machine).mov},
	{0x67, 1, "MOV H,A", OperandNone, (*Machine).mov},
	{0x68, 1, "MOV L,B", OperandNone, (*Machine).mov},
	{0x69, 1, "MOV L,C", OperandNone, (*Machine).mov},
	{0x6A, 1, "MOV L,D", OperandNone, (*Machine).mov},
	{0x6B, 1, "MOV L,E", OperandNone, (*Machine).mov},
	{0x6C, 1, "MOV L,H", OperandNone, (*Machine).mov},
	{0x6D, 1, "MOV L,L", OperandNone, (*Machine).mov},
	{0x6E, 1, "MOV L,M", OperandNone, (*Machine).mov},
	{0x6F, 1, "MOV L,A", OperandNone, (*Machine).mov},
	{0x70, 1, "MOV M,B", OperandNone, (*Machine).mov},
	{0x71, 1, "MOV M,C", OperandNone, (*Machine).mov},
	{0x72, 1, "MOV M,D", OperandNone, (*Machine).mov},
	{0x73, 1, "MOV M,E", OperandNone, (*Machine).mov},
	{0x74, 1, "MOV M,H", OperandNone, (*Machine).mov},
	{0x75, 1, "MOV M,L", OperandNone, (*Machine).mov},
	{0x76, 1, "HALT", OperandNone, (*Machine).halt},
	{0x77, 1, "MOV M,A", OperandNone, (*Machine).mov},
	{0x78, 1, "MOV A,B", OperandNone, (*Machine).mov},
	{0x79, 1, "MOV A,C", OperandNone, (*Machine).mov},
	{0x7A, 1, "MOV A,D", OperandNone, (*Machine).mov},
	{0x7B, 1, "MOV A,E", OperandNone, (*Machine).mov},
	{0x7C, 1, "MOV A,H", OperandNone, (*Machine).mov},
	{0x7D, 1, "MOV A,L", OperandNone, (*Machine).mov},
	{0x7E, 1, "MOV A,M", OperandNone, (*Machine).mov},
	{0x7F, 1, "MOV A,A", OperandNone, (*Machine).mov},
	{0x80, 1, "ADD B", OperandNone, (*Machine).add},
	{0x81, 1, "ADD C", OperandNone, (*Machine).add},
	{0x82, 1, "ADD D", OperandNone, (*Machine).add},
	{0x83, 1, "ADD E", OperandNone, (*Machine).add},
	{0x84, 1, "ADD H", OperandNone, (*Machine).add},
	{0x85, 1, "ADD L", OperandNone, (*Machine).add},
	{0x86, 1, "ADD M", OperandNone, (*Machine).add},
	{0x87, 1, "ADD A", OperandNone, (*Machine).add},
	{0x88, 1, "ADC B", OperandNone, (*Machine).adc},
	{0x89, 1, "ADC C", OperandNone, (*Machine).adc},
	{0x8A, 1, "ADC D", OperandNone, (*Machine).adc},
	{0x8B, 1, "ADC E", OperandNone, (*Machine).adc},
	{0x8C, 1, "ADC H", OperandNone, (*Machine).adc},
	{0x8D, 1, "ADC L", OperandNone, (*Machine).adc},
	{0x8E, 1, "ADC M", OperandNone, (*Machine).adc},
	{0x8F, 1, "ADC A", OperandNone, (*Machine).adc},
	{0x90, 1, "SUB B", OperandNone, (*Machine).sub},
	{0x91, 1, "SUB C", OperandNone, (*Machine).sub},
	{0x92, 1, "SUB D", OperandNone, (*Machine).sub},
	{0x93, 1, "SUB E", OperandNone, (*Machine).sub},
	{0x94, 1, "SUB H", OperandNone, (*Machine).sub},
	{0x95, 1, "SUB L", OperandNone, (*Machine).sub},
	{0x96, 1, "SUB M", OperandNone, (*Machine).sub},
	{0x97, 1, "SUB A", OperandNone, (*Machine).sub},
	{0x98, 1, "SBB B", OperandNone, (*Machine).unhandled},
	{0x99, 1, "SBB C", OperandNone, (*Machine).unhandled},
	{0x9A, 1, "SBB D", OperandNone, (*Machine).unhandled},
	{0x9B, 1, "SBB E", OperandNone, (*Machine).unhandled},
	{0x9C, 1, "SBB H", OperandNone, (*Machine).unhandled},
	{0x9D, 1, "SBB L", OperandNone, (*Machine).unhandled},
	{0x9E, 1, "SBB M", OperandNone, (*Machine).unhandled},
	{0x9F, 1, "SBB A", OperandNone, (*Machine).unhandled},
	{0xA0, 1, "ANA B", OperandNone, (*Machine).ana},
	{0xA1, 1, "ANA C", OperandNone, (*Machine).ana},
	{0xA2, 1, "ANA D", OperandNone, (*Machine).ana},
	{0xA3, 1, "ANA E", OperandNone, (*Machine).ana},
	{0xA4, 1, "ANA H", OperandNone, (*Machine).ana},
	{0xA5, 1, "ANA L", OperandNone, (*Machine).ana},
	{0xA6, 1, "ANA M", OperandNone, (*Machine).ana},
	{0xA7, 1, "ANA A", OperandNone, (*Machine).ana},
	{0xA8, 1, "XRA B", OperandNone, (*Machine).xra},
	{0xA9, 1, "XRA C", OperandNone, (*Machine).xra},
	{0xAA, 1, "XRA D", OperandNone, (*Machine).xra},
	{0xAB, 1, "XRA E", OperandNone, (*Machine).xra},
	{0xAC, 1, "XRA H", OperandNone, (*Machine).xra},
	{0xAD, 1, "XRA L", OperandNone, (*Machine).xra},
	{0xAE, 1, "XRA M", OperandNone, (*Machine).xra},
	{0xAF, 1, "XRA A", OperandNone, (*Machine).xra},
	{0xB0, 1, "ORA B", OperandNone, (*Machine).ora},
	{0xB1, 1, "ORA C", OperandNone, (*Machine).ora},
	{0xB2, 1, "ORA D", OperandNone, (*Machine).ora},
	{0xB3, 1, "ORA E", OperandNone, (*Machine).ora},
	{0xB4, 1, "ORA H", OperandNone, (*Machine).ora},
	{0xB5, 1, "ORA L", OperandNone, (*Machine).ora},
	{0xB6, 1, "ORA M", OperandNone, (*Machine).ora},
	{0xB7, 1, "ORA A", OperandNone, (*Machine).ora},
	{0xB8, 1, "CMP B", OperandNone, (*Machine).cmp},
	{0xB9, 1, "CMP C", OperandNone, (*Machine).cmp},
	{0xBA, 1, "CMP D", OperandNone, (*Machine).cmp},
	{0xBB, 1, "CMP E", OperandNone, (*Machine).cmp},
	{0xBC, 1, "CMP H", OperandNone, (*Machine).cmp},
	{0xBD, 1, "CMP L", OperandNone, (*Machine).cmp},
	{0xBE, 1, "CMP M", OperandNone, (*Machine).cmp},
	{0xBF, 1, "CMP A", OperandNone, (*Machine).cmp},
	{0xC0, 1, "RNZ", OperandNone, (*Machine).condRet},
	{0xC1, 1, "POP B", OperandNone, (*Machine).popPair},
	{0xC2, 3, "JNZ", OperandAddress, (*Machine).condJmp},
	{0xC3, 3, "JMP", OperandAddress, (*Machine).jmp},
	{0xC4, 3, "CNZ", OperandAddress, (*Machine).condCall},
	{0xC5, 1, "PUSH B", OperandNone, (*Machine).pushPair},
	{0xC6, 2, "ADI", OperandImmediate, (*Machine).adi},
	{0xC7, 1, "RST", OperandNone, (*Machine).rst},
	{0xC8, 1, "RZ", OperandNone, (*Machine).condRet},
	{0xC9, 1, "RET", OperandNone, (*Machine).ret},
	{0xCA, 3, "JZ", OperandAddress, (*Machine).condJmp},
	{0xCB, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0xCC, 3, "CZ", OperandAddress, (*Machine).condCall},
	{0xCD, 3, "CALL", OperandAddress, (*Machine).call},
	{0xCE, 2, "ACI", OperandImmediate, (*Machine).aci},
	{0xCF, 1, "RST", OperandNone, (*Machine).rst},
	{0xD0, 1, "RNC", OperandNone, (*Machine).condRet},
	{0xD1, 1, "POP D", OperandNone, (*Machine).popPair},
	{0xD2, 3, "JNC", OperandAddress, (*Machine).condJmp},
	{0xD3, 2, "OUT", OperandImmediate, (*Machine).out},
	{0xD4, 3, "CNC", OperandAddress, (*Machine).condCall},
	{0xD5, 1, "PUSH D", OperandNone, (*Machine).pushPair},
	{0xD6, 2, "SUI", OperandImmediate, (*Machine).sui},
	{0xD7, 1, "RST", OperandNone, (*Machine).rst},
	{0xD8, 1, "RC", OperandNone, (*Machine).condRet},
	{0xD9, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0xDA, 3, "JC", OperandAddress, (*Machine).condJmp},
	{0xDB, 2, "IN", OperandImmediate, (*Machine).input},
	{0xDC, 3, "CC", OperandAddress, (*Machine).condCall},
	{0xDD, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0xDE, 2, "SBI", OperandImmediate, (*Machine).unhandled},
	{0xDF, 1, "RST", OperandNone, (*Machine).rst},
	{0xE0, 1, "RPO", OperandNone, (*Machine).condRet},
	{0xE1, 1, "POP H", OperandNone, (*Machine).popPair},
	{0xE2, 3, "JPO", OperandAddress, (*Machine).condJmp},
	{0xE3, 1, "XTHL", OperandNone, (*Machine).xthl},
	{0xE4, 3, "CPO", OperandAddress, (*Machine).condCall},
	{0xE5, 1, "PUSH H", OperandNone, (*Machine).pushPair},
	{0xE6, 2, "ANI", OperandImmediate, (*Machine).ani},
	{0xE7, 1, "RST", OperandNone, (*Machine).rst},
	{0xE8, 1, "RPE", OperandNone, (*Machine).condRet},
	{0xE9, 1, "PCHL", OperandNone, (*Machine).pchl},
	{0xEA, 3, "JPE", OperandAddress, (*Machine).condJmp},
	{0xEB, 1, "XCHG", OperandNone, (*Machine).xchg},
	{0xEC, 3, "CPE", OperandAddress, (*Machine).condCall},
	{0xED, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0xEE, 2, "XRI", OperandImmediate, (*Machine).xri},
	{0xEF, 1, "RST", OperandNone, (*Machine).rst},
	{0xF0, 1, "RP", OperandNone, (*Machine).condRet},
	{0xF1, 1, "POP PSW", OperandNone, (*Machine).popPSW},
	{0xF2, 3, "JP", OperandAddress, (*Machine).condJmp},
	{0xF3, 1, "DI", OperandNone, (*Machine).unhandled},
	{0xF4, 3, "CP", OperandAddress, (*Machine).condCall},
	{0xF5, 1, "PUSH PSW", OperandNone, (*Machine).pushPSW},
	{0xF6, 2, "ORI", OperandImmediate, (*Machine).ori},
	{0xF7, 1, "RST", OperandNone, (*Machine).rst},
	{0xF8, 1, "RM", OperandNone, (*Machine).condRet},
	{0xF9, 1, "SPHL", OperandNone, (*Machine).sphl},
	{0xFA, 3, "JM", OperandAddress, (*Machine).condJmp},
	{0xFB, 1, "EI", OperandNone, (*Machine).unhandled},
	{0xFC, 3, "CM", OperandAddress, (*Machine).condCall},
	{0xFD, 1, "UNKNOWN", OperandNone, (*Machine).unhandled},
	{0xFE, 2, "CPI", OperandImmediate, (*Machine).cpi},
	{0xFF, 1, "RST", OperandNone, (*Machine).rst},
}

// Lookup returns the decode entry for the given opcode byte.
func Lookup(opcode byte) OpCode {
	return opcodes[opcode]
}
