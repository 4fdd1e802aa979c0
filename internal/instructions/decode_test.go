package instructions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/iensu/gejmboj/internal/memory"
)

// loadProgram writes the bytes at 0x0100 and returns the memory.
func loadProgram(program ...uint8) *memory.RAM {
	mem := memory.NewRAM()
	for i, b := range program {
		mem.Write(0x0100+uint16(i), b)
	}
	return mem
}

func decodeOne(t *testing.T, program ...uint8) Instruction {
	t.Helper()
	instruction, err := Decode(loadProgram(program...), 0x0100)
	if err != nil {
		t.Fatalf("decoding % X failed: %v", program, err)
	}
	return instruction
}

func TestDecodeMnemonics(t *testing.T) {
	cases := []struct {
		program []uint8
		want    string
	}{
		{[]uint8{0x00}, "NOP"},
		{[]uint8{0x10, 0x00}, "STOP"},
		{[]uint8{0x76}, "HALT"},
		{[]uint8{0x01, 0x34, 0x12}, "LD BC, $1234"},
		{[]uint8{0x31, 0xFE, 0xFF}, "LD SP, $FFFE"},
		{[]uint8{0x02}, "LD (BC), A"},
		{[]uint8{0x12}, "LD (DE), A"},
		{[]uint8{0x22}, "LD (HL+), A"},
		{[]uint8{0x32}, "LD (HL-), A"},
		{[]uint8{0x0A}, "LD A, (BC)"},
		{[]uint8{0x1A}, "LD A, (DE)"},
		{[]uint8{0x2A}, "LD A, (HL+)"},
		{[]uint8{0x3A}, "LD A, (HL-)"},
		{[]uint8{0x08, 0x00, 0xC1}, "LD ($C100), SP"},
		{[]uint8{0x03}, "INC BC"},
		{[]uint8{0x33}, "INC SP"},
		{[]uint8{0x0B}, "DEC BC"},
		{[]uint8{0x04}, "INC B"},
		{[]uint8{0x34}, "INC (HL)"},
		{[]uint8{0x3D}, "DEC A"},
		{[]uint8{0x06, 0x42}, "LD B, $42"},
		{[]uint8{0x36, 0x42}, "LD (HL), $42"},
		{[]uint8{0x07}, "RLCA"},
		{[]uint8{0x0F}, "RRCA"},
		{[]uint8{0x17}, "RLA"},
		{[]uint8{0x1F}, "RRA"},
		{[]uint8{0x09}, "ADD HL, BC"},
		{[]uint8{0x39}, "ADD HL, SP"},
		{[]uint8{0x18, 0x05}, "JR 5"},
		{[]uint8{0x20, 0xFB}, "JR NZ, -5"},
		{[]uint8{0x38, 0x02}, "JR C, 2"},
		{[]uint8{0x27}, "DAA"},
		{[]uint8{0x2F}, "CPL"},
		{[]uint8{0x37}, "SCF"},
		{[]uint8{0x3F}, "CCF"},
		{[]uint8{0x41}, "LD B, C"},
		{[]uint8{0x46}, "LD B, (HL)"},
		{[]uint8{0x70}, "LD (HL), B"},
		{[]uint8{0x7F}, "LD A, A"},
		{[]uint8{0x80}, "ADD A, B"},
		{[]uint8{0x86}, "ADD A, (HL)"},
		{[]uint8{0x8F}, "ADC A, A"},
		{[]uint8{0x90}, "SUB A, B"},
		{[]uint8{0x9E}, "SBC A, (HL)"},
		{[]uint8{0xA1}, "AND C"},
		{[]uint8{0xAF}, "XOR A"},
		{[]uint8{0xB2}, "OR D"},
		{[]uint8{0xBB}, "CP E"},
		{[]uint8{0xC0}, "RET NZ"},
		{[]uint8{0xD8}, "RET C"},
		{[]uint8{0xC9}, "RET"},
		{[]uint8{0xD9}, "RETI"},
		{[]uint8{0xC1}, "POP BC"},
		{[]uint8{0xF1}, "POP AF"},
		{[]uint8{0xC5}, "PUSH BC"},
		{[]uint8{0xF5}, "PUSH AF"},
		{[]uint8{0xC3, 0x00, 0x80}, "JP $8000"},
		{[]uint8{0xDA, 0x00, 0x80}, "JP C, $8000"},
		{[]uint8{0xE9}, "JP HL"},
		{[]uint8{0xCD, 0x00, 0x30}, "CALL $3000"},
		{[]uint8{0xCC, 0x00, 0x30}, "CALL Z, $3000"},
		{[]uint8{0xC7}, "RST $00"},
		{[]uint8{0xFF}, "RST $38"},
		{[]uint8{0xC6, 0x01}, "ADD A, $01"},
		{[]uint8{0xCE, 0x01}, "ADC A, $01"},
		{[]uint8{0xD6, 0x01}, "SUB A, $01"},
		{[]uint8{0xDE, 0x01}, "SBC A, $01"},
		{[]uint8{0xE6, 0x0F}, "AND $0F"},
		{[]uint8{0xEE, 0xFF}, "XOR $FF"},
		{[]uint8{0xF6, 0xF0}, "OR $F0"},
		{[]uint8{0xFE, 0x90}, "CP $90"},
		{[]uint8{0xE0, 0x44}, "LDH ($44), A"},
		{[]uint8{0xF0, 0x44}, "LDH A, ($44)"},
		{[]uint8{0xE2}, "LDH (C), A"},
		{[]uint8{0xF2}, "LDH A, (C)"},
		{[]uint8{0xEA, 0x00, 0xC1}, "LD ($C100), A"},
		{[]uint8{0xFA, 0x00, 0xC1}, "LD A, ($C100)"},
		{[]uint8{0xE8, 0xFE}, "ADD SP, -2"},
		{[]uint8{0xF8, 0x02}, "LD HL, SP+2"},
		{[]uint8{0xF9}, "LD SP, HL"},
		{[]uint8{0xF3}, "DI"},
		{[]uint8{0xFB}, "EI"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			instruction := decodeOne(t, tc.program...)
			if got := instruction.String(); got != tc.want {
				t.Errorf("opcode % X decoded to %q, want %q", tc.program, got, tc.want)
			}
			if got := int(instruction.Length()); got != len(tc.program) {
				t.Errorf("%s length is %d, want %d", tc.want, got, len(tc.program))
			}
		})
	}
}

func TestDecodeExtendedMnemonics(t *testing.T) {
	cases := []struct {
		opcode uint8
		want   string
	}{
		{0x00, "RLC B"},
		{0x0E, "RRC (HL)"},
		{0x17, "RL A"},
		{0x1A, "RR D"},
		{0x25, "SLA L"},
		{0x2C, "SRA H"},
		{0x37, "SWAP A"},
		{0x3E, "SRL (HL)"},
		{0x40, "BIT 0, B"},
		{0x7E, "BIT 7, (HL)"},
		{0x87, "RES 0, A"},
		{0xAE, "RES 5, (HL)"},
		{0xC1, "SET 0, C"},
		{0xFF, "SET 7, A"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			instruction := decodeOne(t, 0xCB, tc.opcode)
			if got := instruction.String(); got != tc.want {
				t.Errorf("CB %02X decoded to %q, want %q", tc.opcode, got, tc.want)
			}
			if instruction.Length() != 2 {
				t.Errorf("%s length is %d, want 2", tc.want, instruction.Length())
			}
		})
	}
}

func TestDecodeExtendedTableIsDense(t *testing.T) {
	for op := 0; op <= 0xFF; op++ {
		if instruction := decodeExtended(uint8(op)); instruction == nil {
			t.Errorf("CB %02X decoded to nil", op)
		}
	}
}

func TestDecodeUnknownOpcodes(t *testing.T) {
	unmapped := []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}

	for _, op := range unmapped {
		t.Run(fmt.Sprintf("0x%02X", op), func(t *testing.T) {
			_, err := Decode(loadProgram(op), 0x0100)
			var unknown UnknownOpcodeError
			if !errors.As(err, &unknown) {
				t.Fatalf("expected UnknownOpcodeError, got %v", err)
			}
			if unknown.Opcode != op {
				t.Errorf("error reports opcode 0x%02X, want 0x%02X", unknown.Opcode, op)
			}
		})
	}
}

func TestDecodeCoversMainTable(t *testing.T) {
	unmapped := map[uint8]bool{
		0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true, 0xEB: true,
		0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
	}

	for op := 0; op <= 0xFF; op++ {
		opcode := uint8(op)
		instruction, err := Decode(loadProgram(opcode, 0x00, 0x00), 0x0100)
		if unmapped[opcode] {
			if err == nil {
				t.Errorf("opcode 0x%02X decoded to %s, want an error", opcode, instruction)
			}
			continue
		}
		if err != nil {
			t.Errorf("opcode 0x%02X failed to decode: %v", opcode, err)
			continue
		}
		if length := instruction.Length(); length < 1 || length > 3 {
			t.Errorf("opcode 0x%02X has length %d", opcode, length)
		}
	}
}

func TestDecodeIsPure(t *testing.T) {
	mem := loadProgram(0xC3, 0x00, 0x80)
	before := mem.Bytes()

	if _, err := Decode(mem, 0x0100); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	after := mem.Bytes()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("decode modified memory at 0x%04X", i)
		}
	}
}
