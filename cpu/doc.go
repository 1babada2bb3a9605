// Package cpu implements the register and flag model of the x86 flavoured
// simulator.
//
// The CPU consists of eight 32-bit general-purpose registers (EAX, EBX, ECX,
// EDX, ESI, EDI, EBP, ESP), six condition flags (CF, PF, AF, ZF, SF, OF) and
// a call stack of 4-byte cells linked to ESP. The A, B, C and D registers
// expose 16-bit (AX) and 8-bit high/low (AH, AL) views over the same four
// bytes; the others expose 32-bit and 16-bit views only.
package cpu
