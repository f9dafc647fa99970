// Package cpu implements the lexer, jump resolver and execution engine of the
// Brainfuck interpreter.
//
// Source text is reduced by the Lexer to a Program of eight instruction
// codes, every other character being commentary. Resolve pairs each loop-start
// with its loop-end in a JumpTable, rejecting unbalanced brackets. The Cpu
// holds the instruction pointer (Ip), data pointer (Dp) and memory tape, and
// executes one instruction per Tick.
package cpu
