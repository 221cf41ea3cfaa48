// Package crane simulates a cargo crane rearranging stacks of crates.
//
// The input is a drawing followed by a list of instructions:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
//	move 3 from 1 to 3
//
// ReadDrawing decodes the picture rows and the layout line into a filled
// Platform and returns a LiftReader positioned at the instructions. Every
// instruction is decoded as an UncheckedLift; the Platform checks it
// against its Layout, which is the only way to obtain the CheckedLift
// indices used to address the stacks, and then moves the crates either one
// at a time (SingleCrate) or as a block (Block).
package crane
