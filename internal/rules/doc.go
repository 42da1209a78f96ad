// Package rules resolves a Blockland brick to the Brickadia descriptors
// that replace it.
//
// A Registry holds two kinds of rules:
//
//   - literal rules, keyed by the exact UI name of the brick;
//   - pattern rules, a regular expression paired with a generator that
//     builds descriptors from the captured parameters.
//
// # Resolution order
//
//  1. Exact name lookup in the literal table.
//  2. Pattern rules in registration order. The first pattern that
//     matches decides the outcome: if its generator rejects the
//     captures, the brick is unmapped. Later patterns are never tried.
//
// # Rule files
//
// Literal rules are data. The default table is embedded as YAML and more
// files can be layered on top with LoadFile; later files replace earlier
// entries of the same name:
//
//	version: "1"
//	bricks:
//	  "1x1 Cone":
//	    asset: B_1x1_Cone
//	  "Music Brick":
//	    - {asset: PB_DefaultMicroBrick, size: [5, 5, 1], offset: [0, 0, 5]}
//	    - asset: B_1x1F_Speaker
//	      lattice: true
//	      rotation: 3
//	      offset: [3, 0, -1]
//
// Descriptor keys: asset (required), size, offset, rotation (defaults to
// 1), color ([r, g, b] or [r, g, b, a]), direction (x+, x-, y+, y-, z+,
// z-), deferred, microwedge, lattice, inverted_wedge, inverted_corner,
// procedural, nocollide.
package rules
