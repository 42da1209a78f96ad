// Package convert assembles a Brickadia save from a stream of Blockland
// bricks.
//
// A Session pulls one source brick at a time, resolves it through a
// rules.Registry, places every descriptor with the geometry transform,
// picks a color and material, and interns brick assets and custom colors.
// Bricks flagged as deferred, and procedural bricks that are not rendered,
// are written after all other bricks. Unmapped bricks are counted in the
// report and never abort the run; read and write errors do.
package convert
