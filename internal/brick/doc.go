// Package brick defines the records exchanged by the conversion engine:
// source bricks read from a Blockland save, descriptors produced by the
// mapping rules, and the Brickadia bricks assembled from them.
//
// A Descriptor is a template expressed in the source brick's local frame.
// The geometry package turns it into concrete size, position and
// orientation; the convert package resolves its color and material and
// appends the result to the output.
package brick
