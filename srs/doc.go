// Package srs implements the structured reference string: its
// trapdoor-based setup, in-place phase-1 and phase-2 updates, and the
// static shape/group-membership checks used during verification.
package srs
