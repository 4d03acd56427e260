// Package common provides shared logging, constants, and error
// helpers used throughout the snarky-ceremonies library.
//
// This is an internal package not intended for direct use by
// applications; it supports the implementation of the public packages.
package common
