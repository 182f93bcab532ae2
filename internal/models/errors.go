package models

import "errors"

var (
	// ErrNotAMod is returned when an explicit mod path has no info.json
	ErrNotAMod = errors.New("not a mod")
	// ErrNoModsFound is returned when discovery finds nothing to build
	ErrNoModsFound = errors.New("no mods found")
	// ErrParse is returned for malformed or incomplete info.json content
	ErrParse = errors.New("invalid mod metadata")
	// ErrIO wraps filesystem read, write, create and remove failures
	ErrIO = errors.New("i/o error")
)
