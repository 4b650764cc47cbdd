package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g. mongo) inside this directory.

// ErrNoDocument is returned by lookups when no document matches.
// It plays the role sql.ErrNoRows plays for relational stores.
var ErrNoDocument = errors.New("no document found")
