package main

import (
	"context"
	"io"
	"os"
	"time"

	bookindex "github.com/alnah/go-bookindex"
)

// Builder is the part of *bookindex.Indexer the CLI uses.
type Builder interface {
	Build(ctx context.Context, input bookindex.Input) (*bookindex.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Builder = (*bookindex.Indexer)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	Getenv     func(string) string
	Environ    func() []string
	NewBuilder func(opts ...bookindex.Option) (Builder, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewBuilder: func(opts ...bookindex.Option) (Builder, error) {
			return bookindex.NewIndexer(opts...)
		},
	}
}
