package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/errors"
)

// ReadMarkup reads a complete markup document from r.
//
// Unlike [markup.Parse], trailing unparsed input is an error: a document read
// from storage must be consumed entirely. ReadMarkup does not close r.
func ReadMarkup(r io.Reader) ([]markup.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	nodes, rest, err := markup.Parse(string(data))
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, errors.New(errors.ErrCodeInvalidMarkup,
			"unexpected input at offset %d: %.20q", len(data)-len(rest), rest)
	}
	return nodes, nil
}

// ImportMarkup reads a markup document from the file at path.
func ImportMarkup(path string) ([]markup.Node, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	nodes, err := ReadMarkup(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}

func open(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
