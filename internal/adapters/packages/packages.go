// Package packages reads and writes workout package lists as YAML (JSON
// input is accepted as a YAML subset).
//
// Two document shapes are understood: a top-level sequence of packages, or a
// mapping with a "packages" key holding that sequence.
package packages

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/fittrack/internal/domain/model"
)

// File permission for written package files.
const filePermission = 0o600

// Sentinel error kinds for this package.
var (
	ErrDecodePackages = errors.New("decode packages failed")
	ErrEncodePackages = errors.New("encode packages failed")
)

type document struct {
	Packages []model.Package `yaml:"packages"`
}

// Read decodes a package list from r. An empty document yields no packages.
func Read(r io.Reader) ([]model.Package, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrDecodePackages, err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	var pkgs []model.Package
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&pkgs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodePackages, err)
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodePackages, err)
		}
		pkgs = doc.Packages
	default:
		return nil, fmt.Errorf("%w: line %d: expected a list of packages", ErrDecodePackages, node.Line)
	}

	for i, p := range pkgs {
		if p.Code == "" {
			return nil, fmt.Errorf("%w: package #%d has no code", ErrDecodePackages, i+1)
		}
	}
	return pkgs, nil
}

// ReadFile decodes the package list stored at path.
func ReadFile(path string) ([]model.Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodePackages, err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}

// Write encodes pkgs to w as a top-level YAML sequence.
func Write(w io.Writer, pkgs []model.Package) error {
	if pkgs == nil {
		pkgs = []model.Package{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(pkgs); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodePackages, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodePackages, err)
	}
	return nil
}

// WriteFile encodes pkgs into a new file at path, replacing any existing one.
func WriteFile(path string, pkgs []model.Package) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodePackages, err)
	}
	if err := Write(f, pkgs); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodePackages, err)
	}
	return nil
}
