// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"

	"fillmore-labs.com/anyref/internal/astutil"
	"fillmore-labs.com/anyref/internal/coerce"
	"fillmore-labs.com/anyref/internal/typeenv"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Source retrieves verbatim source text of the current file.
type Source struct {
	readFile    func(filename string) ([]byte, error)
	currentFile astutil.CurrentFile

	content []byte
	loaded  bool
}

// NewSource creates a [Source] reading the current file with readFile, which may be nil.
func NewSource(readFile func(filename string) ([]byte, error), currentFile astutil.CurrentFile) *Source {
	return &Source{readFile: readFile, currentFile: currentFile}
}

// Snippet implements [coerce.Source].
func (s *Source) Snippet(span typeenv.Span) (string, bool) {
	content := s.load()
	if content == nil {
		return "", false
	}

	start, stop, ok := s.currentFile.Offsets(span.Pos(), span.End())
	if !ok || stop > len(content) {
		return "", false
	}

	return string(content[start:stop]), true
}

func (s *Source) load() []byte {
	if s.loaded {
		return s.content
	}

	s.loaded = true

	if s.readFile == nil || !s.currentFile.Valid() {
		return nil
	}

	content, err := s.readFile(s.currentFile.Name())
	if err != nil {
		return nil
	}

	s.content = content

	return s.content
}

// Nodes returns a [coerce.Source] that prints nodes when the file content is not available.
func (s *Source) Nodes(fset *token.FileSet, nodes ...ast.Node) coerce.Source {
	return nodeSource{source: s, fset: fset, nodes: nodes}
}

type nodeSource struct {
	source *Source
	fset   *token.FileSet
	nodes  []ast.Node
}

func (n nodeSource) Snippet(span typeenv.Span) (string, bool) {
	if text, ok := n.source.Snippet(span); ok {
		return text, true
	}

	for _, node := range n.nodes {
		if node == nil || node.Pos() != span.Pos() || node.End() != span.End() {
			continue
		}

		var buf bytes.Buffer
		if err := rawcfg.Fprint(&buf, n.fset, node); err != nil {
			return "", false
		}

		return buf.String(), true
	}

	return "", false
}
