package parser

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

type PythonParser struct {
	BaseParser
}

// NewPythonParser creates a new Python parser using tree-sitter.
// Grammar construction failure is fatal for the whole run, not per-file.
func NewPythonParser() (*PythonParser, error) {
	language := python.GetLanguage()
	if language == nil {
		return nil, fmt.Errorf("python grammar unavailable")
	}

	parser := sitter.NewParser()
	parser.SetLanguage(language)

	return &PythonParser{
		BaseParser: BaseParser{
			parser:   parser,
			language: language,
			langName: "python",
		},
	}, nil
}

func (p *PythonParser) ParseFile(filePath string) (*ParseResult, error) {
	return p.ParseFileGeneric(filePath)
}

func (p *PythonParser) ParseBytes(source []byte, filePath string) (*ParseResult, error) {
	return p.ParseBytesGeneric(source, filePath)
}
