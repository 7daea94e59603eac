package extract

// FunctionEntity is a single function or method definition.
// Parent is nil for free functions, else the name of the lexically
// innermost class whose body contains the definition.
type FunctionEntity struct {
	Name   string  `json:"name"`
	Parent *string `json:"parent"`
	Line   int     `json:"line"`
}

// ClassEntity is a class definition with its literal base-class names.
// Bases are the identifier names as written, never resolved via imports.
type ClassEntity struct {
	Name  string   `json:"name"`
	Bases []string `json:"bases"`
	Line  int      `json:"line"`
}

// SourceFile holds every entity extracted from one parsed file.
// File is the display name, which for converted Jac files is the
// original .jac filename.
type SourceFile struct {
	File      string           `json:"file"`
	Functions []FunctionEntity `json:"functions"`
	Classes   []ClassEntity    `json:"classes"`
}

// CallGraph maps a defined function's name to the names it is observed
// calling, duplicate-free in first-occurrence order. Every defined
// function appears as a key even when it makes no calls, so queries can
// tell "defined but silent" apart from "undefined".
type CallGraph map[string][]string
