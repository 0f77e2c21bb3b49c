package testkit

import (
	"path/filepath"
	"runtime"
)

// Source identifies the call site where an assertion was declared. It is
// captured by the declaration layer and passed into the core, so the core
// never inspects the call stack itself. It is only shown for failed
// assertions.
type Source struct {
	File string
	Line int
}

// Here captures the source location of its own call site.
func Here() Source {
	return Caller(1)
}

// Caller captures a source location skip frames above the caller of Caller.
// Caller(0) is equivalent to Here.
func Caller(skip int) Source {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Source{File: "unknown", Line: 0}
	}
	return Source{File: filepath.Base(file), Line: line}
}
