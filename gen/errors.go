package gen

import "fmt"

// PreconditionError reports a rule set that violates a generation
// precondition. It is raised before any I/O happens.
type PreconditionError struct {
	Reason error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed: %v", e.Reason)
}

func (e *PreconditionError) Unwrap() error { return e.Reason }

// ToolError reports a failed invocation of the external grammar
// compiler. Stage names which grammar was being compiled.
type ToolError struct {
	Stage string
	Err   error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("grammar compiler failed on %s: %v", e.Stage, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure during generation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// StructuralMismatchError reports template source whose shape does not
// match what assembly expects. It means the template was edited
// incompatibly; the run is aborted, never retried.
type StructuralMismatchError struct {
	Detail string
}

func (e *StructuralMismatchError) Error() string {
	return "template structure mismatch: " + e.Detail
}
