package gen

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// ToolRunner invokes the external grammar compiler for one grammar
// file. The compiler is a black box; implementations report a non-zero
// exit as an error.
type ToolRunner interface {
	Run(ctx context.Context, grammarPath, outDir, pkg string) error
}

// AntlrRunner drives the ANTLR tool as a subprocess. Command is the
// argv prefix, e.g. {"antlr4"} or
// {"java", "-jar", "antlr-4.13.1-complete.jar"}.
type AntlrRunner struct {
	Command []string
}

func (r *AntlrRunner) Run(ctx context.Context, grammarPath, outDir, pkg string) error {
	if len(r.Command) == 0 {
		return fmt.Errorf("no grammar compiler command configured")
	}
	args := append([]string{}, r.Command[1:]...)
	args = append(args, "-Dlanguage=Go", "-package", pkg, "-visitor", "-o", outDir, grammarPath)

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Command[0], args...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		if output.Len() > 0 {
			return fmt.Errorf("%w\n%s", err, output.String())
		}
		return err
	}
	return nil
}
