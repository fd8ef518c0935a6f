package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	ex "github.com/berquerant/execx"
)

var ErrRun = errors.New("Run")

// Cmd is a script invoked like 'shell -c script'.
type Cmd struct {
	shell  string
	script string
}

func NewShellCmd(shell, script string) *Cmd {
	return &Cmd{
		shell:  shell,
		script: script,
	}
}

func (c *Cmd) intoExecCmd(ctx context.Context) (*exec.Cmd, error) {
	if c.shell == "" {
		return nil, fmt.Errorf("%w: no shell", ErrRun)
	}
	if c.script == "" {
		return nil, fmt.Errorf("%w: no script", ErrRun)
	}

	cmd := exec.CommandContext(ctx, c.shell, "-c", c.script)
	cmd.Env = os.Environ()
	return cmd, nil
}

// Pipeline connects the stdout of each command to the stdin of the next.
type Pipeline struct {
	cmds  []*Cmd
	stdin io.Reader
}

func NewPipeline(stdin io.Reader, cmd ...*Cmd) *Pipeline {
	return &Pipeline{
		cmds:  cmd,
		stdin: stdin,
	}
}

// Run executes the pipeline and writes the output of the last command to stdout.
func (p *Pipeline) Run(ctx context.Context, stdout io.Writer) error {
	if len(p.cmds) == 0 {
		return fmt.Errorf("%w: no cmds", ErrRun)
	}
	xs := make([]*exec.Cmd, len(p.cmds))
	for i, c := range p.cmds {
		x, err := c.intoExecCmd(ctx)
		if err != nil {
			return fmt.Errorf("%w: failed to convert cmds[%d] to exec.Cmd", err, i)
		}
		xs[i] = x
	}
	cmd, err := ex.NewPipedCmd(xs...)
	if err != nil {
		return err
	}

	if p.stdin != nil {
		cmd.Stdin = p.stdin
	}
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	slog.Debug("exec pipeline", slog.Int("len", len(xs)))
	if err := cmd.Start(ctx); err != nil {
		return err
	}
	return cmd.Wait()
}
