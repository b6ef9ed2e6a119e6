package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.orqa.ch/estim/cmd/estim/commands"
	"go.orqa.ch/estim/internal/app"
)

type fakeApp struct {
	called bool
	paths  []string
	opts   app.RunOptions
	err    error
}

func (f *fakeApp) Run(_ context.Context, paths []string, opts app.RunOptions) error {
	f.called = true
	f.paths = paths
	f.opts = opts
	return f.err
}

func execute(t *testing.T, a commands.Application, args ...string) (string, string, error) {
	t.Helper()
	cli := commands.New(a)
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestRunCommandForwardsFlags(t *testing.T) {
	f := &fakeApp{}
	_, _, err := execute(t, f,
		"run", "a.yaml", "b.yaml",
		"--shots", "500",
		"--exact",
		"--seed", "7",
		"--parallelism", "3",
		"--json",
		"--debug",
	)
	require.NoError(t, err)
	require.True(t, f.called)
	require.Equal(t, []string{"a.yaml", "b.yaml"}, f.paths)
	require.Equal(t, 500, f.opts.Shots)
	require.True(t, f.opts.Exact)
	require.True(t, f.opts.HasSeed)
	require.Equal(t, uint64(7), f.opts.Seed)
	require.Equal(t, 3, f.opts.Parallelism)
	require.True(t, f.opts.JSON)
	require.True(t, f.opts.Debug)
}

func TestRunCommandDefaults(t *testing.T) {
	f := &fakeApp{}
	_, _, err := execute(t, f, "run", "job.yaml")
	require.NoError(t, err)
	require.Equal(t, -1, f.opts.Shots)
	require.False(t, f.opts.Exact)
	require.False(t, f.opts.HasSeed)
}

func TestRunCommandWithoutArgsShowsHelp(t *testing.T) {
	f := &fakeApp{}
	out, _, err := execute(t, f, "run")
	require.NoError(t, err)
	require.False(t, f.called)
	require.Contains(t, out, "Estimate the tasks")
}

func TestVersionCommand(t *testing.T) {
	f := &fakeApp{}
	out, _, err := execute(t, f, "version")
	require.NoError(t, err)
	require.Contains(t, out, "estim version")
}
