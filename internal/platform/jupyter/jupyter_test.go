package jupyter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls  [][]string
	output []byte
	err    error
}

func (r *recordingRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.output, r.err
}

func TestCLI_KernelExists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		json   string
		lookup string
		want   bool
	}{
		{
			name:   "registered",
			json:   `{"kernelspecs": {"test_env": {"resource_dir": "/home/u/.local/share/jupyter/kernels/test_env"}}}`,
			lookup: "test_env",
			want:   true,
		},
		{
			name:   "registered lowercased by ipykernel",
			json:   `{"kernelspecs": {"kamodo_env": {"resource_dir": "/x"}}}`,
			lookup: "Kamodo_env",
			want:   true,
		},
		{
			name:   "absent",
			json:   `{"kernelspecs": {"python3": {"resource_dir": "/x"}}}`,
			lookup: "test_env",
			want:   false,
		},
		{
			name:   "no kernels",
			json:   `{"kernelspecs": {}}`,
			lookup: "test_env",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recordingRunner{output: []byte(tt.json)}
			cli := NewCLIWithRunner(rec.run)

			exists, err := cli.KernelExists(context.Background(), tt.lookup)

			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
			require.Len(t, rec.calls, 1)
			assert.Equal(t, []string{"jupyter", "kernelspec", "list", "--json"}, rec.calls[0])
		})
	}
}

func TestCLI_KernelExists_BadJSON(t *testing.T) {
	t.Parallel()
	rec := &recordingRunner{output: []byte("oops")}
	cli := NewCLIWithRunner(rec.run)

	_, err := cli.KernelExists(context.Background(), "test_env")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse kernelspec list")
}

func TestCLI_RemoveKernel(t *testing.T) {
	t.Parallel()
	rec := &recordingRunner{}
	cli := NewCLIWithRunner(rec.run)

	err := cli.RemoveKernel(context.Background(), "Kamodo_env")

	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []string{"jupyter", "kernelspec", "remove", "-f", "kamodo_env"}, rec.calls[0])
}
