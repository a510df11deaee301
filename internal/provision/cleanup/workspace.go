package cleanup

import (
	"fmt"
	"os"

	"github.com/ccmc-tools/kamodoctl/internal/provision"
)

// WorkspaceStep deletes the local clone directory left behind by the
// install pipeline. An absent directory is a no-op.
type WorkspaceStep struct{}

// Name implements provision.Step.
func (s *WorkspaceStep) Name() string { return "remove-workspace" }

// Run implements provision.Step.
func (s *WorkspaceStep) Run(ctx *provision.Context) error {
	dir := ctx.Config.CloneDir

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		provision.LogStepSkipped(ctx.Observer, s.Name(), fmt.Sprintf("directory %s does not exist", dir))
		return nil
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove clone directory %s: %w", dir, err)
	}

	ctx.Observer.Printf("Removed clone directory %s", dir)
	return nil
}
