package provision

// Step defines a single unit of the provisioning pipeline. Each step is a
// synchronous invocation of one or more external tools; its error aborts
// the remaining pipeline.
type Step interface {
	// Name returns the human-readable name of this step.
	Name() string

	// Run executes the step.
	Run(ctx *Context) error
}
