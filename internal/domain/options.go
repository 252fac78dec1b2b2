package domain

// CommonOptions contains flags shared by the CLI and the orchestrator.
type CommonOptions struct {
	Verbose bool
	DryRun  bool
}
