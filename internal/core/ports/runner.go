package ports

import "context"

// Runner executes external commands on behalf of VCS backends.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes name with args in dir, streaming output line by line to
	// the log. It returns an error carrying the exit code on failure.
	Run(ctx context.Context, dir, name string, args ...string) error

	// Output executes name with args in dir and returns its trimmed stdout.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
}
