package testkit

// defaultRunner backs the package-level functions for the common case of a
// single test run per process. Anything needing isolation, including this
// package's own tests, uses an explicit Runner instead.
var defaultRunner = NewRunner()

// Default returns the runner used by the package-level functions.
func Default() *Runner { return defaultRunner }

// SetDefault replaces the runner used by the package-level functions and
// returns the previous one, so callers can restore it.
func SetDefault(r *Runner) *Runner {
	prev := defaultRunner
	defaultRunner = r
	return prev
}

// Section runs body inside a named section of the default runner.
func Section(name string, body func()) { defaultRunner.Section(name, body) }

// Check records a soft assertion on the default runner.
func Check(label string, ok bool) bool {
	return defaultRunner.DeclareCheck(label, Caller(1), func() bool { return ok }) == Passed
}

// Require records a hard assertion on the default runner.
func Require(label string, ok bool) bool {
	return defaultRunner.DeclareRequire(label, Caller(1), func() bool { return ok }) == Passed
}

// SetOptions replaces the default runner's report options.
func SetOptions(opts Options) { defaultRunner.SetOptions(opts) }

// Reset clears the default runner's recorded state.
func Reset() { defaultRunner.Reset() }

// GenerateReport renders the default runner's result tree.
func GenerateReport() string { return defaultRunner.GenerateReport() }
