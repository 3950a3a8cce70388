package cli

import "testing"

func TestEnvironmentConfiguresLogLevel(t *testing.T) {
	t.Setenv("THEMER_LOG_LEVEL", "debug")

	logLevel = "warn"
	rootCmd.PersistentPreRun(checkCmd, nil)
	if logLevel != "debug" {
		t.Fatalf("expected env to set log level, got %q", logLevel)
	}
}

func TestExplicitFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("THEMER_LOG_LEVEL", "debug")

	if err := rootCmd.PersistentFlags().Set("log-level", "error"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}
	rootCmd.PersistentPreRun(checkCmd, nil)
	if logLevel != "error" {
		t.Fatalf("expected explicit flag to win, got %q", logLevel)
	}
}
