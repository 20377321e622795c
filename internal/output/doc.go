// Package output provides structured output and exit-code handling for the
// postgen CLI.
//
// Every command writes through a Printer, which switches between styled
// human output and JSON based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Generated blog saved to 'generated/x.html'"})
//	printer.Error(err)
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: missing template/content, missing input
//	output.ExitSystemError // 2: write failure, unreadable config
//	output.ExitConflict    // 3: post exists and overwriting was refused
//
// Errors built with the constructors in this package carry their exit code
// and an optional cause, so callers can still match domain sentinels with
// errors.Is.
package output
