package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"go.uber.org/zap"
)

// Environment variables passing the global settings to extensions.
const (
	EnvLedgerFile = "BB_LEDGER_FILE"
	EnvCurrency   = "BB_CURRENCY"
	EnvConfigFile = "BB_CONFIG"
	EnvVerbose    = "BB_VERBOSE"
)

// extensionPrefix prefixes the binaries found in PATH that extend bb.
const extensionPrefix = "bb-"

// HasExtension reports whether an external bb-<subcommand> binary is in PATH.
func HasExtension(subcommand string) bool {
	_, err := exec.LookPath(extensionPrefix + subcommand)
	return err == nil
}

// RunExtension attempts to find and execute an external bb-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := extensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug("extension not found", zap.String("name", externalCmdName), zap.Error(err))
		return false, 0
	}

	// Found external command, execute it
	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass global settings as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvLedgerFile+"="+settings.LedgerPath())
	cmd.Env = append(cmd.Env, EnvCurrency+"="+settings.Currency)
	cmd.Env = append(cmd.Env, EnvConfigFile+"="+*configFile)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	logger.Debug("running extension", zap.String("path", lp), zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		// If it's not an ExitError or we can't get the status, report a generic error
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)

		return true, 1 // Indicate that an attempt was made, but it failed
	}

	return true, 0 // External command executed successfully with exit code 0
}
