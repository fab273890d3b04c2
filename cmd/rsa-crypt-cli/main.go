// Package main is the entry point for the rsa-crypt-cli application.
// It initializes the root command, registers the key management and
// block cipher sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "rsa_crypt_service/cmd/rsa-crypt-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-crypt-cli",
		Short: "Textbook RSA file encryption CLI tool",
		Long: `rsa-crypt-cli encrypts and decrypts files with textbook RSA, framing the
file as fixed-size little-endian integer blocks run through modular
exponentiation. It also generates, validates and tracks key pairs.

This is a toy cryptosystem: no padding scheme, no authenticated
encryption and no defense against standard RSA attacks. Do not use it
to protect real data.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
