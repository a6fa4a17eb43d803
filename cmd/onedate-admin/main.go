// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/hypergrow-online/OneDate/lib/authtoken"
	"github.com/hypergrow-online/OneDate/lib/clock"
	"github.com/hypergrow-online/OneDate/lib/config"
	"github.com/hypergrow-online/OneDate/lib/schema/user"
	"github.com/hypergrow-online/OneDate/lib/store"
	"github.com/hypergrow-online/OneDate/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		showVersion bool
	)

	flags := pflag.NewFlagSet("onedate-admin", pflag.ContinueOnError)
	flags.StringVar(&configPath, "config", "", "path to onedate.yaml (default: $ONEDATE_CONFIG)")
	flags.BoolVar(&showVersion, "version", false, "print version information and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	if showVersion {
		fmt.Printf("onedate-admin %s\n", version.Info())
		return nil
	}

	args := flags.Args()
	if len(args) == 0 {
		return fmt.Errorf("usage: onedate-admin [--config path] create-user [flags]")
	}

	switch args[0] {
	case "create-user":
		return createUser(configPath, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func createUser(configPath string, args []string) error {
	var (
		email    string
		username string
		fullName string
	)

	flags := pflag.NewFlagSet("create-user", pflag.ContinueOnError)
	flags.StringVar(&email, "email", "", "account email (required)")
	flags.StringVar(&username, "username", "", "account username (required)")
	flags.StringVar(&fullName, "full-name", "", "display name")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("--email is required")
	}
	if username == "" {
		return fmt.Errorf("--username is required")
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.EnsurePaths(); err != nil {
		return fmt.Errorf("preparing directories: %w", err)
	}

	password, err := readPassword()
	if err != nil {
		return err
	}

	hash, err := authtoken.HashPassword(password, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	documents, err := store.Open(store.Config{
		Path:     cfg.Database.Path,
		PoolSize: 1,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}
	defer documents.Close()

	u := &user.User{
		Email:        email,
		Username:     username,
		FullName:     fullName,
		PasswordHash: hash,
	}
	err = documents.CreateUser(context.Background(), u, clock.Real().Now())
	if errors.Is(err, store.ErrDuplicateEmail) {
		return fmt.Errorf("email %s is already registered", email)
	}
	if err != nil {
		return err
	}

	fmt.Printf("created user %s (%s)\n", u.Username, u.ID)
	return nil
}

// readPassword prompts on the terminal with echo disabled and asks for
// confirmation. If stdin is not a terminal (piped input), it reads one
// line instead.
func readPassword() (string, error) {
	stdinFd := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading password from stdin: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")
		if password == "" {
			return "", fmt.Errorf("password is empty")
		}
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	first, err := term.ReadPassword(stdinFd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	second, err := term.ReadPassword(stdinFd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password confirmation: %w", err)
	}

	if !bytes.Equal(first, second) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(first) == 0 {
		return "", fmt.Errorf("password is empty")
	}
	return string(first), nil
}
