package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

type step struct {
	Name string
	Args []string
	Env  []string
}

// Builds the WebAssembly bundle, copies the Go JS glue next to it, then runs the site server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runDev(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "landing exited with error: %v\n", err)
		os.Exit(1)
	}
}

func runDev(ctx context.Context) error {
	build := step{
		Name: "build-wasm",
		Args: []string{"go", "build", "-o", "ui/main.wasm", "./cmd/site-wasm"},
		Env:  []string{"GOOS=js", "GOARCH=wasm"},
	}
	if err := runStep(ctx, build); err != nil {
		return err
	}
	if err := copyWasmExec(ctx, "ui"); err != nil {
		return err
	}

	serve := step{
		Name: "site-server",
		Args: append([]string{"go", "run", "./cmd/site-server"}, os.Args[1:]...),
		Env:  []string{"LANDING_ASSETS=ui"},
	}
	if err := runStep(ctx, serve); err != nil {
		// Interrupts are the normal way to stop the dev loop.
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func runStep(ctx context.Context, s step) error {
	cmd := exec.CommandContext(ctx, s.Args[0], s.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(s.Env) > 0 {
		cmd.Env = append(append([]string{}, os.Environ()...), s.Env...)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	return nil
}

// copyWasmExec places the toolchain's wasm_exec.js in dir. Go 1.24 moved it from misc/wasm to lib/wasm.
func copyWasmExec(ctx context.Context, dir string) error {
	out, err := exec.CommandContext(ctx, "go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("go env GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(out))

	var src []byte
	for _, sub := range []string{"lib/wasm", "misc/wasm"} {
		src, err = os.ReadFile(filepath.Join(goroot, sub, "wasm_exec.js"))
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("locate wasm_exec.js: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "wasm_exec.js"), src, 0o644)
}
