//go:build stave

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/evalfit"

var Default = All

var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"c": Clean,
}

// All vets, lints and tests, then builds evalfit.
func All() error {
	st.Deps(Vet, Lint, Test)
	st.Deps(Build)
	return nil
}

// Build compiles bin/evalfit when any source is newer than the binary.
func Build() error {
	stale, err := target.Glob(binary, "**/*.go", "go.mod")
	if err != nil {
		return fmt.Errorf("checking %s: %w", binary, err)
	}
	if !stale {
		return nil
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/evalfit")
}

func ldflags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		strings.TrimSpace(version), strings.TrimSpace(commit), time.Now().UTC().Format(time.RFC3339))
}

// Test runs the suite with the race detector; the threshold sweep is concurrent.
func Test() error {
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// Coverage writes coverage.out and coverage.html.
func Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes the binary and coverage output.
func Clean() error {
	for _, p := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(p); err != nil {
			return fmt.Errorf("removing %s: %w", p, err)
		}
	}
	return nil
}

// Install copies bin/evalfit into GOBIN, or GOPATH/bin when GOBIN is unset.
func Install() error {
	st.Deps(Build)

	dir, err := sh.Output(st.GoCmd(), "env", "GOBIN")
	if err != nil {
		return fmt.Errorf("reading GOBIN: %w", err)
	}
	if dir == "" {
		gopath, err := sh.Output(st.GoCmd(), "env", "GOPATH")
		if err != nil {
			return fmt.Errorf("reading GOPATH: %w", err)
		}
		dir = filepath.Join(gopath, "bin")
	}

	dst := filepath.Join(dir, "evalfit")
	if runtime.GOOS == "windows" {
		dst += ".exe"
	}
	return sh.Copy(dst, binary)
}

// CI runs vet, lint, test and build in order.
func CI() error {
	st.SerialDeps(Vet, Lint, Test, Build)
	return nil
}

// Demo runs evalfit against local inputs.
type Demo st.Namespace

// Metrics reports on $EVALFIT_METRICS, default metrics.csv.
func (Demo) Metrics() error {
	st.Deps(Build)
	return sh.RunV(binary, "metrics", "--file", envOr("EVALFIT_METRICS", "metrics.csv"))
}

// Regress fits and plots the default synthetic sample.
func (Demo) Regress() error {
	st.Deps(Build)
	return sh.RunV(binary, "regress")
}

// Sweep sweeps thresholds over $EVALFIT_SCORES.
func (Demo) Sweep() error {
	st.Deps(Build)
	path := os.Getenv("EVALFIT_SCORES")
	if path == "" {
		return fmt.Errorf("EVALFIT_SCORES not set")
	}
	return sh.RunV(binary, "sweep", "--file", path)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
