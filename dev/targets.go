//go:build targ

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/sh"
)

// minCoverage is the statement coverage, in percent, the library packages must keep.
const minCoverage = 95.0

// coveredPackages are the packages whose coverage is gated. dev/ and the root
// re-exports are left out.
const coveredPackages = "./internal/core/...,./match/..."

const coverProfile = "coverage.out"

// Check tidies, tests, and lints, stopping at the first failure.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(Tidy, Coverage, ReorderCheck, Lint)
}

// Coverage fails when the library packages drop below minCoverage.
func Coverage() error {
	if err := targ.Deps(Test); err != nil {
		return err
	}

	out, err := exec.Command("go", "tool", "cover", "-func="+coverProfile).Output()
	if err != nil {
		return fmt.Errorf("reading %s: %w", coverProfile, err)
	}

	total, err := totalCoverage(out)
	if err != nil {
		return err
	}

	fmt.Printf("Coverage of %s: %.1f%% (minimum %.1f%%)\n", coveredPackages, total, minCoverage)

	if total < minCoverage {
		return fmt.Errorf("coverage %.1f%% is below %.1f%%", total, minCoverage)
	}

	return nil
}

// Lint runs golangci-lint with the repository's defaults.
func Lint() error {
	fmt.Println("Linting...")
	return sh.Run("golangci-lint", "run", "./...")
}

// Mutate runs ooze against the root package's mutation test.
func Mutate() error {
	fmt.Println("Mutating...")

	return sh.Run("go", "test", "-tags=mutation", "-timeout=10m", "-run=TestMutation", "-ooze.v", ".")
}

// Reorder rewrites Go files whose declarations are out of order.
func Reorder() error {
	return reorderSources(false)
}

// ReorderCheck reports, with a diff, every Go file Reorder would rewrite.
func ReorderCheck() error {
	return reorderSources(true)
}

// Test runs every test with the race detector and writes coverProfile.
func Test() error {
	fmt.Println("Testing...")

	return sh.Run("go", "test", "-race", "-count=1", "-coverpkg="+coveredPackages, "-coverprofile="+coverProfile, "./...")
}

// Tidy tidies go.mod.
func Tidy() error {
	return sh.Run("go", "mod", "tidy")
}

// goSources lists the module's Go files. Directories starting with "." or "_"
// hold no module code.
func goSources() ([]string, error) {
	var paths []string

	err := filepath.WalkDir(".", func(path string, entry fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case entry.IsDir() && path != "." && strings.ContainsAny(entry.Name()[:1], "._"):
			return filepath.SkipDir
		case !entry.IsDir() && strings.HasSuffix(path, ".go"):
			paths = append(paths, path)
		}

		return nil
	})

	return paths, err
}

// reorderSources applies go-reorder to every Go file. With check set nothing
// is written; each file that would change is printed as a diff instead.
func reorderSources(check bool) error {
	paths, err := goSources()
	if err != nil {
		return fmt.Errorf("listing Go files: %w", err)
	}

	var changed []string

	for _, path := range paths {
		original, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		ordered, err := reorder.Source(string(original))
		if err != nil {
			return fmt.Errorf("reordering %s: %w", path, err)
		}

		if ordered == string(original) {
			continue
		}

		changed = append(changed, path)

		if check {
			fmt.Println(textdiff.Unified(path, path+" (ordered)", string(original), ordered))

			continue
		}

		if err := os.WriteFile(path, []byte(ordered), 0o600); err != nil {
			return err
		}
	}

	switch {
	case len(changed) == 0:
		fmt.Printf("%d files in order\n", len(paths))
	case check:
		return fmt.Errorf("out of order: %s", strings.Join(changed, ", "))
	default:
		fmt.Printf("reordered: %s\n", strings.Join(changed, ", "))
	}

	return nil
}

// totalCoverage extracts the percentage from the "total:" line of
// `go tool cover -func` output.
func totalCoverage(report []byte) (float64, error) {
	scanner := bufio.NewScanner(bytes.NewReader(report))

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] != "total:" {
			continue
		}

		return strconv.ParseFloat(strings.TrimSuffix(fields[len(fields)-1], "%"), 64)
	}

	return 0, fmt.Errorf("no total line in %s report", coverProfile)
}
