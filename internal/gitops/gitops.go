// Package gitops versions the ledger repository with the git binary.
package gitops

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Signature identifies who commits imports.
type Signature struct {
	Name  string
	Email string
}

func (s Signature) String() string { return fmt.Sprintf("%s <%s>", s.Name, s.Email) }

// env sets the committer to the same identity as the author, so commits work
// on machines with no global git user configured.
func (s Signature) env() []string {
	return append(os.Environ(),
		"GIT_AUTHOR_NAME="+s.Name,
		"GIT_AUTHOR_EMAIL="+s.Email,
		"GIT_COMMITTER_NAME="+s.Name,
		"GIT_COMMITTER_EMAIL="+s.Email,
	)
}

func run(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = env
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], strings.TrimSpace(out.String()), err)
	}
	return strings.TrimSpace(out.String()), nil
}

// Init initializes a new git repository at dir.
func Init(dir string) error {
	_, err := run(dir, nil, "init", "--quiet")
	return err
}

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(dir string) bool {
	out, err := run(dir, nil, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// HasChanges reports whether any of paths (or the whole tree when none are
// given) differ from HEAD or are untracked.
func HasChanges(dir string, paths ...string) (bool, error) {
	args := append([]string{"status", "--porcelain", "--"}, paths...)
	out, err := run(dir, nil, args...)
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// Commit stages paths and commits them as sig. With no paths every change
// in the tree is staged. Returns the short commit hash.
func Commit(dir, message string, sig Signature, paths ...string) (string, error) {
	add := []string{"add", "-A"}
	if len(paths) > 0 {
		add = append(add, "--")
		add = append(add, paths...)
	}
	if _, err := run(dir, nil, add...); err != nil {
		return "", err
	}

	if _, err := run(dir, sig.env(), "commit", "--quiet", "-m", message, "--author", sig.String()); err != nil {
		return "", err
	}

	return Head(dir)
}

// Head returns the short hash of HEAD.
func Head(dir string) (string, error) {
	return run(dir, nil, "rev-parse", "--short", "HEAD")
}
