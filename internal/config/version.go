package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrVersionMismatch indicates the binary does not satisfy "requires".
const ErrVersionMismatch = constError("healthcalc version does not satisfy config requirement")

func parseConstraint(s string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("requires %q is not a valid version constraint: %w", s, err)
	}
	return c, nil
}

// CheckVersion reports whether version satisfies the Requires constraint.
// Development builds whose version is not valid semver are always accepted.
func (c *Config) CheckVersion(version string) error {
	if c.Requires == "" {
		return nil
	}

	constraint, err := parseConstraint(c.Requires)
	if err != nil {
		return err
	}

	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil //nolint:nilerr // dev builds are not semver
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not match %q", ErrVersionMismatch, v, c.Requires)
	}
	return nil
}
