package bindex

import (
	"log/slog"

	"github.com/Masterminds/semver/v3"
)

// MatchesRequirement reports whether version satisfies the requirement
// expression.
//
// An empty requirement matches anything, before the version is even looked
// at. A requirement that fails to parse matches nothing. A version that
// fails to parse matches nothing (unless the requirement is empty). In all
// other cases standard semver range semantics decide: exact pins, caret and
// tilde ranges, comparison operators and compound ranges.
//
// Versions must be strict major.minor.patch with optional pre-release and
// build metadata; partial ("1.2") and prefixed ("v1.2.3") forms do not
// parse.
func MatchesRequirement(version, requirement string) bool {
	return matchesRequirement(slog.Default(), version, requirement)
}

func matchesRequirement(log *slog.Logger, version, requirement string) bool {
	if requirement == "" {
		return true
	}

	req, err := semver.NewConstraint(requirement)
	if err != nil {
		log.Debug("version requirement did not parse", "requirement", requirement, "error", err)
		return false
	}

	ver, err := semver.StrictNewVersion(version)
	if err != nil {
		log.Debug("version did not parse", "version", version, "error", err)
		return false
	}

	return req.Check(ver)
}
