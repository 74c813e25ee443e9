// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse failures callers can match with errors.Is.
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Version is a parsed version number. Precision records how many
// components the input actually carried (1 for "1", 2 for "1.33",
// 3 for "1.33.5") so String can render exactly what was given.
// Vendor metadata after the numeric core ("-eks-3025e55", "+k3s1")
// is kept verbatim in Extras.
type Version struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision is the number of significant components (1, 2, or 3).
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras is the unparsed vendor suffix, separator included.
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// ParseVersion parses strings of the form "1", "1.33", "v1.33.5",
// "1.33.5-suffix", or "1.33.5+metadata". A leading "v" is stripped.
// The error identifies what was wrong with the input; no partial
// Version is returned on failure.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	core, extras := splitExtras(s)
	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if n < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, n)
		}
		nums[i] = n
	}

	v := Version{Precision: len(parts), Extras: extras, Major: nums[0]}
	if len(nums) > 1 {
		v.Minor = nums[1]
	}
	if len(nums) > 2 {
		v.Patch = nums[2]
	}
	return v, nil
}

// splitExtras cuts a version string at the start of its vendor suffix.
// The suffix begins at the first '-' or '+' that directly follows a
// digit; this keeps suffixes containing dots intact ("-gke.1337000")
// while a leading sign or a separator after a dot stays in the core
// for the numeric parse to reject.
func splitExtras(s string) (core, extras string) {
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] >= '0' && s[i-1] <= '9' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// String renders the numeric core at the precision the input carried.
// Extras are never included.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// IsValid reports whether the version could have come out of
// ParseVersion: non-negative components and a precision of 1 to 3.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0 &&
		v.Precision >= 1 && v.Precision <= 3
}

// NormalizeGitVersion reduces a server GitVersion such as
// "v1.33.5-eks-3025e55" to its bare numeric form ("1.33.5").
// The input is returned unchanged when it cannot be parsed, so callers
// can use the result directly in reports without a fallback branch.
func NormalizeGitVersion(gitVersion string) string {
	v, err := ParseVersion(gitVersion)
	if err != nil {
		return gitVersion
	}
	return v.String()
}
