// Package version checks whether a newer cinebox release is out.
package version

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Compare orders two major.minor.patch versions, with or without a leading v.
// It returns 1 when a is newer, -1 when b is newer and 0 when they match.
func Compare(a, b string) (int, error) {
	parse := func(s string) ([3]int, error) {
		var v [3]int
		_, err := fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &v[0], &v[1], &v[2])
		if err != nil {
			return v, fmt.Errorf("parse version %q: %w", s, err)
		}
		return v, nil
	}

	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av[:], bv[:]) {
		switch {
		case pair.A > pair.B:
			return 1, nil
		case pair.A < pair.B:
			return -1, nil
		}
	}

	return 0, nil
}
