/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package state

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/carverauto/netaudit/pkg/models"
)

// ParseVLANRange expands a dashboard VLAN range list such as "1,3-5,10"
// into a sorted, de-duplicated slice of ids.
func ParseVLANRange(value string) ([]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	seen := make(map[int]bool)

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		low, high, err := parseRangePart(part)
		if err != nil {
			return nil, err
		}

		for id := low; id <= high; id++ {
			seen[id] = true
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	return ids, nil
}

func parseRangePart(part string) (low, high int, err error) {
	if left, right, found := strings.Cut(part, "-"); found {
		low, err = strconv.Atoi(strings.TrimSpace(left))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad vlan range %q", ErrNormalization, part)
		}

		high, err = strconv.Atoi(strings.TrimSpace(right))
		if err != nil || high < low {
			return 0, 0, fmt.Errorf("%w: bad vlan range %q", ErrNormalization, part)
		}

		return low, high, nil
	}

	id, err := strconv.Atoi(part)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad vlan id %q", ErrNormalization, part)
	}

	return id, id, nil
}

// FormatVLANRange renders sorted ids back into the compact range form,
// e.g. [1 3 4 5 10] becomes "1,3-5,10".
func FormatVLANRange(ids []int) string {
	if len(ids) == 0 {
		return ""
	}

	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	var parts []string

	start, prev := sorted[0], sorted[0]

	flush := func() {
		if start == prev {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
		}
	}

	for _, id := range sorted[1:] {
		if id == prev || id == prev+1 {
			prev = id
			continue
		}

		flush()
		start, prev = id, id
	}

	flush()

	return strings.Join(parts, ",")
}

// parseSpeed converts a dashboard speed label ("1 Gbps", "100 Mbps")
// into Mbps. Unrecognized or empty labels map to the unknown sentinel.
func parseSpeed(label string) int {
	fields := strings.Fields(label)
	if len(fields) != 2 {
		return models.UnknownInt
	}

	value, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.UnknownInt
	}

	switch strings.ToLower(fields[1]) {
	case "gbps":
		return value * 1000
	case "mbps":
		return value
	default:
		return models.UnknownInt
	}
}
