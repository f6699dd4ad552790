package models

import (
	"sort"
	"strconv"
)

// PortLess orders port names numerically when both are plain numbers
// ("2" before "10") and lexically otherwise, so reports and canonical
// state keep a stable, human-expected order.
func PortLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	if errA == nil && errB == nil {
		return na < nb
	}

	return a < b
}

// SortPorts sorts port names in place using PortLess.
func SortPorts(names []string) {
	sort.Slice(names, func(i, j int) bool { return PortLess(names[i], names[j]) })
}
