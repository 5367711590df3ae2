package rows

import "strings"

// Filter returns the rows whose item or name field contains the query,
// case-insensitively. An empty query (after trimming) returns the input
// slice unchanged. The match is scoped to the two projected text fields,
// not the full cell set. Input rows are never mutated; the result is a new
// slice referencing the same rows.
func Filter(in []Row, query string) []Row {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return in
	}

	out := make([]Row, 0, len(in))
	for _, r := range in {
		if strings.Contains(strings.ToLower(r.Item()), q) ||
			strings.Contains(strings.ToLower(r.Name()), q) {
			out = append(out, r)
		}
	}
	return out
}
