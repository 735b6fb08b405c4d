package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 50
	// MaxLimit caps how many rows any listing can request.
	MaxLimit = 500
)

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizeSkip clamps negative offsets to zero.
func NormalizeSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}

// Window slices [skip, skip+limit) out of a total of n elements, returning
// the clamped bounds.
func Window(skip, limit, n int) (int, int) {
	skip = NormalizeSkip(skip)
	limit = NormalizeLimit(limit)
	if skip > n {
		skip = n
	}
	end := skip + limit
	if end > n {
		end = n
	}
	return skip, end
}
