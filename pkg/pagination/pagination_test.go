package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, DefaultLimit},
		{-5, DefaultLimit},
		{25, 25},
		{MaxLimit, MaxLimit},
		{MaxLimit + 1, MaxLimit},
	}
	for _, tc := range cases {
		if got := NormalizeLimit(tc.in); got != tc.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		skip, limit, n     int
		wantLo, wantHi int
	}{
		{0, 10, 100, 0, 10},
		{95, 10, 100, 95, 100},
		{200, 10, 100, 100, 100},
		{-1, 10, 100, 0, 10},
		{0, 0, 100, 0, DefaultLimit},
	}
	for _, tc := range cases {
		lo, hi := Window(tc.skip, tc.limit, tc.n)
		if lo != tc.wantLo || hi != tc.wantHi {
			t.Fatalf("Window(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tc.skip, tc.limit, tc.n, lo, hi, tc.wantLo, tc.wantHi)
		}
	}
}
