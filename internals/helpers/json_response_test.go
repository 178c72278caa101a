// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"
)

func TestBuildPaginationFromOffset(t *testing.T) {
	p := BuildPaginationFromOffset(95, 0, 50)
	if p.Page != 1 || p.PerPage != 50 || p.Total != 95 || p.TotalPages != 2 {
		t.Errorf("first page wrong: %+v", p)
	}
	if !p.HasNext || p.HasPrev {
		t.Errorf("first-page flags wrong: %+v", p)
	}

	p = BuildPaginationFromOffset(95, 50, 50)
	if p.Page != 2 || p.TotalPages != 2 {
		t.Errorf("second page wrong: %+v", p)
	}
	if p.HasNext || !p.HasPrev {
		t.Errorf("last-page flags wrong: %+v", p)
	}

	// empty result set still reports one page
	p = BuildPaginationFromOffset(0, 0, 50)
	if p.TotalPages != 1 || p.HasNext || p.HasPrev {
		t.Errorf("empty set wrong: %+v", p)
	}

	// limit of zero falls back to the default page size
	p = BuildPaginationFromOffset(10, 0, 0)
	if p.PerPage != 20 || p.Page != 1 {
		t.Errorf("zero-limit fallback wrong: %+v", p)
	}
}

func TestStatusToErrorCode(t *testing.T) {
	cases := map[int]string{
		400: "BAD_REQUEST",
		401: "UNAUTHORIZED",
		403: "FORBIDDEN",
		404: "NOT_FOUND",
		409: "CONFLICT",
		422: "VALIDATION_ERROR",
		500: "INTERNAL_ERROR",
		503: "INTERNAL_ERROR",
		418: "ERROR",
	}
	for status, want := range cases {
		if got := statusToErrorCode(status); got != want {
			t.Errorf("statusToErrorCode(%d) = %q, want %q", status, got, want)
		}
	}
}
