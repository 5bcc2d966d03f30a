package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		page    int
		perPage int
		want    Pagination
	}{
		{
			name: "first of several pages", total: 45, page: 1, perPage: 20,
			want: Pagination{Page: 1, PerPage: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page", total: 45, page: 2, perPage: 20,
			want: Pagination{Page: 2, PerPage: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			name: "last page", total: 45, page: 3, perPage: 20,
			want: Pagination{Page: 3, PerPage: 20, Total: 45, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "empty result still has one page", total: 0, page: 1, perPage: 20,
			want: Pagination{Page: 1, PerPage: 20, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "zero per page falls back to default", total: 10, page: 0, perPage: 0,
			want: Pagination{Page: 1, PerPage: 20, Total: 10, TotalPages: 1, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPaginationFromPage(tt.total, tt.page, tt.perPage))
		})
	}
}
