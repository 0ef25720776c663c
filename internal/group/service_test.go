package group

import "testing"

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults for zero values", page: 0, perPage: 0, wantPage: 1, wantPerPage: 20},
		{name: "negative page", page: -3, perPage: 10, wantPage: 1, wantPerPage: 10},
		{name: "in range passes through", page: 2, perPage: 50, wantPage: 2, wantPerPage: 50},
		{name: "oversized page size resets", page: 1, perPage: 500, wantPage: 1, wantPerPage: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := clampPagination(tt.page, tt.perPage)
			if page != tt.wantPage || perPage != tt.wantPerPage {
				t.Errorf("clampPagination(%d, %d) = %d, %d, want %d, %d",
					tt.page, tt.perPage, page, perPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}
