package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderBy(t *testing.T) {
	repo := NewBaseCatalogRepo[any](nil, "test_table", []string{"id", "name", "created_at"}, func() any { return nil })

	tests := []struct {
		name    string
		orderBy string
		want    string
		wantErr bool
	}{
		{name: "empty defaults to name", orderBy: "", want: "name ASC"},
		{name: "plain field", orderBy: "name", want: "name ASC"},
		{name: "descending prefix", orderBy: "-created_at", want: "created_at DESC"},
		{name: "explicit ascending prefix", orderBy: "+name", want: "name ASC"},
		{name: "code always allowed", orderBy: "code", want: "code ASC"},
		{name: "unknown column rejected", orderBy: "password_hash", wantErr: true},
		{name: "injection rejected", orderBy: "name; DROP TABLE test_table", wantErr: true},
		{name: "bare dash rejected", orderBy: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.parseOrderBy(tt.orderBy)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
