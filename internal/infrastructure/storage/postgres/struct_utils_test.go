package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barberdesk/internal/core/entity"
	"barberdesk/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	Phone  *string `db:"phone" json:"phone,omitempty"`
	Hidden string  `db:"-" json:"hidden"`
	NoTag  string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "code", "name", "is_active", "phone",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Hidden")
	assert.NotContains(t, cols, "NoTag")
}

func TestStructToMap(t *testing.T) {
	phone := "+5511990000000"
	cat := mockCatalog{
		Catalog: entity.Catalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
			Code:     "CL-TEST",
			Name:     "Test Name",
			IsActive: true,
		},
		Phone:  &phone,
		Hidden: "not persisted",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "CL-TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, true, m["is_active"])
	assert.Equal(t, &phone, m["phone"])
	assert.NotContains(t, m, "-")
}

func TestStructToMapWithPointer(t *testing.T) {
	cat := &mockCatalog{}
	cat.Code = "PTR"

	m := StructToMap(cat)
	assert.Equal(t, "PTR", m["code"])
}
