package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestCreateProductRequestValid(t *testing.T) {
	req := CreateProductRequest{Name: "Laptop Pro", Price: 999.99, Category: "Electronics"}
	assert.Empty(t, req.Validate())
}

func TestCreateProductRequestTrimsName(t *testing.T) {
	req := CreateProductRequest{Name: "  Laptop Pro  ", Price: 10, Category: "Electronics"}
	assert.Empty(t, req.Validate())
	assert.Equal(t, "Laptop Pro", req.Name)
}

func TestCreateProductRequestViolations(t *testing.T) {
	tests := []struct {
		name string
		req  CreateProductRequest
		want []string
	}{
		{
			name: "all fields missing",
			req:  CreateProductRequest{},
			want: []string{"Name is required", "Price is required", "Category is required"},
		},
		{
			name: "zero price counts as missing",
			req:  CreateProductRequest{Name: "Notebook", Price: 0, Category: "Stationery"},
			want: []string{"Price is required"},
		},
		{
			name: "name too short",
			req:  CreateProductRequest{Name: "ab", Price: 5, Category: "Books"},
			want: []string{"Name must be at least 3 characters"},
		},
		{
			name: "whitespace only name counts as missing",
			req:  CreateProductRequest{Name: "   ", Price: 5, Category: "Books"},
			want: []string{"Name is required"},
		},
		{
			name: "name too long",
			req:  CreateProductRequest{Name: strings.Repeat("x", 101), Price: 5, Category: "Books"},
			want: []string{"Name cannot exceed 100 characters"},
		},
		{
			name: "negative price",
			req:  CreateProductRequest{Name: "Notebook", Price: -1, Category: "Stationery"},
			want: []string{"Price cannot be negative"},
		},
		{
			name: "unknown category echoes the value",
			req:  CreateProductRequest{Name: "Notebook", Price: 5, Category: "Gadgets"},
			want: []string{"Gadgets is not a valid category"},
		},
		{
			name: "category comparison is case sensitive",
			req:  CreateProductRequest{Name: "Notebook", Price: 5, Category: "electronics"},
			want: []string{"electronics is not a valid category"},
		},
		{
			name: "all violations reported together",
			req:  CreateProductRequest{Name: "ab", Price: -1, Category: "Gadgets"},
			want: []string{
				"Name must be at least 3 characters",
				"Price cannot be negative",
				"Gadgets is not a valid category",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Validate())
		})
	}
}

func TestUpdateProductRequestAllowsEmptyPatch(t *testing.T) {
	req := UpdateProductRequest{}
	assert.Empty(t, req.Validate())
}

func TestUpdateProductRequestZeroPriceIsValid(t *testing.T) {
	req := UpdateProductRequest{Price: floatPtr(0)}
	assert.Empty(t, req.Validate())
}

func TestUpdateProductRequestTrimsName(t *testing.T) {
	req := UpdateProductRequest{Name: strPtr("  Updated Name  ")}
	assert.Empty(t, req.Validate())
	assert.Equal(t, "Updated Name", *req.Name)
}

func TestUpdateProductRequestViolations(t *testing.T) {
	tests := []struct {
		name string
		req  UpdateProductRequest
		want []string
	}{
		{
			name: "empty name present in patch",
			req:  UpdateProductRequest{Name: strPtr("")},
			want: []string{"Name must be at least 3 characters"},
		},
		{
			name: "name too long",
			req:  UpdateProductRequest{Name: strPtr(strings.Repeat("x", 101))},
			want: []string{"Name cannot exceed 100 characters"},
		},
		{
			name: "negative price",
			req:  UpdateProductRequest{Price: floatPtr(-0.01)},
			want: []string{"Price cannot be negative"},
		},
		{
			name: "unknown category",
			req:  UpdateProductRequest{Category: strPtr("Bogus")},
			want: []string{"Bogus is not a valid category"},
		},
		{
			name: "all violations reported together",
			req: UpdateProductRequest{
				Name:     strPtr("ab"),
				Price:    floatPtr(-5),
				Category: strPtr("Bogus"),
			},
			want: []string{
				"Name must be at least 3 characters",
				"Price cannot be negative",
				"Bogus is not a valid category",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Validate())
		})
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(string(c)), "category %q should be valid", c)
	}
	assert.False(t, IsValidCategory("electronics"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("Groceries"))
}
