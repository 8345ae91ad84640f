package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		wantOrder string
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: DefaultPageSize, wantOrder: "desc"},
		{name: "explicit values", query: "page=3&limit=20&order=asc", wantPage: 3, wantLimit: 20, wantOrder: "asc"},
		{name: "limit clamped to max", query: "limit=5000", wantPage: 1, wantLimit: MaxPageSize, wantOrder: "desc"},
		{name: "negative page clamped", query: "page=-2", wantPage: 1, wantLimit: DefaultPageSize, wantOrder: "desc"},
		{name: "zero limit clamped", query: "limit=0", wantPage: 1, wantLimit: MinPageSize, wantOrder: "desc"},
		{name: "bogus order falls back", query: "order=sideways", wantPage: 1, wantLimit: DefaultPageSize, wantOrder: "desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := GetPaginationParams(paginationContext(tt.query))
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOrder, params.Order)
		})
	}
}

func TestGetSkip(t *testing.T) {
	params := &PaginationParams{Page: 3, Limit: 20}
	assert.Equal(t, 40, params.GetSkip())
}

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(&PaginationParams{Page: 2, Limit: 10}, 35)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 4, meta.Pages)
}
