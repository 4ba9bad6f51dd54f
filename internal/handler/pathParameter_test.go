package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/dhis2-sre/event-log/internal/errdef"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathParameter(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("id", "123")

	id, ok := GetPathParameter(ctx, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(123), id)
	assert.Empty(t, ctx.Errors)
}

func TestGetPathParameter_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	id, ok := GetPathParameter(ctx, "id")
	assert.False(t, ok)
	assert.Equal(t, uint(0), id)
	require.Len(t, ctx.Errors, 1)
	assert.True(t, errdef.IsBadRequest(ctx.Errors.Last()))
}

func TestGetPathParameter_NotANumber(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.AddParam("id", "abc")

	_, ok := GetPathParameter(ctx, "id")
	assert.False(t, ok)
	require.Len(t, ctx.Errors, 1)
	assert.True(t, errdef.IsBadRequest(ctx.Errors.Last()))
	assert.Contains(t, ctx.Errors.Last().Error(), `"abc" is not a valid id`)
}
