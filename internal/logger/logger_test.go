package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsNonNil(t *testing.T) {
	require.NotNil(t, New("test"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// must not panic even though output is discarded
	l.Info().Str("k", "v").Msg("ignored")
}

func TestGetChildLogger_IndependentInstance(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	assert.NotSame(t, parent, child)
}

func TestFromContext_NeverNil(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	l := Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	got := FromRequest(r)

	require.NotNil(t, got)
}
