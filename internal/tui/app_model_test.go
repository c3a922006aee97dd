package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyToClipboard_StatusOnSuccess(t *testing.T) {
	m := newMainAppModel(context.Background(), nil, nil, "test")

	updated, _ := m.Update(copiedMsg{})
	next, ok := updated.(appModel)
	require.True(t, ok)

	assert.Equal(t, "Kopiert!", next.entryList.status)
}

func TestCopyToClipboard_FailureLeavesEntryFormAlone(t *testing.T) {
	m := newMainAppModel(context.Background(), nil, nil, "test")
	m.entryForm.submitting = true

	updated, _ := m.Update(copiedMsg{err: errors.New("clipboard unavailable")})
	next, ok := updated.(appModel)
	require.True(t, ok)

	assert.Equal(t, "Kopieren fehlgeschlagen.", next.entryList.status)
	assert.True(t, next.entryForm.submitting)
	assert.False(t, next.showError)
}
