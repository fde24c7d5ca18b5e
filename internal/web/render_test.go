package web

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplates(t *testing.T) {
	tmpl, err := parseTemplates()
	require.NoError(t, err)
	for _, name := range []string{"home.html", "register_seeker.html", "register_employer.html", "post_job.html", "submitted.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestOptionValue(t *testing.T) {
	assert.Equal(t, "3", optionValue(mo.Some(3)))
	assert.Equal(t, "1500.5", optionValue(mo.Some(1500.5)))
	assert.Empty(t, optionValue(mo.None[int]()))
	assert.Empty(t, optionValue("3"))
}

func TestSelected(t *testing.T) {
	assert.True(t, selected(mo.Some(2), 2))
	assert.False(t, selected(mo.Some(3), 2))
	assert.False(t, selected(mo.None[int](), 2))
}
