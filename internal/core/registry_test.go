package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPage(key, group string) Page {
	return NewPage(PageDef[account]{
		Info:    PageInfo{Key: key, Group: group, Label: key},
		Columns: accountColumns[:1],
		Source:  StaticSource[account](nil),
	})
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubPage("hr_cards", "HR"))
	reg.Register(stubPage("crm_leads", "CRM"))
	reg.Register(stubPage("crm_accounts", "CRM"))

	assert.Equal(t, 3, reg.Count())

	p, ok := reg.Get("crm_leads")
	require.True(t, ok)
	assert.Equal(t, "CRM", p.Info().Group)

	_, ok = reg.Get("missing")
	assert.False(t, ok)

	var keys []string
	for _, p := range reg.All() {
		keys = append(keys, p.Info().Key)
	}
	assert.Equal(t, []string{"crm_accounts", "crm_leads", "hr_cards"}, keys)

	assert.Equal(t, []string{"CRM", "HR"}, reg.Groups())
	assert.Len(t, reg.ByGroup("CRM"), 2)
	assert.Empty(t, reg.ByGroup("Finance"))

	assert.Panics(t, func() { reg.Register(stubPage("crm_leads", "CRM")) })

	reg.Clear()
	assert.Zero(t, reg.Count())
}

func TestDefaultRegistry(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(stubPage("x", "G"))
	_, ok := Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1, PageCount())
	assert.Len(t, All(), 1)
	assert.Len(t, ByGroup("G"), 1)
	assert.Equal(t, []string{"G"}, Groups())
	assert.Same(t, defaultRegistry, DefaultRegistry())
}
