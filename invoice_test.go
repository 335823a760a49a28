package bindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoice_Clone(t *testing.T) {
	yanked := true
	inv := invoiceFixture("my/bindle", "1.2.3")
	inv.Yanked = &yanked
	inv.Annotations = map[string]string{"team": "search"}
	inv.Parcels[0].Conditions = &Conditions{MemberOf: []string{"server"}}

	clone := inv.Clone()
	require.Equal(t, inv, clone)

	// Deep copy: mutations do not travel either way
	clone.Bindle.Authors[0] = "someone else"
	clone.Annotations["team"] = "infra"
	*clone.Yanked = false
	clone.Parcels[0].Conditions.MemberOf[0] = "client"

	assert.Equal(t, "m butcher", inv.Bindle.Authors[0])
	assert.Equal(t, "search", inv.Annotations["team"])
	assert.True(t, *inv.Yanked)
	assert.Equal(t, "server", inv.Parcels[0].Conditions.MemberOf[0])
}

func TestInvoice_CloneNil(t *testing.T) {
	var inv *Invoice
	assert.Nil(t, inv.Clone())
}

func TestInvoice_IsYanked(t *testing.T) {
	inv := invoiceFixture("my/bindle", "1.2.3")
	assert.False(t, inv.IsYanked())

	no := false
	inv.Yanked = &no
	assert.False(t, inv.IsYanked())

	yes := true
	inv.Yanked = &yes
	assert.True(t, inv.IsYanked())
}
