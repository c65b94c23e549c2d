package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Customer_ExtraRoundTrip(t *testing.T) {
	wire := []byte(`{"id":"cus_123","object":"customer","email":"a@b.co","created":1700000000,"invoice_prefix":"ABCD","tax_exempt":"none"}`)

	var c Customer
	require.NoError(t, json.Unmarshal(wire, &c))

	assert.Equal(t, "cus_123", c.ID)
	assert.Equal(t, "a@b.co", c.Email)
	// Unknown wire fields land in the extension bag.
	assert.Equal(t, "ABCD", c.Extra["invoice_prefix"])
	assert.Equal(t, "none", c.Extra["tax_exempt"])

	out, err := json.Marshal(c)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "cus_123", m["id"])
	assert.Equal(t, "ABCD", m["invoice_prefix"])
	assert.Equal(t, "none", m["tax_exempt"])
}

func Test_Marshal_ExtraCollision(t *testing.T) {
	c := Customer{
		ID:    "cus_123",
		Extra: map[string]any{"email": "shadow@b.co"},
	}
	_, err := json.Marshal(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtraFieldCollision))
}

func Test_Invoice_ExtraSurvivesReencode(t *testing.T) {
	wire := []byte(`{"id":"in_1","object":"invoice","total":1200,"lines":{"object":"list","data":[]}}`)
	var inv Invoice
	require.NoError(t, json.Unmarshal(wire, &inv))
	assert.EqualValues(t, 1200, inv.Total)

	out, err := json.Marshal(inv)
	require.NoError(t, err)
	var back Invoice
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Contains(t, back.Extra, "lines")
}

func Test_ParseKind(t *testing.T) {
	for _, token := range []string{
		"account", "balance", "coupon", "customer", "dispute", "invoice",
		"invoiceitem", "payment_link", "payment_intent", "price", "product",
		"refund", "subscription",
	} {
		k, ok := ParseKind(token)
		assert.True(t, ok, token)
		assert.Equal(t, token, string(k))
	}
	_, ok := ParseKind("charge")
	assert.False(t, ok)
	_, ok = ParseKind("")
	assert.False(t, ok)
}

func Test_EntityID_BalanceHasNone(t *testing.T) {
	assert.Equal(t, "", Balance{Object: "balance"}.EntityID())
	assert.Equal(t, KindBalance, Balance{}.EntityKind())
}
