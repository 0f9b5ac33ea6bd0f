package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	valid := []string{"test@test.com", "a.b@example.co", "x+y@sub.domain.org"}
	for _, s := range valid {
		assert.True(t, Email(s), s)
	}

	invalid := []string{"", "not_valid_email", "a@b", "a b@c.com", "@c.com", "a@.com "}
	for _, s := range invalid {
		assert.False(t, Email(s), s)
	}
}

func TestAmountMissing(t *testing.T) {
	_, errs := Amount("amount", nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "Amount can't be empty.", errs[0].Msg)
	assert.Equal(t, "amount", errs[0].Path)

	_, errs = Amount("amount", json.RawMessage("null"))
	require.Len(t, errs, 1)
	assert.Equal(t, "Amount can't be empty.", errs[0].Msg)
}

func TestAmountNotNumeric(t *testing.T) {
	_, errs := Amount("amount", json.RawMessage(`"abc"`))
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid amount", errs[0].Msg)

	_, errs = Amount("amount", json.RawMessage(`{"a":1}`))
	require.Len(t, errs, 1)
	assert.Equal(t, "Invalid amount", errs[0].Msg)
}

func TestAmountNotPositive(t *testing.T) {
	for _, raw := range []string{"0", "-5", `"-1.5"`} {
		_, errs := Amount("amount", json.RawMessage(raw))
		require.Len(t, errs, 1, raw)
		assert.Equal(t, "Amount must be greater than 0", errs[0].Msg)
	}
}

func TestAmountOK(t *testing.T) {
	v, errs := Amount("amount", json.RawMessage("250.5"))
	require.Empty(t, errs)
	assert.Equal(t, 250.5, v)

	// numeric strings pass, matching the permissive body checks the API
	// has always had
	v, errs = Amount("amount", json.RawMessage(`"100"`))
	require.Empty(t, errs)
	assert.Equal(t, 100.0, v)
}

func TestErrorsOrder(t *testing.T) {
	var errs Errors
	errs.Add("name", "Name can't be empty.")
	errs.Add("amount", "Invalid amount")

	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Path)
	assert.Equal(t, "amount", errs[1].Path)
}
