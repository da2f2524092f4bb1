package interest

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductInterest(t *testing.T) {
	rec, err := NewProductInterest("pellet", "a@b.com")
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "pellet", rec.ProductID)
	assert.Equal(t, "a@b.com", rec.Email)
	assert.False(t, rec.IsGeneralContact())
	assert.WithinDuration(t, time.Now().UTC(), rec.CreatedAt, 2*time.Second)
}

func TestNewProductInterest_Invalid(t *testing.T) {
	_, err := NewProductInterest("", "a@b.com")
	assert.Error(t, err)

	_, err = NewProductInterest("pellet", "  ")
	assert.Error(t, err)
}

func TestNewContactInquiry(t *testing.T) {
	rec, err := NewContactInquiry("Mario", "mario@example.com", "Vorrei informazioni")
	require.NoError(t, err)

	assert.Equal(t, ProductGeneralContact, rec.ProductID)
	assert.True(t, rec.IsGeneralContact())
	assert.Equal(t, "Mario", rec.Name)
	assert.Equal(t, "Vorrei informazioni", rec.Message)
}

func TestNewContactInquiry_RequiresEmail(t *testing.T) {
	_, err := NewContactInquiry("Mario", "", "msg")
	assert.Error(t, err)
}

func TestRecord_MarshalPayload(t *testing.T) {
	rec, err := NewContactInquiry("Mario", "mario@example.com", "Vorrei informazioni")
	require.NoError(t, err)

	data, err := rec.MarshalPayload()
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "contact", got["product"])
	assert.Equal(t, "mario@example.com", got["email"])
	assert.Equal(t, "Mario", got["name"])
	assert.Equal(t, "Vorrei informazioni", got["msg"])

	ts, ok := got["ts"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestRecord_MarshalPayload_OmitsEmptyOptionalFields(t *testing.T) {
	rec, err := NewProductInterest("pellet", "a@b.com")
	require.NoError(t, err)

	data, err := rec.MarshalPayload()
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "pellet", got["product"])
	assert.NotContains(t, got, "name")
	assert.NotContains(t, got, "msg")
}
