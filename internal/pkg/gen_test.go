package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAcceptKey(t *testing.T) {
	// Given: the sample nonce from RFC 6455 section 1.3
	key := "dGhlIHNhbXBsZSBub25jZQ=="

	// When: deriving the accept key
	acceptKey := GenerateAcceptKey(key)

	// Then: it matches the value the RFC prescribes
	assert.Equal(t, "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=", acceptKey)
}

func TestGenerateNewSessionID(t *testing.T) {
	// When: generating two session IDs
	first := GenerateNewSessionID()
	second := GenerateNewSessionID()

	// Then: both are non-empty and distinct
	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}

func TestGenerateGameID(t *testing.T) {
	// When: generating a game ID
	id := GenerateGameID()

	// Then: it is a non-empty numeric string
	assert.NotEmpty(t, id)
	assert.Regexp(t, `^\d+$`, id)
}
