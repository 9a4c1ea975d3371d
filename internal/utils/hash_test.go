package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSecret(t *testing.T) {
	t.Run("known vectors", func(t *testing.T) {
		// Hashes must stay byte-for-byte stable: every credential already on
		// disk was written with this exact scheme.
		assert.Equal(t,
			"3badbf6c3c1466ec7cf642ae76cb1a70f6d7d58c7e3b0d8f5519d979f4ab96d6",
			HashSecret("1234", "citizen_aid_system_2024"))
		assert.Equal(t,
			"a26c5755b7141ee9dc6f17a5ce819525fe8b535ba9ec7b53d8629e91aa49e0c1",
			HashSecret("admin2024", "pepper"))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, HashSecret("secret", "salt"), HashSecret("secret", "salt"))
	})

	t.Run("sensitive to secret and salt", func(t *testing.T) {
		assert.NotEqual(t, HashSecret("secret", "salt"), HashSecret("other", "salt"))
		assert.NotEqual(t, HashSecret("secret", "salt"), HashSecret("secret", "other"))
	})

	t.Run("concatenation order is secret then salt", func(t *testing.T) {
		// "ab"+"c" and "a"+"bc" concatenate to the same bytes; the scheme
		// hashes the concatenation, so these collide by construction.
		assert.Equal(t, HashSecret("ab", "c"), HashSecret("a", "bc"))
	})
}
