package backend

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mailboxRe = regexp.MustCompile(`^[a-z][a-z0-9._]*@[a-z0-9.]+\.[a-z.]+$`)

func TestDeriveEmailUsesNameParts(t *testing.T) {
	b := newBrazil(0)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		email := DeriveEmail(rng, b, "Carlos Oliveira")
		require.Regexp(t, mailboxRe, email)

		user := strings.SplitN(email, "@", 2)[0]
		hasPart := strings.Contains(user, "carlos") || strings.Contains(user, "oliveira") || strings.HasPrefix(user, "c")
		assert.True(t, hasPart, "username %q not derived from name", user)
	}
}

func TestDeriveEmailFoldsAccents(t *testing.T) {
	b := newBrazil(0)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 30; i++ {
		email := DeriveEmail(rng, b, "João Gonçalves")
		assert.Regexp(t, mailboxRe, email)
		assert.NotContains(t, email, "ã")
		assert.NotContains(t, email, "ç")
	}
}

func TestDeriveEmailStripsHonorifics(t *testing.T) {
	b := newBrazil(0)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 30; i++ {
		email := DeriveEmail(rng, b, "Dr. Rafael Souza Jr.")
		user := strings.SplitN(email, "@", 2)[0]
		assert.NotContains(t, user, "dr.")
		assert.NotContains(t, user, "jr")
	}
}

func TestDeriveEmailEmptyNameFallsBack(t *testing.T) {
	b := newBrazil(0)
	rng := rand.New(rand.NewSource(4))

	for _, name := range []string{"", "   ", "Dr.", "123 456"} {
		email := DeriveEmail(rng, b, name)
		assert.Contains(t, email, "@", "fallback for %q", name)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "Joao Goncalves", slugify("João Gonçalves"))
	assert.Equal(t, "Cecilia", slugify("Cecília"))
	assert.Equal(t, "abc ", slugify("abc 123"))
}
