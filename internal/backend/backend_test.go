package backend

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmatos/tabula/internal/domain"
)

func TestRegistryLocales(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"en_US", "pt_BR"}, r.Locales())
}

func TestRegistryUnsupportedLocale(t *testing.T) {
	r := DefaultRegistry()
	_, err := r.For("fr_FR", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.Contains(t, err.Error(), "en_US")
	assert.Contains(t, err.Error(), "pt_BR")
}

func TestRegistryFieldSetsDiffer(t *testing.T) {
	r := DefaultRegistry()

	br, err := r.Fields(domain.LocaleBrazil)
	require.NoError(t, err)
	us, err := r.Fields(domain.LocaleUSA)
	require.NoError(t, err)

	assert.Contains(t, br, domain.FieldCPF)
	assert.Contains(t, br, domain.FieldCNPJ)
	assert.NotContains(t, br, domain.FieldSSN)

	assert.Contains(t, us, domain.FieldSSN)
	assert.Contains(t, us, domain.FieldEIN)
	assert.NotContains(t, us, domain.FieldCPF)

	for _, common := range []domain.FieldKind{
		domain.FieldID, domain.FieldName, domain.FieldEmail, domain.FieldAge,
		domain.FieldPrice, domain.FieldPhone, domain.FieldAddress,
		domain.FieldJob, domain.FieldDate, domain.FieldTime, domain.FieldBoolean,
	} {
		assert.Contains(t, br, common)
		assert.Contains(t, us, common)
	}
}

func TestBrazilCPFFormatAndCheckDigits(t *testing.T) {
	b := newBrazil(0)
	rng := rand.New(rand.NewSource(3))
	re := regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

	for i := 0; i < 50; i++ {
		cpf := b.PersonID(rng)
		require.Regexp(t, re, cpf)

		digits := onlyDigits(cpf)
		require.Len(t, digits, 11)
		assert.Equal(t, digits[9], cpfCheckDigit(digits[:9]), "first verifier of %s", cpf)
		assert.Equal(t, digits[10], cpfCheckDigit(digits[:10]), "second verifier of %s", cpf)
	}
}

func TestBrazilCNPJFormatAndCheckDigits(t *testing.T) {
	b := newBrazil(0)
	rng := rand.New(rand.NewSource(3))
	re := regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/0001-\d{2}$`)

	for i := 0; i < 50; i++ {
		cnpj := b.CompanyID(rng)
		require.Regexp(t, re, cnpj)

		digits := onlyDigits(cnpj)
		require.Len(t, digits, 14)
		assert.Equal(t, digits[12], cnpjCheckDigit(digits[:12]), "first verifier of %s", cnpj)
		assert.Equal(t, digits[13], cnpjCheckDigit(digits[:13]), "second verifier of %s", cnpj)
	}
}

func TestBrazilPhoneFormat(t *testing.T) {
	b := newBrazil(0)
	rng := rand.New(rand.NewSource(9))
	re := regexp.MustCompile(`^\(\d{2}\) 9\d{4}-\d{4}$`)

	for i := 0; i < 20; i++ {
		assert.Regexp(t, re, b.Phone(rng))
	}
}

func TestBrazilDeterministicWithSameSeed(t *testing.T) {
	b := newBrazil(0)
	a := rand.New(rand.NewSource(42))
	c := rand.New(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		assert.Equal(t, b.FullName(a), b.FullName(c))
		assert.Equal(t, b.Address(a), b.Address(c))
		assert.Equal(t, b.PersonID(a), b.PersonID(c))
	}
}

func TestUSAIdentifierFormats(t *testing.T) {
	u := &usaBackend{}
	rng := rand.New(rand.NewSource(5))

	ssnRe := regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	einRe := regexp.MustCompile(`^\d{2}-\d{7}$`)
	for i := 0; i < 50; i++ {
		ssn := u.PersonID(rng)
		require.Regexp(t, ssnRe, ssn)
		assert.NotEqual(t, "666", ssn[:3])
		assert.NotEqual(t, "000", ssn[:3])

		assert.Regexp(t, einRe, u.CompanyID(rng))
	}
}

func TestBrazilTimeOfDay(t *testing.T) {
	b := newBrazil(0)
	rng := rand.New(rand.NewSource(5))
	re := regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)

	for i := 0; i < 20; i++ {
		assert.Regexp(t, re, b.TimeOfDay(rng))
	}
}

func onlyDigits(s string) []int {
	var out []int
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, int(r-'0'))
		}
	}
	return out
}

func TestBrazilFullNameWords(t *testing.T) {
	b := newBrazil(0)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 20; i++ {
		n := len(strings.Fields(b.FullName(rng)))
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 3)
	}
}
