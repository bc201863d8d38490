package backend

import (
	"fmt"
	"math/rand"
	"strings"
)

// brazilBackend produces pt_BR primitives from curated word lists and the
// official CPF/CNPJ check-digit rules. All randomness comes from the rng
// handed in per call; the seed parameter of the constructor is unused
// because no process-global source is involved.
type brazilBackend struct{}

func newBrazil(_ int64) Backend {
	return &brazilBackend{}
}

var (
	brFirstNames = []string{
		"Ana", "Beatriz", "Bruno", "Camila", "Carlos", "Cecília", "Daniel",
		"Eduardo", "Fernanda", "Gabriel", "Guilherme", "Helena", "Isabela",
		"João", "Juliana", "Larissa", "Leonardo", "Letícia", "Lucas", "Luiza",
		"Marcos", "Mariana", "Mateus", "Patrícia", "Paulo", "Rafael", "Renata",
		"Ricardo", "Sofia", "Thiago", "Vinícius", "Yasmin",
	}
	brSurnames = []string{
		"Almeida", "Alves", "Araújo", "Barbosa", "Cardoso", "Carvalho",
		"Castro", "Costa", "Dias", "Fernandes", "Ferreira", "Gomes",
		"Gonçalves", "Lima", "Lopes", "Martins", "Melo", "Mendes", "Monteiro",
		"Moreira", "Nascimento", "Oliveira", "Pereira", "Ribeiro", "Rocha",
		"Rodrigues", "Santos", "Silva", "Souza", "Teixeira", "Vieira",
	}
	brJobs = []string{
		"Advogado", "Analista de Sistemas", "Arquiteto", "Biólogo",
		"Contador", "Dentista", "Designer Gráfico", "Eletricista",
		"Enfermeiro", "Engenheiro Civil", "Farmacêutico", "Fisioterapeuta",
		"Fotógrafo", "Jornalista", "Médico", "Motorista", "Nutricionista",
		"Pedagogo", "Professor", "Psicólogo", "Publicitário", "Químico",
		"Vendedor", "Veterinário",
	}
	brStreetTypes = []string{"Rua", "Avenida", "Travessa", "Alameda", "Praça"}
	brStreetNames = []string{
		"das Flores", "XV de Novembro", "São João", "Dom Pedro II",
		"Tiradentes", "Santos Dumont", "das Acácias", "Barão do Rio Branco",
		"Sete de Setembro", "Marechal Deodoro", "das Palmeiras",
	}
	brNeighborhoods = []string{
		"Centro", "Jardim América", "Vila Nova", "Bela Vista", "Santa Luzia",
		"Boa Viagem", "São Francisco", "Alto da Serra",
	}
	brCities = []struct {
		name string
		uf   string
	}{
		{"São Paulo", "SP"}, {"Rio de Janeiro", "RJ"}, {"Belo Horizonte", "MG"},
		{"Curitiba", "PR"}, {"Porto Alegre", "RS"}, {"Salvador", "BA"},
		{"Recife", "PE"}, {"Fortaleza", "CE"}, {"Brasília", "DF"},
		{"Manaus", "AM"}, {"Florianópolis", "SC"}, {"Goiânia", "GO"},
	}
	brAreaCodes = []int{11, 21, 31, 41, 51, 61, 71, 81, 85, 91}
	brDomains   = []string{"gmail.com", "hotmail.com", "yahoo.com.br", "bol.com.br", "uol.com.br", "outlook.com"}
)

func (b *brazilBackend) FullName(rng *rand.Rand) string {
	parts := []string{
		brFirstNames[rng.Intn(len(brFirstNames))],
		brSurnames[rng.Intn(len(brSurnames))],
	}
	// Roughly half of Brazilian full names carry two surnames.
	if rng.Intn(2) == 0 {
		parts = append(parts, brSurnames[rng.Intn(len(brSurnames))])
	}
	return strings.Join(parts, " ")
}

func (b *brazilBackend) Address(rng *rand.Rand) string {
	city := brCities[rng.Intn(len(brCities))]
	return fmt.Sprintf("%s %s, %d - %s, %s - %s, %05d-%03d",
		brStreetTypes[rng.Intn(len(brStreetTypes))],
		brStreetNames[rng.Intn(len(brStreetNames))],
		rng.Intn(2000)+1,
		brNeighborhoods[rng.Intn(len(brNeighborhoods))],
		city.name, city.uf,
		rng.Intn(100000), rng.Intn(1000))
}

func (b *brazilBackend) Job(rng *rand.Rand) string {
	return brJobs[rng.Intn(len(brJobs))]
}

func (b *brazilBackend) Phone(rng *rand.Rand) string {
	// Cellphone layout: (DDD) 9XXXX-XXXX.
	return fmt.Sprintf("(%d) 9%04d-%04d",
		brAreaCodes[rng.Intn(len(brAreaCodes))], rng.Intn(10000), rng.Intn(10000))
}

func (b *brazilBackend) PersonID(rng *rand.Rand) string {
	d := randomDigits(rng, 9)
	d = append(d, cpfCheckDigit(d), 0)
	d[10] = cpfCheckDigit(d[:10])
	return fmt.Sprintf("%d%d%d.%d%d%d.%d%d%d-%d%d",
		d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8], d[9], d[10])
}

func (b *brazilBackend) CompanyID(rng *rand.Rand) string {
	// Base of 8 digits plus the 0001 headquarters branch suffix.
	d := append(randomDigits(rng, 8), 0, 0, 0, 1)
	d = append(d, cnpjCheckDigit(d), 0)
	d[13] = cnpjCheckDigit(d[:13])
	return fmt.Sprintf("%d%d.%d%d%d.%d%d%d/%d%d%d%d-%d%d",
		d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8], d[9], d[10], d[11], d[12], d[13])
}

func (b *brazilBackend) FreeEmail(rng *rand.Rand) string {
	user := strings.ToLower(slugify(brFirstNames[rng.Intn(len(brFirstNames))]))
	return fmt.Sprintf("%s%d@%s", user, rng.Intn(90)+10, b.EmailDomain(rng))
}

func (b *brazilBackend) EmailDomain(rng *rand.Rand) string {
	return brDomains[rng.Intn(len(brDomains))]
}

func (b *brazilBackend) TimeOfDay(rng *rand.Rand) string {
	return fmt.Sprintf("%02d:%02d:%02d", rng.Intn(24), rng.Intn(60), rng.Intn(60))
}

func randomDigits(rng *rand.Rand, n int) []int {
	d := make([]int, n, n+6)
	for i := range d {
		d[i] = rng.Intn(10)
	}
	return d
}

// cpfCheckDigit computes the mod-11 verifier over the given digits with
// descending weights starting at len(d)+1.
func cpfCheckDigit(d []int) int {
	sum := 0
	for i, v := range d {
		sum += v * (len(d) + 1 - i)
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

var cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// cnpjCheckDigit computes the mod-11 verifier using the CNPJ weight
// cycle, aligned to the tail of the digit slice.
func cnpjCheckDigit(d []int) int {
	w := cnpjWeights[len(cnpjWeights)-len(d):]
	sum := 0
	for i, v := range d {
		sum += v * w[i]
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
