package backend

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
)

// usaBackend delegates most primitives to go-faker, which ships en_US
// data only. SSN/EIN formats are assembled locally since faker carries
// no tax identifiers. The faker source is process-global, so seeding
// happens once per backend construction.
type usaBackend struct{}

func newUSA(seed int64) Backend {
	faker.SetRandomSource(rand.NewSource(seed))
	return &usaBackend{}
}

var (
	usJobs = []string{
		"Accountant", "Architect", "Attorney", "Chef", "Civil Engineer",
		"Dental Hygienist", "Electrician", "Financial Analyst",
		"Graphic Designer", "Journalist", "Marketing Manager",
		"Mechanical Engineer", "Nurse Practitioner", "Paralegal",
		"Pharmacist", "Photographer", "Physical Therapist",
		"Police Officer", "Real Estate Agent", "Sales Representative",
		"Software Developer", "Teacher", "Truck Driver", "Veterinarian",
	}
	usDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com", "icloud.com"}
)

func (u *usaBackend) FullName(_ *rand.Rand) string {
	return faker.Name()
}

func (u *usaBackend) Address(_ *rand.Rand) string {
	a := faker.GetRealAddress()
	return fmt.Sprintf("%s, %s, %s %s", a.Address, a.City, a.State, a.PostalCode)
}

func (u *usaBackend) Job(rng *rand.Rand) string {
	return usJobs[rng.Intn(len(usJobs))]
}

func (u *usaBackend) Phone(_ *rand.Rand) string {
	return faker.Phonenumber()
}

func (u *usaBackend) PersonID(rng *rand.Rand) string {
	// SSN: area 001-899 excluding 666, group 01-99, serial 0001-9999.
	area := rng.Intn(898) + 1
	if area >= 666 {
		area++
	}
	return fmt.Sprintf("%03d-%02d-%04d", area, rng.Intn(99)+1, rng.Intn(9999)+1)
}

func (u *usaBackend) CompanyID(rng *rand.Rand) string {
	return fmt.Sprintf("%02d-%07d", rng.Intn(99)+1, rng.Intn(10000000))
}

func (u *usaBackend) FreeEmail(_ *rand.Rand) string {
	return faker.Email()
}

func (u *usaBackend) EmailDomain(rng *rand.Rand) string {
	return usDomains[rng.Intn(len(usDomains))]
}

func (u *usaBackend) TimeOfDay(_ *rand.Rand) string {
	return faker.TimeString()
}
