// Package generator produces the deterministic synthetic supplier catalog.
// Every field is a pure function of (seed, count, template tables): running
// the generator twice with the same inputs yields the identical sequence.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

const (
	// DefaultSeed is the catalog seed used by the demo (Walmart's founding year).
	DefaultSeed = 1962
	// DefaultCount is the catalog size used by the demo.
	DefaultCount = 5000
)

// Supplier is one synthetic catalog record. Records are immutable after
// generation; there is no update or delete path.
type Supplier struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Website           string   `json:"website"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Location          string   `json:"location"`
	Region            string   `json:"region"`
	Category          string   `json:"category"`
	Products          []string `json:"products"`
	Certifications    []string `json:"certifications"`
	Rating            float64  `json:"rating"`
	AIScore           int      `json:"ai_score"`
	Size              string   `json:"size"`
	PriceRange        string   `json:"price_range"`
	YearsInBusiness   int      `json:"years_in_business"`
	ProjectsCompleted int      `json:"projects_completed"`
	WalmartVerified   bool     `json:"walmart_verified"`
}

// Generate builds count suppliers from the seed. The category list is evenly
// partitioned across the records: count/len(categories) per category, grouped
// in category order, with any remainder assigned to the final category.
func Generate(seed int64, count int) []Supplier {
	if count <= 0 {
		return []Supplier{}
	}

	rng := rand.New(rand.NewSource(seed))
	suppliers := make([]Supplier, 0, count)
	usedNames := make(map[string]struct{}, count)

	perCategory := count / len(categoryOrder)
	id := 1

	for catIdx, category := range categoryOrder {
		n := perCategory
		if catIdx == len(categoryOrder)-1 {
			n = count - perCategory*(len(categoryOrder)-1)
		}
		for i := 0; i < n; i++ {
			suppliers = append(suppliers, generateOne(rng, id, category, usedNames))
			id++
		}
	}

	return suppliers
}

func generateOne(rng *rand.Rand, id int, category string, usedNames map[string]struct{}) Supplier {
	categoryShort := strings.Fields(category)[0]

	var name, adj string
	for attempts := 0; attempts < 20; attempts++ {
		adj = pick(rng, adjectives)
		suffix := pick(rng, companyTypes)
		name = fmt.Sprintf("%s %s %s", adj, categoryShort, suffix)
		if _, taken := usedNames[name]; !taken {
			break
		}
		if attempts >= 10 {
			name = fmt.Sprintf("%s %s %s #%d", adj, categoryShort, suffix, rng.Intn(999)+1)
			break
		}
	}
	usedNames[name] = struct{}{}

	city := cities[rng.Intn(len(cities))]

	numProducts := rng.Intn(5) + 2
	products := make([]string, 0, numProducts)
	for j := 0; j < numProducts; j++ {
		p := pick(rng, productsByCategory[category])
		if !contains(products, p) {
			products = append(products, p)
		}
	}

	numCerts := rng.Intn(3) + 1
	certs := make([]string, 0, numCerts)
	for j := 0; j < numCerts; j++ {
		c := pick(rng, certifications)
		if !contains(certs, c) {
			certs = append(certs, c)
		}
	}

	years := rng.Intn(40) + 5
	domain := strings.ToLower(strings.ReplaceAll(adj, " ", "")) + strings.ToLower(categoryShort)

	return Supplier{
		ID:   id,
		Name: name,
		Description: fmt.Sprintf(
			"Leading provider of %s with over %d years of experience serving the %s region.",
			strings.ToLower(category), years, city.Region,
		),
		Website: fmt.Sprintf("https://www.%s.com", domain),
		Email:   fmt.Sprintf("%s@%s.com", pick(rng, emailPrefixes), domain),
		Phone: fmt.Sprintf("(%d) %d-%d",
			rng.Intn(900)+200, rng.Intn(900)+200, rng.Intn(9000)+1000),
		Address: fmt.Sprintf("%d %s %s",
			rng.Intn(9000)+1000, pick(rng, streetNames), pick(rng, streetSuffixes)),
		City:              city.City,
		State:             city.State,
		Location:          fmt.Sprintf("%s, %s", city.City, city.State),
		Region:            city.Region,
		Category:          category,
		Products:          products,
		Certifications:    certs,
		Rating:            math.Round((rng.Float64()*1.5+3.5)*10) / 10,
		AIScore:           rng.Intn(30) + 70,
		Size:              pick(rng, companySizes),
		PriceRange:        pick(rng, priceRanges),
		YearsInBusiness:   years,
		ProjectsCompleted: rng.Intn(5000) + 100,
		WalmartVerified:   rng.Float64() > 0.7,
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
