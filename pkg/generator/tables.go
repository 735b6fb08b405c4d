package generator

// Static template tables driving the deterministic catalog. The category map
// is ordered so the partitioning of records across categories is stable.

var categoryOrder = []string{
	"Lumber & Wood Products",
	"Concrete & Masonry",
	"Steel & Metal",
	"Electrical Supplies",
	"Plumbing Supplies",
	"HVAC Equipment",
	"Roofing Materials",
	"Windows & Doors",
	"Paint & Finishes",
	"Hardware & Fasteners",
}

var productsByCategory = map[string][]string{
	"Lumber & Wood Products": {"2x4 Lumber", "Plywood", "Particle Board", "MDF", "Hardwood Flooring", "Cedar Shingles"},
	"Concrete & Masonry":     {"Portland Cement", "Ready-Mix Concrete", "Cinder Blocks", "Bricks", "Gravel", "Sand"},
	"Steel & Metal":          {"Steel Beams", "Rebar", "Steel Pipe", "Aluminum Siding", "Metal Roofing", "Wire Mesh"},
	"Electrical Supplies":    {"Electrical Wire", "Outlets", "Light Fixtures", "Circuit Breakers", "Conduit", "Switches"},
	"Plumbing Supplies":      {"PVC Pipe", "Copper Pipe", "Faucets", "Valves", "Toilets", "Sink Fixtures"},
	"HVAC Equipment":         {"Air Conditioning Units", "Furnaces", "Heat Pumps", "Ductwork", "Thermostats", "Insulation"},
	"Roofing Materials":      {"Asphalt Shingles", "Metal Roofing", "Tar & Gravel", "Underlayment", "Flashing", "Gutters"},
	"Windows & Doors":        {"Vinyl Windows", "Wood Doors", "Sliding Glass Doors", "Storm Windows", "Hardware", "Weather Stripping"},
	"Paint & Finishes":       {"Interior Paint", "Exterior Paint", "Primer", "Stain", "Polyurethane", "Caulk"},
	"Hardware & Fasteners":   {"Nails", "Screws", "Bolts", "Hinges", "Locks", "Tools"},
}

var certifications = []string{
	"ISO 9001", "ISO 14001", "OSHA Certified", "EPA Certified",
	"NSF Certified", "UL Listed", "ANSI Certified", "Green Building",
	"Walmart Supplier Standards", "WBE Certified",
}

var companySizes = []string{"Small (1-50)", "Medium (51-250)", "Large (251-1000)", "Enterprise (1000+)"}

var priceRanges = []string{"Budget ($)", "Mid-Range ($$)", "Premium ($$$)", "Enterprise ($$$$)"}

var companyTypes = []string{
	"Inc.", "LLC", "Corp.", "Co.", "Supply Co.", "Distributors", "Materials",
	"Solutions", "Industries", "Group", "Enterprises", "Services", "Systems", "Technologies",
}

var adjectives = []string{
	"Premier", "Elite", "Pro", "Superior", "Quality", "Reliable", "National",
	"Metro", "Coastal", "Summit", "Precision", "BuildRight", "Apex", "Pioneer",
	"TruValue", "First Choice", "Top Tier", "Allied", "United", "Global",
	"Platinum", "Diamond", "Crown", "Ace", "Master", "Prime", "Advantage",
	"American", "Industrial", "Commercial", "Advanced", "Dynamic", "Innovative",
	"Strategic", "Certified", "Professional", "Executive", "Specialist",
	"Expert", "Mega", "Ultra", "Super", "Best", "Direct", "Express", "Rapid",
	"Swift", "Instant", "Quick",
}

type cityEntry struct {
	City   string
	State  string
	Region string
}

var cities = []cityEntry{
	{"New York", "NY", "Northeast"},
	{"Los Angeles", "CA", "West"},
	{"Chicago", "IL", "Midwest"},
	{"Houston", "TX", "Southwest"},
	{"Phoenix", "AZ", "Southwest"},
	{"Philadelphia", "PA", "Northeast"},
	{"San Antonio", "TX", "Southwest"},
	{"San Diego", "CA", "West"},
	{"Dallas", "TX", "Southwest"},
	{"San Jose", "CA", "West"},
	{"Austin", "TX", "Southwest"},
	{"Jacksonville", "FL", "Southeast"},
	{"Fort Worth", "TX", "Southwest"},
	{"Columbus", "OH", "Midwest"},
	{"Charlotte", "NC", "Southeast"},
	{"Seattle", "WA", "West"},
	{"Denver", "CO", "West"},
	{"Boston", "MA", "Northeast"},
	{"Portland", "OR", "West"},
	{"Las Vegas", "NV", "West"},
	{"Detroit", "MI", "Midwest"},
	{"Memphis", "TN", "Southeast"},
	{"Baltimore", "MD", "Northeast"},
	{"Milwaukee", "WI", "Midwest"},
	{"Atlanta", "GA", "Southeast"},
	{"Miami", "FL", "Southeast"},
	{"Indianapolis", "IN", "Midwest"},
	{"Kansas City", "MO", "Midwest"},
	{"Minneapolis", "MN", "Midwest"},
	{"Raleigh", "NC", "Southeast"},
}

var emailPrefixes = []string{"sales", "info", "contact", "support"}

var streetNames = []string{"Main", "Oak", "Maple", "Industrial", "Commerce", "Market", "Park", "Center"}

var streetSuffixes = []string{"Street", "Avenue", "Boulevard", "Drive", "Way", "Road"}

// Categories returns the fixed category list in generation order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
