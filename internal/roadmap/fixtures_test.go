package roadmap

func res(id string, typ ResourceType, opts ...func(*Resource)) Resource {
	r := Resource{ID: id, Title: id, Description: id + " description", Type: typ, Tags: []string{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func inRegion(region string) func(*Resource) {
	return func(r *Resource) { r.Region = region }
}

func tagged(tags ...string) func(*Resource) {
	return func(r *Resource) { r.Tags = tags }
}

func urgent(level ResourceUrgency) func(*Resource) {
	return func(r *Resource) { r.UrgencyLevel = level }
}

func fixtureCatalog() Catalog {
	return Catalog{
		Version: "test",
		StatePrograms: []Resource{
			res("state-1", ResourceGovernment),
			res("state-2", ResourceGovernment),
		},
		Hospitals: []Resource{
			res("hosp-kyiv", ResourceHospital, inRegion("kyiv")),
		},
		RehabCenters: []Resource{
			res("rehab-lviv", ResourceRehab, inRegion("lviv"), tagged("lower-limb")),
		},
		ProstheticCenters: []Resource{
			res("pc-kyiv-1", ResourceProstheticCenter, inRegion("kyiv"), tagged("upper-limb")),
			res("pc-lviv-1", ResourceProstheticCenter, inRegion("lviv")),
			res("pc-odesa-1", ResourceProstheticCenter, inRegion("odesa")),
		},
		NGOs: []Resource{
			res("ngo-1", ResourceNGO, urgent(ResourceUrgencyHigh)),
			res("ngo-2", ResourceNGO),
			res("ngo-3", ResourceNGO),
			res("ngo-4", ResourceNGO),
			res("ngo-5", ResourceNGO),
		},
		FinancialAid: []Resource{
			res("fin-1", ResourceFinancial, urgent(ResourceUrgencyImmediate)),
			res("fin-2", ResourceFinancial),
		},
		SupportServices: []Resource{
			res("sup-national-1", ResourceSupport, urgent(ResourceUrgencyImmediate)),
			res("sup-kyiv-1", ResourceSupport, inRegion("kyiv")),
			res("sup-lviv-1", ResourceSupport, inRegion("lviv")),
		},
		Manufacturers: []Resource{
			res("mfr-basic", ResourceManufacturer),
			res("mfr-bionic", ResourceManufacturer, tagged("bionic", "upper-limb")),
			res("mfr-sport", ResourceManufacturer, tagged("lower-limb")),
		},
	}
}

func recIDs(recs []PersonalizedRecommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Resource.ID)
	}
	return out
}
