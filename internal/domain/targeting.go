package domain

const (
	MinTargetingAge     = 13
	MaxTargetingAge     = 65
	DefaultTargetingMin = 18
	DefaultTargetingMax = 65

	GenderMale   = 1
	GenderFemale = 2
)

// AdSetTargeting segue o formato snake_case do Meta, usado tanto no payload
// enviado quanto nos registros de auditoria
type AdSetTargeting struct {
	AgeMin                  *int          `json:"age_min,omitempty"`
	AgeMax                  *int          `json:"age_max,omitempty"`
	Genders                 []int         `json:"genders,omitempty"`
	GeoLocations            *GeoLocations `json:"geo_locations,omitempty"`
	CustomAudiences         []AudienceRef `json:"custom_audiences,omitempty"`
	ExcludedCustomAudiences []AudienceRef `json:"excluded_custom_audiences,omitempty"`
}

type GeoLocations struct {
	Countries []string      `json:"countries,omitempty"`
	Cities    []GeoLocation `json:"cities,omitempty"`
	Regions   []GeoLocation `json:"regions,omitempty"`
}

type GeoLocation struct {
	Key          string   `json:"key"`
	Name         string   `json:"name,omitempty"`
	Country      string   `json:"country,omitempty"`
	Radius       *float64 `json:"radius,omitempty"`
	DistanceUnit string   `json:"distance_unit,omitempty"`
}

type AudienceRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func (g *GeoLocations) IsEmpty() bool {
	return g == nil || (len(g.Countries) == 0 && len(g.Cities) == 0 && len(g.Regions) == 0)
}

// Clean devolve uma cópia só com as listas preenchidas
func (g *GeoLocations) Clean() *GeoLocations {
	if g == nil {
		return nil
	}

	clean := &GeoLocations{}
	if len(g.Countries) > 0 {
		clean.Countries = g.Countries
	}
	if len(g.Cities) > 0 {
		clean.Cities = g.Cities
	}
	if len(g.Regions) > 0 {
		clean.Regions = g.Regions
	}
	return clean
}

// WithoutAudienceNames remove os nomes dos públicos; o Meta aceita apenas os ids
func (t AdSetTargeting) WithoutAudienceNames() AdSetTargeting {
	t.CustomAudiences = audienceIDsOnly(t.CustomAudiences)
	t.ExcludedCustomAudiences = audienceIDsOnly(t.ExcludedCustomAudiences)
	return t
}

func audienceIDsOnly(refs []AudienceRef) []AudienceRef {
	if len(refs) == 0 {
		return nil
	}

	ids := make([]AudienceRef, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, AudienceRef{ID: ref.ID})
	}
	return ids
}
