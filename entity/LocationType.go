package entity

type LocationType string

const (
	LocationCollege   LocationType = "college"
	LocationWorkplace LocationType = "workplace"
	LocationAirport   LocationType = "airport"
	LocationCity      LocationType = "city"
	LocationUrban     LocationType = "urban"
)

var LocationTypes = []LocationType{
	LocationCollege, LocationWorkplace, LocationAirport, LocationCity, LocationUrban,
}

func (l LocationType) Valid() bool {
	for _, v := range LocationTypes {
		if v == l {
			return true
		}
	}
	return false
}
