package hackathon

import "math"

// Facet enumerations offered to clients. "All" sentinels from the UI are not
// stored here; an empty selection already means no constraint.
var (
	Modes        = []string{"Online", "Offline", "Hybrid"}
	Locations    = []string{"Mumbai", "Bangalore", "Delhi", "Hyderabad", "Pune", "Chennai", "Kolkata", "Ahmedabad", "Online"}
	Difficulties = []string{"Beginner", "Intermediate", "Advanced"}
	Themes       = []string{"AI/ML", "Web3", "Social Good", "FinTech", "Sustainability", "Gaming", "IoT", "AR/VR", "Cybersecurity", "Healthcare", "Education"}
	Sources      = []string{"User Created", "Devfolio", "Unstop", "MLH", "Devpost", "HackerEarth", "HackScrapped"}
)

// PrizeRange is one band of the fixed prize partition. Bounds are inclusive.
type PrizeRange struct {
	Label string
	Min   int
	Max   int
}

// PrizeRanges is an exhaustive partition of the non-negative prize axis.
var PrizeRanges = []PrizeRange{
	{Label: "Under ₹50K", Min: 0, Max: 50000},
	{Label: "₹50K-₹1L", Min: 50001, Max: 100000},
	{Label: "₹1L-₹5L", Min: 100001, Max: 500000},
	{Label: "₹5L-₹10L", Min: 500001, Max: 1000000},
	{Label: "Above ₹10L", Min: 1000001, Max: math.MaxInt},
}

func prizeRangeByLabel(label string) (PrizeRange, bool) {
	for _, r := range PrizeRanges {
		if r.Label == label {
			return r, true
		}
	}
	return PrizeRange{}, false
}
