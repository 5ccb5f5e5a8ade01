package tiresize

// Load index range covered by the capacity table
const (
	MinLoadIndex = 60
	MaxLoadIndex = 126
)

// loadKg is the passenger/light truck load index table, kg per tire
var loadKg = [...]int{
	250, 257, 265, 272, 280, 290, 300, 307, 315, 325, // 60-69
	335, 345, 355, 365, 375, 387, 400, 412, 425, 437, // 70-79
	450, 462, 475, 487, 500, 515, 530, 545, 560, 580, // 80-89
	600, 615, 630, 650, 670, 690, 710, 730, 750, 775, // 90-99
	800, 825, 850, 875, 900, 925, 950, 975, 1000, 1030, // 100-109
	1060, 1090, 1120, 1150, 1180, 1215, 1250, 1285, 1320, 1360, // 110-119
	1400, 1450, 1500, 1550, 1600, 1650, 1700, // 120-126
}

// LoadCapacityKg returns the maximum load per tire for a load index
func LoadCapacityKg(index int) (int, bool) {
	if index < MinLoadIndex || index > MaxLoadIndex {
		return 0, false
	}
	return loadKg[index-MinLoadIndex], true
}
