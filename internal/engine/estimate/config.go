package estimate

// ============================================================
// Estimate Config
// ============================================================

// RoomType грубая категория комнаты для подсчета электрики и сантехники.
type RoomType string

const (
	RoomLiving   RoomType = "living"
	RoomKitchen  RoomType = "kitchen"
	RoomBathroom RoomType = "bathroom"
	RoomBedroom  RoomType = "bedroom"
	RoomUtility  RoomType = "utility"
	RoomDefault  RoomType = "default"
)

// Config настраиваемые коэффициенты сметы. Все размеры кирпича и
// растворного шва в сантиметрах, покрытия в м², цены за закупочную единицу.
type Config struct {
	Masonry    MasonryConfig    `json:"masonry"`
	Paint      PaintConfig      `json:"paint"`
	Flooring   FlooringConfig   `json:"flooring"`
	Electrical ElectricalConfig `json:"electrical"`
	Plumbing   PlumbingConfig   `json:"plumbing"`
	Prices     PriceList        `json:"prices"`
}

type MasonryConfig struct {
	BrickWidth      float64 `json:"brickWidth"`
	BrickHeight     float64 `json:"brickHeight"`
	MortarThickness float64 `json:"mortarThickness"`
	WasteFactor     float64 `json:"wasteFactor"` // 1.05 = 5% запаса
}

type PaintConfig struct {
	WallCoats        int     `json:"wallCoats"`
	CeilingCoats     int     `json:"ceilingCoats"`
	CoveragePerLiter float64 `json:"coveragePerLiter"` // м² на литр за слой
	PrimerCoats      int     `json:"primerCoats"`
	PrimerCoverage   float64 `json:"primerCoverage"`
	PuttyKgPerM2     float64 `json:"puttyKgPerM2"`
	PuttyAreaShare   float64 `json:"puttyAreaShare"` // доля площади под шпаклевку
}

type FlooringConfig struct {
	WasteFactor     float64 `json:"wasteFactor"`
	GroutKgPerM2    float64 `json:"groutKgPerM2"`
	AdhesiveKgPerM2 float64 `json:"adhesiveKgPerM2"`
}

type ElectricalConfig struct {
	PointsPerRoomType  map[RoomType]int `json:"pointsPerRoomType"`
	WireMetersPerPoint float64          `json:"wireMetersPerPoint"`
}

type PlumbingConfig struct {
	PointsPerRoomType  map[RoomType]int `json:"pointsPerRoomType"`
	PipeMetersPerPoint float64          `json:"pipeMetersPerPoint"`
}

// PriceList цены за закупочные единицы: краска — ведро 18 л,
// шпаклевка — мешок 25 кг, клей — мешок 20 кг, труба — хлыст 6 м.
type PriceList struct {
	Brick            float64 `json:"brick"`
	PaintCan18L      float64 `json:"paintCan18L"`
	PrimerCan18L     float64 `json:"primerCan18L"`
	PuttySack25Kg    float64 `json:"puttySack25Kg"`
	TilePerM2        float64 `json:"tilePerM2"`
	GroutPerKg       float64 `json:"groutPerKg"`
	AdhesiveSack20Kg float64 `json:"adhesiveSack20Kg"`
	ElectricalPoint  float64 `json:"electricalPoint"`
	WirePerMeter     float64 `json:"wirePerMeter"`
	PlumbingPoint    float64 `json:"plumbingPoint"`
	PipeBar6M        float64 `json:"pipeBar6M"`
}

// DefaultConfig базовые коэффициенты: кирпич 19x9 со швом 1 см,
// краска на два слоя, типовые точки по типам комнат.
func DefaultConfig() *Config {
	return &Config{
		Masonry: MasonryConfig{
			BrickWidth:      19,
			BrickHeight:     9,
			MortarThickness: 1,
			WasteFactor:     1.05,
		},
		Paint: PaintConfig{
			WallCoats:        2,
			CeilingCoats:     2,
			CoveragePerLiter: 10,
			PrimerCoats:      1,
			PrimerCoverage:   12,
			PuttyKgPerM2:     1.0,
			PuttyAreaShare:   0.3,
		},
		Flooring: FlooringConfig{
			WasteFactor:     1.1,
			GroutKgPerM2:    0.5,
			AdhesiveKgPerM2: 4,
		},
		Electrical: ElectricalConfig{
			PointsPerRoomType: map[RoomType]int{
				RoomLiving:   6,
				RoomKitchen:  8,
				RoomBathroom: 3,
				RoomBedroom:  5,
				RoomUtility:  3,
				RoomDefault:  4,
			},
			WireMetersPerPoint: 12,
		},
		Plumbing: PlumbingConfig{
			PointsPerRoomType: map[RoomType]int{
				RoomKitchen:  3,
				RoomBathroom: 5,
				RoomUtility:  3,
			},
			PipeMetersPerPoint: 6,
		},
		Prices: PriceList{
			Brick:            1.2,
			PaintCan18L:      320,
			PrimerCan18L:     280,
			PuttySack25Kg:    45,
			TilePerM2:        42,
			GroutPerKg:       8,
			AdhesiveSack20Kg: 28,
			ElectricalPoint:  85,
			WirePerMeter:     3.5,
			PlumbingPoint:    120,
			PipeBar6M:        48,
		},
	}
}

// ============================================================
// Room type inference
// ============================================================

// Порядок проверки ключевых слов фиксирован, первый матч выигрывает.
var roomTypeKeywords = []struct {
	keyword  string
	roomType RoomType
}{
	{"sala", RoomLiving},
	{"cozinha", RoomKitchen},
	{"banheiro", RoomBathroom},
	{"wc", RoomBathroom},
	{"quarto", RoomBedroom},
	{"dormit", RoomBedroom},
	{"servico", RoomUtility},
	{"lavanderia", RoomUtility},
}
