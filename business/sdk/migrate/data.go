package migrate

const (
	statusBooked    = "Booked"
	statusTemporary = "Sementara"
)

type seedRoom struct {
	Code       string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Status     string
	TenantName string
}

type seedFloor struct {
	Level    int
	Name     string
	ImageURL string
	ViewBox  string
	Rooms    []seedRoom
}

// defaultFloors is the floor plan dataset for the default outlet.
var defaultFloors = []seedFloor{
	{
		Level:    1,
		Name:     "Floor 1",
		ImageURL: "https://api.stayvie.com/uploads/gallery/gallery-1763359927129-Denah-O-Six---Lantai-1.webp",
		ViewBox:  "0 0 1500 3000",
		Rooms: []seedRoom{
			{Code: "C-120", X: 350, Y: 150, Width: 150, Height: 350, Status: statusBooked, TenantName: "Andi Wijaya"},
			{Code: "C-121", X: 650, Y: 150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "C-122", X: 950, Y: 150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "C-123", X: 1250, Y: 150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "B-119", X: 400, Y: 675, Width: 100, Height: 375, Status: statusBooked},
			{Code: "B-118", X: 500, Y: 675, Width: 100, Height: 375, Status: statusBooked},
			{Code: "B-117", X: 700, Y: 675, Width: 100, Height: 375, Status: statusBooked},
			{Code: "B-116", X: 800, Y: 675, Width: 100, Height: 375, Status: statusBooked},
			{Code: "A-110", X: 400, Y: 1200, Width: 100, Height: 250, Status: statusBooked},
			{Code: "A-111", X: 500, Y: 1200, Width: 100, Height: 250, Status: statusBooked},
			{Code: "A-112", X: 700, Y: 1200, Width: 100, Height: 250, Status: statusBooked},
			{Code: "A-115", X: 800, Y: 1200, Width: 100, Height: 250, Status: statusBooked},
			{Code: "B-109", X: 400, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "B-108", X: 550, Y: 1625, Width: 150, Height: 375, Status: statusTemporary},
			{Code: "B-107", X: 750, Y: 1625, Width: 150, Height: 375, Status: statusTemporary},
			{Code: "B-106", X: 900, Y: 1625, Width: 150, Height: 375, Status: statusBooked, TenantName: "Budi Santoso"},
			{Code: "B-101", X: 400, Y: 2150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "B-102", X: 550, Y: 2150, Width: 150, Height: 350, Status: statusBooked, TenantName: "Citra Lestari"},
			{Code: "B-103", X: 750, Y: 2150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "B-105", X: 900, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
		},
	},
	{
		Level:    2,
		Name:     "Floor 2",
		ImageURL: "https://api.stayvie.com/uploads/gallery/gallery-1763359927608-Denah-O-Six---Lantai-2.webp",
		ViewBox:  "0 0 1500 3000",
		Rooms: []seedRoom{
			{Code: "C-222", X: 350, Y: 150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "C-223", X: 500, Y: 150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "C-225", X: 700, Y: 150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "C-226", X: 850, Y: 150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "C-227", X: 1050, Y: 150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "C-228", X: 1200, Y: 150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "B-221", X: 400, Y: 675, Width: 100, Height: 375, Status: statusBooked},
			{Code: "B-220", X: 500, Y: 675, Width: 100, Height: 375, Status: statusBooked},
			{Code: "B-219", X: 700, Y: 675, Width: 100, Height: 375, Status: statusBooked},
			{Code: "B-218", X: 800, Y: 675, Width: 100, Height: 375, Status: statusBooked},
			{Code: "B-217", X: 1000, Y: 675, Width: 100, Height: 375, Status: statusBooked},
			{Code: "A-210", X: 400, Y: 1200, Width: 100, Height: 250, Status: statusBooked},
			{Code: "A-211", X: 500, Y: 1200, Width: 100, Height: 250, Status: statusBooked},
			{Code: "A-212", X: 700, Y: 1200, Width: 100, Height: 250, Status: statusBooked},
			{Code: "A-215", X: 800, Y: 1200, Width: 100, Height: 250, Status: statusTemporary},
			{Code: "B-216", X: 1000, Y: 1200, Width: 100, Height: 250, Status: statusBooked},
			{Code: "B-209", X: 400, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "B-208", X: 550, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "B-207", X: 750, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "B-206", X: 900, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "B-201", X: 400, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "B-202", X: 550, Y: 2150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "B-203", X: 750, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "B-205", X: 900, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
		},
	},
	{
		Level:    3,
		Name:     "Floor 3",
		ImageURL: "https://api.stayvie.com/uploads/gallery/gallery-1763359927973-Denah-O-Six---Lantai-3.webp",
		ViewBox:  "0 0 1500 3000",
		Rooms: []seedRoom{
			{Code: "C-319", X: 350, Y: 150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "C-320", X: 500, Y: 150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "C-321", X: 700, Y: 150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "C-322", X: 850, Y: 150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "C-323", X: 1050, Y: 150, Width: 150, Height: 350, Status: statusTemporary},
			{Code: "C-325", X: 1200, Y: 150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "D-318", X: 400, Y: 675, Width: 150, Height: 375, Status: statusBooked},
			{Code: "D-317", X: 550, Y: 675, Width: 150, Height: 375, Status: statusBooked},
			{Code: "D-316", X: 750, Y: 675, Width: 150, Height: 375, Status: statusBooked},
			{Code: "D-315", X: 900, Y: 675, Width: 150, Height: 375, Status: statusBooked},
			{Code: "B-309", X: 400, Y: 1200, Width: 150, Height: 250, Status: statusBooked},
			{Code: "B-310", X: 550, Y: 1200, Width: 150, Height: 250, Status: statusBooked},
			{Code: "B-311", X: 750, Y: 1200, Width: 150, Height: 250, Status: statusTemporary},
			{Code: "B-312", X: 900, Y: 1200, Width: 150, Height: 250, Status: statusBooked},
			{Code: "D-308", X: 400, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "D-307", X: 550, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "D-306", X: 750, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "D-301", X: 400, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "D-302", X: 550, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "D-303", X: 750, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "D-305", X: 900, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
		},
	},
	{
		Level:    4,
		Name:     "Floor 5 (Rooftop)",
		ImageURL: "https://api.stayvie.com/uploads/gallery/gallery-1763359928337-Denah-O-Six---Lantai-5.webp",
		ViewBox:  "0 0 1500 3000",
		Rooms: []seedRoom{
			{Code: "D-515", X: 400, Y: 675, Width: 150, Height: 375, Status: statusBooked},
			{Code: "D-512", X: 550, Y: 675, Width: 150, Height: 375, Status: statusTemporary},
			{Code: "D-511", X: 750, Y: 675, Width: 150, Height: 375, Status: statusBooked},
			{Code: "B-508", X: 400, Y: 1200, Width: 150, Height: 250, Status: statusBooked, TenantName: "Dewi K."},
			{Code: "B-509", X: 550, Y: 1200, Width: 150, Height: 250, Status: statusTemporary},
			{Code: "B-510", X: 750, Y: 1200, Width: 150, Height: 250, Status: statusTemporary},
			{Code: "D-507", X: 400, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "D-506", X: 550, Y: 1625, Width: 150, Height: 375, Status: statusBooked},
			{Code: "D-505", X: 750, Y: 1625, Width: 150, Height: 375, Status: statusTemporary},
			{Code: "D-501", X: 400, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "D-502", X: 550, Y: 2150, Width: 150, Height: 350, Status: statusBooked},
			{Code: "D-503", X: 750, Y: 2150, Width: 150, Height: 350, Status: statusTemporary},
		},
	},}
