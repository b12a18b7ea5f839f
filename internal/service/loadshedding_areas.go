package service

import "mockapi/internal/domain"

// DefaultArea is used when a schedule request names no area.
const DefaultArea = "cape-town-cbd"

// serviceAreas lists the known areas in the order they are reported.
var serviceAreas = []domain.ServiceArea{
	{
		Key:  "cape-town-cbd",
		Name: "Cape Town CBD",
		Schedules: map[int][]domain.Slot{
			1: {{Start: "06:00", End: "08:30"}, {Start: "18:00", End: "20:30"}},
			2: {{Start: "04:00", End: "06:30"}, {Start: "12:00", End: "14:30"}, {Start: "20:00", End: "22:30"}},
			3: {{Start: "02:00", End: "04:30"}, {Start: "10:00", End: "12:30"}, {Start: "18:00", End: "20:30"}},
			4: {{Start: "00:00", End: "02:30"}, {Start: "08:00", End: "10:30"}, {Start: "16:00", End: "18:30"}},
			5: {{Start: "22:00", End: "00:30"}, {Start: "06:00", End: "08:30"}, {Start: "14:00", End: "16:30"}},
			6: {{Start: "20:00", End: "22:30"}, {Start: "04:00", End: "06:30"}, {Start: "12:00", End: "14:30"}},
		},
	},
	{
		Key:  "johannesburg-cbd",
		Name: "Johannesburg CBD",
		Schedules: map[int][]domain.Slot{
			1: {{Start: "08:00", End: "10:30"}, {Start: "20:00", End: "22:30"}},
			2: {{Start: "06:00", End: "08:30"}, {Start: "14:00", End: "16:30"}, {Start: "22:00", End: "00:30"}},
			3: {{Start: "04:00", End: "06:30"}, {Start: "12:00", End: "14:30"}, {Start: "20:00", End: "22:30"}},
			4: {{Start: "02:00", End: "04:30"}, {Start: "10:00", End: "12:30"}, {Start: "18:00", End: "20:30"}},
			5: {{Start: "00:00", End: "02:30"}, {Start: "08:00", End: "10:30"}, {Start: "16:00", End: "18:30"}},
			6: {{Start: "22:00", End: "00:30"}, {Start: "06:00", End: "08:30"}, {Start: "14:00", End: "16:30"}},
		},
	},
	{
		Key:  "durban-central",
		Name: "Durban Central",
		Schedules: map[int][]domain.Slot{
			1: {{Start: "07:00", End: "09:30"}, {Start: "19:00", End: "21:30"}},
			2: {{Start: "05:00", End: "07:30"}, {Start: "13:00", End: "15:30"}, {Start: "21:00", End: "23:30"}},
			3: {{Start: "03:00", End: "05:30"}, {Start: "11:00", End: "13:30"}, {Start: "19:00", End: "21:30"}},
			4: {{Start: "01:00", End: "03:30"}, {Start: "09:00", End: "11:30"}, {Start: "17:00", End: "19:30"}},
			5: {{Start: "23:00", End: "01:30"}, {Start: "07:00", End: "09:30"}, {Start: "15:00", End: "17:30"}},
			6: {{Start: "21:00", End: "23:30"}, {Start: "05:00", End: "07:30"}, {Start: "13:00", End: "15:30"}},
		},
	},
	{
		Key:  "pretoria-central",
		Name: "Pretoria Central",
		Schedules: map[int][]domain.Slot{
			1: {{Start: "09:00", End: "11:30"}, {Start: "21:00", End: "23:30"}},
			2: {{Start: "07:00", End: "09:30"}, {Start: "15:00", End: "17:30"}, {Start: "23:00", End: "01:30"}},
			3: {{Start: "05:00", End: "07:30"}, {Start: "13:00", End: "15:30"}, {Start: "21:00", End: "23:30"}},
			4: {{Start: "03:00", End: "05:30"}, {Start: "11:00", End: "13:30"}, {Start: "19:00", End: "21:30"}},
			5: {{Start: "01:00", End: "03:30"}, {Start: "09:00", End: "11:30"}, {Start: "17:00", End: "19:30"}},
			6: {{Start: "23:00", End: "01:30"}, {Start: "07:00", End: "09:30"}, {Start: "15:00", End: "17:30"}},
		},
	},
}
