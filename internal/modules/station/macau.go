package station

// MacauLRT lists the Macau Light Rapid Transit stations in hop-matrix order.
var MacauLRT = MustRegistry([]Station{
	{Zh: "媽閣", Pt: "Barra", En: "Barra"},
	{Zh: "海洋", Pt: "Oceano", En: "Ocean"},
	{Zh: "馬會", Pt: "Jockey Clube", En: "Jockey Club"},
	{Zh: "運動場", Pt: "Estádio", En: "Stadium"},
	{Zh: "排角", Pt: "Pai Kok", En: "Pai Kok"},
	{Zh: "路氹西", Pt: "Cotai Oeste", En: "Cotai West"},
	{Zh: "蓮花", Pt: "Lótus", En: "Lotus"},
	{Zh: "協和醫院", Pt: "Hospital Union", En: "Union Hospital"},
	{Zh: "東亞運", Pt: "Jogos da Ásia Oriental", En: "East Asian Games"},
	{Zh: "路氹東", Pt: "Cotai Leste", En: "Cotai East"},
	{Zh: "科大", Pt: "UCTM", En: "MUST"},
	{Zh: "機場", Pt: "Aeroporto", En: "Airport"},
	{Zh: "氹仔碼頭", Pt: "Terminal Marítimo da Taipa", En: "Taipa Ferry Terminal"},
	{Zh: "石排灣", Pt: "Seac Pai Van", En: "Seac Pai Van"},
	{Zh: "橫琴", Pt: "Hengqin", En: "Hengqin"},
}, [][]int{
	{0, 2, 3, 4, 5, 6, 7, 8, 8, 9, 10, 11, 12, 9, 9},
	{2, 0, 1, 2, 3, 4, 5, 6, 6, 7, 8, 9, 10, 7, 7},
	{3, 1, 0, 1, 2, 3, 4, 5, 5, 6, 7, 8, 9, 6, 6},
	{4, 2, 1, 0, 1, 2, 3, 4, 4, 5, 6, 7, 8, 5, 5},
	{5, 3, 2, 1, 0, 1, 2, 3, 3, 4, 5, 6, 7, 4, 4},
	{6, 4, 3, 2, 1, 0, 1, 2, 2, 3, 4, 5, 6, 3, 3},
	{7, 5, 4, 3, 2, 1, 0, 1, 1, 2, 3, 4, 5, 2, 2},
	{8, 6, 5, 4, 3, 2, 1, 0, 1, 2, 3, 4, 5, 1, 3},
	{8, 6, 5, 4, 3, 2, 1, 1, 0, 1, 2, 3, 4, 2, 3},
	{9, 7, 6, 5, 4, 3, 2, 2, 1, 0, 1, 2, 3, 3, 4},
	{10, 8, 7, 6, 5, 4, 3, 3, 2, 1, 0, 1, 2, 4, 5},
	{11, 9, 8, 7, 6, 5, 4, 4, 3, 2, 1, 0, 1, 5, 6},
	{12, 10, 9, 8, 7, 6, 5, 5, 4, 3, 2, 1, 0, 6, 7},
	{9, 7, 6, 5, 4, 3, 2, 1, 2, 3, 4, 5, 6, 0, 4},
	{9, 7, 6, 5, 4, 3, 2, 3, 3, 4, 5, 6, 7, 4, 0},
})
