// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// seedContent is one initial row of the exercise or advice table.
type seedContent struct {
	name     string
	body     string
	videoURL string
}

var seedExercises = []seedContent{
	{name: "1.1 тыныс алу", body: "Терен тыныс алу: Мұрынмен 5 секунд...", videoURL: "1.2.mp4"},
	{name: "2.2 жаттығу", body: "Күн сайын 15 минут йога немесе жеңіл...", videoURL: "1.2.mp4"},
	{name: "3.3 жаттығу", body: "Иық айналдыру: 10 рет алға, 10 рет ...", videoURL: "1.2.mp4"},
	{name: "4.4 жаттығу", body: "Қол бұлғау: 30 секунд бойы қолды кен...", videoURL: "1.2.mp4"},
	{name: "5.5 жаттығу", body: "Көз жаттығуы: алыстағы нысанға 5 ...", videoURL: "1.2.mp4"},
	{name: "6.6 жаттығу", body: "Мойын айналдыру: басты жаймен онға ...", videoURL: "1.2.mp4"},
}

var seedAdvice = []seedContent{
	{name: "1.1 кеңес", body: "Күніне 10 минут тыныс алу жаттығуын ...", videoURL: "1.1.mp4"},
	{name: "2.2 кеңес", body: "Таңертен күн сәулесіне шығып, ...", videoURL: "1.1.mp4"},
	{name: "3.3 кеңес", body: "Ұйықтар алдында 5 минут тыныштықта ...", videoURL: "1.1.mp4"},
	{name: "4.4 кеңес", body: "Күніне кемінде 1,5 литр су ішуді ...", videoURL: "1.1.mp4"},
	{name: "5.5 кеңес", body: "Таңертен бір стакан жылы су ішініз —...", videoURL: "1.1.mp4"},
	{name: "6.6 кеңес", body: "Күні бойы ер сағат сайын аздан ...", videoURL: "1.1.mp4"},
}
