package settings

import "digital_rain/rain"

// ConfigData stores predefined color themes and character sets.
type ConfigData struct {
	ColorThemes map[string]rain.Color
	CharSets    map[string][]rune
}

// DefaultConfigData holds the built-in themes and character sets. Every
// entry is a single visible rune: variation selectors and combining marks
// would be drawn as glyphs of their own.
var DefaultConfigData = ConfigData{
	ColorThemes: map[string]rain.Color{
		"green":  {R: 0, G: 255, B: 0},
		"amber":  {R: 255, G: 191, B: 0},
		"red":    {R: 255, G: 0, B: 0},
		"orange": {R: 255, G: 165, B: 0},
		"blue":   {R: 0, G: 150, B: 255},
		"purple": {R: 128, G: 0, B: 255},
		"cyan":   {R: 0, G: 255, B: 255},
		"pink":   {R: 255, G: 20, B: 147},
		"white":  {R: 255, G: 255, B: 255},
		"black":  {R: 0, G: 0, B: 0},
	},
	CharSets: map[string][]rune{
		"matrix":   rain.DefaultAlphabet,
		"kanji":    []rune("書道日本漢字文化侍忍者武士刀剣"),
		"greek":    []rune("αβγδεζηθικλμνξοπρστυφχψωΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ"),
		"cyrillic": []rune("абвгдежзийклмнопрстуфхцчшщъыьэюяАБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"),
		"binary":   []rune("01"),
		"hex":      []rune("0123456789ABCDEF"),
		"symbols":  []rune("!@#$%^&*()_+-=[]{}|;':\",./<>?"),
		"dna":      []rune("ATCG"),
		"arrows":   []rune("←↑→↓↖↗↘↙⇐⇑⇒⇓"),
		"math":     []rune("∀∁∂∃∄∅∆∇∈∉∊∋∌∍∎∏∐∑−∓∔∕∖∗∘∙√∛∜∝∞∟∠∡∢∣∤∥∦∧∨∩∪"),
		"braille":  []rune("⠁⠂⠃⠄⠅⠆⠇⠈⠉⠊⠋⠌⠍⠎⠏⠐⠑⠒⠓⠔⠕⠖⠗⠘⠙⠚⠛⠜⠝⠞⠟⠠⠡⠢⠣⠤⠥⠦⠧⠨⠩⠪⠫⠬⠭⠮⠯"),
		"ascii":    []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"),
		"minimal":  []rune(".*+"),
		"persian":  []rune("ابتثجحخدذرزسشصضطظعغفقكلمنهويپچڈگھژکںیےآأؤإئء"),
		"emojis":   []rune("😂😅😊🔥✨🚀🎉🌟🌈💩👻💀👽👾"),
		"hearts":   []rune("🧡💛💚💙💜🤎🖤🤍"),
		"blocks":   []rune("◼◻🟥🟧🟨🟩🟦🟪⬛⬜🟫"),
		"circles":  []rune("🔴🟠🟡🟢🔵🟣⚫⚪🟤"),
		"mayan":    []rune("◈◉◊○◌◍◎●◐◑◒◓◔◕◖◗◘◙◚◛◜◝◞◟◠◡◢◣◤◥◦◧◨◩◪◫◬◭◮◯◰◱◲◳◴◵◶◷◸◹◺◻◼◽◾◿"),
		"aztec":    []rune("☀☽☾✦✧⋚⋛⋜⋝⋞⋟⋠⋡▲△▴▵▶▷▸▹►▻▼▽▾▿"),
	},
}
