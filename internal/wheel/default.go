package wheel

import "sort"

// DefaultDefinition returns a fresh copy of the built-in emotion wheel.
// Core labels are sorted alphabetically, which is the order they are drawn in.
func DefaultDefinition() Definition {
	def := Definition{
		Core: []string{"Joy", "Fear", "Anger", "Surprise", "Sadness", "Disgust"},
		Middle: map[string][]string{
			"Joy":      {"Happy", "Cheerful"},
			"Fear":     {"Anxious", "Insecure"},
			"Anger":    {"Frustrated", "Irritated"},
			"Surprise": {"Amazed", "Startled"},
			"Sadness":  {"Gloomy", "Depressed"},
			"Disgust":  {"Disdain", "Loathing"},
		},
		Outer: map[string][]string{
			"Happy":      {"Ecstatic", "Elated"},
			"Cheerful":   {"Bright", "Upbeat"},
			"Anxious":    {"Worried", "Nervous"},
			"Insecure":   {"Vulnerable", "Uneasy"},
			"Frustrated": {"Resentful", "Enraged"},
			"Irritated":  {"Annoyed", "Agitated"},
			"Amazed":     {"Awestruck", "Astounded"},
			"Startled":   {"Shocked", "Alarmed"},
			"Gloomy":     {"Disheartened", "Melancholy"},
			"Depressed":  {"Hopeless", "Despairing"},
			"Disdain":    {"Scornful", "Contemptuous"},
			"Loathing":   {"Repelled", "Sickened"},
		},
		Advice: map[string]string{
			"Fear":    "Try grounding techniques like mindful breathing or meditation.",
			"Anger":   "Consider deep breathing exercises or a brief walk to cool down.",
			"Sadness": "Try journaling or talking with a trusted friend.",
			"Disgust": "Focus on what’s triggering your aversion and reframe the situation; consider professional support if needed.",
		},
	}
	sort.Strings(def.Core)
	return def
}

// Default returns the built-in emotion wheel.
func Default() *Tree {
	t, err := New(DefaultDefinition())
	if err != nil {
		panic("wheel: invalid default definition: " + err.Error())
	}
	return t
}
