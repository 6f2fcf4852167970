//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package tokenizer

import "strings"

// Porter implements the NLTK_EXTENSIONS variant of the Porter stemming
// algorithm over ASCII words. It matches the stemmer used by
// google-research/rouge, irregular forms included, so English scores stay
// bit-identical to the reference implementation.
type Porter struct{}

// Stem returns the Porter stem of token.
func (p Porter) Stem(token string) string {
	word := strings.ToLower(token)
	if len(word) <= 2 {
		return word
	}
	if base, ok := porterIrregulars[word]; ok {
		return base
	}
	word = p.step1a(word)
	word = p.step1b(word)
	word = p.step1c(word)
	word = p.step2(word)
	word = p.step3(word)
	word = p.step4(word)
	word = p.step5a(word)
	word = p.step5b(word)
	return word
}

// porterIrregulars lists the irregular forms special-cased by NLTK_EXTENSIONS.
var porterIrregulars = map[string]string{
	"sky":      "sky",
	"skies":    "sky",
	"dying":    "die",
	"lying":    "lie",
	"tying":    "tie",
	"news":     "news",
	"inning":   "inning",
	"innings":  "inning",
	"outing":   "outing",
	"outings":  "outing",
	"canning":  "canning",
	"cannings": "canning",
	"howe":     "howe",
	"proceed":  "proceed",
	"exceed":   "exceed",
	"succeed":  "succeed",
}

// isConsonant reports whether word[i] is a consonant under the Porter rules,
// where 'y' counts as a consonant at position 0 or after a vowel.
func (p Porter) isConsonant(word string, i int) bool {
	if i < 0 || i >= len(word) {
		return false
	}
	switch word[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !p.isConsonant(word, i-1)
	default:
		return true
	}
}

// containsVowel reports whether stem contains at least one vowel.
func (p Porter) containsVowel(stem string) bool {
	for i := 0; i < len(stem); i++ {
		if !p.isConsonant(stem, i) {
			return true
		}
	}
	return false
}

// measure computes the Porter "m" value: the number of vowel-consonant
// transitions in the string.
func (p Porter) measure(stem string) int {
	m := 0
	prevWasVowel := false
	for i := 0; i < len(stem); i++ {
		if p.isConsonant(stem, i) {
			if prevWasVowel {
				m++
			}
			prevWasVowel = false
			continue
		}
		prevWasVowel = true
	}
	return m
}

// hasPositiveMeasure reports whether measure(stem) > 0.
func (p Porter) hasPositiveMeasure(stem string) bool {
	return p.measure(stem) > 0
}

// endsDoubleConsonant reports whether word ends with the same consonant twice.
func (p Porter) endsDoubleConsonant(word string) bool {
	if len(word) < 2 {
		return false
	}
	if word[len(word)-1] != word[len(word)-2] {
		return false
	}
	return p.isConsonant(word, len(word)-1)
}

// endsCVC reports whether word ends consonant-vowel-consonant where the final
// consonant is not w, x, or y. A two-letter vowel-consonant word also
// qualifies under NLTK_EXTENSIONS.
func (p Porter) endsCVC(word string) bool {
	if len(word) >= 3 {
		last := word[len(word)-1]
		if p.isConsonant(word, len(word)-3) &&
			!p.isConsonant(word, len(word)-2) &&
			p.isConsonant(word, len(word)-1) &&
			last != 'w' && last != 'x' && last != 'y' {
			return true
		}
	}
	if len(word) == 2 && !p.isConsonant(word, 0) && p.isConsonant(word, 1) {
		return true
	}
	return false
}

// replaceSuffix removes suffix from word and appends replacement.
func (p Porter) replaceSuffix(word, suffix, replacement string) string {
	if suffix == "" {
		return word + replacement
	}
	if !strings.HasSuffix(word, suffix) {
		return word
	}
	return word[:len(word)-len(suffix)] + replacement
}

// suffixRule pairs a suffix with its replacement and an optional condition on
// the remaining stem. The pseudo-suffix "*d" matches a trailing double
// consonant.
type suffixRule struct {
	suffix      string
	replacement string
	condition   func(stem string) bool
}

// applyRules applies the first matching rule. A matching rule whose condition
// fails terminates the search without transforming the word.
func (p Porter) applyRules(word string, rules []suffixRule) string {
	for _, rule := range rules {
		if rule.suffix == "*d" {
			if !p.endsDoubleConsonant(word) {
				continue
			}
			stem := word[:len(word)-2]
			if rule.condition == nil || rule.condition(stem) {
				return stem + rule.replacement
			}
			return word
		}
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := p.replaceSuffix(word, rule.suffix, "")
		if rule.condition == nil || rule.condition(stem) {
			return stem + rule.replacement
		}
		return word
	}
	return word
}

// step1a removes plural suffixes.
func (p Porter) step1a(word string) string {
	// NLTK extension: four-letter "ies" words keep the "ie" (ties -> tie).
	if strings.HasSuffix(word, "ies") && len(word) == 4 {
		return p.replaceSuffix(word, "ies", "ie")
	}
	return p.applyRules(word, []suffixRule{
		{suffix: "sses", replacement: "ss"},
		{suffix: "ies", replacement: "i"},
		{suffix: "ss", replacement: "ss"},
		{suffix: "s", replacement: ""},
	})
}

// step1b removes -ed and -ing style suffixes.
func (p Porter) step1b(word string) string {
	// NLTK extension: "ied" stems to "ie" for four-letter words, "i" otherwise.
	if strings.HasSuffix(word, "ied") {
		if len(word) == 4 {
			return p.replaceSuffix(word, "ied", "ie")
		}
		return p.replaceSuffix(word, "ied", "i")
	}

	if strings.HasSuffix(word, "eed") {
		stem := p.replaceSuffix(word, "eed", "")
		if p.measure(stem) > 0 {
			return stem + "ee"
		}
		return word
	}

	matched := false
	intermediate := ""
	for _, suffix := range []string{"ed", "ing"} {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		candidate := p.replaceSuffix(word, suffix, "")
		if p.containsVowel(candidate) {
			intermediate = candidate
			matched = true
			break
		}
	}
	if !matched {
		return word
	}

	last := intermediate[len(intermediate)-1:]
	return p.applyRules(intermediate, []suffixRule{
		{suffix: "at", replacement: "ate"},
		{suffix: "bl", replacement: "ble"},
		{suffix: "iz", replacement: "ize"},
		{
			suffix:      "*d",
			replacement: last,
			condition: func(string) bool {
				ch := intermediate[len(intermediate)-1]
				return ch != 'l' && ch != 's' && ch != 'z'
			},
		},
		{
			suffix:      "",
			replacement: "e",
			condition: func(stem string) bool {
				return p.measure(stem) == 1 && p.endsCVC(stem)
			},
		},
	})
}

// step1c turns a trailing y into i after a consonant.
func (p Porter) step1c(word string) string {
	return p.applyRules(word, []suffixRule{
		{
			suffix:      "y",
			replacement: "i",
			condition: func(stem string) bool {
				return len(stem) > 1 && p.isConsonant(stem, len(stem)-1)
			},
		},
	})
}

// step2 maps double suffixes to single ones.
func (p Porter) step2(word string) string {
	// NLTK extension: -alli is reduced to -al and step 2 re-runs.
	if strings.HasSuffix(word, "alli") && p.hasPositiveMeasure(p.replaceSuffix(word, "alli", "")) {
		return p.step2(p.replaceSuffix(word, "alli", "al"))
	}

	rules := []suffixRule{
		{suffix: "ational", replacement: "ate", condition: p.hasPositiveMeasure},
		{suffix: "tional", replacement: "tion", condition: p.hasPositiveMeasure},
		{suffix: "enci", replacement: "ence", condition: p.hasPositiveMeasure},
		{suffix: "anci", replacement: "ance", condition: p.hasPositiveMeasure},
		{suffix: "izer", replacement: "ize", condition: p.hasPositiveMeasure},
		{suffix: "bli", replacement: "ble", condition: p.hasPositiveMeasure},
		{suffix: "alli", replacement: "al", condition: p.hasPositiveMeasure},
		{suffix: "entli", replacement: "ent", condition: p.hasPositiveMeasure},
		{suffix: "eli", replacement: "e", condition: p.hasPositiveMeasure},
		{suffix: "ousli", replacement: "ous", condition: p.hasPositiveMeasure},
		{suffix: "ization", replacement: "ize", condition: p.hasPositiveMeasure},
		{suffix: "ation", replacement: "ate", condition: p.hasPositiveMeasure},
		{suffix: "ator", replacement: "ate", condition: p.hasPositiveMeasure},
		{suffix: "alism", replacement: "al", condition: p.hasPositiveMeasure},
		{suffix: "iveness", replacement: "ive", condition: p.hasPositiveMeasure},
		{suffix: "fulness", replacement: "ful", condition: p.hasPositiveMeasure},
		{suffix: "ousness", replacement: "ous", condition: p.hasPositiveMeasure},
		{suffix: "aliti", replacement: "al", condition: p.hasPositiveMeasure},
		{suffix: "iviti", replacement: "ive", condition: p.hasPositiveMeasure},
		{suffix: "biliti", replacement: "ble", condition: p.hasPositiveMeasure},
		{suffix: "fulli", replacement: "ful", condition: p.hasPositiveMeasure},
		{
			// NLTK extension: the -logi condition inspects the word, not the stem.
			suffix:      "logi",
			replacement: "log",
			condition: func(string) bool {
				return p.hasPositiveMeasure(word[:len(word)-3])
			},
		},
	}
	return p.applyRules(word, rules)
}

// step3 removes residual derivational suffixes.
func (p Porter) step3(word string) string {
	return p.applyRules(word, []suffixRule{
		{suffix: "icate", replacement: "ic", condition: p.hasPositiveMeasure},
		{suffix: "ative", replacement: "", condition: p.hasPositiveMeasure},
		{suffix: "alize", replacement: "al", condition: p.hasPositiveMeasure},
		{suffix: "iciti", replacement: "ic", condition: p.hasPositiveMeasure},
		{suffix: "ical", replacement: "ic", condition: p.hasPositiveMeasure},
		{suffix: "ful", replacement: "", condition: p.hasPositiveMeasure},
		{suffix: "ness", replacement: "", condition: p.hasPositiveMeasure},
	})
}

// step4 strips suffixes from stems with measure greater than one.
func (p Porter) step4(word string) string {
	measureGT1 := func(stem string) bool { return p.measure(stem) > 1 }
	return p.applyRules(word, []suffixRule{
		{suffix: "al", replacement: "", condition: measureGT1},
		{suffix: "ance", replacement: "", condition: measureGT1},
		{suffix: "ence", replacement: "", condition: measureGT1},
		{suffix: "er", replacement: "", condition: measureGT1},
		{suffix: "ic", replacement: "", condition: measureGT1},
		{suffix: "able", replacement: "", condition: measureGT1},
		{suffix: "ible", replacement: "", condition: measureGT1},
		{suffix: "ant", replacement: "", condition: measureGT1},
		{suffix: "ement", replacement: "", condition: measureGT1},
		{suffix: "ment", replacement: "", condition: measureGT1},
		{suffix: "ent", replacement: "", condition: measureGT1},
		{
			suffix:      "ion",
			replacement: "",
			condition: func(stem string) bool {
				return p.measure(stem) > 1 && len(stem) > 0 &&
					(stem[len(stem)-1] == 's' || stem[len(stem)-1] == 't')
			},
		},
		{suffix: "ou", replacement: "", condition: measureGT1},
		{suffix: "ism", replacement: "", condition: measureGT1},
		{suffix: "ate", replacement: "", condition: measureGT1},
		{suffix: "iti", replacement: "", condition: measureGT1},
		{suffix: "ous", replacement: "", condition: measureGT1},
		{suffix: "ive", replacement: "", condition: measureGT1},
		{suffix: "ize", replacement: "", condition: measureGT1},
	})
}

// step5a removes a trailing e when the measure allows it.
func (p Porter) step5a(word string) string {
	if strings.HasSuffix(word, "e") {
		stem := p.replaceSuffix(word, "e", "")
		m := p.measure(stem)
		if m > 1 {
			return stem
		}
		if m == 1 && !p.endsCVC(stem) {
			return stem
		}
	}
	return word
}

// step5b reduces a trailing double l.
func (p Porter) step5b(word string) string {
	return p.applyRules(word, []suffixRule{
		{
			suffix:      "ll",
			replacement: "l",
			condition: func(string) bool {
				return p.measure(word[:len(word)-1]) > 1
			},
		},
	})
}
