package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/junaidrashid-git/nursery-store/models"
)

var (
	hardyToRe    = regexp.MustCompile(`hardy (?:to|down to) (-?\d+)\s*°?\s*f`)
	zoneRe       = regexp.MustCompile(`zones? (\d{1,2})`)
	matureFeetRe = regexp.MustCompile(`(?:grows|reaches|up) to (\d+)\s*(?:ft|feet|foot|')`)
)

// InferCharacteristics reads care attributes out of free text descriptions.
func InferCharacteristics(texts ...string) models.Characteristics {
	text := strings.ToLower(strings.Join(texts, " "))
	c := models.Characteristics{
		MatureSize: inferMatureSize(text),
		GrowthRate: models.GrowthRateModerate,
		CareLevel:  models.CareLevelModerate,
	}

	if m := hardyToRe.FindStringSubmatch(text); m != nil {
		if t, err := strconv.Atoi(m[1]); err == nil {
			c.MinTemperatureF = &t
		}
	} else if m := zoneRe.FindStringSubmatch(text); m != nil {
		if zone, err := strconv.Atoi(m[1]); err == nil && zone >= 1 && zone <= 13 {
			// USDA zone n starts at -60F + 10F per zone.
			t := -60 + 10*(zone-1)
			c.MinTemperatureF = &t
		}
	}

	switch {
	case containsAny(text, "fast-growing", "fast growing", "grows quickly", "rapid"):
		c.GrowthRate = models.GrowthRateFast
	case containsAny(text, "slow-growing", "slow growing", "grows slowly"):
		c.GrowthRate = models.GrowthRateSlow
	}

	switch {
	case containsAny(text, "easy", "low maintenance", "low-maintenance", "beginner", "forgiving"):
		c.CareLevel = models.CareLevelEasy
	case containsAny(text, "challenging", "difficult", "expert", "demanding"):
		c.CareLevel = models.CareLevelAdvanced
	}

	c.Flowering = containsAny(text, "flower", "bloom", "blossom")
	c.Indoor = containsAny(text, "indoor", "houseplant", "windowsill")
	c.Outdoor = containsAny(text, "outdoor", "garden", "landscape", "full sun")
	if !c.Indoor && !c.Outdoor {
		c.Outdoor = true
	}
	c.DroughtTolerant = containsAny(text, "drought", "xeric", "low water")
	return c
}

func inferMatureSize(text string) models.MatureSize {
	if m := matureFeetRe.FindStringSubmatch(text); m != nil {
		if feet, err := strconv.Atoi(m[1]); err == nil {
			switch {
			case feet >= 10:
				return models.MatureSizeLarge
			case feet >= 3:
				return models.MatureSizeMedium
			default:
				return models.MatureSizeSmall
			}
		}
	}
	switch {
	case containsAny(text, "dwarf", "miniature", "compact"):
		return models.MatureSizeSmall
	case containsAny(text, "giant", "massive", "towering"):
		return models.MatureSizeLarge
	}
	return models.MatureSizeMedium
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
