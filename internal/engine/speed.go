package engine

import (
	"fmt"

	"github.com/specialistvlad/craftplan/internal/catalog"
)

// SpeedTable maps producer categories to throughput multipliers. A category
// absent from the table runs at the base rate (multiplier 1.0). Values
// between 0 and 1 model slowdowns; values above 1 model speed bonuses.
type SpeedTable map[catalog.ProducerCategory]float64

// Validate rejects any non-positive multiplier with ErrInvalidRate. A nil
// table is valid and means no modifiers at all.
func (s SpeedTable) Validate() error {
	for category, multiplier := range s {
		if multiplier <= 0 {
			return fmt.Errorf("%w: speed multiplier for %s is %v, must be positive",
				ErrInvalidRate, category, multiplier)
		}
	}
	return nil
}

// multiplier returns the effective multiplier for a category.
func (s SpeedTable) multiplier(category catalog.ProducerCategory) float64 {
	if m, ok := s[category]; ok {
		return m
	}
	return 1.0
}
