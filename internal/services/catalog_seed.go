package services

import (
	"fmt"

	"tripbuilder/internal/domain/models"

	"gopkg.in/yaml.v3"
)

type tripSeedFile struct {
	Trips []models.Trip `yaml:"trips"`
}

// ParseTripSeed decodes a YAML catalog file of the form:
//
//	trips:
//	  - country: FR
//	    origin: Paris
//	    destination: Nice
func ParseTripSeed(data []byte) ([]models.Trip, error) {
	var f tripSeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse trip seed: %w", err)
	}
	if len(f.Trips) == 0 {
		return nil, fmt.Errorf("parse trip seed: no trips listed")
	}
	return f.Trips, nil
}
