package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartpet-backend/internal/models"
)

// ParsePostFilter reads the search query string. Blank parameters are absent.
func ParsePostFilter(c *fiber.Ctx) (models.PostFilter, error) {
	var f models.PostFilter
	text := func(name string) *string {
		if v := strings.TrimSpace(c.Query(name)); v != "" {
			return &v
		}
		return nil
	}
	number := func(name string) (*int, error) {
		v := text(name)
		if v == nil {
			return nil, nil
		}
		n, err := strconv.Atoi(*v)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer", name)
		}
		return &n, nil
	}

	f.Breed = text("breed")
	f.Location = text("location")
	f.Term = text("q")
	if v := text("size"); v != nil {
		s := models.PetSize(*v)
		f.Size = &s
	}
	if v := text("status"); v != nil {
		s := models.AdoptionStatus(*v)
		f.Status = &s
	}

	var err error
	if f.MinAge, err = number("min_age"); err != nil {
		return f, err
	}
	if f.MaxAge, err = number("max_age"); err != nil {
		return f, err
	}
	if v := text("vaccinated"); v != nil {
		b, err := strconv.ParseBool(*v)
		if err != nil {
			return f, fmt.Errorf("vaccinated must be true or false")
		}
		f.VaccinationStatus = &b
	}
	return f, nil
}
