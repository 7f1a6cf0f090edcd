package manager

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/kirinyoku/holidaze/internal/domain"
)

type MediaInput struct {
	URL string `json:"url" validate:"url"`
	Alt string `json:"alt"`
}

type LocationInput struct {
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	Zip       string `json:"zip" validate:"required"`
	Country   string `json:"country" validate:"required"`
	Continent string `json:"continent" validate:"required"`
}

// VenueInput is the venue form as submitted by a manager.
type VenueInput struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description" validate:"required"`
	Media       []MediaInput  `json:"media" validate:"dive"`
	Price       float64       `json:"price" validate:"gt=0"`
	MaxGuests   int           `json:"maxGuests" validate:"gt=0"`
	Meta        domain.Meta   `json:"meta"`
	Location    LocationInput `json:"location"`
}

var fieldMessages = []struct {
	field   string
	message string
}{
	{"name", "Please enter a venue name"},
	{"description", "Please enter a description"},
	{"price", "Please enter a valid price"},
	{"maxGuests", "Please enter a valid number of guests"},
	{"address", "Please enter an address"},
	{"city", "Please enter a city"},
	{"zip", "Please enter a zip code"},
	{"country", "Please enter a country"},
	{"continent", "Please enter a continent"},
	{"media", "Image must be a valid URL"},
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func venueValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})

	return validate
}

// Normalize trims every text field, drops media entries without a URL and
// fills in missing alt texts the way the venue form does.
func (in VenueInput) Normalize() VenueInput {
	out := in
	out.Name = strings.TrimSpace(in.Name)
	out.Description = strings.TrimSpace(in.Description)
	out.Location = LocationInput{
		Address:   strings.TrimSpace(in.Location.Address),
		City:      strings.TrimSpace(in.Location.City),
		Zip:       strings.TrimSpace(in.Location.Zip),
		Country:   strings.TrimSpace(in.Location.Country),
		Continent: strings.TrimSpace(in.Location.Continent),
	}

	out.Media = make([]MediaInput, 0, len(in.Media))
	for _, m := range in.Media {
		url := strings.TrimSpace(m.URL)
		if url == "" {
			continue
		}

		alt := strings.TrimSpace(m.Alt)
		if alt == "" {
			alt = out.Name + " image"
		}

		out.Media = append(out.Media, MediaInput{URL: url, Alt: alt})
	}

	return out
}

// ValidateVenue checks a normalized form and reports every failing field at once.
func ValidateVenue(in VenueInput) error {
	err := venueValidator().Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fieldKey(fe)] = true
	}

	out := &ValidationError{}
	for _, fm := range fieldMessages {
		if failed[fm.field] {
			out.Fields = append(out.Fields, fm.field)
			out.Messages = append(out.Messages, fm.message)
		}
	}

	return out
}

// fieldKey maps a validator error to its form field. Media errors are reported
// on the collection, not on the individual entry.
func fieldKey(fe validator.FieldError) string {
	if strings.Contains(fe.Namespace(), ".media[") {
		return "media"
	}

	return fe.Field()
}

func (in VenueInput) venue() domain.Venue {
	media := make([]domain.Media, 0, len(in.Media))
	for _, m := range in.Media {
		media = append(media, domain.Media{URL: m.URL, Alt: m.Alt})
	}

	return domain.Venue{
		Name:        in.Name,
		Description: in.Description,
		Media:       media,
		Price:       in.Price,
		MaxGuests:   in.MaxGuests,
		Meta:        in.Meta,
		Location: domain.Location{
			Address:   in.Location.Address,
			City:      in.Location.City,
			Zip:       in.Location.Zip,
			Country:   in.Location.Country,
			Continent: in.Location.Continent,
		},
	}
}
