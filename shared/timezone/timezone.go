package timezone

import (
	"hotel/config"
	"hotel/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

// layouts accepted for stored and submitted dates, tried in order.
var dateLayouts = []string{
	constant.DateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// ParseDate parses a check-in or check-out value, ignoring surrounding whitespace. Plain calendar days
// are read in the application timezone; values carrying an offset keep it.
func ParseDate(value string) (time.Time, error) {
	var err error

	value = strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		var parsed time.Time

		parsed, err = time.ParseInLocation(layout, value, GetLocation())
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, err
}

// SameDay reports whether two instants fall on the same calendar day in the application timezone.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(GetLocation()).Date()
	by, bm, bd := b.In(GetLocation()).Date()

	return ay == by && am == bm && ad == bd
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
