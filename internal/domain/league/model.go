package league

import (
	"fmt"
	"time"
)

// League is one season of a competition with a fixed roster.
type League struct {
	ID          string
	Name        string
	CountryCode string
	Season      string
	SeasonStart time.Time
	IsDefault   bool
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.CountryCode == "" {
		return fmt.Errorf("league country code is required")
	}
	if l.Season == "" {
		return fmt.Errorf("league season is required")
	}
	if l.SeasonStart.IsZero() {
		return fmt.Errorf("league season start is required")
	}

	return nil
}
