package holiday

import (
	"fmt"
	"strings"
	"time"

	_ "embed"

	"github.com/dalyeok/dalyeok/pkg/calendar"
	"gopkg.in/yaml.v3"
)

//go:embed holidays.yaml
var holidaysYAML []byte

type dataset struct {
	Holidays map[string]string `yaml:"holidays"`
}

// Service answers which public holidays fall in a given month, backed by a
// dataset embedded at build time.
type Service struct {
	holidays map[string]string
}

func NewService() (*Service, error) {
	var data dataset
	if err := yaml.Unmarshal(holidaysYAML, &data); err != nil {
		return nil, fmt.Errorf("failed to parse holiday dataset: %w", err)
	}
	return &Service{holidays: data.Holidays}, nil
}

// ForMonth returns the holidays of ref's calendar month as a map of
// YYYY-MM-DD date to holiday name. Months without holidays yield an empty
// map.
func (s *Service) ForMonth(ref time.Time) map[string]string {
	prefix := fmt.Sprintf("%d-%s-", ref.Year(), calendar.FillZero(float64(int(ref.Month())), 2))

	found := make(map[string]string)
	for date, name := range s.holidays {
		if strings.HasPrefix(date, prefix) {
			found[date] = name
		}
	}
	return found
}
