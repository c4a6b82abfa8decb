package assets

import (
	"log"
	"strings"

	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/item"
)

// Defaults used across the package.
const (
	DefaultCDN      = "https://ddragon.leagueoflegends.com/cdn"
	DefaultAPI      = "https://ddragon.leagueoflegends.com/api"
	DefaultLocale   = "pt_BR"
	SummonersRiftID = "11"
	defaultWorkers  = 10
)

// Options of the Data Dragon loader.
type Options struct {
	CDN              string
	API              string
	Locale           string
	MapID            string
	ExcludedItemTags []string
	Workers          int
}

// DefaultOptions returns the Summoner's Rift options for the public Data Dragon.
func DefaultOptions() Options {
	return Options{
		CDN:              DefaultCDN,
		API:              DefaultAPI,
		Locale:           DefaultLocale,
		MapID:            SummonersRiftID,
		ExcludedItemTags: []string{"Consumable", "Trinket"},
		Workers:          defaultWorkers,
	}
}

// withDefaults fills the empty values.
func (o Options) withDefaults() Options {
	if o.CDN == "" {
		o.CDN = DefaultCDN
	}
	if o.API == "" {
		o.API = DefaultAPI
	}
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	if o.MapID == "" {
		o.MapID = SummonersRiftID
	}
	if o.Workers <= 0 {
		o.Workers = defaultWorkers
	}
	o.CDN = strings.TrimRight(o.CDN, "/")
	o.API = strings.TrimRight(o.API, "/")
	return o
}

// Logger receives the loader progress, the job logger and the standard logger both fit.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Standard library logger.
type stdLogger struct{}

func (stdLogger) Infof(format string, args ...any) {
	log.Printf(format, args...)
}

func (stdLogger) Errorf(format string, args ...any) {
	log.Printf("ERROR "+format, args...)
}

// Definition for extracting the champion data.
type championDocument struct {
	Version string                       `json:"version"`
	Data    map[string]champion.Champion `json:"data"`
}

// Definition for extracting the item data.
type itemDocument struct {
	Version string               `json:"version"`
	Data    map[string]item.Item `json:"data"`
}
