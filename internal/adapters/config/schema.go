package config

// Slinkfile represents the structure of the slink.yaml configuration file.
type Slinkfile struct {
	Site          SiteDTO  `yaml:"site"`
	Plugins       string   `yaml:"plugins"`
	Menus         string   `yaml:"menus"`
	Cache         CacheDTO `yaml:"cache"`
	Overrides     string   `yaml:"overrides"`
	NetworkActive []string `yaml:"networkActive"`
	SettingsTerms []string `yaml:"settingsTerms"`
	LinkSynonyms  []string `yaml:"linkSynonyms"`
	Verbose       bool     `yaml:"verbose"`
}

// SiteDTO identifies the site whose admin panel slink decorates.
type SiteDTO struct {
	URL       string `yaml:"url"`
	AdminBase string `yaml:"adminBase"`
	ID        int    `yaml:"id"`
}

// CacheDTO selects the transient backend and its expirations.
type CacheDTO struct {
	Backend   string   `yaml:"backend"`
	MenuTTL   string   `yaml:"menuTTL"`
	PluginTTL string   `yaml:"pluginTTL"`
	Redis     RedisDTO `yaml:"redis"`
}

// RedisDTO holds connection settings for the redis backend.
type RedisDTO struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}
