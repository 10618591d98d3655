package entity

// ConfigItem is one record of the local configuration store.
type ConfigItem struct {
	Schema        string
	Version       string
	ConfigureLang string
	Value         Value
}

// ConfigLangMapping associates a Redfish URI with its configure language.
type ConfigLangMapping struct {
	ConfigureLang string
	URI           string
}
