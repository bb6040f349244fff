package config

// Endpoints overrides the pages and marker the crawler works against.
type Endpoints struct {
	// Home is the category list page URL.
	Home string `yaml:"home,omitempty"`

	// CategoryBase is the prefix category IDs are appended to.
	CategoryBase string `yaml:"categoryBase,omitempty"`

	// ProductMarker is the class token identifying product links.
	ProductMarker string `yaml:"productMarker,omitempty"`
}

// Request holds settings applied to every outgoing request.
type Request struct {
	// Cookie is an HTTP cookie to send.
	// Format: "name=value" or "name1=value1; name2=value2"
	Cookie string `yaml:"cookie,omitempty"`

	// Headers are custom HTTP headers to include in every request.
	Headers map[string]string `yaml:"headers,omitempty"`

	// UserAgent replaces the default User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`
}

// File represents the structure of the .auctioncrawl configuration file.
type File struct {
	Endpoints Endpoints `yaml:"endpoints,omitempty"`
	Request   Request   `yaml:"request,omitempty"`
}
