package config

// Commands represents a command definition document: the declarative
// entries served by the static palette source.
type Commands struct {
	Version  string    `yaml:"version" validate:"required,semver"`
	Palette  string    `yaml:"palette,omitempty" validate:"omitempty,entry_id"`
	Commands []Command `yaml:"commands" validate:"required,min=1,dive"`
}

// Command describes a single executable entry: what the palette shows
// and the argv it runs on acceptance.
type Command struct {
	ID       string            `yaml:"id" validate:"required,entry_id"`
	Title    string            `yaml:"title" validate:"required,min=1,max=100"`
	Subtitle string            `yaml:"subtitle,omitempty" validate:"omitempty,max=200"`
	Exec     []string          `yaml:"exec" validate:"required,min=1,dive,min=1"`
	Dir      string            `yaml:"dir,omitempty"`
	Env      map[string]string `yaml:"env,omitempty"`
}
