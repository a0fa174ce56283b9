package config

type Log struct {
	Level string `json:"level" yaml:"level"`
	// File enables rotated file output next to stdout when set.
	File       string `json:"file" yaml:"file"`
	MaxSize    int    `json:"max_size" yaml:"max_size"`
	MaxAge     int    `json:"max_age" yaml:"max_age"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
}
