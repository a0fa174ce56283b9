package config

type App struct {
	Env    string `json:"env" yaml:"env"`
	Debug  bool   `json:"debug" yaml:"debug"`
	Domain string `json:"domain" yaml:"domain"`
	// IDSalt salts the public hashid form of primary keys.
	IDSalt string `json:"id_salt" yaml:"id_salt"`
}

// Install holds the seed data written by the install command.
type Install struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Category string `json:"category" yaml:"category"`
}
