package config

func (cfg *Config) SetPathForTest(path string) {
	cfg.path = path
}
