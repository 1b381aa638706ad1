package constants

const (
	Version        = `0.1.0`
	AppName        = `sidoc`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.sidoc/`
	LogFile        = `sidoc.log`
)
