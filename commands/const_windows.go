package commands

const (
	DEFAULT_WORKDIR     = `C:\rowfeed`
	DEFAULT_CREDENTIALS = `C:\rowfeed\.google\credentials.json`
)
