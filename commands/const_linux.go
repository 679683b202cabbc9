package commands

const (
	_etc = "/usr/local/etc/rowfeed"
	_var = "/usr/local/var/rowfeed"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
