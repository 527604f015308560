package cli

import (
	"errors"

	"github.com/MakeNowJust/heredoc"
)

var (
	ErrConfigNotFound = errors.New(heredoc.Doc(`
	Config file not found. Loading from defaults...

	Run "lineage config init" to initialize a new configuration file
	Run "lineage help environment" for more information.

	Alternatively, make a "lineage.yaml" file in the current directory from the example given
`))

	errSnapshotsDisabled = errors.New("snapshot storage is not configured, set db.host in the config")
)
