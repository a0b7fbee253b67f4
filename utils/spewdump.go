package utils

import (
	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

func LogDump(a ...interface{}) {
	log.Debug(spewConfig.Sdump(a...))
}
